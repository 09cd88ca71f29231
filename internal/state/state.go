package state

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Meghali54/Aquilia-AI-sub000/internal/models"
	"github.com/Meghali54/Aquilia-AI-sub000/internal/service"
)

// Store holds the currently loaded matcher. A reload builds a complete new
// matcher before swapping it in, so readers always see one consistent catalogue.
type Store struct {
	mu sync.RWMutex

	source  service.ReferenceSource
	opts    service.MatcherOptions
	matcher *service.SequenceMatcher

	loadedAt time.Time
	reloads  int
}

// NewStore loads source once and fails if the catalogue is invalid
func NewStore(ctx context.Context, source service.ReferenceSource, opts service.MatcherOptions) (*Store, error) {
	s := &Store{source: source, opts: opts}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads the source. On error the previous matcher stays in place.
func (s *Store) Reload(ctx context.Context) error {
	entries, err := s.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("load %s: %w", s.source.Name(), err)
	}

	db, err := service.NewReferenceDB(entries)
	if err != nil {
		return fmt.Errorf("load %s: %w", s.source.Name(), err)
	}
	matcher := service.NewSequenceMatcher(db, s.opts)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.matcher != nil {
		s.reloads++
	}
	s.matcher = matcher
	s.loadedAt = time.Now()
	return nil
}

// Matcher returns the current matcher. The value is immutable; keep using it
// for the whole request even if a reload happens meanwhile.
func (s *Store) Matcher() *service.SequenceMatcher {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.matcher
}

// Status summarizes the loaded catalogue
func (s *Store) Status() models.CatalogStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := models.CatalogStatus{
		Source:  s.source.Name(),
		Reloads: s.reloads,
	}
	if s.matcher != nil {
		status.Entries = s.matcher.Len()
		status.LoadedAt = s.loadedAt.Format(time.RFC3339)
	}
	return status
}
