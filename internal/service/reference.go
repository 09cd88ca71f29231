package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Meghali54/Aquilia-AI-sub000/internal/models"
)

var (
	ErrInvalidReference = errors.New("invalid reference sequence")
	ErrUnknownReference = errors.New("unknown reference")
)

// ReferenceDB is an immutable, ordered reference catalogue.
// It is safe for concurrent readers because nothing mutates it after NewReferenceDB.
type ReferenceDB struct {
	entries []models.ReferenceSequence
	index   map[string]int
}

// NewReferenceDB copies and normalizes entries. Order is preserved and is the
// tie-break order used by Rank.
func NewReferenceDB(entries []models.ReferenceSequence) (*ReferenceDB, error) {
	db := &ReferenceDB{
		entries: make([]models.ReferenceSequence, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}

	for i, e := range entries {
		e.ID = strings.TrimSpace(e.ID)
		if e.ID == "" {
			return nil, fmt.Errorf("%w: entry %d has no id", ErrInvalidReference, i)
		}
		if _, dup := db.index[e.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidReference, e.ID)
		}
		e.Sequence = normalize(e.Sequence)
		if e.Sequence == "" {
			return nil, fmt.Errorf("%w: %q has an empty sequence", ErrInvalidReference, e.ID)
		}

		db.index[e.ID] = len(db.entries)
		db.entries = append(db.entries, e)
	}

	return db, nil
}

// Len returns the number of entries
func (db *ReferenceDB) Len() int {
	return len(db.entries)
}

// Entries returns a copy of the catalogue in load order
func (db *ReferenceDB) Entries() []models.ReferenceSequence {
	out := make([]models.ReferenceSequence, len(db.entries))
	copy(out, db.entries)
	return out
}

// Get looks up an entry by its scientific name
func (db *ReferenceDB) Get(id string) (models.ReferenceSequence, error) {
	i, ok := db.index[id]
	if !ok {
		return models.ReferenceSequence{}, fmt.Errorf("%w: %q", ErrUnknownReference, id)
	}
	return db.entries[i], nil
}
