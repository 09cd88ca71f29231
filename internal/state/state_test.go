package state

import (
	"context"
	"errors"
	"testing"

	"github.com/Meghali54/Aquilia-AI-sub000/internal/models"
	"github.com/Meghali54/Aquilia-AI-sub000/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource returns whatever the test puts in entries/err
type fakeSource struct {
	entries []models.ReferenceSequence
	err     error
}

func (f *fakeSource) Name() string { return "fake" }

func (f *fakeSource) Load(ctx context.Context) ([]models.ReferenceSequence, error) {
	return f.entries, f.err
}

func TestNewStore(t *testing.T) {
	src := &fakeSource{entries: []models.ReferenceSequence{{ID: "A", Sequence: "ACGTACGT"}}}
	store, err := NewStore(context.Background(), src, service.MatcherOptions{TopN: 2})
	require.NoError(t, err)

	assert.Equal(t, 1, store.Matcher().Len())
	assert.Equal(t, 2, store.Matcher().TopN())

	status := store.Status()
	assert.Equal(t, "fake", status.Source)
	assert.Equal(t, 1, status.Entries)
	assert.Equal(t, 0, status.Reloads)
	assert.NotEmpty(t, status.LoadedAt)
}

func TestNewStore_InvalidCatalogue(t *testing.T) {
	src := &fakeSource{entries: []models.ReferenceSequence{{ID: "A"}}}
	_, err := NewStore(context.Background(), src, service.MatcherOptions{})
	assert.ErrorIs(t, err, service.ErrInvalidReference)
}

func TestStore_Reload(t *testing.T) {
	src := &fakeSource{entries: []models.ReferenceSequence{{ID: "A", Sequence: "ACGT"}}}
	store, err := NewStore(context.Background(), src, service.MatcherOptions{})
	require.NoError(t, err)
	before := store.Matcher()

	src.entries = []models.ReferenceSequence{{ID: "A", Sequence: "ACGT"}, {ID: "B", Sequence: "TTTT"}}
	require.NoError(t, store.Reload(context.Background()))

	assert.Equal(t, 2, store.Matcher().Len())
	assert.Equal(t, 1, before.Len(), "previous matcher must stay untouched")
	assert.Equal(t, 1, store.Status().Reloads)
}

func TestStore_ReloadFailureKeepsPrevious(t *testing.T) {
	src := &fakeSource{entries: []models.ReferenceSequence{{ID: "A", Sequence: "ACGT"}}}
	store, err := NewStore(context.Background(), src, service.MatcherOptions{})
	require.NoError(t, err)

	src.err = errors.New("connection refused")
	assert.Error(t, store.Reload(context.Background()))

	src.err = nil
	src.entries = []models.ReferenceSequence{{ID: "A", Sequence: "ACGT"}, {ID: "A", Sequence: "TTTT"}}
	assert.ErrorIs(t, store.Reload(context.Background()), service.ErrInvalidReference)

	_, err = store.Matcher().Reference("A")
	assert.NoError(t, err)
	assert.Equal(t, 1, store.Matcher().Len())
	assert.Equal(t, 0, store.Status().Reloads)
}
