package service

import (
	"sync"
	"testing"

	"github.com/Meghali54/Aquilia-AI-sub000/internal/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sardinellaPrefix = "ATGGCAAACCTCGAAAGGATCGCCGTGGAGCTCGAGGGCGAGAAGGGCGAAGTCCTGGGC"

func mustDB(t *testing.T, entries []models.ReferenceSequence) *ReferenceDB {
	t.Helper()
	db, err := NewReferenceDB(entries)
	require.NoError(t, err)
	return db
}

func catalogEntry(t *testing.T, id string) models.ReferenceSequence {
	t.Helper()
	for _, ref := range DefaultCatalog() {
		if ref.ID == id {
			return ref
		}
	}
	t.Fatalf("no catalogue entry %q", id)
	return models.ReferenceSequence{}
}

func TestRank_SardinellaPrefixAgainstTuna(t *testing.T) {
	db := []models.ReferenceSequence{
		catalogEntry(t, "Sardinella aurita"),
		catalogEntry(t, "Thunnus thynnus"),
	}

	query, err := Parse(sardinellaPrefix)
	require.NoError(t, err)

	got := Rank(query, db, 1)
	require.Len(t, got, 1)
	assert.Equal(t, "Sardinella aurita", got[0].ReferenceID)
	assert.Equal(t, "Round Sardinella", got[0].CommonName)
	assert.Equal(t, "Clupeidae", got[0].Family)
	// a 60 nt prefix of a 297 nt reference shares few 5-mers and loses
	// most of the positional score to the unmatched tail
	assert.InDelta(t, 34.98, got[0].Similarity, 0.01)
	assert.Equal(t, TierLow, got[0].Tier)
}

func TestRank_FullSequenceIdentifiesItself(t *testing.T) {
	m := NewSequenceMatcher(mustDB(t, DefaultCatalog()), MatcherOptions{})

	for _, id := range []string{"Sardinella aurita", "Thunnus thynnus", "Clupea harengus"} {
		ref := catalogEntry(t, id)
		_, got, err := m.Analyze(">"+id+"\n"+ref.Sequence, 0)
		require.NoError(t, err)
		require.Len(t, got, DefaultTopN)
		assert.Equal(t, id, got[0].ReferenceID)
		assert.Equal(t, 100.0, got[0].Similarity)
		assert.Equal(t, TierExcellent, got[0].Tier)
		assert.Greater(t, got[0].Similarity, 90.0)
	}
}

func TestRank_TiesKeepDatabaseOrder(t *testing.T) {
	// the prefix scores identically against Sardinella and Herring
	query, err := Parse(sardinellaPrefix)
	require.NoError(t, err)

	got := Rank(query, DefaultCatalog(), 3)
	require.Len(t, got, 3)
	assert.Equal(t, "Sardinella aurita", got[0].ReferenceID)
	assert.Equal(t, "Clupea harengus", got[1].ReferenceID)
	assert.Equal(t, got[0].Similarity, got[1].Similarity)

	reversed := DefaultCatalog()
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	got = Rank(query, reversed, 2)
	assert.Equal(t, "Clupea harengus", got[0].ReferenceID)
	assert.Equal(t, "Sardinella aurita", got[1].ReferenceID)
}

func TestRank_Ordering(t *testing.T) {
	query, err := Parse(catalogEntry(t, "Thunnus thynnus").Sequence)
	require.NoError(t, err)

	got := Rank(query, DefaultCatalog(), 10)
	require.Len(t, got, 10)
	for i := 0; i+1 < len(got); i++ {
		assert.GreaterOrEqual(t, got[i].Similarity, got[i+1].Similarity)
	}
	for _, r := range got {
		assert.GreaterOrEqual(t, r.Similarity, 0.0)
		assert.LessOrEqual(t, r.Similarity, 100.0)
	}
}

func TestRank_Truncation(t *testing.T) {
	query, err := Parse("ATCGATCGATCG")
	require.NoError(t, err)
	db := DefaultCatalog()

	for _, topN := range []int{1, 3, 10, 25} {
		assert.Len(t, Rank(query, db, topN), min(topN, len(db)), "topN=%d", topN)
	}
	assert.Empty(t, Rank(query, db, 0))
	assert.Empty(t, Rank(query, db, -1))
}

func TestRank_EmptyDatabase(t *testing.T) {
	query, err := Parse("ATCGATCGATCG")
	require.NoError(t, err)

	got := Rank(query, nil, 3)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	m := NewSequenceMatcher(mustDB(t, nil), MatcherOptions{})
	assert.Empty(t, m.Rank(query, 3))
}

func TestRank_Deterministic(t *testing.T) {
	m := NewSequenceMatcher(mustDB(t, DefaultCatalog()), MatcherOptions{TopN: 10})
	query, err := Parse(sardinellaPrefix)
	require.NoError(t, err)

	first := m.Rank(query, 10)
	for i := 0; i < 5; i++ {
		if diff := cmp.Diff(first, m.Rank(query, 10)); diff != "" {
			t.Fatalf("rank changed between calls (-first +again):\n%s", diff)
		}
	}
}

func TestSequenceMatcher_ConcurrentRank(t *testing.T) {
	m := NewSequenceMatcher(mustDB(t, DefaultCatalog()), MatcherOptions{})
	query, err := Parse(catalogEntry(t, "Gadus morhua").Sequence)
	require.NoError(t, err)
	want := m.Rank(query, 3)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, m.Rank(query, 3))
		}()
	}
	wg.Wait()
}

func TestSequenceMatcher_Analyze(t *testing.T) {
	m := NewSequenceMatcher(mustDB(t, DefaultCatalog()), MatcherOptions{TopN: 2})
	assert.Equal(t, 2, m.TopN())

	q, got, err := m.Analyze(">sample\n"+sardinellaPrefix, 0)
	require.NoError(t, err)
	assert.Equal(t, "sample", q.Header)
	assert.Len(t, got, 2)

	_, got, err = m.Analyze(sardinellaPrefix, 5)
	require.NoError(t, err)
	assert.Len(t, got, 5)

	_, _, err = m.Analyze("   ", 0)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestSequenceMatcher_CustomWeights(t *testing.T) {
	w := Weights{K: [3]int{3, 4, 5}, Positional: 1}
	m := NewSequenceMatcher(mustDB(t, DefaultCatalog()), MatcherOptions{Weights: &w})

	query, err := Parse(sardinellaPrefix)
	require.NoError(t, err)
	got := m.Rank(query, 1)
	require.Len(t, got, 1)
	assert.InDelta(t, 100*60.0/297.0, got[0].Similarity, 1e-9)
}

func TestNewReferenceDB(t *testing.T) {
	db := mustDB(t, []models.ReferenceSequence{
		{ID: " Alpha ", Sequence: "ac gt\nac"},
		{ID: "Beta", Sequence: "TTTT"},
	})
	assert.Equal(t, 2, db.Len())

	alpha, err := db.Get("Alpha")
	require.NoError(t, err)
	assert.Equal(t, "ACGTAC", alpha.Sequence)

	_, err = db.Get("Gamma")
	assert.ErrorIs(t, err, ErrUnknownReference)

	entries := db.Entries()
	entries[0].Sequence = "mutated"
	again, _ := db.Get("Alpha")
	assert.Equal(t, "ACGTAC", again.Sequence, "Entries must return a copy")
}

func TestNewReferenceDB_Invalid(t *testing.T) {
	cases := map[string][]models.ReferenceSequence{
		"empty id":       {{ID: "  ", Sequence: "ACGT"}},
		"duplicate id":   {{ID: "A", Sequence: "ACGT"}, {ID: "A", Sequence: "TTTT"}},
		"empty sequence": {{ID: "A", Sequence: " \n "}},
	}
	for name, entries := range cases {
		_, err := NewReferenceDB(entries)
		assert.ErrorIs(t, err, ErrInvalidReference, name)
	}
}

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()
	require.Len(t, catalog, 10)
	assert.Equal(t, "Sardinella aurita", catalog[0].ID)
	assert.Equal(t, "Clupea harengus", catalog[9].ID)

	// the tuna record carries a non-nucleotide symbol that is kept as is
	assert.Contains(t, catalogEntry(t, "Thunnus thynnus").Sequence, "P")

	catalog[0].ID = "changed"
	assert.Equal(t, "Sardinella aurita", DefaultCatalog()[0].ID)
}

func TestTierFor(t *testing.T) {
	assert.Equal(t, TierExcellent, TierFor(100))
	assert.Equal(t, TierExcellent, TierFor(90))
	assert.Equal(t, TierGood, TierFor(89.9))
	assert.Equal(t, TierGood, TierFor(75))
	assert.Equal(t, TierModerate, TierFor(60))
	assert.Equal(t, TierLow, TierFor(59.99))
	assert.Equal(t, TierLow, TierFor(0))
}
