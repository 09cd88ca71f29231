package service

import (
	"sort"

	"github.com/Meghali54/Aquilia-AI-sub000/internal/models"
)

// DefaultTopN is the number of matches the analyzer reports
const DefaultTopN = 3

// MatcherOptions tunes a SequenceMatcher. The zero value means defaults.
type MatcherOptions struct {
	TopN    int
	Weights *Weights
}

// SequenceMatcher ranks queries against one immutable ReferenceDB.
// Any number of goroutines may call its methods concurrently.
type SequenceMatcher struct {
	db      *ReferenceDB
	topN    int
	weights Weights
}

func NewSequenceMatcher(db *ReferenceDB, opts MatcherOptions) *SequenceMatcher {
	m := &SequenceMatcher{
		db:      db,
		topN:    opts.TopN,
		weights: DefaultWeights,
	}
	if m.db == nil {
		m.db = &ReferenceDB{index: map[string]int{}}
	}
	if m.topN <= 0 {
		m.topN = DefaultTopN
	}
	if opts.Weights != nil {
		m.weights = *opts.Weights
	}
	return m
}

// TopN is the default result count used when a caller passes topN <= 0 to Analyze
func (m *SequenceMatcher) TopN() int {
	return m.topN
}

// References returns the catalogue in load order
func (m *SequenceMatcher) References() []models.ReferenceSequence {
	return m.db.Entries()
}

// Reference looks up one catalogue entry
func (m *SequenceMatcher) Reference(id string) (models.ReferenceSequence, error) {
	return m.db.Get(id)
}

// Len is the catalogue size
func (m *SequenceMatcher) Len() int {
	return m.db.Len()
}

// Rank scores query against the whole catalogue and keeps the best topN
func (m *SequenceMatcher) Rank(query models.QuerySequence, topN int) []models.MatchResult {
	return rankWith(m.weights, query, m.db.entries, topN)
}

// Analyze parses raw input and ranks it. topN <= 0 falls back to the matcher default.
func (m *SequenceMatcher) Analyze(raw string, topN int) (models.QuerySequence, []models.MatchResult, error) {
	query, err := Parse(raw)
	if err != nil {
		return models.QuerySequence{}, nil, err
	}
	if topN <= 0 {
		topN = m.topN
	}
	return query, m.Rank(query, topN), nil
}

// Rank scores query against every entry of db with DefaultWeights, sorts by
// descending similarity and truncates to topN. Equal scores keep db order.
// Sequences in db are compared as given; NewReferenceDB normalizes them.
func Rank(query models.QuerySequence, db []models.ReferenceSequence, topN int) []models.MatchResult {
	return rankWith(DefaultWeights, query, db, topN)
}

func rankWith(w Weights, query models.QuerySequence, db []models.ReferenceSequence, topN int) []models.MatchResult {
	if topN <= 0 || len(db) == 0 {
		return []models.MatchResult{}
	}

	results := make([]models.MatchResult, 0, len(db))
	for _, ref := range db {
		comps := w.Components(query.Sequence, ref.Sequence)
		similarity := w.blend(comps) * 100

		results = append(results, models.MatchResult{
			ReferenceID: ref.ID,
			CommonName:  ref.CommonName,
			Family:      ref.Family,
			Habitat:     ref.Habitat,
			Description: ref.Description,
			Similarity:  similarity,
			Tier:        TierFor(similarity),
			Components:  comps,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})

	if len(results) > topN {
		results = results[:topN]
	}
	return results
}
