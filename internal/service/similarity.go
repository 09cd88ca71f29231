package service

import "github.com/Meghali54/Aquilia-AI-sub000/internal/models"

// Weights controls how the k-mer and positional components are blended.
// K values pair with the first three weights.
type Weights struct {
	K          [3]int
	Kmer       [3]float64
	Positional float64
}

// DefaultWeights reproduces the analyzer's scoring: 0.3*k3 + 0.3*k4 + 0.2*k5 + 0.2*positional
var DefaultWeights = Weights{
	K:          [3]int{3, 4, 5},
	Kmer:       [3]float64{0.3, 0.3, 0.2},
	Positional: 0.2,
}

// Similarity returns the blended score of query against reference in [0,1]
func Similarity(query, reference string) float64 {
	return DefaultWeights.Score(query, reference)
}

// Score blends the components with w.
func (w Weights) Score(query, reference string) float64 {
	return w.blend(w.Components(query, reference))
}

// Components computes the raw k-mer and positional scores for w.K.
func (w Weights) Components(query, reference string) models.ScoreComponents {
	return models.ScoreComponents{
		Kmer3:      KmerSimilarity(query, reference, w.K[0]),
		Kmer4:      KmerSimilarity(query, reference, w.K[1]),
		Kmer5:      KmerSimilarity(query, reference, w.K[2]),
		Positional: PositionalAlignmentScore(query, reference),
	}
}

func (w Weights) blend(c models.ScoreComponents) float64 {
	return c.Kmer3*w.Kmer[0] + c.Kmer4*w.Kmer[1] + c.Kmer5*w.Kmer[2] + c.Positional*w.Positional
}

// KmerSimilarity calculates the Jaccard index of the k-mer sets of a and b (0-1).
// Duplicated k-mers count once. Returns 0 when k < 1 or when either
// sequence is shorter than k. Windows are taken over bytes, so a multi-byte
// symbol spans more than one position.
func KmerSimilarity(a, b string, k int) float64 {
	if k < 1 || len(a) < k || len(b) < k {
		return 0
	}

	set1 := kmerSet(a, k)
	set2 := kmerSet(b, k)

	intersection := 0
	for kmer := range set1 {
		if _, ok := set2[kmer]; ok {
			intersection++
		}
	}

	union := len(set1) + len(set2) - intersection
	if union == 0 {
		return 0
	}

	return float64(intersection) / float64(union)
}

func kmerSet(s string, k int) map[string]struct{} {
	set := make(map[string]struct{}, len(s)-k+1)
	for i := 0; i <= len(s)-k; i++ {
		set[s[i:i+k]] = struct{}{}
	}
	return set
}

// PositionalAlignmentScore counts identical bytes at identical offsets and
// divides by the longer length, so unmatched tail counts against the score.
//
// This is an ungapped identity score, not an alignment: a single insertion
// shifts every following base out of register. Do not read it as a
// BLAST-style identity.
func PositionalAlignmentScore(a, b string) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 0
	}

	shortest := min(len(a), len(b))
	matches := 0
	for i := 0; i < shortest; i++ {
		if a[i] == b[i] {
			matches++
		}
	}

	return float64(matches) / float64(longest)
}
