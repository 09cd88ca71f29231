package models

// ReferenceSequence is one labelled entry of the reference catalogue.
// Only Sequence takes part in scoring; the rest is carried through to results.
type ReferenceSequence struct {
	ID          string `json:"species" yaml:"species"`
	CommonName  string `json:"commonName" yaml:"common_name"`
	Sequence    string `json:"sequence,omitempty" yaml:"sequence"`
	Family      string `json:"family" yaml:"family"`
	Habitat     string `json:"habitat" yaml:"habitat"`
	Description string `json:"description" yaml:"description"`
}

// QuerySequence is a parsed analysis request. It is never persisted.
type QuerySequence struct {
	RawInput string `json:"-"`
	Header   string `json:"header"`
	Sequence string `json:"sequence"`
}

// ScoreComponents holds the raw inputs of the blended similarity, each in [0,1]
type ScoreComponents struct {
	Kmer3      float64 `json:"kmer3"`
	Kmer4      float64 `json:"kmer4"`
	Kmer5      float64 `json:"kmer5"`
	Positional float64 `json:"positional"`
}

// MatchResult is one ranked hit. Similarity is a percentage in [0,100].
type MatchResult struct {
	ReferenceID string          `json:"species"`
	CommonName  string          `json:"commonName"`
	Family      string          `json:"family"`
	Habitat     string          `json:"habitat"`
	Description string          `json:"description"`
	Similarity  float64         `json:"similarity"`
	Tier        string          `json:"tier"`
	Components  ScoreComponents `json:"components"`
}
