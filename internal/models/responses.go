package models

// AnalyzeRequest is the body of POST /api/fasta/analyze
type AnalyzeRequest struct {
	Sequence string `json:"sequence"`
	TopN     int    `json:"topN,omitempty"`
}

// AnalyzeResponse is returned by every analysis endpoint
type AnalyzeResponse struct {
	AnalysisID string        `json:"analysisId"`
	Header     string        `json:"header"`
	Length     int           `json:"length"`
	Preview    string        `json:"preview"`
	Matches    []MatchResult `json:"matches"`
}

// ErrorResponse is the JSON body of every 4xx/5xx reply
type ErrorResponse struct {
	Error string `json:"error"`
}

// ReferenceListResponse for GET /api/references
type ReferenceListResponse struct {
	Count      int                 `json:"count"`
	References []ReferenceSequence `json:"references"`
}

// CatalogStatus for GET /api/status
type CatalogStatus struct {
	Source   string `json:"source"`
	Entries  int    `json:"entries"`
	LoadedAt string `json:"loaded_at,omitempty"`
	Reloads  int    `json:"reloads"`
}
