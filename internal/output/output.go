// Package output renders match results for the command line.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/Meghali54/Aquilia-AI-sub000/internal/models"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// QueryResult is one analysed query with its ranked matches
type QueryResult struct {
	Header  string               `json:"header"`
	Length  int                  `json:"length"`
	Matches []models.MatchResult `json:"matches"`
	Error   string               `json:"error,omitempty"`
}

var csvHeader = []string{"query", "rank", "species", "common_name", "family", "habitat", "similarity", "tier", "error"}

// Write renders results in format. Unknown formats are an error.
func Write(w io.Writer, format string, results []QueryResult) error {
	switch format {
	case "", FormatText:
		return writeText(w, results)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case FormatCSV:
		return writeCSV(w, results)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeCSV(w io.Writer, results []QueryResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, res := range results {
		if res.Error != "" {
			if err := cw.Write([]string{res.Header, "", "", "", "", "", "", "", res.Error}); err != nil {
				return err
			}
			continue
		}
		for i, m := range res.Matches {
			row := []string{
				res.Header,
				strconv.Itoa(i + 1),
				m.ReferenceID,
				m.CommonName,
				m.Family,
				m.Habitat,
				strconv.FormatFloat(m.Similarity, 'f', 1, 64),
				m.Tier,
				"",
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
