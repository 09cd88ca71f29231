package service

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/Meghali54/Aquilia-AI-sub000/internal/models"
)

// DefaultHeader is used when the input carries no FASTA header line
const DefaultHeader = "Unknown sequence"

var (
	// ErrEmptyInput is returned by Parse for blank input.
	ErrEmptyInput = errors.New("empty sequence input")
	// ErrEmptySequence is returned when a header is present but no bases follow.
	// It wraps ErrEmptyInput.
	ErrEmptySequence = fmt.Errorf("%w: header has no sequence", ErrEmptyInput)
)

// Parse turns raw text, optionally FASTA formatted, into a QuerySequence.
// Only the first non-empty line is treated as a header; any later '>' line is
// kept as sequence text. Use ReadFASTA for multi-record input.
func Parse(raw string) (models.QuerySequence, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return models.QuerySequence{}, ErrEmptyInput
	}

	header := DefaultHeader
	body := trimmed
	if strings.HasPrefix(trimmed, ">") {
		first, rest, _ := strings.Cut(trimmed, "\n")
		if h := strings.TrimSpace(first[1:]); h != "" {
			header = h
		}
		body = rest
	}

	seq := normalize(body)
	if seq == "" {
		return models.QuerySequence{}, ErrEmptySequence
	}

	return models.QuerySequence{
		RawInput: raw,
		Header:   header,
		Sequence: seq,
	}, nil
}

// normalize strips all whitespace and uppercases. Non-ACGT symbols are kept.
func normalize(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		sb.WriteRune(unicode.ToUpper(r))
	}
	return sb.String()
}
