package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantHeader string
		wantSeq    string
	}{
		{
			name:       "bare sequence",
			raw:        "atcgatcg",
			wantHeader: DefaultHeader,
			wantSeq:    "ATCGATCG",
		},
		{
			name:       "fasta record",
			raw:        ">Sardinella aurita COI\nATGGCA\nAACCTC\n",
			wantHeader: "Sardinella aurita COI",
			wantSeq:    "ATGGCAAACCTC",
		},
		{
			name:       "bare multi-line uses every line",
			raw:        "ATGG\nCAAA\n",
			wantHeader: DefaultHeader,
			wantSeq:    "ATGGCAAA",
		},
		{
			name:       "leading blank lines and CRLF",
			raw:        "\r\n\n  >query 1\r\nat gc\r\n\tta\r\n",
			wantHeader: "query 1",
			wantSeq:    "ATGCTA",
		},
		{
			name:       "empty header text",
			raw:        ">\nACGT",
			wantHeader: DefaultHeader,
			wantSeq:    "ACGT",
		},
		{
			name:       "non-ACGT symbols pass through",
			raw:        "acgtnP",
			wantHeader: DefaultHeader,
			wantSeq:    "ACGTNP",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := Parse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHeader, q.Header)
			assert.Equal(t, tt.wantSeq, q.Sequence)
			assert.Equal(t, tt.raw, q.RawInput)
		})
	}
}

func TestParse_EmptyInput(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\t\n"} {
		_, err := Parse(raw)
		assert.ErrorIs(t, err, ErrEmptyInput, "%q", raw)
	}
}

func TestParse_HeaderWithoutSequence(t *testing.T) {
	for _, raw := range []string{">only a header", ">header\n  \n\n"} {
		_, err := Parse(raw)
		assert.ErrorIs(t, err, ErrEmptySequence, "%q", raw)
		assert.ErrorIs(t, err, ErrEmptyInput, "%q", raw)
	}
}
