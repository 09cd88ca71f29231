package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
)

// FASTARecord is one entry of a multi-record FASTA file
type FASTARecord struct {
	Header   string
	Sequence string
}

// ReadFASTA reads every record of a (possibly gzipped) FASTA file.
// No alphabet is enforced; symbols are kept as written.
func ReadFASTA(ctx context.Context, path string) ([]FASTARecord, error) {
	reader, err := fastx.NewReader(seq.Unlimit, path, "")
	if err != nil {
		return nil, fmt.Errorf("open fasta %s: %w", path, err)
	}
	defer reader.Close()

	records, err := readRecords(ctx, reader, 0)
	if err != nil {
		return nil, fmt.Errorf("read fasta %s: %w", path, err)
	}
	return records, nil
}

// FirstFASTARecord returns the first record in r and ignores the rest.
// ErrEmptyInput is returned when r holds no record.
func FirstFASTARecord(ctx context.Context, r io.Reader) (FASTARecord, error) {
	reader, err := fastx.NewReaderFromIO(seq.Unlimit, r, "")
	if err != nil {
		return FASTARecord{}, fmt.Errorf("open fasta: %w", err)
	}
	defer reader.Close()

	records, err := readRecords(ctx, reader, 1)
	if err != nil {
		return FASTARecord{}, fmt.Errorf("read fasta: %w", err)
	}
	if len(records) == 0 {
		return FASTARecord{}, ErrEmptyInput
	}
	return records[0], nil
}

// readRecords stops after limit records; limit <= 0 reads to EOF.
func readRecords(ctx context.Context, reader *fastx.Reader, limit int) ([]FASTARecord, error) {
	var records []FASTARecord
	for limit <= 0 || len(records) < limit {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}

		records = append(records, FASTARecord{
			Header:   strings.TrimSpace(string(record.Name)),
			Sequence: string(record.Seq.Seq),
		})
	}
	return records, nil
}

// String renders the record back to FASTA so it can go through Parse
func (r FASTARecord) String() string {
	return ">" + r.Header + "\n" + r.Sequence + "\n"
}
