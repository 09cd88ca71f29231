package main

import (
	"github.com/Meghali54/Aquilia-AI-sub000/internal/output"
	"github.com/Meghali54/Aquilia-AI-sub000/internal/service"

	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	batchFormat   string
	batchProgress bool
)

var batchCmd = &cobra.Command{
	Use:   "batch <fasta>",
	Short: "Identify every record of a multi-record FASTA file",
	Args:  cobra.ExactArgs(1),
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchFormat, "format", "f", output.FormatCSV, "output format: text, json, csv")
	batchCmd.Flags().BoolVar(&batchProgress, "progress", false, "show a progress bar on stderr")
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	records, err := service.ReadFASTA(ctx, args[0])
	if err != nil {
		return err
	}

	store, closeSrc, err := openStore(ctx)
	defer closeSrc()
	if err != nil {
		return err
	}
	matcher := store.Matcher()

	var bar *pb.ProgressBar
	if batchProgress {
		bar = pb.New(len(records))
		bar.SetWriter(cmd.ErrOrStderr())
		bar.Start()
	}

	results := make([]output.QueryResult, 0, len(records))
	for _, rec := range records {
		query, matches, err := matcher.Analyze(rec.String(), cfg.Matcher.TopN)
		res := output.QueryResult{
			Header:  query.Header,
			Length:  len(query.Sequence),
			Matches: matches,
		}
		if err != nil {
			res.Header = rec.Header
			res.Error = err.Error()
			logger.Warn("skipping record", zap.String("header", rec.Header), zap.Error(err))
		}
		results = append(results, res)

		if bar != nil {
			bar.Increment()
		}
	}
	if bar != nil {
		bar.Finish()
	}

	logger.Info("batch complete", zap.Int("records", len(records)))
	return output.Write(cmd.OutOrStdout(), batchFormat, results)
}
