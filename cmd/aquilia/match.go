package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Meghali54/Aquilia-AI-sub000/internal/output"

	"github.com/spf13/cobra"
)

var matchFormat string

var matchCmd = &cobra.Command{
	Use:   "match [file|-]",
	Short: "Identify one sequence (FASTA or bare) against the catalogue",
	Example: `  aquilia match query.fasta
  echo ATGGCAAACCTCGAAAGG | aquilia match --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVarP(&matchFormat, "format", "f", output.FormatText, "output format: text, json, csv")
}

func runMatch(cmd *cobra.Command, args []string) error {
	raw, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	store, closeSrc, err := openStore(cmd.Context())
	defer closeSrc()
	if err != nil {
		return err
	}

	query, matches, err := store.Matcher().Analyze(string(raw), cfg.Matcher.TopN)
	if err != nil {
		return err
	}

	return output.Write(cmd.OutOrStdout(), matchFormat, []output.QueryResult{{
		Header:  query.Header,
		Length:  len(query.Sequence),
		Matches: matches,
	}})
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read query: %w", err)
	}
	return data, nil
}
