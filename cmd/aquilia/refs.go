package main

import (
	"github.com/Meghali54/Aquilia-AI-sub000/internal/output"

	"github.com/spf13/cobra"
)

var refsCmd = &cobra.Command{
	Use:   "refs",
	Short: "List the loaded reference catalogue",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeSrc, err := openStore(cmd.Context())
		defer closeSrc()
		if err != nil {
			return err
		}

		output.WriteReferences(cmd.OutOrStdout(), store.Matcher().References())
		return nil
	},
}
