package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/Meghali54/Aquilia-AI-sub000/internal/config"
	"github.com/Meghali54/Aquilia-AI-sub000/internal/logging"
	"github.com/Meghali54/Aquilia-AI-sub000/internal/service"
	"github.com/Meghali54/Aquilia-AI-sub000/internal/state"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "aquilia",
	Short: "Marine species identification from DNA sequences",
	Long: `aquilia ranks a nucleotide query against a reference catalogue of marine
species using a blend of k-mer (k=3,4,5) Jaccard similarity and an ungapped
positional identity score.

The positional score is not an alignment; treat the ranking as a quick
screen, not a BLAST-grade identification.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(viper.GetString("config"))
		if err != nil {
			return err
		}
		applyFlagOverrides(cfg)

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		logger, err = logging.New(cfg.Logging.Level, cfg.Logging.Format)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "aquilia.yaml", "path to the YAML config file")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("source", "", "reference source: builtin, yaml, fasta, postgres, sqlite")
	flags.String("references", "", "catalogue file (yaml, fasta) or DSN (postgres, sqlite)")
	flags.Int("top", 0, "number of matches to report")

	_ = viper.BindPFlags(flags)
	viper.SetEnvPrefix("AQUILIA")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(serveCmd, matchCmd, batchCmd, refsCmd)
}

// applyFlagOverrides lets command line flags win over file and env values
func applyFlagOverrides(c *config.Config) {
	if v := viper.GetString("log-level"); v != "" {
		c.Logging.Level = v
	}
	if v := viper.GetString("source"); v != "" {
		c.References.Source = v
	}
	if v := viper.GetString("references"); v != "" {
		switch c.References.Source {
		case service.SourcePostgres, service.SourceSQLite:
			c.References.DSN = v
		default:
			c.References.Path = v
		}
	}
	if v := viper.GetInt("top"); v > 0 {
		c.Matcher.TopN = v
		if c.Matcher.MaxTopN < v {
			c.Matcher.MaxTopN = v
		}
	}
}

// openStore loads the configured catalogue. The returned closer is never nil.
func openStore(ctx context.Context) (*state.Store, func() error, error) {
	src, closeSrc, err := service.OpenSource(service.SourceConfig{
		Type:  cfg.References.Source,
		Path:  cfg.References.Path,
		DSN:   cfg.References.DSN,
		Table: cfg.References.Table,
	})
	if err != nil {
		return nil, closeSrc, err
	}

	store, err := state.NewStore(ctx, src, service.MatcherOptions{TopN: cfg.Matcher.TopN})
	if err != nil {
		return nil, closeSrc, err
	}

	status := store.Status()
	logger.Info("reference catalogue loaded",
		zap.String("source", status.Source),
		zap.Int("entries", status.Entries))
	return store, closeSrc, nil
}
