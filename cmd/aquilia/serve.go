package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Meghali54/Aquilia-AI-sub000/internal/api"
	"github.com/Meghali54/Aquilia-AI-sub000/internal/service"
	"github.com/Meghali54/Aquilia-AI-sub000/internal/watch"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API used by the dashboard",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeSrc, err := openStore(ctx)
	defer closeSrc()
	if err != nil {
		return err
	}

	handler := api.NewHandler(store, logger, cfg.Matcher.MaxTopN, cfg.Server.MaxUploadBytes)
	router := api.NewRouter(handler, cfg.Server.AllowedOrigins)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdownTimeout, err := time.ParseDuration(cfg.Server.ShutdownTimeout)
	if err != nil {
		shutdownTimeout = 10 * time.Second
	}

	var tasks []api.Task
	if cfg.References.Watch {
		switch cfg.References.Source {
		case service.SourceYAML, service.SourceFASTA:
			w, err := watch.New(cfg.References.Path, store, logger)
			if err != nil {
				return fmt.Errorf("failed to watch catalogue: %w", err)
			}
			tasks = append(tasks, w.Run)
		default:
			logger.Warn("references.watch ignored for non-file source",
				zap.String("source", cfg.References.Source))
		}
	}

	logger.Info("CORS enabled", zap.Strings("origins", cfg.Server.AllowedOrigins))
	return api.Serve(ctx, srv, shutdownTimeout, logger, tasks...)
}
