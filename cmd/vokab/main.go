// Command vokab serves the Vokab dictionary API.
//
//	@title			Vokab API v1
//	@version		1.0.0
//	@description	The API for Vokab project
//	@BasePath		/words
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lehmann314159/vokab/internal/config"
	"github.com/lehmann314159/vokab/internal/logging"
	"github.com/lehmann314159/vokab/internal/repository"
)

var rootCmd = &cobra.Command{
	Use:           "vokab",
	Short:         "Vokab dictionary API",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app holds what every subcommand needs
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	store  repository.Store
}

// setup loads config, builds the logger and opens the store
func setup(ctx context.Context) (*app, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	store, err := repository.Open(ctx, repository.Options{
		URL:        cfg.Database.URL,
		Database:   cfg.Database.Name,
		Collection: cfg.Database.Collection,
		Timeout:    cfg.Database.Timeout,
	}, logger)
	if err != nil {
		logger.Sync()
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.Timeout)
		defer cancel()
		if err := store.Close(ctx); err != nil {
			logger.Warn("Failed to close store", zap.Error(err))
		}
		logger.Sync()
	}

	return &app{cfg: cfg, logger: logger, store: store}, cleanup, nil
}
