package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/at-ishikawa/crossword/internal/bootstrap"
	"github.com/at-ishikawa/crossword/internal/config"
	"github.com/at-ishikawa/crossword/internal/crossword"
	"github.com/at-ishikawa/crossword/internal/database"
	"github.com/at-ishikawa/crossword/internal/puzzle"
	"github.com/at-ishikawa/crossword/internal/server"
	"github.com/at-ishikawa/crossword/internal/wordpool"
)

var configFile string

func main() {
	rootCmd := &cobra.Command{
		Use:           "crossword-server",
		Short:         "Crossword puzzle HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)
	app := bootstrap.New()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	var db *sqlx.DB
	if cfg.Server.Storage == config.StorageDatabase || cfg.Words.Source == config.WordSourceDatabase {
		db, err = database.Open(cfg.Database)
		if err != nil {
			return fmt.Errorf("database.Open() > %w", err)
		}
		app.AddShutdownHook(func(context.Context) error {
			return db.Close()
		})
	}

	source, err := wordpool.NewSource(cfg.Words, db)
	if err != nil {
		return fmt.Errorf("wordpool.NewSource() > %w", err)
	}
	entries, err := source.Entries(ctx)
	if err != nil {
		return fmt.Errorf("source.Entries() > %w", err)
	}
	counts := wordpool.CountByLevel(entries)
	for _, l := range wordpool.Levels() {
		if counts[l] == 0 {
			logger.Warn("no words for level", "level", l)
		}
	}

	var repository puzzle.Repository = puzzle.NewMemoryRepository()
	if cfg.Server.Storage == config.StorageDatabase {
		repository = puzzle.NewRepository(db)
	}

	generator := crossword.New(entries, generatorOptions(cfg.Generator, logger))
	handler := server.NewServer(repository, generator, cfg.Server, logger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}
	app.AddShutdownHook(srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		logger.Info("starting server", "addr", srv.Addr, "storage", cfg.Server.Storage, "words", len(entries))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}

// generatorOptions builds the server's generator options. A configured seed is ignored
// so that every request gets a new puzzle.
func generatorOptions(cfg config.GeneratorConfig, logger *slog.Logger) crossword.Options {
	if cfg.Seed != 0 {
		logger.Warn("generator.seed is ignored by the server", "seed", cfg.Seed)
	}
	return crossword.Options{
		MaxAttempts:            cfg.MaxAttempts,
		MaxConsecutiveFailures: cfg.MaxConsecutiveFailures,
		Logger:                 logger,
	}
}
