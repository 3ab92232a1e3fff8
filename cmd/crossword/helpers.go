package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/crossword/internal/clue"
	"github.com/at-ishikawa/crossword/internal/clue/gemini"
	"github.com/at-ishikawa/crossword/internal/clue/openai"
	"github.com/at-ishikawa/crossword/internal/clue/wordsapi"
	"github.com/at-ishikawa/crossword/internal/config"
	"github.com/at-ishikawa/crossword/internal/crossword"
	"github.com/at-ishikawa/crossword/internal/database"
	"github.com/at-ishikawa/crossword/internal/wordpool"
)

const openAIRetryAttempts = 3

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// ensureSQLiteDir creates the directory of a SQLite database file.
func ensureSQLiteDir(cfg config.DatabaseConfig) error {
	if cfg.Driver != config.DriverSQLite || cfg.Path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(cfg.Path), err)
	}
	return nil
}

func openDatabase(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	if err := ensureSQLiteDir(cfg); err != nil {
		return nil, err
	}
	db, err := database.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("database.Open() > %w", err)
	}
	return db, nil
}

// loadWords reads the configured word source. The database is only opened for the database source.
func loadWords(ctx context.Context, cfg *config.Config) ([]wordpool.WordEntry, error) {
	var db *sqlx.DB
	if cfg.Words.Source == config.WordSourceDatabase {
		var err error
		db, err = openDatabase(cfg.Database)
		if err != nil {
			return nil, err
		}
		defer func() { _ = db.Close() }()
	}

	source, err := wordpool.NewSource(cfg.Words, db)
	if err != nil {
		return nil, fmt.Errorf("wordpool.NewSource() > %w", err)
	}
	entries, err := source.Entries(ctx)
	if err != nil {
		return nil, fmt.Errorf("source.Entries() > %w", err)
	}
	slog.Debug("loaded words", "source", cfg.Words.Source, "count", len(entries))
	return entries, nil
}

func newGenerator(cfg *config.Config, entries []wordpool.WordEntry, seed int64) *crossword.Generator {
	if seed == 0 {
		seed = cfg.Generator.Seed
	}
	return crossword.New(entries, crossword.Options{
		MaxAttempts:            cfg.Generator.MaxAttempts,
		MaxConsecutiveFailures: cfg.Generator.MaxConsecutiveFailures,
		Seed:                   seed,
	})
}

// newClueProvider builds the provider named by name, or by the config when name is empty.
// The returned close function releases the provider's resources.
func newClueProvider(ctx context.Context, cfg config.CluesConfig, name string) (clue.Provider, func() error, error) {
	if name == "" {
		name = cfg.Provider
	}
	noop := func() error { return nil }

	switch name {
	case config.ClueProviderOpenAI:
		if cfg.OpenAI.APIKey == "" {
			return nil, nil, fmt.Errorf("OPENAI_API_KEY is not set")
		}
		client := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, openAIRetryAttempts)
		return client, client.Close, nil
	case config.ClueProviderGemini:
		client, err := gemini.NewClient(ctx, cfg.Gemini)
		if err != nil {
			return nil, nil, fmt.Errorf("gemini.NewClient() > %w", err)
		}
		return client, noop, nil
	case config.ClueProviderWordsAPI:
		if cfg.WordsAPI.Key == "" || cfg.WordsAPI.Host == "" {
			return nil, nil, fmt.Errorf("RAPID_API_HOST and RAPID_API_KEY must be set")
		}
		return wordsapi.NewClient(cfg.WordsAPI), noop, nil
	case "":
		return nil, nil, fmt.Errorf("no clue provider configured, set clues.provider or --provider")
	default:
		return nil, nil, fmt.Errorf("unknown clue provider %q", name)
	}
}
