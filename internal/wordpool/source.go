package wordpool

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/crossword/internal/config"
)

// Source provides the word table the generator picks from.
type Source interface {
	Entries(ctx context.Context) ([]WordEntry, error)
}

var (
	_ Source = EmbeddedSource{}
	_ Source = (*YAMLRepository)(nil)
	_ Source = (*DBWordRepository)(nil)
)

// NewSource returns the Source named by cfg.Source. db is only used by the database source.
func NewSource(cfg config.WordsConfig, db *sqlx.DB) (Source, error) {
	switch cfg.Source {
	case config.WordSourceEmbedded, "":
		return EmbeddedSource{}, nil
	case config.WordSourceYAML:
		return NewYAMLRepository(cfg.Directories, cfg.Files), nil
	case config.WordSourceDatabase:
		if db == nil {
			return nil, fmt.Errorf("word source %q needs a database connection", cfg.Source)
		}
		return NewDBWordRepository(db), nil
	default:
		return nil, fmt.Errorf("unknown word source %q", cfg.Source)
	}
}
