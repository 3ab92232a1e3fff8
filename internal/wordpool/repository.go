package wordpool

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/crossword/internal/database"
)

//go:generate mockgen -source=repository.go -destination=../mocks/wordpool/mock_repository.go -package=mock_wordpool

// WordRepository defines operations for managing word entries.
type WordRepository interface {
	FindAll(ctx context.Context) ([]WordEntry, error)
	FindByLevels(ctx context.Context, levels []Level) ([]WordEntry, error)
	BatchUpsert(ctx context.Context, entries []WordEntry) error
}

// upsertBatchSize bounds the number of rows in one INSERT statement.
const upsertBatchSize = 500

var wordColumns = []string{"word", "clue", "length", "level"}

// DBWordRepository implements WordRepository using MySQL or SQLite.
type DBWordRepository struct {
	db *sqlx.DB
}

// NewDBWordRepository creates a new DBWordRepository.
func NewDBWordRepository(db *sqlx.DB) *DBWordRepository {
	return &DBWordRepository{db: db}
}

// FindAll returns all word entries ordered by level and word.
func (r *DBWordRepository) FindAll(ctx context.Context) ([]WordEntry, error) {
	var entries []WordEntry
	if err := r.db.SelectContext(ctx, &entries, "SELECT word, clue, length, level FROM word_entries ORDER BY level, word"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(word_entries) > %w", err)
	}
	return entries, nil
}

// FindByLevels returns the word entries of the given levels.
func (r *DBWordRepository) FindByLevels(ctx context.Context, levels []Level) ([]WordEntry, error) {
	if len(levels) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In("SELECT word, clue, length, level FROM word_entries WHERE level IN (?) ORDER BY level, word", levels)
	if err != nil {
		return nil, fmt.Errorf("sqlx.In() > %w", err)
	}

	var entries []WordEntry
	if err := r.db.SelectContext(ctx, &entries, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("db.SelectContext(word_entries by levels) > %w", err)
	}
	return entries, nil
}

// BatchUpsert inserts entries, updating the clue and level of words that already exist.
func (r *DBWordRepository) BatchUpsert(ctx context.Context, entries []WordEntry) error {
	if len(entries) == 0 {
		return nil
	}

	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		for start := 0; start < len(entries); start += upsertBatchSize {
			batch := entries[start:min(start+upsertBatchSize, len(entries))]
			query := database.BuildMultiRowInsert("word_entries", wordColumns, len(batch)) + r.upsertClause()

			args := make([]any, 0, len(batch)*len(wordColumns))
			for _, e := range batch {
				args = append(args, e.Word, e.Clue, e.Length, e.Level)
			}
			if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
				return fmt.Errorf("upsert word_entries: %w", err)
			}
		}
		return nil
	})
}

func (r *DBWordRepository) upsertClause() string {
	if r.db.DriverName() == "sqlite" {
		return " ON CONFLICT(word) DO UPDATE SET clue = excluded.clue, length = excluded.length, level = excluded.level, updated_at = CURRENT_TIMESTAMP"
	}
	return " ON DUPLICATE KEY UPDATE clue = VALUES(clue), length = VALUES(length), level = VALUES(level)"
}

// Entries implements Source.
func (r *DBWordRepository) Entries(ctx context.Context) ([]WordEntry, error) {
	return r.FindAll(ctx)
}
