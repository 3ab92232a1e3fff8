package puzzle

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/crossword/internal/crossword"
	"github.com/at-ishikawa/crossword/internal/wordpool"
)

// puzzleRow is the puzzles table layout. Grid, placed words and stats are JSON documents.
// Stats is NULL for puzzles stored before the column existed.
type puzzleRow struct {
	ID          string    `db:"id"`
	Level       int       `db:"level"`
	Grid        []byte    `db:"grid"`
	PlacedWords []byte    `db:"placed_words"`
	Stats       []byte    `db:"stats"`
	CreatedAt   time.Time `db:"created_at"`
}

const puzzleColumns = "id, level, grid, placed_words, stats, created_at"

func toRow(p *Puzzle) (puzzleRow, error) {
	grid, err := json.Marshal(p.Grid)
	if err != nil {
		return puzzleRow{}, fmt.Errorf("json.Marshal(grid) > %w", err)
	}
	words, err := json.Marshal(p.PlacedWords)
	if err != nil {
		return puzzleRow{}, fmt.Errorf("json.Marshal(placed_words) > %w", err)
	}
	stats, err := json.Marshal(p.Stats)
	if err != nil {
		return puzzleRow{}, fmt.Errorf("json.Marshal(stats) > %w", err)
	}
	return puzzleRow{
		ID:          p.ID.String(),
		Level:       int(p.Level),
		Grid:        grid,
		PlacedWords: words,
		Stats:       stats,
		CreatedAt:   p.CreatedAt,
	}, nil
}

func (row puzzleRow) toPuzzle() (*Puzzle, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, fmt.Errorf("uuid.Parse(%s) > %w", row.ID, err)
	}
	p := &Puzzle{
		ID:        id,
		Result:    crossword.Result{Level: wordpool.Level(row.Level)},
		CreatedAt: row.CreatedAt,
	}
	if err := json.Unmarshal(row.Grid, &p.Grid); err != nil {
		return nil, fmt.Errorf("json.Unmarshal(grid of %s) > %w", row.ID, err)
	}
	if err := json.Unmarshal(row.PlacedWords, &p.PlacedWords); err != nil {
		return nil, fmt.Errorf("json.Unmarshal(placed_words of %s) > %w", row.ID, err)
	}
	if len(row.Stats) > 0 {
		if err := json.Unmarshal(row.Stats, &p.Stats); err != nil {
			return nil, fmt.Errorf("json.Unmarshal(stats of %s) > %w", row.ID, err)
		}
	}
	if p.PlacedWords == nil {
		p.PlacedWords = []crossword.PlacedWord{}
	}
	return p, nil
}

// DBRepository implements Repository using MySQL or SQLite.
type DBRepository struct {
	db *sqlx.DB
}

func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

func (r *DBRepository) Create(ctx context.Context, p *Puzzle) error {
	row, err := toRow(p)
	if err != nil {
		return err
	}
	query := "INSERT INTO puzzles (" + puzzleColumns + ") VALUES (:id, :level, :grid, :placed_words, :stats, :created_at)"
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("db.NamedExecContext(puzzles) > %w", err)
	}
	return nil
}

func (r *DBRepository) FindByID(ctx context.Context, id uuid.UUID) (*Puzzle, error) {
	var row puzzleRow
	err := r.db.GetContext(ctx, &row, r.db.Rebind("SELECT "+puzzleColumns+" FROM puzzles WHERE id = ?"), id.String())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(puzzle) > %w", err)
	}
	return row.toPuzzle()
}

func (r *DBRepository) List(ctx context.Context, limit int) ([]Puzzle, error) {
	query := "SELECT " + puzzleColumns + " FROM puzzles ORDER BY created_at DESC, id"
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	var rows []puzzleRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("db.SelectContext(puzzles) > %w", err)
	}

	puzzles := make([]Puzzle, 0, len(rows))
	for _, row := range rows {
		p, err := row.toPuzzle()
		if err != nil {
			return nil, err
		}
		puzzles = append(puzzles, *p)
	}
	return puzzles, nil
}

// NewRepository returns the database repository when db is set and the in-memory one otherwise.
func NewRepository(db *sqlx.DB) Repository {
	if db == nil {
		return NewMemoryRepository()
	}
	return NewDBRepository(db)
}

var (
	_ Repository = (*MemoryRepository)(nil)
	_ Repository = (*DBRepository)(nil)
)
