// Package puzzle stores generated crosswords so they can be served and checked later.
package puzzle

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/at-ishikawa/crossword/internal/crossword"
)

//go:generate mockgen -source=puzzle.go -destination=../mocks/puzzle/mock_repository.go -package=mock_puzzle

var ErrNotFound = errors.New("puzzle not found")

// Puzzle is a stored crossword.
type Puzzle struct {
	ID uuid.UUID `json:"id"`
	crossword.Result
	CreatedAt time.Time `json:"createdAt"`
}

// New wraps a generated result with a fresh id.
func New(result *crossword.Result, now time.Time) *Puzzle {
	return &Puzzle{
		ID:        uuid.New(),
		Result:    *result,
		CreatedAt: now.UTC().Truncate(time.Second),
	}
}

// Repository defines operations for storing puzzles.
type Repository interface {
	Create(ctx context.Context, p *Puzzle) error
	FindByID(ctx context.Context, id uuid.UUID) (*Puzzle, error)
	// List returns up to limit puzzles, newest first. A non-positive limit returns all of them.
	List(ctx context.Context, limit int) ([]Puzzle, error)
}
