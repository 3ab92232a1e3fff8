// Package crossword generates crossword grids from a word pool.
//
// A Generator runs a bounded number of randomized placement attempts for a level
// and keeps the attempt that placed the most words. Words are laid out
// perpendicular to words already on the grid, crossing them on shared letters.
package crossword

import (
	"time"

	"github.com/at-ishikawa/crossword/internal/wordpool"
)

type Direction string

const (
	Horizontal Direction = "horizontal"
	Vertical   Direction = "vertical"
)

func (d Direction) Valid() bool {
	return d == Horizontal || d == Vertical
}

// Perpendicular returns the other direction.
func (d Direction) Perpendicular() Direction {
	if d == Horizontal {
		return Vertical
	}
	return Horizontal
}

// step returns the row and column delta between consecutive letters.
func (d Direction) step() (int, int) {
	if d == Vertical {
		return 1, 0
	}
	return 0, 1
}

// Cell is one square of the grid.
// WordNumber is zero and ArrowDirection empty unless a word starts on the cell.
type Cell struct {
	Letter         string    `json:"letter"`
	CorrectLetter  string    `json:"correctLetter"`
	IsBlack        bool      `json:"isBlack"`
	IsEditable     bool      `json:"isEditable"`
	HasArrow       bool      `json:"hasArrow"`
	ArrowDirection Direction `json:"arrowDirection,omitempty"`
	WordNumber     int       `json:"wordNumber,omitempty"`
	WordIDs        []int     `json:"wordIds"`
}

// PlacedWord is a word on the grid. IDs start at 1 and follow placement order.
type PlacedWord struct {
	ID        int       `json:"id"`
	Word      string    `json:"word"`
	Clue      string    `json:"clue"`
	StartRow  int       `json:"startRow"`
	StartCol  int       `json:"startCol"`
	Direction Direction `json:"direction"`
	Length    int       `json:"length"`
}

// Position is a row and column on the grid.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Cells returns the positions the word covers, from its first letter.
// It is empty for a non-positive length.
func (w PlacedWord) Cells() []Position {
	if w.Length < 1 {
		return nil
	}
	dr, dc := w.Direction.step()
	cells := make([]Position, w.Length)
	for i := range cells {
		cells[i] = Position{Row: w.StartRow + dr*i, Col: w.StartCol + dc*i}
	}
	return cells
}

type Stats struct {
	Attempts    int           `json:"attempts"`
	BestAttempt int           `json:"bestAttempt"`
	Duration    time.Duration `json:"duration"`
}

// Result is the best grid found for a level.
// PlacedWords is never nil; it is empty when no word could be placed.
type Result struct {
	Level       wordpool.Level `json:"level"`
	Grid        Grid           `json:"grid"`
	PlacedWords []PlacedWord   `json:"placedWords"`
	Stats       Stats          `json:"stats"`
}

// TargetReached reports whether the result has at least the level's target word count.
func (r *Result) TargetReached() bool {
	return len(r.PlacedWords) >= TargetWordCount(r.Level)
}
