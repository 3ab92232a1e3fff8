package crossword

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	ErrOutOfBounds   = errors.New("position out of bounds")
	ErrBlackCell     = errors.New("cell is black")
	ErrInvalidLetter = errors.New("invalid letter")
	ErrShapeMismatch = errors.New("letters do not match the grid shape")
)

// SetLetter stores the player's letter for a cell. An empty letter clears it.
func (g Grid) SetLetter(row, col int, letter string) error {
	if !g.inBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}
	cell := &g[row][col]
	if cell.IsBlack || !cell.IsEditable {
		return fmt.Errorf("%w: (%d,%d)", ErrBlackCell, row, col)
	}

	letter = strings.ToUpper(strings.TrimSpace(letter))
	if letter != "" {
		r, _ := utf8.DecodeRuneInString(letter)
		if utf8.RuneCountInString(letter) != 1 || !unicode.IsLetter(r) {
			return fmt.Errorf("%w: %q", ErrInvalidLetter, letter)
		}
	}
	cell.Letter = letter
	return nil
}

// Fill sets every open cell from letters, which must have the grid's shape.
// Values for black cells are ignored.
func (g Grid) Fill(letters [][]string) error {
	if len(letters) != len(g) {
		return fmt.Errorf("%w: %d rows, want %d", ErrShapeMismatch, len(letters), len(g))
	}
	for r, row := range g {
		if len(letters[r]) != len(row) {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrShapeMismatch, r, len(letters[r]), len(row))
		}
	}

	for r, row := range g {
		for c, cell := range row {
			if cell.IsBlack {
				continue
			}
			if err := g.SetLetter(r, c, letters[r][c]); err != nil {
				return err
			}
		}
	}
	return nil
}

// CheckResult compares the player's letters with the solution.
type CheckResult struct {
	Correct       int        `json:"correct"`
	Wrong         []Position `json:"wrong"`
	Empty         int        `json:"empty"`
	Total         int        `json:"total"`
	SolvedWordIDs []int      `json:"solvedWordIds"`
	Complete      bool       `json:"complete"`
}

// Check compares each open cell's letter with its correct letter.
// A word is solved when all of its cells are correct.
func (g Grid) Check() CheckResult {
	result := CheckResult{
		Wrong:         []Position{},
		SolvedWordIDs: []int{},
	}
	unsolved := make(map[int]bool)
	seen := make(map[int]bool)

	for r, row := range g {
		for c, cell := range row {
			if cell.IsBlack {
				continue
			}
			result.Total++

			correct := cell.Letter == cell.CorrectLetter
			switch {
			case cell.Letter == "":
				result.Empty++
			case correct:
				result.Correct++
			default:
				result.Wrong = append(result.Wrong, Position{Row: r, Col: c})
			}

			for _, id := range cell.WordIDs {
				seen[id] = true
				if !correct {
					unsolved[id] = true
				}
			}
		}
	}

	for id := range seen {
		if !unsolved[id] {
			result.SolvedWordIDs = append(result.SolvedWordIDs, id)
		}
	}
	sort.Ints(result.SolvedWordIDs)
	result.Complete = result.Total > 0 && result.Correct == result.Total
	return result
}

// Reveal fills the cells of word with their correct letters.
func (g Grid) Reveal(word PlacedWord) error {
	for _, p := range word.Cells() {
		if !g.inBounds(p.Row, p.Col) {
			return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, p.Row, p.Col)
		}
		g[p.Row][p.Col].Letter = g[p.Row][p.Col].CorrectLetter
	}
	return nil
}

// ClearLetters removes every player letter.
func (g Grid) ClearLetters() {
	for r := range g {
		for c := range g[r] {
			g[r][c].Letter = ""
		}
	}
}
