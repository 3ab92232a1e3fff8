package crossword

import (
	"errors"
	"fmt"
	"slices"
)

var ErrNilResult = errors.New("nil result")

// Verify checks that a result is a consistent crossword: the grid has the level's size,
// word ids run 1..n, every word lies inside the grid on cells carrying its letters and id,
// the first word is horizontal on the middle row, and every open cell belongs to a word.
// All violations are reported together.
func Verify(result *Result) error {
	if result == nil {
		return ErrNilResult
	}

	var errs []error
	grid := result.Grid
	size := GridSize(result.Level)
	if grid.Size() != size {
		errs = append(errs, fmt.Errorf("grid has %d rows, want %d", grid.Size(), size))
	}
	for r, row := range grid {
		if len(row) != grid.Size() {
			errs = append(errs, fmt.Errorf("row %d has %d cells, want %d", r, len(row), grid.Size()))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	covered := make(map[Position][]int)
	for i, w := range result.PlacedWords {
		if w.ID != i+1 {
			errs = append(errs, fmt.Errorf("word %q has id %d, want %d", w.Word, w.ID, i+1))
		}
		errs = append(errs, verifyWord(grid, w)...)
		if w.Length > grid.Size() {
			continue
		}
		for _, p := range w.Cells() {
			covered[p] = append(covered[p], w.ID)
		}
	}

	if len(result.PlacedWords) > 0 {
		first := result.PlacedWords[0]
		if first.Direction != Horizontal || first.StartRow != size/2 {
			errs = append(errs, fmt.Errorf("first word %q is %s at row %d, want horizontal at row %d", first.Word, first.Direction, first.StartRow, size/2))
		}
	}

	for r, row := range grid {
		for c, cell := range row {
			ids := covered[Position{Row: r, Col: c}]
			switch {
			case cell.IsBlack && len(ids) > 0:
				errs = append(errs, fmt.Errorf("cell (%d,%d) is black but belongs to words %v", r, c, ids))
			case !cell.IsBlack && len(ids) == 0:
				errs = append(errs, fmt.Errorf("cell (%d,%d) is open but belongs to no word", r, c))
			case !cell.IsBlack && !sameIDs(cell.WordIDs, ids):
				errs = append(errs, fmt.Errorf("cell (%d,%d) lists words %v, want %v", r, c, cell.WordIDs, ids))
			}
		}
	}
	return errors.Join(errs...)
}

func verifyWord(grid Grid, w PlacedWord) []error {
	var errs []error
	letters := []rune(w.Word)
	if len(letters) == 0 || w.Length < 1 {
		return append(errs, fmt.Errorf("word %d %q has length %d, want at least 1", w.ID, w.Word, w.Length))
	}
	if w.Length > grid.Size() {
		return append(errs, fmt.Errorf("word %d %q has length %d, longer than the grid", w.ID, w.Word, w.Length))
	}
	if !grid.inBounds(w.StartRow, w.StartCol) {
		return append(errs, fmt.Errorf("word %d %q starts outside the grid at (%d,%d)", w.ID, w.Word, w.StartRow, w.StartCol))
	}
	if len(letters) != w.Length {
		errs = append(errs, fmt.Errorf("word %d %q has length %d, want %d", w.ID, w.Word, w.Length, len(letters)))
	}
	if !w.Direction.Valid() {
		return append(errs, fmt.Errorf("word %d %q has direction %q", w.ID, w.Word, w.Direction))
	}

	for i, p := range w.Cells() {
		if !grid.inBounds(p.Row, p.Col) {
			return append(errs, fmt.Errorf("word %d %q runs outside the grid at (%d,%d)", w.ID, w.Word, p.Row, p.Col))
		}
		cell := grid[p.Row][p.Col]
		if i < len(letters) && cell.CorrectLetter != string(letters[i]) {
			errs = append(errs, fmt.Errorf("word %d %q expects %q at (%d,%d), cell has %q", w.ID, w.Word, letters[i], p.Row, p.Col, cell.CorrectLetter))
		}
	}

	start := grid[w.StartRow][w.StartCol]
	if !start.HasArrow || start.WordNumber == 0 {
		errs = append(errs, fmt.Errorf("word %d %q has no number on its first cell", w.ID, w.Word))
	}
	return errs
}

func sameIDs(a, b []int) bool {
	a = slices.Sorted(slices.Values(a))
	b = slices.Sorted(slices.Values(b))
	return slices.Equal(a, b)
}
