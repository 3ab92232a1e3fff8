package crossword

import (
	"slices"

	"github.com/at-ishikawa/crossword/internal/wordpool"
)

var gridSizes = map[wordpool.Level]int{1: 5, 2: 7, 3: 9, 4: 11, 5: 13}

var targetWordCounts = map[wordpool.Level]int{1: 8, 2: 12, 3: 16, 4: 20, 5: 25}

// GridSize returns the side length of a level's grid. Invalid levels are clamped.
func GridSize(l wordpool.Level) int {
	return gridSizes[l.Clamp()]
}

// TargetWordCount returns how many words the generator aims to place for a level.
// Invalid levels are clamped.
func TargetWordCount(l wordpool.Level) int {
	return targetWordCounts[l.Clamp()]
}

// Grid is a square matrix of cells, indexed [row][col].
type Grid [][]Cell

// NewGrid returns a size x size grid of black, non-editable cells.
func NewGrid(size int) Grid {
	grid := make(Grid, size)
	for r := range grid {
		grid[r] = make([]Cell, size)
		for c := range grid[r] {
			grid[r][c] = Cell{IsBlack: true, WordIDs: []int{}}
		}
	}
	return grid
}

func (g Grid) Size() int {
	return len(g)
}

func (g Grid) inBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < len(g) && col < len(g[row])
}

// IsValidPlacement reports whether word fits on the grid starting at (row, col) in dir
// without disagreeing with a letter already placed. Overlaps on the same letter are allowed.
func (g Grid) IsValidPlacement(word string, row, col int, dir Direction) bool {
	letters := []rune(word)
	if len(letters) == 0 || !dir.Valid() {
		return false
	}

	dr, dc := dir.step()
	last := len(letters) - 1
	if !g.inBounds(row, col) || !g.inBounds(row+dr*last, col+dc*last) {
		return false
	}

	for i, letter := range letters {
		cell := g[row+dr*i][col+dc*i]
		if cell.CorrectLetter != "" && cell.CorrectLetter != string(letter) {
			return false
		}
	}
	return true
}

// PlaceWord writes word onto the grid and marks its first cell with wordID.
// It does nothing and returns false when the placement is not valid.
// A word starting on the first cell of another word takes over its arrow and number.
func (g Grid) PlaceWord(word string, row, col int, dir Direction, wordID int) bool {
	if !g.IsValidPlacement(word, row, col, dir) {
		return false
	}

	dr, dc := dir.step()
	for i, letter := range []rune(word) {
		cell := &g[row+dr*i][col+dc*i]
		cell.CorrectLetter = string(letter)
		cell.IsBlack = false
		cell.IsEditable = true
		if !slices.Contains(cell.WordIDs, wordID) {
			cell.WordIDs = append(cell.WordIDs, wordID)
		}
	}

	start := &g[row][col]
	start.HasArrow = true
	start.ArrowDirection = dir
	start.WordNumber = wordID
	return true
}

// overlapCount returns how many cells of the placement already hold a letter.
// The placement must be valid.
func (g Grid) overlapCount(word string, row, col int, dir Direction) int {
	dr, dc := dir.step()
	count := 0
	for i := range []rune(word) {
		if g[row+dr*i][col+dc*i].CorrectLetter != "" {
			count++
		}
	}
	return count
}

func (g Grid) openCells() int {
	count := 0
	for _, row := range g {
		for _, cell := range row {
			if !cell.IsBlack {
				count++
			}
		}
	}
	return count
}

func (g Grid) totalCells() int {
	total := 0
	for _, row := range g {
		total += len(row)
	}
	return total
}

// Density returns the fraction of cells that are not black.
func (g Grid) Density() float64 {
	total := g.totalCells()
	if total == 0 {
		return 0
	}
	return float64(g.openCells()) / float64(total)
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	clone := make(Grid, len(g))
	for r, row := range g {
		clone[r] = make([]Cell, len(row))
		for c, cell := range row {
			cell.WordIDs = slices.Clone(cell.WordIDs)
			if cell.WordIDs == nil {
				cell.WordIDs = []int{}
			}
			clone[r][c] = cell
		}
	}
	return clone
}
