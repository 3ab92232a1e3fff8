package crossword

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_Clues(t *testing.T) {
	result := catTapResult(t)
	result.PlacedWords = append(result.PlacedWords,
		PlacedWord{ID: 3, Word: "PEN", Clue: "Used for writing", StartRow: 4, StartCol: 3, Direction: Horizontal, Length: 3},
	)

	got := result.Clues()
	assert.Equal(t, []ClueLine{
		{Number: 1, Clue: "Pet that purrs", Length: 3, Row: 2, Col: 1, Answer: "CAT"},
		{Number: 3, Clue: "Used for writing", Length: 3, Row: 4, Col: 3, Answer: "PEN"},
	}, got.Across)
	assert.Equal(t, []ClueLine{
		{Number: 2, Clue: "Water comes out of it", Length: 3, Row: 2, Col: 3, Answer: "TAP"},
	}, got.Down)

	empty := (&Result{}).Clues()
	assert.NotNil(t, empty.Across)
	assert.NotNil(t, empty.Down)
}

func TestResult_Word(t *testing.T) {
	result := catTapResult(t)

	w, ok := result.Word(2)
	assert.True(t, ok)
	assert.Equal(t, "TAP", w.Word)

	_, ok = result.Word(0)
	assert.False(t, ok)
	_, ok = result.Word(3)
	assert.False(t, ok)
}

func TestResult_StartLabels(t *testing.T) {
	assert.Equal(t, map[Position]string{
		{Row: 2, Col: 1}: "1",
		{Row: 2, Col: 3}: "2",
	}, catTapResult(t).StartLabels())

	grid := NewGrid(5)
	grid.PlaceWord("CAT", 2, 1, Horizontal, 1)
	grid.PlaceWord("CUP", 2, 1, Vertical, 2)
	shared := &Result{
		Level: 1,
		Grid:  grid,
		PlacedWords: []PlacedWord{
			{ID: 1, Word: "CAT", StartRow: 2, StartCol: 1, Direction: Horizontal, Length: 3},
			{ID: 2, Word: "CUP", StartRow: 2, StartCol: 1, Direction: Vertical, Length: 3},
		},
	}
	assert.Equal(t, 2, grid[2][1].WordNumber)
	assert.Equal(t, map[Position]string{{Row: 2, Col: 1}: "1/2"}, shared.StartLabels())
	assert.Empty(t, (&Result{}).StartLabels())
}
