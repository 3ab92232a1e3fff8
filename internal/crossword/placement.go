package crossword

import (
	"math"
	"strings"
)

// Placement score weights.
const (
	overlapWeight  = 5
	densityWeight  = 3
	vowelWeight    = 2
	distanceWeight = 0.1
)

type placement struct {
	row          int
	col          int
	direction    Direction
	score        float64
	intersection IntersectionPoint
}

func vowelCount(word string) int {
	count := 0
	for _, r := range word {
		if strings.ContainsRune("AEIOU", r) {
			count++
		}
	}
	return count
}

// distanceFromCenter is the distance between the middle of the word and the middle of the grid.
func distanceFromCenter(size, row, col int, dir Direction, length int) float64 {
	dr, dc := dir.step()
	half := float64(length-1) / 2
	midRow := float64(row) + float64(dr)*half
	midCol := float64(col) + float64(dc)*half
	center := float64(size-1) / 2
	return math.Hypot(midRow-center, midCol-center)
}

// crossingStart returns where a word crossing placed at the intersection must start.
// The crossing word runs perpendicular to placed, with its letter pos2 on placed's letter pos1.
func crossingStart(placed PlacedWord, point IntersectionPoint) (int, int, Direction) {
	if placed.Direction == Horizontal {
		return placed.StartRow - point.Pos2, placed.StartCol + point.Pos1, Vertical
	}
	return placed.StartRow + point.Pos1, placed.StartCol - point.Pos2, Horizontal
}

// bestPlacement scores every valid placement of candidate crossing any placed word
// and returns the highest one. Placements that would add no new cell are ignored.
func bestPlacement(grid Grid, candidate string, candidateIndex int, placed []PlacedWord) (placement, bool) {
	length := len([]rune(candidate))
	size := grid.Size()
	total := float64(grid.totalCells())
	open := grid.openCells()
	vowels := float64(vowelCount(candidate))

	var best placement
	found := false
	for k, pw := range placed {
		for _, point := range FindIntersections(pw.Word, candidate) {
			point.Word1Index = k
			point.Word2Index = candidateIndex

			row, col, dir := crossingStart(pw, point)
			if !grid.IsValidPlacement(candidate, row, col, dir) {
				continue
			}
			overlap := grid.overlapCount(candidate, row, col, dir)
			if overlap >= length {
				continue
			}

			densityAfter := float64(open+length-overlap) / total
			score := point.Score +
				float64(overlap)*overlapWeight +
				densityAfter*densityWeight +
				vowels*vowelWeight -
				distanceFromCenter(size, row, col, dir, length)*distanceWeight
			if !found || score > best.score {
				best = placement{row: row, col: col, direction: dir, score: score, intersection: point}
				found = true
			}
		}
	}
	return best, found
}
