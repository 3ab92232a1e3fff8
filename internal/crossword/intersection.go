package crossword

import (
	"math"
	"sort"
)

// IntersectionPoint is a pair of positions where two words share a letter.
// Word1Index and Word2Index identify the words when the caller compares many of them.
type IntersectionPoint struct {
	Word1Index int     `json:"word1Index"`
	Word2Index int     `json:"word2Index"`
	Pos1       int     `json:"pos1"`
	Pos2       int     `json:"pos2"`
	Score      float64 `json:"score"`
}

// FindIntersections returns every (i, j) with word1[i] == word2[j], best score first.
// Crossings near the middle of both words score higher; the score is never below 1.
func FindIntersections(word1, word2 string) []IntersectionPoint {
	letters1 := []rune(word1)
	letters2 := []rune(word2)
	mid1 := float64(len(letters1)) / 2
	mid2 := float64(len(letters2)) / 2

	var points []IntersectionPoint
	for i, a := range letters1 {
		for j, b := range letters2 {
			if a != b {
				continue
			}
			offCenter := math.Abs(float64(i)-mid1) + math.Abs(float64(j)-mid2)
			points = append(points, IntersectionPoint{
				Pos1:  i,
				Pos2:  j,
				Score: math.Max(1, 10-offCenter),
			})
		}
	}

	sort.SliceStable(points, func(a, b int) bool {
		return points[a].Score > points[b].Score
	})
	return points
}
