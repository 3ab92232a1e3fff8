package crossword

import (
	"sort"
	"strconv"
	"strings"
)

// ClueLine is one numbered clue of a puzzle.
type ClueLine struct {
	Number int    `json:"number"`
	Clue   string `json:"clue"`
	Length int    `json:"length"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Answer string `json:"-"`
}

type ClueList struct {
	Across []ClueLine `json:"across"`
	Down   []ClueLine `json:"down"`
}

// Clues splits the placed words into across and down clues ordered by number.
// A word's number is its id, the same number shown on its first cell.
func (r *Result) Clues() ClueList {
	list := ClueList{Across: []ClueLine{}, Down: []ClueLine{}}
	for _, w := range r.PlacedWords {
		line := ClueLine{
			Number: w.ID,
			Clue:   w.Clue,
			Length: w.Length,
			Row:    w.StartRow,
			Col:    w.StartCol,
			Answer: w.Word,
		}
		if w.Direction == Horizontal {
			list.Across = append(list.Across, line)
		} else {
			list.Down = append(list.Down, line)
		}
	}

	byNumber := func(lines []ClueLine) {
		sort.Slice(lines, func(i, j int) bool { return lines[i].Number < lines[j].Number })
	}
	byNumber(list.Across)
	byNumber(list.Down)
	return list
}

// Word returns the placed word with the given id.
func (r *Result) Word(id int) (PlacedWord, bool) {
	if id < 1 || id > len(r.PlacedWords) || r.PlacedWords[id-1].ID != id {
		for _, w := range r.PlacedWords {
			if w.ID == id {
				return w, true
			}
		}
		return PlacedWord{}, false
	}
	return r.PlacedWords[id-1], true
}

// StartLabels maps the first cell of every placed word to the numbers starting there,
// joined with "/" when words share a first cell. A cell's WordNumber only keeps the
// last word placed on it, so grids are labelled from the placed words instead.
func (r *Result) StartLabels() map[Position]string {
	ids := make(map[Position][]string)
	for _, w := range r.PlacedWords {
		p := Position{Row: w.StartRow, Col: w.StartCol}
		ids[p] = append(ids[p], strconv.Itoa(w.ID))
	}
	labels := make(map[Position]string, len(ids))
	for p, numbers := range ids {
		labels[p] = strings.Join(numbers, "/")
	}
	return labels
}
