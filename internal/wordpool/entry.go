package wordpool

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// WordEntry is a crossword answer with its clue.
type WordEntry struct {
	Word   string `yaml:"word" db:"word" json:"word"`
	Clue   string `yaml:"clue,omitempty" db:"clue" json:"clue"`
	Length int    `yaml:"-" db:"length" json:"length"`
	Level  Level  `yaml:"level,omitempty" db:"level" json:"level"`
}

// Normalize uppercases the word, drops anything that is not a letter,
// and recomputes Length.
func Normalize(entry WordEntry) WordEntry {
	word := strings.Map(func(r rune) rune {
		if !unicode.IsLetter(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, entry.Word)

	entry.Word = word
	entry.Clue = strings.TrimSpace(entry.Clue)
	entry.Length = utf8.RuneCountInString(word)
	return entry
}

// HasClue reports whether the entry carries a usable clue.
func (e WordEntry) HasClue() bool {
	return strings.TrimSpace(e.Clue) != ""
}
