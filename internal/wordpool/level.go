// Package wordpool provides the word and clue table crosswords are built from,
// the sources it can be loaded from, and the per-level pool selection.
package wordpool

import (
	"errors"
	"fmt"
)

// Level is a difficulty level between MinLevel and MaxLevel.
type Level int

const (
	MinLevel Level = 1
	MaxLevel Level = 5
)

var ErrInvalidLevel = errors.New("invalid level")

// ParseLevel validates n as a Level.
func ParseLevel(n int) (Level, error) {
	l := Level(n)
	if !l.Valid() {
		return 0, fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidLevel, n, MinLevel, MaxLevel)
	}
	return l, nil
}

func (l Level) Valid() bool {
	return l >= MinLevel && l <= MaxLevel
}

// Clamp returns the nearest valid level.
func (l Level) Clamp() Level {
	return min(max(l, MinLevel), MaxLevel)
}

// Levels returns every valid level in ascending order.
func Levels() []Level {
	levels := make([]Level, 0, MaxLevel-MinLevel+1)
	for l := MinLevel; l <= MaxLevel; l++ {
		levels = append(levels, l)
	}
	return levels
}
