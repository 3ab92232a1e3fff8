package crossword

import (
	"log/slog"
	"math/rand/v2"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/at-ishikawa/crossword/internal/wordpool"
)

const (
	DefaultMaxAttempts            = 35
	DefaultMaxConsecutiveFailures = 15
	// goodEnoughRatio of the target word count stops the attempts early.
	goodEnoughRatio = 0.75
)

// Options configures generation.
type Options struct {
	MaxAttempts            int
	MaxConsecutiveFailures int
	Seed                   int64 // 0 = random
	// Logger receives per-attempt debug records. nil means slog.Default().
	Logger *slog.Logger
}

func DefaultOptions() Options {
	return Options{
		MaxAttempts:            DefaultMaxAttempts,
		MaxConsecutiveFailures: DefaultMaxConsecutiveFailures,
	}
}

// Generator builds crosswords from a fixed word table.
// It holds no mutable state and is safe for concurrent use.
type Generator struct {
	entries []wordpool.WordEntry
	opts    Options
}

// New creates a Generator over a normalized copy of entries.
// Non-positive bounds in opts fall back to the defaults.
func New(entries []wordpool.WordEntry, opts Options) *Generator {
	normalized := make([]wordpool.WordEntry, 0, len(entries))
	for _, e := range entries {
		e = wordpool.Normalize(e)
		if e.Word == "" {
			continue
		}
		normalized = append(normalized, e)
	}

	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	if opts.MaxConsecutiveFailures <= 0 {
		opts.MaxConsecutiveFailures = DefaultMaxConsecutiveFailures
	}
	return &Generator{entries: normalized, opts: opts}
}

var defaultGenerator = sync.OnceValue(func() *Generator {
	return New(wordpool.MustDefault(), DefaultOptions())
})

// Generate builds a crossword for level from the bundled word table with default options.
func Generate(level wordpool.Level) *Result {
	return defaultGenerator().Generate(level)
}

func (g *Generator) logger() *slog.Logger {
	if g.opts.Logger != nil {
		return g.opts.Logger
	}
	return slog.Default()
}

// Generate builds a crossword for level. Invalid levels are clamped.
// It never fails: when nothing can be placed the result is an all-black grid with no words.
func (g *Generator) Generate(level wordpool.Level) *Result {
	return g.generate(level, g.opts.Seed)
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}

func (g *Generator) generate(level wordpool.Level, seed int64) *Result {
	start := time.Now()
	level = level.Clamp()
	size := GridSize(level)
	target := TargetWordCount(level)
	pool := wordpool.Select(g.entries, level)
	rng := newRand(seed)
	logger := g.logger()

	best := &Result{
		Level:       level,
		Grid:        NewGrid(size),
		PlacedWords: []PlacedWord{},
	}
	for attempt := 1; attempt <= g.opts.MaxAttempts; attempt++ {
		grid, placed := g.attempt(rng, pool, size, target)
		logger.Debug("crossword attempt finished",
			"level", level,
			"attempt", attempt,
			"placed", len(placed),
			"target", target,
		)

		best.Stats.Attempts = attempt
		if len(placed) > len(best.PlacedWords) {
			best.Grid = grid.Clone()
			best.PlacedWords = slices.Clone(placed)
			best.Stats.BestAttempt = attempt
		}
		if float64(len(best.PlacedWords)) >= float64(target)*goodEnoughRatio {
			break
		}
	}
	best.Stats.Duration = time.Since(start)
	return best
}

// attempt runs one randomized placement pass over the pool.
func (g *Generator) attempt(rng *rand.Rand, pool []wordpool.WordEntry, size, target int) (Grid, []PlacedWord) {
	grid := NewGrid(size)
	placed := []PlacedWord{}
	if len(pool) == 0 {
		return grid, placed
	}

	order := slices.Clone(pool)
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	sort.SliceStable(order, func(i, j int) bool {
		vi, vj := vowelCount(order[i].Word), vowelCount(order[j].Word)
		if vi != vj {
			return vi > vj
		}
		return order[i].Length < order[j].Length
	})

	first := order[0]
	row, col := size/2, (size-first.Length)/2
	if !grid.PlaceWord(first.Word, row, col, Horizontal, 1) {
		return grid, placed
	}
	placed = append(placed, newPlacedWord(1, first, row, col, Horizontal))

	consecutiveFailures := 0
	for i := 1; i < len(order) && len(placed) < target; i++ {
		if consecutiveFailures >= g.opts.MaxConsecutiveFailures {
			break
		}

		candidate := order[i]
		best, ok := bestPlacement(grid, candidate.Word, i, placed)
		if !ok {
			consecutiveFailures++
			continue
		}

		id := len(placed) + 1
		grid.PlaceWord(candidate.Word, best.row, best.col, best.direction, id)
		placed = append(placed, newPlacedWord(id, candidate, best.row, best.col, best.direction))
		consecutiveFailures = 0
	}
	return grid, placed
}

func newPlacedWord(id int, entry wordpool.WordEntry, row, col int, dir Direction) PlacedWord {
	return PlacedWord{
		ID:        id,
		Word:      entry.Word,
		Clue:      entry.Clue,
		StartRow:  row,
		StartCol:  col,
		Direction: dir,
		Length:    entry.Length,
	}
}
