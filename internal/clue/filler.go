package clue

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/at-ishikawa/crossword/internal/wordpool"
)

const defaultWorkers = 4

// FillResult tracks counts for a fill run.
type FillResult struct {
	Filled  int
	Missing int
	Skipped int
}

func (r *FillResult) add(other *FillResult) {
	r.Filled += other.Filled
	r.Missing += other.Missing
	r.Skipped += other.Skipped
}

// FillOptions controls fill behavior.
type FillOptions struct {
	DryRun    bool
	Overwrite bool
}

// Filler asks a Provider for the clues a word list is missing.
type Filler struct {
	provider Provider
	writer   io.Writer
	workers  int
}

// NewFiller creates a Filler that runs at most workers provider calls at once.
func NewFiller(provider Provider, writer io.Writer, workers int) *Filler {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Filler{
		provider: provider,
		writer:   writer,
		workers:  workers,
	}
}

type fillOutcome struct {
	clue string
	err  error
}

// Fill returns a copy of entries with clues written for the ones that lack them.
// Words the provider has no usable clue for keep their empty clue.
// Any other provider error stops the run.
func (f *Filler) Fill(ctx context.Context, entries []wordpool.WordEntry, opts FillOptions) ([]wordpool.WordEntry, *FillResult, error) {
	filled := make([]wordpool.WordEntry, len(entries))
	copy(filled, entries)
	outcomes := make([]*fillOutcome, len(entries))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(f.workers)
	for i, e := range filled {
		if e.HasClue() && !opts.Overwrite {
			continue
		}
		eg.Go(func() error {
			text, err := f.provider.Clue(ctx, e.Word, e.Level)
			if err == nil {
				text, err = Clean(text, e.Word)
			}
			if err != nil && !errors.Is(err, ErrNoClue) {
				return fmt.Errorf("clue for %s: %w", e.Word, err)
			}
			outcomes[i] = &fillOutcome{clue: text, err: err}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}

	result := &FillResult{}
	for i, outcome := range outcomes {
		e := filled[i]
		switch {
		case outcome == nil:
			result.Skipped++
		case outcome.err != nil:
			_, _ = fmt.Fprintf(f.writer, "  [MISSING] %s: %v\n", e.Word, outcome.err)
			result.Missing++
		default:
			_, _ = fmt.Fprintf(f.writer, "  [FILLED]  %s: %s\n", e.Word, outcome.clue)
			if !opts.DryRun {
				filled[i].Clue = outcome.clue
			}
			result.Filled++
		}
	}
	return filled, result, nil
}

// FillFiles fills every word file of repo and writes back the files that changed.
func (f *Filler) FillFiles(ctx context.Context, repo *wordpool.YAMLRepository, opts FillOptions) (*FillResult, error) {
	files, err := repo.Files()
	if err != nil {
		return nil, fmt.Errorf("repo.Files() > %w", err)
	}

	total := &FillResult{}
	for _, path := range slices.Sorted(maps.Keys(files)) {
		file := files[path]
		_, _ = fmt.Fprintf(f.writer, "%s\n", path)

		words := make([]wordpool.WordEntry, len(file.Words))
		for i, w := range file.Words {
			if w.Level == 0 {
				w.Level = file.Level
			}
			words[i] = w
		}
		words, result, err := f.Fill(ctx, words, opts)
		if err != nil {
			return total, fmt.Errorf("fill %s: %w", path, err)
		}
		total.add(result)
		if opts.DryRun || result.Filled == 0 {
			continue
		}

		for i := range file.Words {
			file.Words[i].Clue = words[i].Clue
		}
		if err := wordpool.WriteYAMLFile(path, file); err != nil {
			return total, fmt.Errorf("wordpool.WriteYAMLFile(%s) > %w", path, err)
		}
	}
	return total, nil
}
