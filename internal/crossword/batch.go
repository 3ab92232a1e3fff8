package crossword

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/at-ishikawa/crossword/internal/wordpool"
)

// GenerateBatch builds n crosswords for level using at most workers goroutines.
// With a non-zero seed, puzzle i uses seed+i so the batch is reproducible.
// Cancelling ctx stops puzzles that have not started yet.
func GenerateBatch(ctx context.Context, g *Generator, level wordpool.Level, n, workers int) ([]*Result, error) {
	if n <= 0 {
		return []*Result{}, nil
	}

	results := make([]*Result, n)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(max(workers, 1))
	for i := range n {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			seed := g.opts.Seed
			if seed != 0 {
				seed += int64(i)
			}
			results[i] = g.generate(level, seed)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("generate batch: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("generate batch: %w", err)
	}
	return results, nil
}
