package crossword

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/at-ishikawa/crossword/internal/wordpool"
)

func TestGenerateBatch(t *testing.T) {
	defer goleak.VerifyNone(t)

	g := New(wordpool.MustDefault(), Options{Seed: 7})
	results, err := GenerateBatch(context.Background(), g, 2, 4, 2)
	require.NoError(t, err)
	require.Len(t, results, 4)

	for i, result := range results {
		require.NotNil(t, result, "puzzle %d", i)
		require.NoError(t, Verify(result))
		want := g.generate(2, 7+int64(i))
		if diff := cmp.Diff(want, result, ignoreDuration); diff != "" {
			t.Errorf("puzzle %d differs from a single generation with its seed (-want +got):\n%s", i, diff)
		}
	}
}

func TestGenerateBatch_randomSeed(t *testing.T) {
	defer goleak.VerifyNone(t)

	g := New(wordpool.MustDefault(), DefaultOptions())
	results, err := GenerateBatch(context.Background(), g, 1, 3, 0)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, result := range results {
		assert.NoError(t, Verify(result))
	}
}

func TestGenerateBatch_empty(t *testing.T) {
	results, err := GenerateBatch(context.Background(), New(nil, DefaultOptions()), 1, 0, 4)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestGenerateBatch_canceled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := GenerateBatch(ctx, New(wordpool.MustDefault(), DefaultOptions()), 3, 10, 2)
	assert.ErrorIs(t, err, context.Canceled)
}
