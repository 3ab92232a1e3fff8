// Package testutil provides shared test helpers for config files, word lists and puzzles.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/crossword/internal/crossword"
	"github.com/at-ishikawa/crossword/internal/wordpool"
)

// SetupTestConfig creates a config file that reads words from tmpDir/words and
// keeps its database and outputs under tmpDir. Returns the path to the config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	for _, d := range []string{"words", "outputs", "data"} {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, d), 0755))
	}

	configContent := fmt.Sprintf(`generator:
  seed: 1
words:
  source: yaml
  directories:
    - %s
database:
  driver: sqlite
  path: %s
clues:
  wordsapi:
    cache_directory: %s
outputs:
  directory: %s
`,
		filepath.Join(tmpDir, "words"),
		filepath.Join(tmpDir, "data", "crossword.db"),
		filepath.Join(tmpDir, "dictionaries"),
		filepath.Join(tmpDir, "outputs"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// WriteWordFile writes a word list into tmpDir/words/name and returns its path.
func WriteWordFile(t *testing.T, tmpDir, name string, file wordpool.WordFile) string {
	t.Helper()
	path := filepath.Join(tmpDir, "words", name)
	require.NoError(t, wordpool.WriteYAMLFile(path, file))
	return path
}

// CatTapResult is a level 1 puzzle with CAT across row 2 from column 1
// and TAP down column 3 from row 2.
func CatTapResult(t *testing.T) *crossword.Result {
	t.Helper()
	grid := crossword.NewGrid(5)
	require.True(t, grid.PlaceWord("CAT", 2, 1, crossword.Horizontal, 1))
	require.True(t, grid.PlaceWord("TAP", 2, 3, crossword.Vertical, 2))
	return &crossword.Result{
		Level: 1,
		Grid:  grid,
		PlacedWords: []crossword.PlacedWord{
			{ID: 1, Word: "CAT", Clue: "Pet that purrs", StartRow: 2, StartCol: 1, Direction: crossword.Horizontal, Length: 3},
			{ID: 2, Word: "TAP", Clue: "Water comes out of it", StartRow: 2, StartCol: 3, Direction: crossword.Vertical, Length: 3},
		},
	}
}
