package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/crossword/internal/crossword"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file.json>",
		Short: "Check that saved puzzles are consistent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := readPuzzleFile(args[0])
			if err != nil {
				return err
			}
			if failed := displayValidationResults(cmd.OutOrStdout(), results); failed > 0 {
				return fmt.Errorf("validation failed for %d of %d puzzle(s)", failed, len(results))
			}
			return nil
		},
	}
}

// readPuzzleFile reads the puzzles written by generate --format json, one JSON document per puzzle.
func readPuzzleFile(path string) ([]*crossword.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	var results []*crossword.Result
	for {
		var result crossword.Result
		if err := decoder.Decode(&result); err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		results = append(results, &result)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%s has no puzzle", path)
	}
	return results, nil
}

// displayValidationResults prints one line per puzzle and returns the number of invalid puzzles.
func displayValidationResults(w io.Writer, results []*crossword.Result) int {
	red := color.New(color.FgRed)
	green := color.New(color.FgGreen)

	failed := 0
	for i, result := range results {
		if err := crossword.Verify(result); err != nil {
			failed++
			_, _ = red.Fprintf(w, "Puzzle %d: invalid\n", i+1)
			_, _ = fmt.Fprintf(w, "  %v\n", err)
			continue
		}
		_, _ = green.Fprintf(w, "Puzzle %d: OK", i+1)
		_, _ = fmt.Fprintf(w, " (level %d, %d words, density %.2f)\n", result.Level, len(result.PlacedWords), result.Grid.Density())
	}
	return failed
}
