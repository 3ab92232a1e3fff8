package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/crossword/internal/cli"
	"github.com/at-ishikawa/crossword/internal/crossword"
)

func newPlayCommand() *cobra.Command {
	var (
		level levelFlag = 1
		seed  int64
		file  string
	)

	command := &cobra.Command{
		Use:   "play",
		Short: "Solve a crossword in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result *crossword.Result
			if file != "" {
				results, err := readPuzzleFile(file)
				if err != nil {
					return err
				}
				result = results[0]
				if err := crossword.Verify(result); err != nil {
					return fmt.Errorf("%s is not a valid puzzle: %w", file, err)
				}
			} else {
				cfg, err := loadConfig()
				if err != nil {
					return fmt.Errorf("loadConfig() > %w", err)
				}
				entries, err := loadWords(cmd.Context(), cfg)
				if err != nil {
					return err
				}
				result = newGenerator(cfg, entries, seed).Generate(level.Level())
			}

			if len(result.PlacedWords) == 0 {
				return fmt.Errorf("the puzzle has no words")
			}
			result.Grid.ClearLetters()

			interactiveCLI := cli.NewInteractiveCLI(os.Stdin, cmd.OutOrStdout())
			return interactiveCLI.Run(cmd.Context(), cli.NewPlaySession(interactiveCLI, result))
		},
	}

	command.Flags().Var(&level, "level", "difficulty level from 1 to 5")
	command.Flags().Int64Var(&seed, "seed", 0, "random seed, 0 uses the configured seed or a random one")
	command.Flags().StringVarP(&file, "file", "f", "", "play a puzzle saved with generate --format json")
	return command
}
