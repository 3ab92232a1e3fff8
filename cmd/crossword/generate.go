package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/crossword/internal/crossword"
	"github.com/at-ishikawa/crossword/internal/render"
)

type generateOptions struct {
	level       levelFlag
	count       int
	seed        int64
	workers     int
	format      formatFlag
	showAnswers bool
	output      string
	renderer    *render.MarkdownRenderer
}

func newGenerateCommand() *cobra.Command {
	opts := generateOptions{
		level:  1,
		format: formatText,
	}

	command := &cobra.Command{
		Use:   "generate",
		Short: "Generate crossword puzzles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loadConfig() > %w", err)
			}
			if opts.count < 1 {
				return fmt.Errorf("-n must be at least 1, got %d", opts.count)
			}

			entries, err := loadWords(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			generator := newGenerator(cfg, entries, opts.seed)
			results, err := crossword.GenerateBatch(cmd.Context(), generator, opts.level.Level(), opts.count, opts.workers)
			if err != nil {
				return fmt.Errorf("crossword.GenerateBatch() > %w", err)
			}

			for i, result := range results {
				if err := crossword.Verify(result); err != nil {
					return fmt.Errorf("puzzle %d is invalid: %w", i+1, err)
				}
				if !result.TargetReached() {
					slog.Warn("placed fewer words than the level aims for",
						"puzzle", i+1,
						"words", len(result.PlacedWords),
						"target", crossword.TargetWordCount(result.Level),
					)
				}
			}

			if opts.format == formatPDF {
				if opts.output == "" {
					opts.output = cfg.Outputs.Directory
				}
				opts.renderer, err = render.NewMarkdownRenderer(cfg.Outputs.Template)
				if err != nil {
					return fmt.Errorf("render.NewMarkdownRenderer() > %w", err)
				}
			}
			return writePuzzles(cmd.OutOrStdout(), results, opts)
		},
	}

	command.Flags().Var(&opts.level, "level", "difficulty level from 1 to 5")
	command.Flags().IntVarP(&opts.count, "count", "n", 1, "number of puzzles")
	command.Flags().Int64Var(&opts.seed, "seed", 0, "random seed, 0 uses the configured seed or a random one")
	command.Flags().IntVar(&opts.workers, "workers", 4, "number of puzzles generated in parallel")
	command.Flags().Var(&opts.format, "format", "output format: text, json or pdf")
	command.Flags().BoolVar(&opts.showAnswers, "answers", false, "include the answers")
	command.Flags().StringVarP(&opts.output, "output", "o", "", "output directory, stdout when empty (pdf defaults to the configured outputs directory)")
	return command
}

// writePuzzles writes results to stdout, or one file per puzzle when an output directory is set.
func writePuzzles(stdout io.Writer, results []*crossword.Result, opts generateOptions) error {
	for i, result := range results {
		name := fmt.Sprintf("crossword-level%d-%d", result.Level, i+1)

		switch opts.format {
		case formatPDF:
			writePDF := render.WritePDF
			if opts.renderer != nil {
				writePDF = opts.renderer.WritePDF
			}
			pdfPath, err := writePDF(filepath.Join(opts.output, name+".pdf"), result, opts.showAnswers)
			if err != nil {
				return fmt.Errorf("WritePDF() > %w", err)
			}
			_, _ = fmt.Fprintf(stdout, "PDF created: %s\n", pdfPath)
			continue
		case formatJSON, formatText:
		default:
			return fmt.Errorf("unknown format %q", opts.format)
		}

		if opts.output == "" {
			if i > 0 && opts.format == formatText {
				_, _ = fmt.Fprintln(stdout)
			}
			if err := writePuzzle(stdout, result, opts); err != nil {
				return err
			}
			continue
		}

		ext := ".txt"
		if opts.format == formatJSON {
			ext = ".json"
		}
		path := filepath.Join(opts.output, name+ext)
		if err := writePuzzleFile(path, result, opts); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(stdout, "Puzzle written: %s\n", path)
	}
	return nil
}

func writePuzzleFile(path string, result *crossword.Result, opts generateOptions) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(path), err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()
	return writePuzzle(file, result, opts)
}

func writePuzzle(w io.Writer, result *crossword.Result, opts generateOptions) error {
	if opts.format == formatJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return fmt.Errorf("encode puzzle: %w", err)
		}
		return nil
	}
	_, _ = fmt.Fprintf(w, "Crossword - Level %d (%d words)\n\n", result.Level, len(result.PlacedWords))
	if err := render.Text(w, result, opts.showAnswers); err != nil {
		return fmt.Errorf("render.Text() > %w", err)
	}
	return nil
}
