package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/crossword/internal/clue"
	"github.com/at-ishikawa/crossword/internal/wordpool"
)

func newWordsCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "words",
		Short: "Manage the word pool",
	}
	command.AddCommand(
		newWordsListCommand(),
		newWordsImportCommand(),
		newWordsFillCluesCommand(),
	)
	return command
}

func newWordsListCommand() *cobra.Command {
	var level int

	command := &cobra.Command{
		Use:   "list",
		Short: "List the words of the configured source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loadConfig() > %w", err)
			}
			entries, err := loadWords(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			var filter wordpool.Level
			if level != 0 {
				filter, err = wordpool.ParseLevel(level)
				if err != nil {
					return err
				}
			}
			displayWords(cmd.OutOrStdout(), entries, filter)
			return nil
		},
	}
	command.Flags().IntVar(&level, "level", 0, "only list words of this level")
	return command
}

// displayWords prints the words of each level, or of filter only when it is set.
func displayWords(w io.Writer, entries []wordpool.WordEntry, filter wordpool.Level) {
	counts := wordpool.CountByLevel(entries)
	for _, l := range wordpool.Levels() {
		if filter != 0 && l != filter {
			continue
		}
		_, _ = fmt.Fprintf(w, "Level %d (%d words)\n", l, counts[l])

		words := slices.DeleteFunc(slices.Clone(entries), func(e wordpool.WordEntry) bool {
			return e.Level != l
		})
		slices.SortFunc(words, func(a, b wordpool.WordEntry) int {
			return strings.Compare(a.Word, b.Word)
		})
		for _, e := range words {
			clueText := e.Clue
			if !e.HasClue() {
				clueText = "(no clue)"
			}
			_, _ = fmt.Fprintf(w, "  %-12s %s\n", e.Word, clueText)
		}
	}
}

func newWordsImportCommand() *cobra.Command {
	var (
		dryRun         bool
		updateExisting bool
		embedded       bool
	)

	command := &cobra.Command{
		Use:   "import",
		Short: "Import word lists into the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			var source wordpool.Source = wordpool.NewYAMLRepository(cfg.Words.Directories, cfg.Words.Files)
			if embedded {
				source = wordpool.EmbeddedSource{}
			}
			entries, err := source.Entries(ctx)
			if err != nil {
				return fmt.Errorf("read words: %w", err)
			}

			db, err := openDatabase(cfg.Database)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer func() { _ = db.Close() }()

			importer := wordpool.NewImporter(wordpool.NewDBWordRepository(db), os.Stdout)
			opts := wordpool.ImportOptions{
				DryRun:         dryRun,
				UpdateExisting: updateExisting,
			}
			result, err := importer.ImportWords(ctx, entries, opts)
			if err != nil {
				return fmt.Errorf("import words: %w", err)
			}

			fmt.Println("\nImport Summary:")
			if opts.DryRun {
				fmt.Println("  (dry-run mode, no changes made)")
			}
			fmt.Printf("  Words:  %d new, %d updated, %d skipped\n", result.New, result.Updated, result.Skipped)
			return nil
		},
	}

	command.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without modifying the database")
	command.Flags().BoolVar(&updateExisting, "update-existing", false, "Update existing words with new clues and levels")
	command.Flags().BoolVar(&embedded, "embedded", false, "Import the bundled word lists instead of the configured YAML files")
	return command
}

func newWordsFillCluesCommand() *cobra.Command {
	var (
		provider  string
		dryRun    bool
		overwrite bool
		workers   int
	)

	command := &cobra.Command{
		Use:   "fill-clues",
		Short: "Write clues for words in the YAML word lists that have none",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			clueProvider, closeProvider, err := newClueProvider(ctx, cfg.Clues, provider)
			if err != nil {
				return err
			}
			defer func() { _ = closeProvider() }()

			filler := clue.NewFiller(clueProvider, cmd.OutOrStdout(), workers)
			result, err := filler.FillFiles(ctx, wordpool.NewYAMLRepository(cfg.Words.Directories, cfg.Words.Files), clue.FillOptions{
				DryRun:    dryRun,
				Overwrite: overwrite,
			})
			if err != nil {
				return fmt.Errorf("filler.FillFiles() > %w", err)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, "\nClue Summary:")
			if dryRun {
				_, _ = fmt.Fprintln(out, "  (dry-run mode, no files changed)")
			}
			_, _ = fmt.Fprintf(out, "  Clues:  %d filled, %d missing, %d skipped\n", result.Filled, result.Missing, result.Skipped)
			return nil
		},
	}

	command.Flags().StringVar(&provider, "provider", "", "clue provider: openai, gemini or wordsapi (defaults to clues.provider)")
	command.Flags().BoolVar(&dryRun, "dry-run", false, "Print the clues without writing them")
	command.Flags().BoolVar(&overwrite, "overwrite", false, "Replace existing clues")
	command.Flags().IntVar(&workers, "workers", 4, "number of concurrent clue requests")
	return command
}
