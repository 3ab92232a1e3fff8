package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/crossword/internal/database"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := ensureSQLiteDir(cfg.Database); err != nil {
				return err
			}
			if err := database.Migrate(cfg.Database); err != nil {
				return fmt.Errorf("database.Migrate() > %w", err)
			}
			return nil
		},
	}
}
