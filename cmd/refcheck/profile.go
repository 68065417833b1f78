package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Akashnaireruvattu0611/springer-capital-data-engineer-test/pkg/parser"
	"github.com/Akashnaireruvattu0611/springer-capital-data-engineer-test/pkg/report"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Write the column-level profiling summary",
	RunE:  runProfile,
}

func runProfile(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	tables, err := parser.LoadTables(cfg.DataDir)
	if err != nil {
		return err
	}

	rows := report.ProfileTables(tables)
	path := filepath.Join(cfg.OutputDir, "data_profiling_summary.csv")
	if err := report.WriteProfileCSV(path, rows); err != nil {
		return err
	}
	logger.Info("wrote profiling summary", zap.String("path", path), zap.Int("columns", len(rows)))
	fmt.Fprintf(cmd.OutOrStdout(), "profiling summary written to %s\n", path)
	return nil
}
