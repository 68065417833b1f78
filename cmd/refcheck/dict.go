package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Akashnaireruvattu0611/springer-capital-data-engineer-test/pkg/parser"
	"github.com/Akashnaireruvattu0611/springer-capital-data-engineer-test/pkg/report"
)

var dictCmd = &cobra.Command{
	Use:   "dict",
	Short: "Write the descriptive data dictionary",
	RunE:  runDict,
}

func runDict(cmd *cobra.Command, args []string) error {
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

	rows := report.BuildDictionary(tables)
	path := filepath.Join(cfg.OutputDir, "data_dictionary.csv")
	if err := report.WriteDictionaryCSV(path, rows); err != nil {
		return err
	}
	logger.Info("wrote data dictionary", zap.String("path", path), zap.Int("columns", len(rows)))
	fmt.Fprintf(cmd.OutOrStdout(), "data dictionary written to %s\n", path)
	return nil
}
