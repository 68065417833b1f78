package main

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Akashnaireruvattu0611/springer-capital-data-engineer-test/pkg/engine"
	"github.com/Akashnaireruvattu0611/springer-capital-data-engineer-test/pkg/parser"
	"github.com/Akashnaireruvattu0611/springer-capital-data-engineer-test/pkg/report"
)

var flagParquet bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Run the full validation pipeline and write the report",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&flagParquet, "parquet", false, "also write the report as parquet")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	tables, err := parser.LoadTables(cfg.DataDir)
	if err != nil {
		return err
	}
	logTableWarnings(logger, tables)

	records, err := engine.Run(tables, cfg.DefaultTimezone, logger)
	if err != nil {
		return err
	}

	rows := report.BuildRows(records)
	csvPath := filepath.Join(cfg.OutputDir, "referral_validation_report.csv")
	if err := report.WriteCSV(csvPath, rows); err != nil {
		return err
	}
	logger.Info("wrote validation report", zap.String("path", csvPath), zap.Int("rows", len(rows)))

	if flagParquet {
		pqPath := filepath.Join(cfg.OutputDir, "referral_validation_report.parquet")
		if err := report.WriteParquet(pqPath, rows); err != nil {
			return err
		}
		logger.Info("wrote validation report", zap.String("path", pqPath), zap.Int("rows", len(rows)))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "report written to %s (%d rows)\n", csvPath, len(rows))
	return nil
}

// logTableWarnings surfaces the parser's per-row repairs so a dirty export
// is visible in the run log.
func logTableWarnings(logger *zap.Logger, tables *parser.TableSet) {
	for _, t := range tables.Tables {
		for _, w := range t.Warnings {
			logger.Warn("table parse warning",
				zap.String("table", t.Name),
				zap.Int("row", w.Row),
				zap.String("message", w.Message))
		}
	}
}
