// Command refcheck validates a referral-rewards program snapshot: it
// reconstructs one canonical record per referral across the seven export
// tables and reports whether each referral's lifecycle is internally
// consistent with the program's business rules.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Akashnaireruvattu0611/springer-capital-data-engineer-test/pkg/config"
)

var (
	flagConfig    string
	flagDataDir   string
	flagOutputDir string
	flagDefaultTZ string
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "refcheck",
	Short: "Validate referral program snapshot data",
	Long: `refcheck ingests the seven snapshot tables exported from the
operational store, reconstructs one record per referral event, and emits a
per-referral verdict on whether its lifecycle is internally consistent.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "directory holding the snapshot CSV files")
	rootCmd.PersistentFlags().StringVar(&flagOutputDir, "output-dir", "", "directory for generated files")
	rootCmd.PersistentFlags().StringVar(&flagDefaultTZ, "default-tz", "", "time zone used when a row has none")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "verbose, human-readable logging")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(dictCmd)
}

// loadConfig resolves configuration: defaults, YAML file, env, then flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if flagOutputDir != "" {
		cfg.OutputDir = flagOutputDir
	}
	if flagDefaultTZ != "" {
		cfg.DefaultTimezone = flagDefaultTZ
	}
	return cfg, nil
}

func newLogger() (*zap.Logger, error) {
	if flagVerbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "refcheck: %v\n", err)
		os.Exit(1)
	}
}
