package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	logLevel     string // Log verbosity level
	defaultsPath string // Presets YAML file
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "redcost",
	Short: "Cost estimates for BKZ lattice reduction",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up persistent flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&defaultsPath, "defaults", "defaults.yaml", "Path to the model presets YAML")

	rootCmd.AddCommand(deltaCmd)
	rootCmd.AddCommand(betaCmd)
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(shortVectorsCmd)
	rootCmd.AddCommand(modelsCmd)
}
