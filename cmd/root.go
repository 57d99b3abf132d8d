package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"finance-guide/config"
	"finance-guide/logger"
)

var (
	flagConfig   string
	flagLogLevel string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "m3",
	Short: "M³ (Make Money with Mani) personal finance guide",
	Long:  "Chat with a personal finance guide and run SIP, EMI, CAGR, FD, PPF, retirement and lumpsum calculators.",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if flagLogLevel != "" {
			loaded.Log.Level = flagLogLevel
		}
		// Logs go to stderr so calculator output stays pipeable.
		logger.Setup(os.Stderr, loaded.Log.Format, loaded.Log.Level)
		cfg = loaded
		return nil
	},
	RunE: runServe,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Config file (default ./config.yaml or $CONFIG_PATH)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level override (debug, info, warn, error)")
}
