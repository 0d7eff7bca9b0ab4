// Package cmd implements the ledgerparse CLI, grounded on the teacher's
// cmd/dwscript/cmd package: a cobra root command carrying logrus-backed
// verbosity flags, with each subcommand in its own file.
package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ledgerfmt/ledgerparse/internal/config"
)

var (
	verbose    bool
	logLevel   string
	configPath string

	log = logrus.New()
	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:           "ledgerparse",
	Short:         "Fault-tolerant parser for the plain-text ledger journal language",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := logrus.InfoLevel
		if verbose {
			level = logrus.DebugLevel
		}
		if logLevel != "" {
			parsed, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
			}
			level = parsed
		}
		log.SetLevel(level)

		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "explicit log level (overrides --verbose)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to .ledgerparse.yaml (default: working directory)")
}

// Execute runs the CLI, exiting the process with a non-zero status on
// failure the way the teacher's main.go wraps cmd.Execute().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exitWithError(err)
	}
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, "ledgerparse:", err)
	os.Exit(1)
}
