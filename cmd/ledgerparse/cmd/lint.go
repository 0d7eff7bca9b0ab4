package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ledgerfmt/ledgerparse/internal/diag"
	"github.com/ledgerfmt/ledgerparse/pkg/ledger"
)

var lintCmd = &cobra.Command{
	Use:   "lint <file>",
	Short: "Parse a ledger file and exit non-zero if any configured diagnostic kind fired",
	Args:  cobra.ExactArgs(1),
	RunE:  runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, args []string) error {
	path := args[0]
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	result, err := ledger.Parse(string(source))
	if err != nil {
		return err
	}

	lineTable := diag.NewLineTable(string(source))

	failed := false
	for _, d := range result.Diagnostics {
		if cfg.ShouldFailOn(d.Kind.String()) {
			failed = true
			fmt.Fprintln(os.Stderr, lineTable.Format(path, d))
		} else {
			log.WithField("file", path).Debugf("ignoring %s per config", d.Kind.Code())
		}
	}

	if failed {
		os.Exit(1)
	}
	return nil
}
