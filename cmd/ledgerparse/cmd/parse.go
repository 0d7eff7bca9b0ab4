package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ledgerfmt/ledgerparse/internal/diag"
	"github.com/ledgerfmt/ledgerparse/pkg/ledger"
)

var dumpAST bool

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a ledger file and print its diagnostics",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "pretty-print the parsed tree instead of just diagnostics")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	result, err := ledger.Parse(string(source))
	if err != nil {
		return err
	}

	log.WithFields(logrusFields(path, len(source))).Debug("parsed file")

	lineTable := diag.NewLineTable(string(source))
	for _, d := range result.Diagnostics {
		fmt.Fprintln(os.Stderr, lineTable.Format(path, d))
	}

	if dumpAST {
		fmt.Println(repr.String(result.File))
	}

	fmt.Printf(
		"%s diagnostics, %s accounts, %s payees (run %s)\n",
		humanize.Comma(int64(len(result.Diagnostics))),
		humanize.Comma(int64(result.Accounts.Len())),
		humanize.Comma(int64(result.Payees.Len())),
		result.RunID,
	)

	if result.HasErrors() {
		os.Exit(1)
	}
	return nil
}

func logrusFields(path string, size int) map[string]interface{} {
	return map[string]interface{}{
		"file":  path,
		"bytes": humanize.Bytes(uint64(size)),
	}
}
