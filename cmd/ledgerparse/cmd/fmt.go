package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ledgerfmt/ledgerparse/internal/lexer"
)

var fmtCheck bool

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Reconstruct a ledger file from its token stream, verifying the lexer is lossless",
	Args:  cobra.ExactArgs(1),
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().BoolVar(&fmtCheck, "check", false, "exit non-zero if the reconstructed text differs from the input, without printing it")
	rootCmd.AddCommand(fmtCmd)
}

// render re-concatenates every token's OuterText in lexer order. Since
// every byte of input is attached to some token as leading, inner, or
// trailing text, render(source) == source for any input the lexer accepts
// — this command exists to demonstrate and check that property rather
// than to reformat anything.
func render(source string) string {
	var b strings.Builder
	for _, tok := range lexer.Tokens(lexer.New(source)) {
		b.WriteString(tok.OuterText())
	}
	return b.String()
}

func runFmt(cmd *cobra.Command, args []string) error {
	path := args[0]
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	source := string(raw)
	rendered := render(source)

	if fmtCheck {
		if rendered != source {
			fmt.Fprintf(os.Stderr, "%s: not a faithful round-trip\n", path)
			os.Exit(1)
		}
		return nil
	}

	fmt.Print(rendered)
	return nil
}
