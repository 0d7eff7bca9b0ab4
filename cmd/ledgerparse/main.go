// Command ledgerparse is the CLI driver around pkg/ledger: the collaborator
// spec.md §6 describes as resolving diagnostics' spans to line/column via a
// separate line table, never reaching into the parser's internals.
package main

import "github.com/ledgerfmt/ledgerparse/cmd/ledgerparse/cmd"

func main() {
	cmd.Execute()
}
