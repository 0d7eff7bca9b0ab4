// Package ledger is the small public facade over internal/parser, the way
// the teacher exposes pkg/dwscript as the stable entry point in front of
// its internal lexer/parser packages. It adds nothing to parsing semantics
// — only a per-call RunID collaborators can use to correlate a parse pass
// with their own logs (spec.md §6's language-service contract).
package ledger

import (
	"github.com/google/uuid"

	"github.com/ledgerfmt/ledgerparse/internal/ast"
	"github.com/ledgerfmt/ledgerparse/internal/diag"
	"github.com/ledgerfmt/ledgerparse/internal/parser"
	"github.com/ledgerfmt/ledgerparse/internal/symtab"
)

// ParserResult is the public, stable view of a parse pass.
type ParserResult struct {
	RunID       uuid.UUID
	File        ast.File
	Diagnostics []diag.Diagnostic
	Accounts    *symtab.Table
	Payees      *symtab.Table
}

// Parse parses source to completion, never returning an error of its own:
// syntax problems surface as Diagnostics, matching spec.md §7's "the
// parser never throws for syntax errors" contract. The returned error is
// reserved for future fatal conditions (e.g. an input size guard) that
// this version never triggers.
func Parse(source string) (*ParserResult, error) {
	result := parser.Parse(source)
	return &ParserResult{
		RunID:       uuid.New(),
		File:        result.File,
		Diagnostics: result.Diagnostics,
		Accounts:    result.Accounts,
		Payees:      result.Payees,
	}, nil
}

// HasErrors reports whether the parse produced any diagnostics.
func (r *ParserResult) HasErrors() bool {
	return len(r.Diagnostics) > 0
}
