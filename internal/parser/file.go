package parser

import (
	"fmt"

	"github.com/ledgerfmt/ledgerparse/internal/ast"
	"github.com/ledgerfmt/ledgerparse/internal/diag"
	"github.com/ledgerfmt/ledgerparse/internal/symtab"
	"github.com/ledgerfmt/ledgerparse/internal/token"
)

// Result is everything a parse produces: the tree, the diagnostics
// accumulated along the way, and the account/payee symbol tables.
type Result struct {
	File        ast.File
	Diagnostics []diag.Diagnostic
	Accounts    *symtab.Table
	Payees      *symtab.Table
}

// Parse runs the file-level Ready/Panic loop over source to completion and
// returns the full result. This is the parser's only entry point; there is
// no incremental or partial-input variant.
func Parse(source string) Result {
	p := New(source)
	file := p.parseFile()
	return Result{
		File:        file,
		Diagnostics: p.diagnostics,
		Accounts:    p.accounts,
		Payees:      p.payees,
	}
}

// parseFile implements the top-level Ready/Panic state machine: in Ready
// it dispatches on the next token's kind to the matching production; any
// failure (the production's own, or a token this loop can't dispatch at
// all) enters Panic, which resynchronizes to the next unindented line
// before returning to Ready.
func (p *Parser) parseFile() ast.File {
	var file ast.File

	for p.peek().Kind != token.EOF {
		if p.nextIsIndented() {
			tok := p.peek()
			p.errorAt(diag.LeadingSpace, tok.Span(), "unexpected indentation at top level")
			p.syncToBoundary()
			continue
		}

		switch {
		case p.peekIs(token.Number):
			txn, ok := p.parseTransaction()
			if ok {
				file.Children = append(file.Children, txn)
			} else {
				p.syncToBoundary()
			}

		case p.peekIs(token.Comment):
			comment, ok := p.parseComment()
			if ok {
				file.Children = append(file.Children, comment)
			} else {
				p.syncToBoundary()
			}

		case p.peekIs(token.Identifier):
			node, ok := p.parseDirective()
			if ok && node != nil {
				file.Children = append(file.Children, node)
			}
			if !ok {
				p.syncToBoundary()
			}

		default:
			tok := p.next()
			p.errorAt(diag.UnexpectedToken, tok.Span(), fmt.Sprintf("unexpected %s at top level", tok.Kind))
			p.syncToBoundary()
		}
	}

	return file
}
