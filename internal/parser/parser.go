// Package parser implements the recursive-descent parser: a stateful
// facade over the lexer offering the primitives the grammar productions in
// grammar.go are built from, plus the panic-mode resynchronizer and the
// top-level file loop in file.go.
//
// The facade is grounded on the teacher's TokenCursor (immutable cursor
// with arbitrary lookahead via Peek(n)) and ErrorRecovery
// (SynchronizeOn/panic-mode) types, collapsed into a single mutable struct
// since this grammar never needs to backtrack across productions — only
// ahead within a production, which a small lookahead buffer covers.
package parser

import (
	"fmt"

	"github.com/ledgerfmt/ledgerparse/internal/diag"
	"github.com/ledgerfmt/ledgerparse/internal/group"
	"github.com/ledgerfmt/ledgerparse/internal/lexer"
	"github.com/ledgerfmt/ledgerparse/internal/span"
	"github.com/ledgerfmt/ledgerparse/internal/symtab"
	"github.com/ledgerfmt/ledgerparse/internal/token"
)

// Parser is a stateful, single-pass recursive-descent parser over one
// source buffer.
type Parser struct {
	lex *lexer.Lexer

	// buf is a small lookahead queue in front of the lexer. Most primitives
	// only ever touch buf[0]; untilSequence is the one production that needs
	// multi-token lookahead to test whether an identifier run matches.
	buf []token.Token

	previous    token.Token
	hasPrevious bool

	diagnostics []diag.Diagnostic
	accounts    *symtab.Table
	payees      *symtab.Table
}

// New creates a Parser over source.
func New(source string) *Parser {
	return &Parser{
		lex:      lexer.New(source),
		accounts: symtab.New(),
		payees:   symtab.New(),
	}
}

// Diagnostics returns the diagnostics accumulated so far.
func (p *Parser) Diagnostics() []diag.Diagnostic { return p.diagnostics }

// Accounts returns the account symbol table.
func (p *Parser) Accounts() *symtab.Table { return p.accounts }

// Payees returns the payee symbol table.
func (p *Parser) Payees() *symtab.Table { return p.payees }

func (p *Parser) fill(n int) {
	for len(p.buf) <= n {
		p.buf = append(p.buf, p.lex.Next())
	}
}

// peek returns the next token without consuming it.
func (p *Parser) peek() token.Token {
	p.fill(0)
	return p.buf[0]
}

// peekN returns the token n positions ahead; peekN(0) is peek().
func (p *Parser) peekN(n int) token.Token {
	p.fill(n)
	return p.buf[n]
}

// next consumes and returns the next token, updating previous.
func (p *Parser) next() token.Token {
	p.fill(0)
	tok := p.buf[0]
	p.buf = p.buf[1:]
	p.previous = tok
	p.hasPrevious = true
	return tok
}

func (p *Parser) errorAt(kind diag.Kind, sp span.Span, message string) {
	p.diagnostics = append(p.diagnostics, diag.New(kind, message, sp))
}

// peekIs reports whether the next token's kind is one of kinds.
func (p *Parser) peekIs(kinds ...token.Kind) bool {
	k := p.peek().Kind
	for _, kind := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// skipIf consumes and returns the next token iff it matches one of kinds.
func (p *Parser) skipIf(kinds ...token.Kind) (token.Token, bool) {
	if p.peekIs(kinds...) {
		return p.next(), true
	}
	return token.Token{}, false
}

// expect consumes the next token, requiring it to be one of kinds. On
// mismatch or exhaustion it records UNEXPECTED_TOKEN / UNEXPECTED_EOF and
// returns ok=false, but the token is still consumed (the grammar always
// makes forward progress).
func (p *Parser) expect(kinds ...token.Kind) (token.Token, bool) {
	tok := p.next()
	for _, k := range kinds {
		if tok.Kind == k {
			return tok, true
		}
	}
	if tok.Kind == token.EOF {
		p.errorAt(diag.UnexpectedEOF, tok.Span(), "unexpected end of input")
	} else {
		p.errorAt(diag.UnexpectedToken, tok.Span(), fmt.Sprintf("unexpected token %s", tok.Kind))
	}
	return tok, false
}

// expectIdentifier expects an identifier token whose text equals name.
func (p *Parser) expectIdentifier(name string) (token.Token, bool) {
	tok, ok := p.expect(token.Identifier)
	if !ok {
		return tok, false
	}
	if tok.InnerText != name {
		p.errorAt(diag.UnexpectedToken, tok.Span(),
			fmt.Sprintf("expected %q, got %q", name, tok.InnerText))
		return tok, false
	}
	return tok, true
}

// expectInteger expects a number token whose text is a plain decimal
// integer (no separators).
func (p *Parser) expectInteger() (token.Token, bool) {
	tok, ok := p.expect(token.Number)
	if !ok {
		return tok, false
	}
	if !isDecimalInteger(tok.InnerText) {
		p.errorAt(diag.InvalidInteger, tok.Span(), fmt.Sprintf("invalid integer %q", tok.InnerText))
		return tok, false
	}
	return tok, true
}

func isDecimalInteger(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// expectEndOfLine consumes a token, requiring it to be a newline or eof.
func (p *Parser) expectEndOfLine() bool {
	_, ok := p.consumeEndOfLine()
	return ok
}

// consumeEndOfLine is expectEndOfLine's variant that hands back the
// consumed token itself, for the rare caller (parseCommentBlock) that needs
// the newline's TrailingWS rather than just a pass/fail result.
func (p *Parser) consumeEndOfLine() (token.Token, bool) {
	tok := p.next()
	if tok.Kind == token.Newline || tok.Kind == token.EOF {
		return tok, true
	}
	p.errorAt(diag.UnexpectedToken, tok.Span(), fmt.Sprintf("expected end of line, got %s", tok.Kind))
	return tok, false
}

// expectHardSpace reports whether a hard space separates the previously
// consumed token from the next one, without consuming anything.
func (p *Parser) expectHardSpace() bool {
	if p.hasPrevious && p.previous.EndsWithHardSpace() {
		return true
	}
	return p.peek().BeginsWithHardSpace()
}

// inlineSpace reports whether the current position is at end-of-line, or a
// space (hard or soft) separates previous from peek.
func (p *Parser) inlineSpace() bool {
	pk := p.peek()
	if pk.Kind == token.Newline || pk.Kind == token.EOF {
		return true
	}
	if p.hasPrevious && p.previous.EndsWithSpace() {
		return true
	}
	return pk.BeginsWithSpace()
}

// lineHasNext reports whether there is more content before the next
// newline or eof.
func (p *Parser) lineHasNext() bool {
	pk := p.peek()
	return pk.Kind != token.EOF && pk.Kind != token.Newline
}

// nextIsIndented reports whether the upcoming token starts an indented
// continuation line: the previously consumed token was a newline (or
// parsing has not started yet, treated the same way) and a space separates
// it from the next token, which is not eof.
func (p *Parser) nextIsIndented() bool {
	pk := p.peek()
	if pk.Kind == token.EOF {
		return false
	}
	if !p.hasPrevious {
		return pk.BeginsWithSpace()
	}
	if p.previous.Kind != token.Newline {
		return false
	}
	return p.previous.EndsWithSpace() || pk.BeginsWithSpace()
}

// atLineBoundary reports whether the parser sits at the start of a fresh,
// unindented line: true exactly when nextIsIndented would be false for the
// reason that no indentation is present (as opposed to not being at a
// newline boundary at all).
func (p *Parser) atLineBoundary() bool {
	atNewline := !p.hasPrevious || p.previous.Kind == token.Newline
	return atNewline && !p.nextIsIndented()
}

// slurpUntil collects tokens up to (not including) the next token whose
// kind is in stop, or a newline/eof. Fails if zero tokens were collected.
func (p *Parser) slurpUntil(stop ...token.Kind) (group.Group, bool) {
	var b group.Builder
	for {
		pk := p.peek()
		if pk.Kind == token.Newline || pk.Kind == token.EOF {
			break
		}
		stopped := false
		for _, k := range stop {
			if pk.Kind == k {
				stopped = true
				break
			}
		}
		if stopped {
			break
		}
		b.Add(p.next())
	}
	return b.Build()
}

// slurpUntilHardSpace collects tokens until one begins or ends with a hard
// space, or a newline/eof is reached. Fails if zero tokens were collected.
func (p *Parser) slurpUntilHardSpace() (group.Group, bool) {
	var b group.Builder
	for {
		pk := p.peek()
		if pk.Kind == token.Newline || pk.Kind == token.EOF || pk.BeginsWithHardSpace() {
			break
		}
		tok := p.next()
		b.Add(tok)
		if tok.EndsWithHardSpace() {
			break
		}
	}
	return b.Build()
}

// slurp collects every token up to (not including) the next newline/eof.
func (p *Parser) slurp() (group.Group, bool) {
	return p.slurpUntil()
}

// untilSequence collects tokens until an identifier run matching words
// (in order, consecutively) is found. Returns the buffered body tokens, the
// matched sequence tokens, and whether the sequence was found before eof.
func (p *Parser) untilSequence(words ...string) (body []token.Token, matched []token.Token, ok bool) {
	for {
		if p.peek().Kind == token.EOF {
			return body, nil, false
		}
		if p.matchesSequenceAt(words) {
			return body, p.consumeN(len(words)), true
		}
		body = append(body, p.next())
	}
}

func (p *Parser) matchesSequenceAt(words []string) bool {
	for i, w := range words {
		tok := p.peekN(i)
		if tok.Kind != token.Identifier || tok.InnerText != w {
			return false
		}
	}
	return true
}

func (p *Parser) consumeN(n int) []token.Token {
	out := make([]token.Token, n)
	for i := 0; i < n; i++ {
		out[i] = p.next()
	}
	return out
}

// whileIndented repeatedly runs body while nextIsIndented holds, requiring
// end-of-line after each successful iteration, and returns how many
// iterations ran. It stops (without consuming the current line) as soon as
// body returns false.
func (p *Parser) whileIndented(body func() bool) int {
	count := 0
	for p.nextIsIndented() {
		if !body() {
			break
		}
		if !p.expectEndOfLine() {
			break
		}
		count++
	}
	return count
}

// syncToBoundary advances the parser until it reaches the start of a fresh
// unindented line, or eof. Used by the file-level loop's panic state.
func (p *Parser) syncToBoundary() {
	for p.peek().Kind != token.EOF && !p.atLineBoundary() {
		p.next()
	}
}
