// Package token defines the Token type shared by the lexer and parser.
//
// A Token carries not just its own text but the whitespace immediately
// surrounding it in the source buffer. This is the trivia-attachment design
// described in spec.md §9: rather than threading a separate trivia list
// through the tree, every token owns its leading and trailing whitespace
// directly, which makes round-trip and hard-space detection simple token
// queries instead of a look-back through a side list.
package token

import (
	"regexp"

	"github.com/ledgerfmt/ledgerparse/internal/span"
)

// hardSpace matches a whitespace run containing a tab or two-or-more
// consecutive spaces — the grammar-level delimiter defined in spec.md
// §4.1 and the GLOSSARY.
var hardSpace = regexp.MustCompile(`\t|  +`)

// Token is a typed lexeme plus the whitespace attached to it.
//
// Invariant: Offset points at the first byte of LeadingWS, and the
// corresponding slice of the source buffer is exactly
// LeadingWS + InnerText + TrailingWS.
type Token struct {
	Kind       Kind
	InnerText  string
	LeadingWS  string
	TrailingWS string
	Offset     int

	// Virtual marks a zero-length token synthesized by the lexer rather
	// than scanned from the buffer — used only for the end-of-input
	// marker, which may still carry a genuine LeadingWS run so that a
	// whitespace-only buffer round-trips exactly.
	Virtual bool
}

// Span returns the span of InnerText alone (excluding whitespace).
func (t Token) Span() span.Span {
	start := t.Offset + len(t.LeadingWS)
	return span.New(start, start+len(t.InnerText))
}

// OuterSpan returns the span covering LeadingWS + InnerText + TrailingWS.
func (t Token) OuterSpan() span.Span {
	return span.New(t.Offset, t.Offset+len(t.OuterText()))
}

// OuterText returns the token's full on-buffer text, including whitespace.
// For every token t, source[t.Offset:t.Offset+t.OuterLength()] == t.OuterText().
func (t Token) OuterText() string {
	return t.LeadingWS + t.InnerText + t.TrailingWS
}

// OuterLength returns len(t.OuterText()) without allocating it.
func (t Token) OuterLength() int {
	return len(t.LeadingWS) + len(t.InnerText) + len(t.TrailingWS)
}

// BeginsWithSpace reports whether the token has any leading whitespace.
func (t Token) BeginsWithSpace() bool {
	return len(t.LeadingWS) > 0
}

// EndsWithSpace reports whether the token has any trailing whitespace.
func (t Token) EndsWithSpace() bool {
	return len(t.TrailingWS) > 0
}

// BeginsWithHardSpace reports whether the token's leading whitespace is a
// hard space (tab, or two-or-more spaces).
func (t Token) BeginsWithHardSpace() bool {
	return isHard(t.LeadingWS)
}

// EndsWithHardSpace reports whether the token's trailing whitespace is a
// hard space.
func (t Token) EndsWithHardSpace() bool {
	return isHard(t.TrailingWS)
}

func isHard(ws string) bool {
	return hardSpace.MatchString(ws)
}

// New builds a non-virtual token at the given offset with no whitespace
// attached; the lexer fills in LeadingWS/TrailingWS as it absorbs
// neighboring whitespace.
func New(kind Kind, inner string, offset int) Token {
	return Token{Kind: kind, InnerText: inner, Offset: offset}
}
