// Package group implements Group, the non-empty ordered run of tokens the
// grammar reaches for whenever a production needs "a span of source text
// made of more than one token" — dates, account names, payees, directive
// arguments, and more all bottom out in a Group.
package group

import (
	"strings"

	"github.com/ledgerfmt/ledgerparse/internal/span"
	"github.com/ledgerfmt/ledgerparse/internal/token"
)

// Group is a non-empty ordered sequence of tokens with a combined span.
// A Group is built through Builder (or FromNonEmpty for a slice already
// known to be non-empty); neither hands back an empty Group as a success —
// Builder.Build reports failure and FromNonEmpty panics — which removes a
// whole class of nil/empty checks from span derivation downstream.
type Group struct {
	tokens []token.Token
}

// Tokens returns the group's constituent tokens in order. The returned
// slice must not be mutated.
func (g Group) Tokens() []token.Token {
	return g.tokens
}

// Span returns the combined span of every token in the group.
func (g Group) Span() span.Span {
	spans := make([]span.Span, len(g.tokens))
	for i, t := range g.tokens {
		spans[i] = t.Span()
	}
	return span.Combine(spans...)
}

// InnerText returns the group's outer text with the leading whitespace of
// the first token and the trailing whitespace of the last token trimmed;
// whitespace between interior tokens is preserved exactly.
func (g Group) InnerText() string {
	var b strings.Builder
	for i, t := range g.tokens {
		switch {
		case len(g.tokens) == 1:
			b.WriteString(t.InnerText)
		case i == 0:
			b.WriteString(t.InnerText)
			b.WriteString(t.TrailingWS)
		case i == len(g.tokens)-1:
			b.WriteString(t.LeadingWS)
			b.WriteString(t.InnerText)
		default:
			b.WriteString(t.OuterText())
		}
	}
	return b.String()
}

// First returns the group's first token.
func (g Group) First() token.Token {
	return g.tokens[0]
}

// Last returns the group's last token.
func (g Group) Last() token.Token {
	return g.tokens[len(g.tokens)-1]
}

// FromNonEmpty builds a Group directly from a token slice that the caller
// has already established is non-empty. This is the one constructor that
// bypasses Builder's emptiness check — named explicitly so reviewers can
// verify the non-emptiness claim at each call site. The parser itself does
// not call it (dates, like every other run, are built with Builder).
// Panics if tokens is empty.
func FromNonEmpty(tokens []token.Token) Group {
	if len(tokens) == 0 {
		panic("group: FromNonEmpty called with an empty slice")
	}
	cp := make([]token.Token, len(tokens))
	copy(cp, tokens)
	return Group{tokens: cp}
}

// Builder accumulates tokens into a Group. The zero value is ready to use.
type Builder struct {
	tokens []token.Token
}

// Add appends a token to the builder.
func (b *Builder) Add(t token.Token) *Builder {
	b.tokens = append(b.tokens, t)
	return b
}

// Len returns the number of tokens accumulated so far.
func (b *Builder) Len() int {
	return len(b.tokens)
}

// Build returns the accumulated Group. ok is false, and the Group is the
// zero value, if no tokens were added.
func (b *Builder) Build() (g Group, ok bool) {
	if len(b.tokens) == 0 {
		return Group{}, false
	}
	return Group{tokens: b.tokens}, true
}
