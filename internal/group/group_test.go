package group

import (
	"testing"

	"github.com/ledgerfmt/ledgerparse/internal/token"
)

func tok(kind token.Kind, leading, inner, trailing string, offset int) token.Token {
	return token.Token{Kind: kind, InnerText: inner, LeadingWS: leading, TrailingWS: trailing, Offset: offset}
}

func TestBuilderEmptyFails(t *testing.T) {
	var b Builder
	if _, ok := b.Build(); ok {
		t.Fatal("Build() on an empty builder should report false")
	}
}

func TestBuilderNonEmpty(t *testing.T) {
	var b Builder
	b.Add(tok(token.Identifier, "", "Assets", "", 0))
	b.Add(tok(token.Colon, "", ":", "", 6))
	b.Add(tok(token.Identifier, "", "Cash", "", 7))

	g, ok := b.Build()
	if !ok {
		t.Fatal("Build() should succeed with 3 tokens")
	}
	if got, want := g.InnerText(), "Assets:Cash"; got != want {
		t.Fatalf("InnerText() = %q, want %q", got, want)
	}
}

func TestInnerTextTrimsOuterWhitespaceOnly(t *testing.T) {
	var b Builder
	b.Add(tok(token.Identifier, "  ", "Foo", " ", 0))
	b.Add(tok(token.Equal, "", "=", "", 6))
	b.Add(tok(token.Identifier, "", "Bar", "\n", 7))

	g, _ := b.Build()
	if got, want := g.InnerText(), "Foo =Bar"; got != want {
		t.Fatalf("InnerText() = %q, want %q", got, want)
	}
	if got, want := g.Span().Start, 2; got != want {
		t.Fatalf("Span().Start = %d, want %d (leading whitespace excluded)", got, want)
	}
}

func TestSingleTokenGroup(t *testing.T) {
	var b Builder
	b.Add(tok(token.Number, " ", "42", " ", 0))
	g, _ := b.Build()
	if got, want := g.InnerText(), "42"; got != want {
		t.Fatalf("InnerText() = %q, want %q", got, want)
	}
}

func TestFromNonEmptyPanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("FromNonEmpty(nil) should panic")
		}
	}()
	FromNonEmpty(nil)
}

func TestFirstAndLast(t *testing.T) {
	var b Builder
	a := tok(token.Identifier, "", "A", "", 0)
	c := tok(token.Identifier, "", "C", "", 2)
	b.Add(a)
	b.Add(tok(token.Identifier, "", "B", "", 1))
	b.Add(c)

	g, _ := b.Build()
	if g.First() != a {
		t.Fatal("First() did not return the first added token")
	}
	if g.Last() != c {
		t.Fatal("Last() did not return the last added token")
	}
}
