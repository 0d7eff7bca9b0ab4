package lexer

import (
	"strings"
	"testing"

	"github.com/ledgerfmt/ledgerparse/internal/token"
)

func render(source string) string {
	var b strings.Builder
	for _, tok := range Tokens(New(source)) {
		b.WriteString(tok.OuterText())
	}
	return b.String()
}

func TestRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"   \t  ",
		"2024-06-12 Grocery Store\n  Expenses:Food  $50.23\n  Assets:Checking\n",
		"; a leading comment\ncomment\n  body text\nend comment\n",
		"alias Foo=Bar=Baz\n",
		"  indented with no preceding newline",
	}
	for _, src := range cases {
		if got := render(src); got != src {
			t.Errorf("render(%q) = %q, want exact round-trip", src, got)
		}
	}
}

func TestEOFCarriesTrailingWhitespace(t *testing.T) {
	// Whitespace after a real token becomes that token's TrailingWS, so the
	// EOF token only carries whitespace that no token precedes.
	toks := Tokens(New("   "))
	last := toks[len(toks)-1]
	if last.Kind != token.EOF {
		t.Fatalf("last token kind = %v, want EOF", last.Kind)
	}
	if !last.Virtual {
		t.Fatal("EOF token should be marked Virtual")
	}
	if last.LeadingWS != "   " {
		t.Fatalf("EOF LeadingWS = %q, want %q", last.LeadingWS, "   ")
	}
}

func TestWhitespaceNeverEmittedExternally(t *testing.T) {
	for _, tok := range Tokens(New("a   b\tc")) {
		if tok.Kind == token.Whitespace {
			t.Fatalf("Whitespace token leaked externally: %+v", tok)
		}
	}
}

func TestHardSpaceDetection(t *testing.T) {
	toks := Tokens(New("a  b\tc d"))
	// a(trailing "  ") b(trailing "\t") c(trailing " ") d
	if !toks[0].EndsWithHardSpace() {
		t.Fatal("two spaces after 'a' should be a hard space")
	}
	if !toks[1].EndsWithHardSpace() {
		t.Fatal("a tab after 'b' should be a hard space")
	}
	if toks[2].EndsWithHardSpace() {
		t.Fatal("a single space after 'c' should not be a hard space")
	}
}

func TestSemicolonCommentAnywhereOnLine(t *testing.T) {
	toks := Tokens(New("2024-06-12 Payee ; trailing note\n"))
	found := false
	for _, tok := range toks {
		if tok.Kind == token.Comment {
			found = true
			if !strings.HasPrefix(tok.InnerText, ";") {
				t.Fatalf("comment inner text %q should start with ';'", tok.InnerText)
			}
		}
	}
	if !found {
		t.Fatal("expected a Comment token for the trailing ';' note")
	}
}

func TestLineMarkerOnlyAtLineStart(t *testing.T) {
	// '#' mid-line (after non-whitespace content started the line) is not a
	// comment marker; only ';' is recognized anywhere on the line.
	toks := Tokens(New("foo # not a comment\n"))
	for _, tok := range toks {
		if tok.Kind == token.Comment {
			t.Fatalf("did not expect a Comment token, got %+v", tok)
		}
	}
}

func TestLineMarkerAtLineStart(t *testing.T) {
	toks := Tokens(New("# a comment\nfoo\n"))
	if toks[0].Kind != token.Comment {
		t.Fatalf("first token kind = %v, want Comment", toks[0].Kind)
	}
}

func TestNumberAndIdentifier(t *testing.T) {
	toks := Tokens(New("50.23 Food"))
	if toks[0].Kind != token.Number || toks[0].InnerText != "50.23" {
		t.Fatalf("first token = %+v, want Number \"50.23\"", toks[0])
	}
	if toks[1].Kind != token.Identifier || toks[1].InnerText != "Food" {
		t.Fatalf("second token = %+v, want Identifier \"Food\"", toks[1])
	}
}

func TestSingleCharKinds(t *testing.T) {
	toks := Tokens(New("=~(){}[]-/*!:@"))
	wantKinds := []token.Kind{
		token.Equal, token.Tilde, token.LParen, token.RParen,
		token.LBrace, token.RBrace, token.LBracket, token.RBracket,
		token.Hyphen, token.Slash, token.Star, token.Bang, token.Colon, token.At,
		token.EOF,
	}
	if len(toks) != len(wantKinds) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(wantKinds))
	}
	for i, want := range wantKinds {
		if toks[i].Kind != want {
			t.Fatalf("token %d kind = %v, want %v", i, toks[i].Kind, want)
		}
	}
}

func TestPeekIsIdempotent(t *testing.T) {
	l := New("foo bar")
	first := l.Peek()
	second := l.Peek()
	if first != second {
		t.Fatal("repeated Peek() calls should return the identical token")
	}
	consumed := l.Next()
	if consumed != first {
		t.Fatal("Next() should return the previously peeked token")
	}
}
