package diag

import (
	"testing"

	"github.com/ledgerfmt/ledgerparse/internal/span"
)

func TestKindCode(t *testing.T) {
	cases := map[Kind]string{
		UnexpectedToken: "E_UNEXPECTED_TOKEN",
		UnexpectedEOF:   "E_UNEXPECTED_EOF",
		InvalidDate:     "E_INVALID_DATE",
		InvalidAccount:  "E_INVALID_ACCOUNT",
		InvalidInteger:  "E_INVALID_INTEGER",
		LeadingSpace:    "E_LEADING_SPACE",
	}
	for kind, want := range cases {
		if got := kind.Code(); got != want {
			t.Errorf("%v.Code() = %q, want %q", kind, got, want)
		}
	}
}

func TestDiagnosticError(t *testing.T) {
	d := New(UnexpectedToken, "unexpected token FOO", span.New(3, 6))
	if d.Error() != "unexpected token FOO" {
		t.Errorf("Error() = %q, want the message", d.Error())
	}
}

func TestLineTablePosition(t *testing.T) {
	source := "line one\nline two\nline three"
	lt := NewLineTable(source)

	cases := []struct {
		offset     int
		line, col  int
	}{
		{0, 1, 1},
		{4, 1, 5},
		{9, 2, 1},
		{19, 3, 2},
	}
	for _, c := range cases {
		line, col := lt.Position(c.offset)
		if line != c.line || col != c.col {
			t.Errorf("Position(%d) = (%d, %d), want (%d, %d)", c.offset, line, col, c.line, c.col)
		}
	}
}

func TestLineTableFormat(t *testing.T) {
	source := "bad line\n"
	lt := NewLineTable(source)
	d := New(UnexpectedToken, "unexpected token", span.New(4, 8))

	got := lt.Format("x.ledger", d)
	want := "x.ledger:1:5: unexpected token (E_UNEXPECTED_TOKEN)"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestSpanText(t *testing.T) {
	source := "Expenses:Food"
	if got := SpanText(source, span.New(0, 8)); got != "Expenses" {
		t.Errorf("SpanText() = %q, want %q", got, "Expenses")
	}
}
