// Package diag defines the parser's diagnostic type. Diagnostics carry only
// a kind, a message, and a span — resolving a span to a line/column pair is
// a collaborator's job (spec.md §6), not the parser's, since the parser
// never needs human-facing positions internally.
package diag

import "github.com/ledgerfmt/ledgerparse/internal/span"

// Kind is the closed set of diagnostic kinds the parser can emit
// (spec.md §7).
type Kind int

const (
	UnexpectedToken Kind = iota
	UnexpectedEOF
	InvalidDate
	InvalidAccount
	InvalidInteger
	LeadingSpace
)

var kindNames = map[Kind]string{
	UnexpectedToken: "UNEXPECTED_TOKEN",
	UnexpectedEOF:   "UNEXPECTED_EOF",
	InvalidDate:     "INVALID_DATE",
	InvalidAccount:  "INVALID_ACCOUNT",
	InvalidInteger:  "INVALID_INTEGER",
	LeadingSpace:    "LEADING_SPACE",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// Code returns a stable "E_..." identifier for the kind, the way the
// teacher's parser.ErrUnexpectedToken-style constants let callers switch on
// error identity instead of pattern-matching messages.
func (k Kind) Code() string {
	return "E_" + k.String()
}

// Diagnostic is a single parse error: a kind, a human message, and the span
// of source it applies to.
type Diagnostic struct {
	Kind    Kind
	Message string
	Span    span.Span
}

// New builds a Diagnostic.
func New(kind Kind, message string, sp span.Span) Diagnostic {
	return Diagnostic{Kind: kind, Message: message, Span: sp}
}

func (d Diagnostic) Error() string {
	return d.Message
}
