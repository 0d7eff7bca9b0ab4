// Package ast defines the concrete syntax tree the parser builds: a closed
// set of node types, each carrying its own span, grounded on the teacher's
// pkg/ast node hierarchy (internal/ast/ast.go's Node/Expression/Statement
// split) but flattened to a single closed sum since this grammar has no
// expression/statement distinction — only top-level children and the
// pieces a transaction or directive is made of.
package ast

import (
	"github.com/ledgerfmt/ledgerparse/internal/group"
	"github.com/ledgerfmt/ledgerparse/internal/span"
	"github.com/ledgerfmt/ledgerparse/internal/token"
)

// Node is implemented by every tree element. node is unexported so the
// set of node types is closed to this package, the way the teacher's
// ast.Node restricts Statement/Expression to its own constructors.
type Node interface {
	Span() span.Span
	node()
}

// DateNode holds the raw token run of a date: 2 or 3 integers separated by
// '/' or '-'.
type DateNode struct {
	Raw group.Group
}

func (d DateNode) Span() span.Span { return d.Raw.Span() }
func (DateNode) node()             {}

// Text returns the date's literal source text (no surrounding whitespace).
func (d DateNode) Text() string { return d.Raw.InnerText() }

// AuxDate is the optional secondary date after '=' on a transaction header.
type AuxDate struct {
	Equal token.Token
	Date  DateNode
}

func (a AuxDate) Span() span.Span { return span.Combine(a.Equal.Span(), a.Date.Span()) }
func (AuxDate) node()             {}

// Code is a transaction's parenthesized code, e.g. "(1234)". Contents is
// nil for an empty code ("()").
type Code struct {
	Open     token.Token
	Contents *group.Group
	Close    token.Token
}

func (c Code) Span() span.Span {
	spans := []span.Span{c.Open.Span()}
	if c.Contents != nil {
		spans = append(spans, c.Contents.Span())
	}
	spans = append(spans, c.Close.Span())
	return span.Combine(spans...)
}
func (Code) node() {}

// Text returns the code's contents text, excluding the parens.
func (c Code) Text() string {
	if c.Contents == nil {
		return ""
	}
	return c.Contents.InnerText()
}

// Amount is a posting's numeric value, with optional sign and commodity
// symbol attached before or after the number.
type Amount struct {
	Number        token.Token
	Minus         *token.Token
	PreCommodity  *group.Group
	PostCommodity *group.Group
}

func (a Amount) Span() span.Span {
	spans := []span.Span{a.Number.Span()}
	if a.Minus != nil {
		spans = append(spans, a.Minus.Span())
	}
	if a.PreCommodity != nil {
		spans = append(spans, a.PreCommodity.Span())
	}
	if a.PostCommodity != nil {
		spans = append(spans, a.PostCommodity.Span())
	}
	return span.Combine(spans...)
}
func (Amount) node() {}

// Negative reports whether a leading '-' was consumed.
func (a Amount) Negative() bool { return a.Minus != nil }

// VirtualKind classifies how an AccountRef was delimited.
type VirtualKind int

const (
	// NotVirtual is a plain, undelimited account reference.
	NotVirtual VirtualKind = iota
	// Virtual is a '(' ... ')'-delimited unbalanced virtual posting.
	Virtual
	// BalancedVirtual is a '[' ... ']'-delimited balanced virtual posting.
	BalancedVirtual
)

// AccountRef is an account name, optionally surrounded by virtual-posting
// delimiters.
type AccountRef struct {
	Open        *token.Token
	Contents    group.Group
	Close       *token.Token
	VirtualKind VirtualKind
}

func (a AccountRef) Span() span.Span {
	if a.Open != nil && a.Close != nil {
		return span.Combine(a.Open.Span(), a.Contents.Span(), a.Close.Span())
	}
	return a.Contents.Span()
}
func (AccountRef) node() {}

// Name returns the account's literal name text, excluding delimiters.
func (a AccountRef) Name() string { return a.Contents.InnerText() }

// Payee is a transaction's payee/description, possibly spanning several
// hard-space-separated runs.
type Payee struct {
	Raw group.Group
}

func (p Payee) Span() span.Span { return p.Raw.Span() }
func (Payee) node()             {}

// Text returns the payee's literal text.
func (p Payee) Text() string { return p.Raw.InnerText() }

// Comment is a single comment line: the semicolon/hash/etc. marker byte
// plus the remainder of the line.
type Comment struct {
	Source      token.Token
	CommentChar byte
	Body        string
}

func (c Comment) Span() span.Span { return c.Source.Span() }
func (Comment) node()             {}

// Tags returns the comment's ":tag:"-style tags.
//
// TODO: extraction is not implemented; historical revisions of this
// grammar disagree on tag syntax, so this always returns an empty, non-nil
// map rather than guess.
func (c Comment) Tags() map[string]string {
	return map[string]string{}
}

// TypedTags returns the comment's "key(type): value"-style tags, keyed by
// name with [2]string{type, value}.
//
// TODO: extraction is not implemented; see Tags.
func (c Comment) TypedTags() map[string][2]string {
	return map[string][2]string{}
}

// Posting is one account/amount line inside a Transaction.
type Posting struct {
	Account  AccountRef
	Amount   *Amount
	Comments []Comment
}

func (p Posting) Span() span.Span {
	spans := []span.Span{p.Account.Span()}
	if p.Amount != nil {
		spans = append(spans, p.Amount.Span())
	}
	for _, c := range p.Comments {
		spans = append(spans, c.Span())
	}
	return span.Combine(spans...)
}
func (Posting) node() {}

// Transaction is a dated ledger entry with optional flag/code/payee header
// and a list of postings.
type Transaction struct {
	Date     DateNode
	Aux      *AuxDate
	Cleared  *token.Token // '*'
	Pending  *token.Token // '!'
	Code     *Code
	Payee    *Payee
	Comments []Comment
	Postings []Posting
}

func (t Transaction) Span() span.Span {
	spans := []span.Span{t.Date.Span()}
	if t.Aux != nil {
		spans = append(spans, t.Aux.Span())
	}
	if t.Cleared != nil {
		spans = append(spans, t.Cleared.Span())
	}
	if t.Pending != nil {
		spans = append(spans, t.Pending.Span())
	}
	if t.Code != nil {
		spans = append(spans, t.Code.Span())
	}
	if t.Payee != nil {
		spans = append(spans, t.Payee.Span())
	}
	for _, c := range t.Comments {
		spans = append(spans, c.Span())
	}
	for _, p := range t.Postings {
		spans = append(spans, p.Span())
	}
	return span.Combine(spans...)
}
func (Transaction) node() {}

// SubDirective is one indented "key value" line nested under a standard
// Directive.
type SubDirective struct {
	Key   token.Token
	Value *group.Group
}

func (s SubDirective) Span() span.Span {
	if s.Value != nil {
		return span.Combine(s.Key.Span(), s.Value.Span())
	}
	return s.Key.Span()
}
func (SubDirective) node() {}

// Directive is a top-level "name [argument]" statement with optional
// indented sub-directives (e.g. "account Assets:Cash", "commodity USD").
type Directive struct {
	Name          token.Token
	Argument      *group.Group
	SubDirectives []SubDirective
}

func (d Directive) Span() span.Span {
	spans := []span.Span{d.Name.Span()}
	if d.Argument != nil {
		spans = append(spans, d.Argument.Span())
	}
	for _, s := range d.SubDirectives {
		spans = append(spans, s.Span())
	}
	return span.Combine(spans...)
}
func (Directive) node() {}

// Apply is an "apply <name> [args]" directive, opening a scope that a
// matching End closes.
type Apply struct {
	ApplyTok token.Token
	Name     token.Token
	Args     *group.Group
}

func (a Apply) Span() span.Span {
	spans := []span.Span{a.ApplyTok.Span(), a.Name.Span()}
	if a.Args != nil {
		spans = append(spans, a.Args.Span())
	}
	return span.Combine(spans...)
}
func (Apply) node() {}

// End is an "end [apply] <name>" directive closing a scope opened by Apply.
type End struct {
	EndTok   token.Token
	ApplyTok *token.Token
	Name     token.Token
}

func (e End) Span() span.Span {
	spans := []span.Span{e.EndTok.Span()}
	if e.ApplyTok != nil {
		spans = append(spans, e.ApplyTok.Span())
	}
	spans = append(spans, e.Name.Span())
	return span.Combine(spans...)
}
func (End) node() {}

// Alias is an "alias <name>=<value>" directive. Value may itself contain
// '=' bytes, since the right-hand side is slurped to end-of-line rather
// than parsed token-by-token.
type Alias struct {
	AliasTok token.Token
	Name     group.Group
	Equal    token.Token
	Value    group.Group
}

func (a Alias) Span() span.Span {
	return span.Combine(a.AliasTok.Span(), a.Name.Span(), a.Equal.Span(), a.Value.Span())
}
func (Alias) node() {}

// CommentDirective is a multi-line "comment ... end comment" (or
// "test ... end test") block whose body is opaque text, not parsed as
// ledger syntax.
type CommentDirective struct {
	StartName token.Token
	Body      string
	EndTok    token.Token
	EndName   token.Token
}

func (c CommentDirective) Span() span.Span {
	return span.Combine(c.StartName.Span(), c.EndTok.Span(), c.EndName.Span())
}
func (CommentDirective) node() {}

// File is the root of the tree: the ordered list of top-level children
// produced by a single parse.
type File struct {
	Children []Node
}

func (f File) Span() span.Span {
	if len(f.Children) == 0 {
		return span.New(0, 0)
	}
	spans := make([]span.Span, len(f.Children))
	for i, c := range f.Children {
		spans[i] = c.Span()
	}
	return span.Combine(spans...)
}
func (File) node() {}
