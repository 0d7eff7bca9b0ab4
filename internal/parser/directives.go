package parser

import (
	"github.com/ledgerfmt/ledgerparse/internal/ast"
	"github.com/ledgerfmt/ledgerparse/internal/diag"
	"github.com/ledgerfmt/ledgerparse/internal/token"
)

// commentBlockNames are the identifiers that open a multi-line,
// opaque-body directive terminated by "end <name>".
var commentBlockNames = map[string]bool{
	"comment": true,
	"test":    true,
}

// parseAlias parses "alias <name>=<value>", where value may itself contain
// '=' bytes since it is slurped to end-of-line rather than parsed token by
// token.
func (p *Parser) parseAlias(aliasTok token.Token) (ast.Alias, bool) {
	name, ok := p.slurpUntil(token.Equal)
	if !ok {
		tok := p.peek()
		if tok.Kind == token.Equal {
			p.errorAt(diag.UnexpectedToken, tok.Span(), "alias requires a name before '='")
		} else {
			p.errorAt(diag.UnexpectedEOF, tok.Span(), "alias requires '=' followed by a value")
		}
		return ast.Alias{}, false
	}

	eq, ok := p.expect(token.Equal)
	if !ok {
		return ast.Alias{}, false
	}

	value, ok := p.slurp()
	if !ok {
		tok := p.peek()
		if tok.Kind == token.EOF {
			p.errorAt(diag.UnexpectedEOF, tok.Span(), "alias requires a value after '='")
		} else {
			p.errorAt(diag.UnexpectedToken, tok.Span(), "alias requires a value after '='")
		}
		return ast.Alias{}, false
	}

	if !p.expectEndOfLine() {
		return ast.Alias{}, false
	}

	return ast.Alias{AliasTok: aliasTok, Name: name, Equal: eq, Value: value}, true
}

// parseApply parses "apply <name> [args]".
func (p *Parser) parseApply(applyTok token.Token) (ast.Apply, bool) {
	name, ok := p.expect(token.Identifier)
	if !ok {
		return ast.Apply{}, false
	}

	apply := ast.Apply{ApplyTok: applyTok, Name: name}
	if args, ok := p.slurp(); ok {
		apply.Args = &args
	}
	if !p.expectEndOfLine() {
		return apply, false
	}
	return apply, true
}

// parseEnd parses "end [apply] <name>".
func (p *Parser) parseEnd(endTok token.Token) (ast.End, bool) {
	end := ast.End{EndTok: endTok}

	if tok, ok := p.peekApplyKeyword(); ok {
		apply := p.next()
		end.ApplyTok = &apply
		_ = tok
	}

	name, ok := p.expect(token.Identifier)
	if !ok {
		return end, false
	}
	end.Name = name

	if !p.expectEndOfLine() {
		return end, false
	}
	return end, true
}

func (p *Parser) peekApplyKeyword() (token.Token, bool) {
	tok := p.peek()
	if tok.Kind == token.Identifier && tok.InnerText == "apply" {
		return tok, true
	}
	return token.Token{}, false
}

// parseCommentBlock parses a "comment"/"test" block: the opening line, then
// everything up to and including "end <name>". The text before that
// terminator is kept as opaque body text rather than parsed as ledger
// syntax; the terminator's two tokens are stored as EndTok and EndName.
func (p *Parser) parseCommentBlock(startName token.Token) (ast.CommentDirective, bool) {
	opening, ok := p.consumeEndOfLine()
	if !ok {
		return ast.CommentDirective{}, false
	}

	body, matched, ok := p.untilSequence("end", startName.InnerText)
	if !ok {
		tok := p.peek()
		p.errorAt(diag.UnexpectedEOF, tok.Span(),
			"unterminated comment block: expected \"end "+startName.InnerText+"\"")
		return ast.CommentDirective{}, false
	}

	// The newline that ended the opening line carries the first body
	// line's indentation as its TrailingWS (spec.md §4.7): this lexer
	// attaches inter-token whitespace to the preceding token, so
	// indentation lives here rather than on the first body token's
	// LeadingWS.
	text := opening.TrailingWS
	for _, t := range body {
		text += t.OuterText()
	}

	eol := p.expectEndOfLine()

	return ast.CommentDirective{
		StartName: startName,
		Body:      text,
		EndTok:    matched[0],
		EndName:   matched[1],
	}, eol
}

// parseSubDirective parses one indented "key [value]" line nested under a
// standard directive.
func (p *Parser) parseSubDirective() (ast.SubDirective, bool) {
	key, ok := p.expect(token.Identifier)
	if !ok {
		return ast.SubDirective{}, false
	}
	sub := ast.SubDirective{Key: key}
	if value, ok := p.slurp(); ok {
		sub.Value = &value
	}
	return sub, true
}

// parseStandardDirective parses "<name> [argument]" followed by zero or
// more indented sub-directives.
func (p *Parser) parseStandardDirective(name token.Token) (ast.Directive, bool) {
	directive := ast.Directive{Name: name}
	if arg, ok := p.slurp(); ok {
		directive.Argument = &arg
	}
	if !p.expectEndOfLine() {
		return directive, false
	}

	p.whileIndented(func() bool {
		sub, ok := p.parseSubDirective()
		if ok {
			directive.SubDirectives = append(directive.SubDirectives, sub)
		}
		return ok
	})

	return directive, true
}

// parseDirective dispatches on the leading identifier's text to the
// appropriate directive production.
func (p *Parser) parseDirective() (ast.Node, bool) {
	name, ok := p.expect(token.Identifier)
	if !ok {
		return nil, false
	}

	switch {
	case name.InnerText == "alias":
		return p.parseAlias(name)
	case name.InnerText == "apply":
		return p.parseApply(name)
	case name.InnerText == "end":
		return p.parseEnd(name)
	case commentBlockNames[name.InnerText]:
		return p.parseCommentBlock(name)
	default:
		return p.parseStandardDirective(name)
	}
}
