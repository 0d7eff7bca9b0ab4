package parser

import (
	"github.com/ledgerfmt/ledgerparse/internal/ast"
	"github.com/ledgerfmt/ledgerparse/internal/diag"
	"github.com/ledgerfmt/ledgerparse/internal/group"
	"github.com/ledgerfmt/ledgerparse/internal/result"
	"github.com/ledgerfmt/ledgerparse/internal/token"
)

// dateAccum is the value threaded through parseDate's result.All chain: the
// token run built so far, plus the separator kind the first run fixed so
// the optional third component can require the same one.
type dateAccum struct {
	b   group.Builder
	sep token.Kind
}

// parseDate parses a 2-or-3-component date: integer, separator ('/' or
// '-'), integer, and an optional repeat of the same separator plus a third
// integer. Only the lexical shape is validated; component ranges (month
// 1-12, day-of-month, leap years) are never checked.
func (p *Parser) parseDate() (ast.DateNode, bool) {
	r := result.All(dateAccum{},
		func(a dateAccum) (dateAccum, bool) {
			first, ok := p.expectInteger()
			if !ok {
				return a, false
			}
			a.b.Add(first)
			return a, true
		},
		func(a dateAccum) (dateAccum, bool) {
			sep, ok := p.expect(token.Slash, token.Hyphen)
			if !ok {
				return a, false
			}
			a.b.Add(sep)
			a.sep = sep.Kind
			return a, true
		},
		func(a dateAccum) (dateAccum, bool) {
			second, ok := p.expectInteger()
			if !ok {
				return a, false
			}
			a.b.Add(second)
			return a, true
		},
	)

	a, ok := r.Value()
	if !ok {
		g, _ := a.b.Build()
		return ast.DateNode{Raw: g}, false
	}

	if sep2, skipped := p.skipIf(a.sep); skipped {
		a.b.Add(sep2)
		third, ok := p.expectInteger()
		if !ok {
			g, _ := a.b.Build()
			return ast.DateNode{Raw: g}, false
		}
		a.b.Add(third)
	}

	g, _ := a.b.Build()
	return ast.DateNode{Raw: g}, true
}

// commodityStop is the stop set used when slurping a commodity symbol
// adjacent to an amount's number: a second number, a sign, a trailing
// comment, or (implicitly, via slurpUntil) newline/eof all end the run.
var commodityStop = []token.Kind{token.Hyphen, token.Number, token.Comment}

// parseAmount parses a posting's amount: an optional leading '-', then
// either a number (with an optional trailing commodity run) or a leading
// commodity run followed by an optional '-' and a required number. A hard
// space must separate the account that precedes this call from the amount.
func (p *Parser) parseAmount() (ast.Amount, bool) {
	if !p.expectHardSpace() {
		tok := p.peek()
		p.errorAt(diag.UnexpectedToken, tok.Span(), "amount must be separated from account by a hard space")
		return ast.Amount{}, false
	}

	var minus *token.Token
	if m, ok := p.skipIf(token.Hyphen); ok {
		minus = &m
	}

	if p.peekIs(token.Number) {
		num, ok := p.expect(token.Number)
		if !ok {
			return ast.Amount{}, false
		}
		amount := ast.Amount{Number: num, Minus: minus}
		if g, ok := p.slurpUntil(commodityStop...); ok {
			amount.PostCommodity = &g
		}
		return amount, true
	}

	if !p.lineHasNext() {
		tok := p.peek()
		if tok.Kind == token.EOF {
			p.errorAt(diag.UnexpectedEOF, tok.Span(), "expected amount")
		} else {
			p.errorAt(diag.UnexpectedToken, tok.Span(), "expected amount")
		}
		return ast.Amount{}, false
	}

	pre, ok := p.slurpUntil(commodityStop...)
	if !ok {
		tok := p.peek()
		p.errorAt(diag.UnexpectedToken, tok.Span(), "expected commodity or amount")
		return ast.Amount{}, false
	}

	if minus == nil {
		if m, ok := p.skipIf(token.Hyphen); ok {
			minus = &m
		}
	}

	num, ok := p.expect(token.Number)
	if !ok {
		return ast.Amount{}, false
	}
	return ast.Amount{Number: num, Minus: minus, PreCommodity: &pre}, true
}

// parseAccountRef parses either a plain account name (slurped up to a hard
// space) or a virtual-posting account surrounded by '(' ')' (unbalanced) or
// '[' ']' (balanced). An empty account name, bracketed or not, is
// INVALID_ACCOUNT.
func (p *Parser) parseAccountRef() (ast.AccountRef, bool) {
	if p.peekIs(token.LParen) || p.peekIs(token.LBracket) {
		open := p.next()
		vk := ast.Virtual
		closeKind := token.RParen
		if open.Kind == token.LBracket {
			vk = ast.BalancedVirtual
			closeKind = token.RBracket
		}

		contents, ok := p.slurpUntil(closeKind)
		if !ok {
			tok := p.peek()
			p.errorAt(diag.InvalidAccount, tok.Span(), "empty account name")
			p.expect(closeKind)
			return ast.AccountRef{}, false
		}

		closeTok, ok := p.expect(closeKind)
		if !ok {
			return ast.AccountRef{}, false
		}

		return ast.AccountRef{Open: &open, Contents: contents, Close: &closeTok, VirtualKind: vk}, true
	}

	contents, ok := p.slurpUntilHardSpace()
	if !ok {
		tok := p.peek()
		p.errorAt(diag.InvalidAccount, tok.Span(), "expected account name")
		return ast.AccountRef{}, false
	}
	return ast.AccountRef{Contents: contents}, true
}

// parsePosting parses one indented posting line: an account reference,
// followed by an amount if the line has more content.
func (p *Parser) parsePosting() (ast.Posting, bool) {
	account, ok := p.parseAccountRef()
	if !ok {
		return ast.Posting{}, false
	}
	p.registerAccount(account)

	posting := ast.Posting{Account: account}
	if p.lineHasNext() {
		amount, ok := p.parseAmount()
		if !ok {
			return posting, false
		}
		posting.Amount = &amount
	}
	return posting, true
}

func (p *Parser) registerAccount(a ast.AccountRef) {
	name := a.Name()
	if name != "" {
		p.accounts.Add(name, a.Span())
	}
}

// parsePayee parses a transaction's payee: one hard-space-delimited run,
// extended with further runs as long as the line still has content and the
// next token is not a comment. The full text is registered in the payee
// symbol table.
func (p *Parser) parsePayee() (ast.Payee, bool) {
	var b group.Builder

	first, ok := p.slurpUntilHardSpace()
	if !ok {
		tok := p.peek()
		p.errorAt(diag.UnexpectedToken, tok.Span(), "expected payee")
		return ast.Payee{}, false
	}
	for _, t := range first.Tokens() {
		b.Add(t)
	}

	for p.lineHasNext() && !p.peekIs(token.Comment) {
		next, ok := p.slurpUntilHardSpace()
		if !ok {
			break
		}
		for _, t := range next.Tokens() {
			b.Add(t)
		}
	}

	g, _ := b.Build()
	payee := ast.Payee{Raw: g}
	p.payees.Add(payee.Text(), payee.Span())
	return payee, true
}

// parseComment parses a single comment token followed by end-of-line.
func (p *Parser) parseComment() (ast.Comment, bool) {
	tok, ok := p.expect(token.Comment)
	if !ok {
		return ast.Comment{}, false
	}
	if !p.expectEndOfLine() {
		return ast.Comment{}, false
	}
	body := tok.InnerText
	var commentChar byte
	if len(body) > 0 {
		commentChar = body[0]
		body = body[1:]
	}
	return ast.Comment{Source: tok, CommentChar: commentChar, Body: body}, true
}

// parseTransaction parses a dated entry: the header (date, optional aux
// date, optional flag, optional code, optional payee, optional trailing
// comment) and then the indented postings and inter-posting comments that
// follow.
func (p *Parser) parseTransaction() (ast.Transaction, bool) {
	date, ok := p.parseDate()
	if !ok {
		return ast.Transaction{}, false
	}
	txn := ast.Transaction{Date: date}

	if p.peekIs(token.Equal) {
		eq := p.next()
		auxDate, ok := p.parseDate()
		if !ok {
			return txn, false
		}
		txn.Aux = &ast.AuxDate{Equal: eq, Date: auxDate}
	}

	p.inlineSpace()

	if p.peekIs(token.Star) || p.peekIs(token.Bang) {
		flag := p.next()
		if flag.Kind == token.Star {
			txn.Cleared = &flag
		} else {
			txn.Pending = &flag
		}
		if p.peekIs(token.Star) || p.peekIs(token.Bang) {
			tok := p.peek()
			p.errorAt(diag.UnexpectedToken, tok.Span(), "a transaction may have at most one of '*' or '!'")
			p.next()
		}
	}

	p.inlineSpace()

	if p.peekIs(token.LParen) {
		code, ok := p.parseCode()
		if !ok {
			return txn, false
		}
		txn.Code = &code
	}

	p.inlineSpace()

	if p.lineHasNext() && !p.peekIs(token.Comment) {
		payee, ok := p.parsePayee()
		if !ok {
			return txn, false
		}
		txn.Payee = &payee
	}

	if p.peekIs(token.Comment) {
		comment, ok := p.parseComment()
		if !ok {
			return txn, false
		}
		txn.Comments = append(txn.Comments, comment)
	} else if !p.expectEndOfLine() {
		return txn, false
	}

	// Unlike the sub-directive loop (see whileIndented), a comment line
	// consumes its own end-of-line as part of parseComment, while a posting
	// line requires one afterward — so the two branches can't share a
	// single uniform "run body, then require end-of-line" shape.
	for p.nextIsIndented() {
		if p.peekIs(token.Comment) {
			comment, ok := p.parseComment()
			if !ok {
				break
			}
			if n := len(txn.Postings); n > 0 {
				txn.Postings[n-1].Comments = append(txn.Postings[n-1].Comments, comment)
			} else {
				txn.Comments = append(txn.Comments, comment)
			}
			continue
		}

		posting, ok := p.parsePosting()
		if !ok {
			return txn, false
		}
		txn.Postings = append(txn.Postings, posting)
		if !p.expectEndOfLine() {
			return txn, false
		}
	}

	return txn, true
}

// parseCode parses a transaction's "(contents)" code.
func (p *Parser) parseCode() (ast.Code, bool) {
	open, ok := p.expect(token.LParen)
	if !ok {
		return ast.Code{}, false
	}
	code := ast.Code{Open: open}
	if contents, ok := p.slurpUntil(token.RParen); ok {
		code.Contents = &contents
	}
	closeTok, ok := p.expect(token.RParen)
	if !ok {
		return code, false
	}
	code.Close = closeTok
	return code, true
}
