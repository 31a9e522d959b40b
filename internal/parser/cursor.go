package parser

import (
	"fern/internal/ast"
	"fern/internal/source"
	"fern/internal/token"
)

// snapshot — позиция курсора; откат это просто присваивание
type snapshot int

func (p *Parser) snapshot() snapshot { return snapshot(p.pos) }

func (p *Parser) restore(s snapshot) { p.pos = int(s) }

// peek returns the front token. Past the end it keeps returning EOF.
func (p *Parser) peek() token.Token {
	if p.pos < len(p.toks) {
		return p.toks[p.pos]
	}
	return p.eof
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

// advance съедает текущий токен. EOF никогда не съедается.
func (p *Parser) advance() token.Token {
	tok := p.peek()
	if tok.Kind != token.EOF {
		p.pos++
	}
	return tok
}

// drop consumes a required token of kind k. On mismatch the error spans from
// lb to the offending token.
func (p *Parser) drop(k token.Kind, lb source.Pos) error {
	tok := p.peek()
	if tok.Kind != k {
		return &Error{
			Kind:     TokenMismatch,
			Expected: k,
			Found:    tok,
			Span:     source.SpanOf(lb, tok.Pos),
		}
	}
	p.advance()
	return nil
}

// ident consumes an identifier used as a binder or a defined name.
func (p *Parser) ident() (ast.Ident, error) {
	tok := p.peek()
	if tok.Kind != token.Ident {
		return ast.Ident{}, &Error{
			Kind:  ExpectedIdentifier,
			Found: tok,
			Span:  source.SpanOf(tok.Pos, tok.Pos),
		}
	}
	p.advance()
	return ast.Ident{Name: tok.Text, Span: tok.Span()}, nil
}

// unexpected is the failure of an atomic production in category ctx.
func (p *Parser) unexpected(ctx Context) error {
	tok := p.peek()
	return &Error{
		Kind:    UnexpectedToken,
		Context: ctx,
		Found:   tok,
		Span:    source.SpanOf(tok.Pos, tok.Pos),
	}
}
