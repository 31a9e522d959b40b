package parser

import (
	"fern/internal/ast"
	"fern/internal/source"
	"fern/internal/token"
)

// Parser — состояние разбора одной последовательности токенов.
// Курсор это индекс в неизменяемом срезе, поэтому снимок/откат стоят O(1).
type Parser struct {
	toks []token.Token
	pos  int
	eof  token.Token // синтетический EOF, если срез им не заканчивается
}

// New creates a parser over toks. The slice is not modified and normally ends
// with the EOF token produced by the lexer.
func New(toks []token.Token) *Parser {
	p := &Parser{toks: toks}
	p.eof = token.Token{Kind: token.EOF, Pos: source.StartPos}
	if n := len(toks); n > 0 {
		last := toks[n-1]
		if last.Kind == token.EOF {
			p.eof = last
		} else {
			p.eof.Pos = last.End()
		}
	}
	return p
}

// Parse parses a whole program: definitions up to end of input.
func Parse(toks []token.Token) (*ast.Program, error) {
	return New(toks).Program()
}

// ParseType parses a single type expression followed by end of input.
func ParseType(toks []token.Token) (ast.Type, error) {
	p := New(toks)
	t, err := p.Type()
	if err != nil {
		return nil, err
	}
	if err := p.drop(token.EOF, source.StartPos); err != nil {
		return nil, err
	}
	return t, nil
}

// ParseTerm parses a single term followed by end of input.
func ParseTerm(toks []token.Token) (ast.Term, error) {
	p := New(toks)
	t, err := p.Term()
	if err != nil {
		return nil, err
	}
	if err := p.drop(token.EOF, source.StartPos); err != nil {
		return nil, err
	}
	return t, nil
}

// ParseKind parses a single kind followed by end of input.
func ParseKind(toks []token.Token) (ast.Kind, error) {
	p := New(toks)
	k, err := p.Kind()
	if err != nil {
		return nil, err
	}
	if err := p.drop(token.EOF, source.StartPos); err != nil {
		return nil, err
	}
	return k, nil
}

// Program parses definitions while the front token is not EOF.
func (p *Parser) Program() (*ast.Program, error) {
	prog := &ast.Program{}
	for !p.at(token.EOF) {
		def, err := p.Definition()
		if err != nil {
			return nil, err
		}
		prog.Defs = append(prog.Defs, def)
	}
	if err := p.drop(token.EOF, source.StartPos); err != nil {
		return nil, err
	}
	return prog, nil
}

// Offset reports how many tokens have been consumed.
func (p *Parser) Offset() int {
	return p.pos
}
