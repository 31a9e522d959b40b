package parser

import (
	"fern/internal/ast"
	"fern/internal/source"
	"fern/internal/token"
)

// Kind parses a kind expression.
//
//	KIND1 ::= KIND2 -> KIND1 | KIND2
//	KIND2 ::= * | ( KIND1 )
func (p *Parser) Kind() (ast.Kind, error) {
	dom, err := p.kindAtom()
	if err != nil {
		return nil, err
	}
	if !p.at(token.Arrow) {
		return dom, nil
	}
	p.advance()
	cod, err := p.Kind()
	if err != nil {
		return nil, err
	}
	return &ast.ArrowKind{
		Domain:   dom,
		Codomain: cod,
		Span:     source.Between(dom, cod),
	}, nil
}

func (p *Parser) kindAtom() (ast.Kind, error) {
	switch tok := p.peek(); tok.Kind {
	case token.Star:
		p.advance()
		return &ast.StarKind{Span: tok.Span()}, nil
	case token.LParen:
		p.advance()
		k, err := p.Kind()
		if err != nil {
			return nil, err
		}
		if err := p.drop(token.RParen, tok.Pos); err != nil {
			return nil, err
		}
		return k, nil
	default:
		return nil, p.unexpected(CtxKind)
	}
}
