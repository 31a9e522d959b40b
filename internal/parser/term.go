package parser

import (
	"fern/internal/ast"
	"fern/internal/source"
	"fern/internal/token"
)

//	TERM1 ::= λ IDENT [: TYPE] . TERM1 | TERM2
//	TERM2 ::= TERM2 TERM3 | TERM3
//	TERM3 ::= IDENT | ( TERM1 )

// Term parses a term at the loosest level.
func (p *Parser) Term() (ast.Term, error) {
	if !p.at(token.Lambda) {
		return p.termApp()
	}
	kw := p.advance()
	binder, err := p.ident()
	if err != nil {
		return nil, err
	}
	ann, err := annot(p, p.Type)
	if err != nil {
		return nil, err
	}
	if err := p.drop(token.Dot, kw.Pos); err != nil {
		return nil, err
	}
	body, err := p.Term()
	if err != nil {
		return nil, err
	}
	return &ast.LambdaTerm{
		Binder: binder,
		Annot:  ann,
		Body:   body,
		Span:   source.SpanOf(kw.Pos, body.Right()),
	}, nil
}

func (p *Parser) termApp() (ast.Term, error) {
	head, args, err := application(p, p.termAtom, p.termAtom)
	if err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return head, nil
	}
	return &ast.AppTerm{
		Head: head,
		Args: args,
		Span: source.Between(head, args[len(args)-1]),
	}, nil
}

func (p *Parser) termAtom() (ast.Term, error) {
	switch tok := p.peek(); tok.Kind {
	case token.Ident:
		p.advance()
		return &ast.VarTerm{Name: tok.Text, Span: tok.Span()}, nil
	case token.LParen:
		p.advance()
		t, err := p.Term()
		if err != nil {
			return nil, err
		}
		if err := p.drop(token.RParen, tok.Pos); err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, p.unexpected(CtxTerm)
	}
}
