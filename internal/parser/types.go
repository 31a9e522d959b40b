package parser

import (
	"fern/internal/ast"
	"fern/internal/source"
	"fern/internal/token"
)

// Уровни типов, от самого слабого к самому сильному:
//
//	TYPE1 ::= λ IDENT [: KIND] . TYPE1 | TYPE2
//	TYPE2 ::= forall IDENT [: KIND] . TYPE2 | TYPE3
//	TYPE3 ::= TYPE4 -> TYPE2 | TYPE4
//	TYPE4 ::= TYPE4 TYPE5 | TYPE5
//	TYPE5 ::= IDENT | ( TYPE1 )

// Type parses a type expression at the loosest level.
func (p *Parser) Type() (ast.Type, error) {
	if !p.at(token.Lambda) {
		return p.typeForall()
	}
	kw := p.advance()
	binder, ann, err := p.typeBinder(kw)
	if err != nil {
		return nil, err
	}
	body, err := p.Type()
	if err != nil {
		return nil, err
	}
	return &ast.LambdaType{
		Binder: binder,
		Annot:  ann,
		Body:   body,
		Span:   source.SpanOf(kw.Pos, body.Right()),
	}, nil
}

func (p *Parser) typeForall() (ast.Type, error) {
	if !p.at(token.KwForall) {
		return p.typeArrow()
	}
	kw := p.advance()
	binder, ann, err := p.typeBinder(kw)
	if err != nil {
		return nil, err
	}
	body, err := p.typeForall()
	if err != nil {
		return nil, err
	}
	return &ast.ForallType{
		Binder: binder,
		Annot:  ann,
		Body:   body,
		Span:   source.SpanOf(kw.Pos, body.Right()),
	}, nil
}

// typeBinder parses `IDENT [: KIND] .` after λ or forall.
func (p *Parser) typeBinder(kw token.Token) (ast.Ident, ast.Kind, error) {
	binder, err := p.ident()
	if err != nil {
		return ast.Ident{}, nil, err
	}
	ann, err := annot(p, p.Kind)
	if err != nil {
		return ast.Ident{}, nil, err
	}
	if err := p.drop(token.Dot, kw.Pos); err != nil {
		return ast.Ident{}, nil, err
	}
	return binder, ann, nil
}

func (p *Parser) typeArrow() (ast.Type, error) {
	dom, err := p.typeApp()
	if err != nil {
		return nil, err
	}
	if !p.at(token.Arrow) {
		return dom, nil
	}
	p.advance()
	// кодомен на уровне forall: правая ассоциативность
	cod, err := p.typeForall()
	if err != nil {
		return nil, err
	}
	return &ast.ArrowType{
		Domain:   dom,
		Codomain: cod,
		Span:     source.Between(dom, cod),
	}, nil
}

func (p *Parser) typeApp() (ast.Type, error) {
	head, args, err := application(p, p.typeAtom, p.typeAtom)
	if err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return head, nil
	}
	return &ast.AppType{
		Head: head,
		Args: args,
		Span: source.Between(head, args[len(args)-1]),
	}, nil
}

func (p *Parser) typeAtom() (ast.Type, error) {
	switch tok := p.peek(); tok.Kind {
	case token.Ident:
		p.advance()
		return &ast.VarType{Name: tok.Text, Span: tok.Span()}, nil
	case token.LParen:
		p.advance()
		t, err := p.Type()
		if err != nil {
			return nil, err
		}
		if err := p.drop(token.RParen, tok.Pos); err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, p.unexpected(CtxType)
	}
}
