package parser

import (
	"fern/internal/ast"
	"fern/internal/source"
	"fern/internal/token"
)

// Definition parses one top-level definition; the keyword picks the branch.
//
//	def  IDENT [: TYPE] = TERM
//	type IDENT [: KIND] = TYPE
func (p *Parser) Definition() (ast.Def, error) {
	switch tok := p.peek(); tok.Kind {
	case token.KwDef:
		d, err := p.termDef()
		if err != nil {
			return nil, err
		}
		return d, nil
	case token.KwType:
		d, err := p.typeDef()
		if err != nil {
			return nil, err
		}
		return d, nil
	default:
		return nil, &Error{
			Kind:  UnexpectedDefinition,
			Found: tok,
			Span:  source.SpanOf(tok.Pos, tok.Pos),
		}
	}
}

func (p *Parser) termDef() (*ast.TermDef, error) {
	kw := p.advance()
	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	ann, err := annot(p, p.Type)
	if err != nil {
		return nil, err
	}
	if err := p.drop(token.Assign, kw.Pos); err != nil {
		return nil, err
	}
	body, err := p.Term()
	if err != nil {
		return nil, err
	}
	return &ast.TermDef{
		Name:  name,
		Annot: ann,
		Body:  body,
		Span:  source.SpanOf(kw.Pos, body.Right()),
	}, nil
}

func (p *Parser) typeDef() (*ast.TypeDef, error) {
	kw := p.advance()
	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	ann, err := annot(p, p.Kind)
	if err != nil {
		return nil, err
	}
	if err := p.drop(token.Assign, kw.Pos); err != nil {
		return nil, err
	}
	body, err := p.Type()
	if err != nil {
		return nil, err
	}
	return &ast.TypeDef{
		Name:  name,
		Annot: ann,
		Body:  body,
		Span:  source.SpanOf(kw.Pos, body.Right()),
	}, nil
}
