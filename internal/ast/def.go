package ast

import "fern/internal/source"

// TermDef is `def Name [: Annot] = Body`.
type TermDef struct {
	Name  Ident
	Annot Type // nil when absent
	Body  Term
	source.Span
}

// TypeDef is `type Name [: Annot] = Body`.
type TypeDef struct {
	Name  Ident
	Annot Kind // nil when absent
	Body  Type
	source.Span
}

func (*TermDef) node()            {}
func (*TermDef) defNode()         {}
func (d *TermDef) DefName() Ident { return d.Name }
func (*TypeDef) node()            {}
func (*TypeDef) defNode()         {}
func (d *TypeDef) DefName() Ident { return d.Name }
