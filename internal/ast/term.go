package ast

import "fern/internal/source"

// LambdaTerm is a term-level abstraction λ Binder [: Annot]. Body.
type LambdaTerm struct {
	Binder Ident
	Annot  Type // nil when absent
	Body   Term
	source.Span
}

// AppTerm is curried application. Args is never empty.
type AppTerm struct {
	Head Term
	Args []Term
	source.Span
}

// VarTerm is a reference to a term variable.
type VarTerm struct {
	Name string
	source.Span
}

func (*LambdaTerm) node()     {}
func (*LambdaTerm) termNode() {}
func (*AppTerm) node()        {}
func (*AppTerm) termNode()    {}
func (*VarTerm) node()        {}
func (*VarTerm) termNode()    {}
