package ast

import "fern/internal/source"

// LambdaType is a type-level abstraction λ Binder [: Annot]. Body.
type LambdaType struct {
	Binder Ident
	Annot  Kind // nil when absent
	Body   Type
	source.Span
}

// ForallType is universal quantification forall Binder [: Annot]. Body.
type ForallType struct {
	Binder Ident
	Annot  Kind // nil when absent
	Body   Type
	source.Span
}

// AppType is curried type application. Args is never empty.
type AppType struct {
	Head Type
	Args []Type
	source.Span
}

// ArrowType is the function type Domain -> Codomain.
type ArrowType struct {
	Domain   Type
	Codomain Type
	source.Span
}

// VarType is a reference to a type variable or named type.
type VarType struct {
	Name string
	source.Span
}

func (*LambdaType) node()     {}
func (*LambdaType) typeNode() {}
func (*ForallType) node()     {}
func (*ForallType) typeNode() {}
func (*AppType) node()        {}
func (*AppType) typeNode()    {}
func (*ArrowType) node()      {}
func (*ArrowType) typeNode()  {}
func (*VarType) node()        {}
func (*VarType) typeNode()    {}
