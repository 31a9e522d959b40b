package ast

import "fern/internal/source"

// StarKind is the kind of proper types.
type StarKind struct {
	source.Span
}

// ArrowKind is Domain -> Codomain.
type ArrowKind struct {
	Domain   Kind
	Codomain Kind
	source.Span
}

func (*StarKind) node()      {}
func (*StarKind) kindNode()  {}
func (*ArrowKind) node()     {}
func (*ArrowKind) kindNode() {}
