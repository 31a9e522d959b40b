package ast

import "fern/internal/source"

// Node is any element of the raw syntax tree.
type Node interface {
	source.Bounded
	node()
}

// Kind is a kind expression: * or an arrow between kinds.
type Kind interface {
	Node
	kindNode()
}

// Type is a type expression.
type Type interface {
	Node
	typeNode()
}

// Term is a term expression.
type Term interface {
	Node
	termNode()
}

// Def is a top-level definition.
type Def interface {
	Node
	defNode()
	// DefName returns the name being defined.
	DefName() Ident
}

// Ident is a name together with the span it was written at.
type Ident struct {
	Name string
	source.Span
}

// Program is the parse result of a whole source file. Definition order is
// significant: later definitions may refer to earlier ones.
type Program struct {
	Defs []Def
}

// Span returns the region from the first to the last definition.
// An empty program has a zero span.
func (p *Program) Span() source.Span {
	if p == nil || len(p.Defs) == 0 {
		return source.Span{}
	}
	return source.Between(p.Defs[0], p.Defs[len(p.Defs)-1])
}
