package ast

import (
	"fmt"

	"fern/internal/source"
)

// Children returns the direct sub-nodes of n in source order.
// Binder names are not nodes and are not returned.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *StarKind, *VarType, *VarTerm:
		return nil
	case *ArrowKind:
		return []Node{n.Domain, n.Codomain}
	case *LambdaType:
		return withAnnot(n.Annot, n.Body)
	case *ForallType:
		return withAnnot(n.Annot, n.Body)
	case *AppType:
		out := make([]Node, 0, len(n.Args)+1)
		out = append(out, n.Head)
		for _, a := range n.Args {
			out = append(out, a)
		}
		return out
	case *ArrowType:
		return []Node{n.Domain, n.Codomain}
	case *LambdaTerm:
		return withAnnot(n.Annot, n.Body)
	case *AppTerm:
		out := make([]Node, 0, len(n.Args)+1)
		out = append(out, n.Head)
		for _, a := range n.Args {
			out = append(out, a)
		}
		return out
	case *TermDef:
		return withAnnot(n.Annot, n.Body)
	case *TypeDef:
		return withAnnot(n.Annot, n.Body)
	default:
		return nil
	}
}

// withAnnot пропускает отсутствующую аннотацию (nil-интерфейс)
func withAnnot[A Node](annot A, body Node) []Node {
	var zero A
	if Node(annot) == Node(zero) {
		return []Node{body}
	}
	return []Node{annot, body}
}

// Inspect traverses the tree rooted at n in pre-order. If f returns false
// the children of that node are skipped.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	for _, c := range Children(n) {
		Inspect(c, f)
	}
}

// InspectProgram runs Inspect over every definition of p.
func InspectProgram(p *Program, f func(Node) bool) {
	if p == nil {
		return
	}
	for _, d := range p.Defs {
		Inspect(d, f)
	}
}

// SpanError reports a node whose span breaks the tree's span rules.
type SpanError struct {
	Node   Node
	Parent Node // nil when the node's own bounds are inverted
}

func (e *SpanError) Error() string {
	span := source.Between(e.Node, e.Node)
	if e.Parent == nil {
		return fmt.Sprintf("%T has inverted span %s", e.Node, span)
	}
	return fmt.Sprintf("%T span %s escapes parent %T span %s",
		e.Node, span, e.Parent, source.Between(e.Parent, e.Parent))
}

// CheckSpans verifies that every node under n has Left <= Right and lies
// within its parent's span.
func CheckSpans(n Node) error {
	if n == nil {
		return nil
	}
	own := source.Between(n, n)
	if !own.Valid() {
		return &SpanError{Node: n}
	}
	for _, c := range Children(n) {
		if !own.Contains(c) {
			return &SpanError{Node: c, Parent: n}
		}
		if err := CheckSpans(c); err != nil {
			return err
		}
	}
	return nil
}
