package ast

import (
	"strings"
)

// String renders n as a compact s-expression, e.g.
//
//	(lam x : A x)
//	(app f (app g x) y)
//	(-> a (-> b c))
//
// It is meant for tests and debugging output, not for round-tripping.
func String(n Node) string {
	var sb strings.Builder
	writeSexpr(&sb, n)
	return sb.String()
}

// ProgramString renders every definition on its own line.
func ProgramString(p *Program) string {
	if p == nil {
		return ""
	}
	lines := make([]string, 0, len(p.Defs))
	for _, d := range p.Defs {
		lines = append(lines, String(d))
	}
	return strings.Join(lines, "\n")
}

func writeSexpr(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case nil:
		sb.WriteString("<nil>")
	case *StarKind:
		sb.WriteString("*")
	case *ArrowKind:
		writeList(sb, "->", n.Domain, n.Codomain)
	case *VarType:
		sb.WriteString(n.Name)
	case *ArrowType:
		writeList(sb, "->", n.Domain, n.Codomain)
	case *AppType:
		sb.WriteString("(app ")
		writeSexpr(sb, n.Head)
		for _, a := range n.Args {
			sb.WriteByte(' ')
			writeSexpr(sb, a)
		}
		sb.WriteByte(')')
	case *LambdaType:
		writeBinder(sb, "lam", n.Binder.Name, annotNode(n.Annot), n.Body)
	case *ForallType:
		writeBinder(sb, "forall", n.Binder.Name, annotNode(n.Annot), n.Body)
	case *VarTerm:
		sb.WriteString(n.Name)
	case *AppTerm:
		sb.WriteString("(app ")
		writeSexpr(sb, n.Head)
		for _, a := range n.Args {
			sb.WriteByte(' ')
			writeSexpr(sb, a)
		}
		sb.WriteByte(')')
	case *LambdaTerm:
		writeBinder(sb, "lam", n.Binder.Name, annotNode(n.Annot), n.Body)
	case *TermDef:
		writeBinder(sb, "def", n.Name.Name, annotNode(n.Annot), n.Body)
	case *TypeDef:
		writeBinder(sb, "type", n.Name.Name, annotNode(n.Annot), n.Body)
	default:
		sb.WriteString("<?>")
	}
}

func writeList(sb *strings.Builder, head string, items ...Node) {
	sb.WriteByte('(')
	sb.WriteString(head)
	for _, it := range items {
		sb.WriteByte(' ')
		writeSexpr(sb, it)
	}
	sb.WriteByte(')')
}

func writeBinder(sb *strings.Builder, head, name string, annot, body Node) {
	sb.WriteByte('(')
	sb.WriteString(head)
	sb.WriteByte(' ')
	sb.WriteString(name)
	if annot != nil {
		sb.WriteString(" : ")
		writeSexpr(sb, annot)
	}
	sb.WriteByte(' ')
	writeSexpr(sb, body)
	sb.WriteByte(')')
}

// annotNode converts an optional annotation to a Node without turning a nil
// interface into a non-nil one.
func annotNode[A Node](annot A) Node {
	var zero A
	if Node(annot) == Node(zero) {
		return nil
	}
	return annot
}
