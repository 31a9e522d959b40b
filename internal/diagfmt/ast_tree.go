package diagfmt

import (
	"fmt"
	"io"

	"fern/internal/ast"
	"fern/internal/source"
)

type treeNode struct {
	label    string
	children []*treeNode
}

// FormatASTTree prints the program as a box tree, one node per line, with the
// span of every node.
func FormatASTTree(w io.Writer, prog *ast.Program, f *source.File) error {
	header := "Program"
	if f != nil {
		header = f.Path
	}
	root := &treeNode{label: header}
	if prog != nil {
		root.label = fmt.Sprintf("%s (span: %s)", header, formatSpan(prog.Span()))
		for i, d := range prog.Defs {
			n := buildTreeNode(d)
			n.label = fmt.Sprintf("Def[%d]: %s", i, n.label)
			root.children = append(root.children, n)
		}
	}
	if _, err := fmt.Fprintln(w, root.label); err != nil {
		return err
	}
	return writeTreeChildren(w, root.children, "")
}

// FormatNodeTree prints a single node (a type, term or kind) as a box tree.
func FormatNodeTree(w io.Writer, n ast.Node) error {
	root := buildTreeNode(n)
	if _, err := fmt.Fprintln(w, root.label); err != nil {
		return err
	}
	return writeTreeChildren(w, root.children, "")
}

func writeTreeChildren(w io.Writer, children []*treeNode, prefix string) error {
	for i, c := range children {
		branch, next := "├─ ", "│  "
		if i == len(children)-1 {
			branch, next = "└─ ", "   "
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, branch, c.label); err != nil {
			return err
		}
		if err := writeTreeChildren(w, c.children, prefix+next); err != nil {
			return err
		}
	}
	return nil
}

func buildTreeNode(n ast.Node) *treeNode {
	label := func(kind string) string {
		return fmt.Sprintf("%s (span: %s)", kind, formatSpan(source.Between(n, n)))
	}
	binder := func(name ast.Ident) *treeNode {
		return &treeNode{label: fmt.Sprintf("Binder: %s (span: %s)", name.Name, formatSpan(name.Span))}
	}
	annot := func(a ast.Node) *treeNode {
		return &treeNode{label: "Annot", children: []*treeNode{buildTreeNode(a)}}
	}
	body := func(b ast.Node) *treeNode {
		return &treeNode{label: "Body", children: []*treeNode{buildTreeNode(b)}}
	}
	args := func(heads ast.Node, items []*treeNode) []*treeNode {
		out := []*treeNode{{label: "Head", children: []*treeNode{buildTreeNode(heads)}}}
		return append(out, &treeNode{label: fmt.Sprintf("Args (%d)", len(items)), children: items})
	}

	switch n := n.(type) {
	case *ast.StarKind:
		return &treeNode{label: label("Star")}
	case *ast.ArrowKind:
		return &treeNode{label: label("ArrowKind"), children: []*treeNode{buildTreeNode(n.Domain), buildTreeNode(n.Codomain)}}
	case *ast.VarType:
		return &treeNode{label: label("VarType " + n.Name)}
	case *ast.VarTerm:
		return &treeNode{label: label("Var " + n.Name)}
	case *ast.ArrowType:
		return &treeNode{label: label("Arrow"), children: []*treeNode{buildTreeNode(n.Domain), buildTreeNode(n.Codomain)}}
	case *ast.AppType:
		items := make([]*treeNode, 0, len(n.Args))
		for _, a := range n.Args {
			items = append(items, buildTreeNode(a))
		}
		return &treeNode{label: label("AppType"), children: args(n.Head, items)}
	case *ast.AppTerm:
		items := make([]*treeNode, 0, len(n.Args))
		for _, a := range n.Args {
			items = append(items, buildTreeNode(a))
		}
		return &treeNode{label: label("App"), children: args(n.Head, items)}
	case *ast.LambdaType:
		node := &treeNode{label: label("LambdaType"), children: []*treeNode{binder(n.Binder)}}
		if n.Annot != nil {
			node.children = append(node.children, annot(n.Annot))
		}
		node.children = append(node.children, body(n.Body))
		return node
	case *ast.ForallType:
		node := &treeNode{label: label("Forall"), children: []*treeNode{binder(n.Binder)}}
		if n.Annot != nil {
			node.children = append(node.children, annot(n.Annot))
		}
		node.children = append(node.children, body(n.Body))
		return node
	case *ast.LambdaTerm:
		node := &treeNode{label: label("Lambda"), children: []*treeNode{binder(n.Binder)}}
		if n.Annot != nil {
			node.children = append(node.children, annot(n.Annot))
		}
		node.children = append(node.children, body(n.Body))
		return node
	case *ast.TermDef:
		node := &treeNode{label: label("TermDef " + n.Name.Name)}
		if n.Annot != nil {
			node.children = append(node.children, annot(n.Annot))
		}
		node.children = append(node.children, body(n.Body))
		return node
	case *ast.TypeDef:
		node := &treeNode{label: label("TypeDef " + n.Name.Name)}
		if n.Annot != nil {
			node.children = append(node.children, annot(n.Annot))
		}
		node.children = append(node.children, body(n.Body))
		return node
	}
	return &treeNode{label: fmt.Sprintf("%T", n)}
}
