package diagfmt

import (
	"encoding/json"
	"io"

	"fern/internal/ast"
	"fern/internal/source"
)

type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Text     string          `json:"text,omitempty"`
	Span     SpanJSON        `json:"span"`
	Children []ASTNodeOutput `json:"children,omitempty"`
	Fields   map[string]any  `json:"fields,omitempty"`
}

func spanJSON(sp source.Span) SpanJSON {
	return SpanJSON{StartLine: sp.L.Line, StartCol: sp.L.Col, EndLine: sp.R.Line, EndCol: sp.R.Col}
}

// BuildASTJSON converts a node into its JSON shape without encoding it.
func BuildASTJSON(n ast.Node) ASTNodeOutput {
	out := ASTNodeOutput{Span: spanJSON(source.Between(n, n))}
	children := func(nodes ...ast.Node) {
		for _, c := range nodes {
			out.Children = append(out.Children, BuildASTJSON(c))
		}
	}
	binder := func(id ast.Ident, annot ast.Node) {
		out.Text = id.Name
		out.Fields = map[string]any{
			"binder_span": spanJSON(id.Span),
			"annotated":   annot != nil,
		}
	}

	switch n := n.(type) {
	case *ast.StarKind:
		out.Type = "StarKind"
	case *ast.ArrowKind:
		out.Type = "ArrowKind"
		children(n.Domain, n.Codomain)
	case *ast.VarType:
		out.Type = "VarType"
		out.Text = n.Name
	case *ast.ArrowType:
		out.Type = "ArrowType"
		children(n.Domain, n.Codomain)
	case *ast.AppType:
		out.Type = "AppType"
		out.Fields = map[string]any{"args": len(n.Args)}
		children(ast.Children(n)...)
	case *ast.LambdaType:
		out.Type = "LambdaType"
		binder(n.Binder, nodeOrNil(n.Annot))
		children(ast.Children(n)...)
	case *ast.ForallType:
		out.Type = "ForallType"
		binder(n.Binder, nodeOrNil(n.Annot))
		children(ast.Children(n)...)
	case *ast.VarTerm:
		out.Type = "VarTerm"
		out.Text = n.Name
	case *ast.AppTerm:
		out.Type = "AppTerm"
		out.Fields = map[string]any{"args": len(n.Args)}
		children(ast.Children(n)...)
	case *ast.LambdaTerm:
		out.Type = "LambdaTerm"
		binder(n.Binder, nodeOrNil(n.Annot))
		children(ast.Children(n)...)
	case *ast.TermDef:
		out.Type = "TermDef"
		binder(n.Name, nodeOrNil(n.Annot))
		children(ast.Children(n)...)
	case *ast.TypeDef:
		out.Type = "TypeDef"
		binder(n.Name, nodeOrNil(n.Annot))
		children(ast.Children(n)...)
	}
	return out
}

// nodeOrNil keeps an absent annotation a nil ast.Node.
func nodeOrNil[A ast.Node](a A) ast.Node {
	var zero A
	if ast.Node(a) == ast.Node(zero) {
		return nil
	}
	return a
}

// FormatASTJSON encodes the whole program.
func FormatASTJSON(w io.Writer, prog *ast.Program) error {
	root := ASTNodeOutput{Type: "Program"}
	if prog != nil {
		root.Span = spanJSON(prog.Span())
		for _, d := range prog.Defs {
			root.Children = append(root.Children, BuildASTJSON(d))
		}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(root)
}

// FormatNodeJSON encodes a single node.
func FormatNodeJSON(w io.Writer, n ast.Node) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildASTJSON(n))
}
