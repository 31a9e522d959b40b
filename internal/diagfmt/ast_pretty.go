package diagfmt

import (
	"io"

	"fern/internal/ast"
	"fern/internal/format"
)

// FormatASTPretty prints the program back as Fern source, one definition per
// line, with the fewest parentheses that reparse to the same tree.
func FormatASTPretty(w io.Writer, prog *ast.Program) error {
	if prog == nil {
		return nil
	}
	_, err := w.Write(format.Program(prog, format.Options{}))
	return err
}

// SurfaceString renders a single node in surface syntax.
func SurfaceString(n ast.Node) string {
	return format.Node(n, format.Options{})
}
