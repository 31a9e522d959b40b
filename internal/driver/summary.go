package driver

import "fern/internal/ast"

// DefSummary is what the driver remembers about a definition after the tree
// itself is dropped (disk cache, progress, JSON output).
type DefSummary struct {
	Name string `json:"name" msgpack:"name"`
	Kind string `json:"kind" msgpack:"kind"` // "def" | "type"
	Line uint32 `json:"line" msgpack:"line"`
}

func summarize(prog *ast.Program) []DefSummary {
	out := make([]DefSummary, 0, len(prog.Defs))
	for _, d := range prog.Defs {
		kind := "def"
		if _, ok := d.(*ast.TypeDef); ok {
			kind = "type"
		}
		out = append(out, DefSummary{
			Name: d.DefName().Name,
			Kind: kind,
			Line: d.Left().Line,
		})
	}
	return out
}
