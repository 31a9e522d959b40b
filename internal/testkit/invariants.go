package testkit

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"fern/internal/ast"
	"fern/internal/source"
)

// CheckProgram runs span invariants on a parsed program:
// 1) every coordinate points into the file (line exists, column at most one past its end)
// 2) definitions come in source order and do not overlap
// 3) every node lies inside its parent (ast.CheckSpans)
func CheckProgram(prog *ast.Program, sf *source.File) error {
	if prog == nil || sf == nil {
		return fmt.Errorf("nil program or file")
	}
	var prev ast.Def
	for i, d := range prog.Defs {
		if d == nil {
			return fmt.Errorf("nil definition at index %d", i)
		}
		if err := CheckInFile(d, sf); err != nil {
			return fmt.Errorf("def %d (%s): %w", i, d.DefName().Name, err)
		}
		if prev != nil && d.Left().Less(prev.Right()) {
			return fmt.Errorf("def %d starts at %s before previous ends at %s", i, d.Left(), prev.Right())
		}
		if err := ast.CheckSpans(d); err != nil {
			return err
		}
		prev = d
	}
	return nil
}

// CheckInFile reports an error if either bound of b lies outside sf.
func CheckInFile(b source.Bounded, sf *source.File) error {
	sp := source.Between(b, b)
	if !sp.Valid() {
		return fmt.Errorf("inverted span %s", sp)
	}
	lines, err := safecast.Conv[uint32](len(sf.LineIdx) + 1)
	if err != nil {
		return fmt.Errorf("line count overflow: %w", err)
	}
	for _, p := range []source.Pos{sp.L, sp.R} {
		if p.Line == 0 || p.Line > lines {
			return fmt.Errorf("position %s: line outside 1..%d", p, lines)
		}
		width, err := safecast.Conv[uint32](utf8.RuneCountInString(sf.GetLine(p.Line)))
		if err != nil {
			return fmt.Errorf("line width overflow: %w", err)
		}
		if p.Col > width {
			return fmt.Errorf("position %s: column past end of line (%d)", p, width)
		}
	}
	return nil
}
