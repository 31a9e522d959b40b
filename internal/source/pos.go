package source

import "fmt"

// Pos is a human-readable coordinate in the source text.
// Line is 1-based, Col is 0-based and counts characters (runes), not bytes.
type Pos struct {
	Line uint32
	Col  uint32
}

// StartPos is the coordinate of the first character of any input.
var StartPos = Pos{Line: 1, Col: 0}

// AdvanceCols returns p moved n characters to the right on the same line.
func (p Pos) AdvanceCols(n uint32) Pos {
	return Pos{Line: p.Line, Col: p.Col + n}
}

// AdvanceLine returns the coordinate of the start of the next line.
func (p Pos) AdvanceLine() Pos {
	return Pos{Line: p.Line + 1, Col: 0}
}

// Less reports whether p comes strictly before q.
func (p Pos) Less(q Pos) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Col < q.Col
}

// LessEq reports whether p comes before q or equals it.
func (p Pos) LessEq(q Pos) bool {
	return p == q || p.Less(q)
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}
