package source

import (
	"fmt"
)

// Bounded is implemented by everything that occupies a region of the source:
// every syntax node, definition and diagnostic.
type Bounded interface {
	Left() Pos
	Right() Pos
}

// Span bounds a region of the source text. Left is inclusive, Right is the
// coordinate just past the last character.
type Span struct {
	L Pos
	R Pos
}

// SpanOf builds a span from two coordinates.
func SpanOf(left, right Pos) Span {
	return Span{L: left, R: right}
}

// Between returns the span from the left bound of a to the right bound of b.
func Between(a, b Bounded) Span {
	return Span{L: a.Left(), R: b.Right()}
}

func (s Span) Left() Pos  { return s.L }
func (s Span) Right() Pos { return s.R }

// Bounds returns both coordinates at once.
func (s Span) Bounds() (left, right Pos) {
	return s.L, s.R
}

// Valid reports whether the left bound does not come after the right bound.
func (s Span) Valid() bool {
	return s.L.LessEq(s.R)
}

func (s Span) Empty() bool {
	return s.L == s.R
}

// Contains reports whether other lies inside s (bounds included).
func (s Span) Contains(other Bounded) bool {
	return s.L.LessEq(other.Left()) && other.Right().LessEq(s.R)
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%s", s.L, s.R)
}

func (s Span) Cover(other Bounded) Span {
	if other.Left().Less(s.L) {
		s.L = other.Left()
	}
	if s.R.Less(other.Right()) {
		s.R = other.Right()
	}
	return s
}
