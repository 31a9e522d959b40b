package token

import (
	"unicode/utf8"

	"fern/internal/source"
)

// Token represents a single source token with its starting position.
type Token struct {
	Kind Kind
	Text string
	Pos  source.Pos
}

// Width returns the number of characters the token occupies.
func (t Token) Width() uint32 {
	return uint32(utf8.RuneCountInString(t.Text))
}

// End returns the coordinate just past the token.
func (t Token) End() source.Pos {
	return t.Pos.AdvanceCols(t.Width())
}

// Span returns the region covered by the token.
func (t Token) Span() source.Span {
	return source.SpanOf(t.Pos, t.End())
}

// String renders the token the way diagnostics mention it: identifiers by
// their text, everything else by the canonical lexeme.
func (t Token) String() string {
	if t.Kind == Ident {
		return t.Text
	}
	return t.Kind.Lexeme()
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsPunctOrOp reports whether the token is punctuation or an operator.
func (t Token) IsPunctOrOp() bool { return t.Kind.IsPunctOrOp() }
