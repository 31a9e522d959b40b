package lexer

import (
	"unicode"

	"fern/internal/token"
)

// scanWord consumes a maximal run of characters that are neither whitespace
// nor single-character punctuation, then classifies it. Reserved words win
// over identifiers; Token.Text is the exact lexeme in both cases.
func (lx *Lexer) scanWord() token.Token {
	start := lx.cursor.Mark()
	pos := lx.cursor.Pos()
	for !lx.cursor.EOF() && isWordRune(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	text := lx.cursor.TextFrom(start)

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Text: text, Pos: pos}
	}
	return token.Token{Kind: token.Ident, Text: text, Pos: pos}
}

func isWordRune(r rune) bool {
	if unicode.IsSpace(r) {
		return false
	}
	_, punct := token.LookupPunct(r)
	return !punct
}
