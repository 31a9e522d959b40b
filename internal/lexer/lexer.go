package lexer

import (
	"unicode"

	"fern/internal/source"
	"fern/internal/token"
)

// Lexer turns source text into tokens, one call to Next at a time.
// It works strictly left to right and never looks back.
type Lexer struct {
	cursor Cursor
	done   bool
}

// New creates a lexer over src.
func New(src string) *Lexer {
	return &Lexer{cursor: NewCursor([]rune(src))}
}

// NewFile creates a lexer over the content of a loaded file.
func NewFile(f *source.File) *Lexer {
	return New(f.Text())
}

// Lex tokenizes the whole input. The result always ends with exactly one EOF
// token positioned at the final cursor coordinate.
//
// Every character is consumable as punctuation or as part of a word, so the
// error is currently always nil; it is kept for callers that treat lexing as
// a fallible phase.
func Lex(src string) ([]token.Token, error) {
	return New(src).All(), nil
}

// LexFile is Lex over a loaded file.
func LexFile(f *source.File) ([]token.Token, error) {
	return NewFile(f).All(), nil
}

// All collects the remaining tokens up to and including EOF.
func (lx *Lexer) All() []token.Token {
	tokens := make([]token.Token, 0, 64)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

// Next возвращает следующий значимый токен. После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	lx.skipWhitespace()

	if lx.cursor.EOF() {
		lx.done = true
		return token.Token{Kind: token.EOF, Pos: lx.cursor.Pos()}
	}

	// 1) односимвольная пунктуация проверяется раньше слов
	if kind, ok := token.LookupPunct(lx.cursor.Peek()); ok {
		start := lx.cursor.Mark()
		pos := lx.cursor.Pos()
		lx.cursor.Bump()
		return token.Token{Kind: kind, Text: lx.cursor.TextFrom(start), Pos: pos}
	}

	// 2) иначе слово: ключевое слово или идентификатор
	return lx.scanWord()
}

// Done reports whether the EOF token has been produced.
func (lx *Lexer) Done() bool {
	return lx.done
}

func (lx *Lexer) skipWhitespace() {
	for !lx.cursor.EOF() && unicode.IsSpace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}
