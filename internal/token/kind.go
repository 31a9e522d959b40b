package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF
	// Ident represents an identifier token.
	Ident
	// Lambda represents the lambda introducer (λ or \).
	Lambda
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// Assign represents the equals sign of a definition.
	Assign // =
	// Dot separates a binder from its body.
	Dot // .
	// KwLet represents the 'let' keyword (not produced by the lexer).
	KwLet // let
	// KwIn represents the 'in' keyword (not produced by the lexer).
	KwIn // in
	// Colon introduces an annotation.
	Colon // :
	// Arrow represents the function/kind arrow.
	Arrow // ->
	// KwForall represents the 'forall' keyword.
	KwForall // forall
	// Star represents the kind of proper types.
	Star // *
	KwData   // data
	KwMatch  // match
	FatArrow // =>
	Bar      // |
	KwSyntax // syntax
	// KwDef introduces a term definition.
	KwDef // def
	// KwType introduces a type definition.
	KwType // type
)

var kindNames = [...]string{
	Invalid:  "Invalid",
	EOF:      "EOF",
	Ident:    "Ident",
	Lambda:   "Lambda",
	LParen:   "LParen",
	RParen:   "RParen",
	Assign:   "Assign",
	Dot:      "Dot",
	KwLet:    "KwLet",
	KwIn:     "KwIn",
	Colon:    "Colon",
	Arrow:    "Arrow",
	KwForall: "KwForall",
	Star:     "Star",
	KwData:   "KwData",
	KwMatch:  "KwMatch",
	FatArrow: "FatArrow",
	Bar:      "Bar",
	KwSyntax: "KwSyntax",
	KwDef:    "KwDef",
	KwType:   "KwType",
}

// текст, которым токен показывается в сообщениях об ошибках
var kindLexemes = [...]string{
	Invalid:  "<invalid>",
	EOF:      "EOF",
	Ident:    "identifier",
	Lambda:   "λ",
	LParen:   "(",
	RParen:   ")",
	Assign:   "=",
	Dot:      ".",
	KwLet:    "let",
	KwIn:     "in",
	Colon:    ":",
	Arrow:    "->",
	KwForall: "forall",
	Star:     "*",
	KwData:   "data",
	KwMatch:  "match",
	FatArrow: "=>",
	Bar:      "|",
	KwSyntax: "syntax",
	KwDef:    "def",
	KwType:   "type",
}

// String returns the Go-style name of the kind, e.g. "KwForall".
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Lexeme returns the canonical source spelling of the kind as used in
// diagnostics ("->", "λ", "EOF"). Identifiers have no fixed spelling.
func (k Kind) Lexeme() string {
	if int(k) < len(kindLexemes) {
		return kindLexemes[k]
	}
	return "<unknown>"
}

// IsKeyword reports whether the kind is a reserved word.
func (k Kind) IsKeyword() bool {
	switch k {
	case KwLet, KwIn, KwForall, KwData, KwMatch, KwSyntax, KwDef, KwType:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the kind is punctuation or an operator.
func (k Kind) IsPunctOrOp() bool {
	switch k {
	case Lambda, LParen, RParen, Assign, Dot, Colon, Arrow, Star, FatArrow, Bar:
		return true
	default:
		return false
	}
}
