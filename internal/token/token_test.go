package token_test

import (
	"testing"

	"fern/internal/source"
	"fern/internal/token"
)

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  token.Token
		want string
	}{
		{token.Token{Kind: token.Ident, Text: "foo"}, "foo"},
		{token.Token{Kind: token.Lambda, Text: "\\"}, "λ"},
		{token.Token{Kind: token.RParen, Text: ")"}, ")"},
		{token.Token{Kind: token.Arrow, Text: "->"}, "->"},
		{token.Token{Kind: token.EOF}, "EOF"},
	}
	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Fatalf("String(%v) = %q, want %q", tt.tok.Kind, got, tt.want)
		}
	}
}

func TestTokenSpanCountsRunes(t *testing.T) {
	tok := token.Token{Kind: token.Ident, Text: "αβγ", Pos: source.Pos{Line: 2, Col: 4}}
	if tok.Width() != 3 {
		t.Fatalf("Width = %d, want 3", tok.Width())
	}
	want := source.SpanOf(source.Pos{Line: 2, Col: 4}, source.Pos{Line: 2, Col: 7})
	if tok.Span() != want {
		t.Fatalf("Span = %v, want %v", tok.Span(), want)
	}
}

func TestKindClasses(t *testing.T) {
	for _, k := range []token.Kind{token.KwForall, token.KwDef, token.KwType, token.KwLet} {
		if !k.IsKeyword() || k.IsPunctOrOp() {
			t.Fatalf("%v should be a keyword", k)
		}
	}
	for _, k := range []token.Kind{token.Arrow, token.Star, token.Lambda, token.Colon} {
		if !k.IsPunctOrOp() || k.IsKeyword() {
			t.Fatalf("%v should be punctuation", k)
		}
	}
	if token.Ident.IsKeyword() || token.EOF.IsPunctOrOp() {
		t.Fatalf("Ident/EOF are neither")
	}
	if token.KwForall.String() != "KwForall" {
		t.Fatalf("String = %q", token.KwForall.String())
	}
}
