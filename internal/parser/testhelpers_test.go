package parser

import (
	"testing"

	"fern/internal/ast"
	"fern/internal/lexer"
	"fern/internal/source"
	"fern/internal/token"
)

func lex(t *testing.T, src string) []token.Token {
	t.Helper()
	toks, err := lexer.Lex(src)
	if err != nil {
		t.Fatalf("lex %q: %v", src, err)
	}
	return toks
}

func pos(line, col uint32) source.Pos {
	return source.Pos{Line: line, Col: col}
}

func spanOf(l1, c1, l2, c2 uint32) source.Span {
	return source.SpanOf(pos(l1, c1), pos(l2, c2))
}

func checkSpans(t *testing.T, n ast.Node) {
	t.Helper()
	if err := ast.CheckSpans(n); err != nil {
		t.Fatalf("span invariant: %v", err)
	}
}

func asError(t *testing.T, err error) *Error {
	t.Helper()
	if err == nil {
		t.Fatal("expected a parse error, got nil")
	}
	perr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *parser.Error, got %T: %v", err, err)
	}
	return perr
}
