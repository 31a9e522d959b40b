package parser

import (
	"reflect"
	"testing"

	"fern/internal/ast"
	"fern/internal/token"
)

func TestFailedArgumentRestoresCursor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		at    int // ожидаемая позиция после разбора аппликации
	}{
		{"unterminated group", "f (g", 1},
		{"lambda", "f a λx. x", 2},
		{"close paren", "f a )", 2},
		{"keyword", "f def", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := lex(t, tt.input)
			before := append([]token.Token(nil), toks...)
			p := New(toks)
			if _, err := p.termApp(); err != nil {
				t.Fatalf("termApp: %v", err)
			}
			if p.Offset() != tt.at {
				t.Fatalf("offset = %d, want %d", p.Offset(), tt.at)
			}
			if !reflect.DeepEqual(before, toks) {
				t.Fatal("token slice was modified")
			}
		})
	}
}

func TestSnapshotRestore(t *testing.T) {
	p := New(lex(t, "(a b"))
	s := p.snapshot()
	front := p.peek()
	if _, err := p.typeAtom(); err == nil {
		t.Fatal("expected failure on unterminated group")
	}
	if p.Offset() == int(s) {
		t.Fatal("failed atom should have consumed tokens before restore")
	}
	p.restore(s)
	if p.peek() != front || p.Offset() != 0 {
		t.Fatalf("restore left cursor at %d (%v)", p.Offset(), p.peek())
	}
}

func TestAdvanceStopsAtEOF(t *testing.T) {
	p := New(lex(t, "x"))
	p.advance()
	for i := 0; i < 3; i++ {
		if tok := p.advance(); tok.Kind != token.EOF {
			t.Fatalf("advance past end = %s", tok.Kind)
		}
	}
	if p.Offset() != 1 {
		t.Fatalf("offset = %d, want 1", p.Offset())
	}
}

func TestAnnotAbsentIsNilInterface(t *testing.T) {
	p := New(lex(t, ". x"))
	k, err := annot(p, p.Kind)
	if err != nil {
		t.Fatal(err)
	}
	if k != nil {
		t.Fatalf("annotation = %#v, want nil", k)
	}
	if p.Offset() != 0 {
		t.Fatal("absent annotation must not consume tokens")
	}
	var n ast.Node = k
	if n != nil {
		t.Fatal("nil kind must convert to a nil node")
	}
}
