package parser

import (
	"strings"
	"testing"

	"fern/internal/ast"
)

func TestParseTermShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"var", "x", "x"},
		{"lambda", "λx. x", "(lam x x)"},
		{"lambda annotated", "λx : A. x", "(lam x : A x)"},
		{"lambda annotated arrow", "λf : A -> B. f", "(lam f : (-> A B) f)"},
		{"lambda polymorphic annot", "\\x : forall a. a. x", "(lam x : (forall a a) x)"},
		{"left assoc app", "f a b c", "(app f a b c)"},
		{"nested app", "f (g x) y", "(app f (app g x) y)"},
		{"lambda body app", "λf. λx. f x", "(lam f (lam x (app f x)))"},
		{"lambda argument", "f (λx. x) y", "(app f (lam x x) y)"},
		{"parens head", "(λx. x) y", "(app (lam x x) y)"},
		{"multiline", "f\n  a\n  b", "(app f a b)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm, err := ParseTerm(lex(t, tt.input))
			if err != nil {
				t.Fatalf("ParseTerm(%q): %v", tt.input, err)
			}
			if got := ast.String(tm); got != tt.want {
				t.Fatalf("got %s, want %s", got, tt.want)
			}
			checkSpans(t, tm)
		})
	}
}

func TestParseTermLambdaScenarios(t *testing.T) {
	tm, err := ParseTerm(lex(t, "λx. x"))
	if err != nil {
		t.Fatal(err)
	}
	lam, ok := tm.(*ast.LambdaTerm)
	if !ok {
		t.Fatalf("expected *ast.LambdaTerm, got %T", tm)
	}
	if lam.Binder.Name != "x" || lam.Annot != nil {
		t.Fatalf("binder = %q, annot = %v", lam.Binder.Name, lam.Annot)
	}
	if v, ok := lam.Body.(*ast.VarTerm); !ok || v.Name != "x" {
		t.Fatalf("body = %#v", lam.Body)
	}
	if lam.Span != spanOf(1, 0, 1, 5) {
		t.Fatalf("lambda span = %s", lam.Span)
	}
	if lam.Binder.Span != spanOf(1, 1, 1, 2) {
		t.Fatalf("binder span = %s", lam.Binder.Span)
	}

	tm, err = ParseTerm(lex(t, "λx : A. x"))
	if err != nil {
		t.Fatal(err)
	}
	lam = tm.(*ast.LambdaTerm)
	if v, ok := lam.Annot.(*ast.VarType); !ok || v.Name != "A" {
		t.Fatalf("annot = %#v", lam.Annot)
	}
}

func TestParseTermApplicationScenario(t *testing.T) {
	tm, err := ParseTerm(lex(t, "f (g x) y"))
	if err != nil {
		t.Fatal(err)
	}
	app, ok := tm.(*ast.AppTerm)
	if !ok {
		t.Fatalf("expected *ast.AppTerm, got %T", tm)
	}
	if len(app.Args) != 2 {
		t.Fatalf("args = %d, want 2", len(app.Args))
	}
	inner, ok := app.Args[0].(*ast.AppTerm)
	if !ok || len(inner.Args) != 1 {
		t.Fatalf("first arg = %#v", app.Args[0])
	}
	// скобки не входят в спан вложенного узла
	if inner.Span != spanOf(1, 3, 1, 6) {
		t.Fatalf("inner span = %s", inner.Span)
	}
	if app.Span != spanOf(1, 0, 1, 9) {
		t.Fatalf("outer span = %s", app.Span)
	}
}

func TestParseTermErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  ErrorKind
		span  string
		msg   string
	}{
		{"unterminated paren", "(x", TokenMismatch, "1:0-1:2", "expected ) here but got EOF"},
		{"missing dot", "λx x", TokenMismatch, "1:0-1:3", "expected . here but got x"},
		{"binder keyword", "λforall. x", ExpectedIdentifier, "1:1-1:1", "expected an identifier here"},
		{"empty body", "λx.", UnexpectedToken, "1:3-1:3", "unexpected token EOF when parsing a term"},
		{"lambda as argument", "f λx. x", TokenMismatch, "1:0-1:2", "expected EOF here but got λ"},
		{"arrow in term", "a -> b", TokenMismatch, "1:0-1:2", "expected EOF here but got ->"},
		{"close first", ")", UnexpectedToken, "1:0-1:0", "unexpected token ) when parsing a term"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTerm(lex(t, tt.input))
			perr := asError(t, err)
			if perr.Kind != tt.kind {
				t.Fatalf("kind = %s, want %s (%v)", perr.Kind, tt.kind, perr)
			}
			if perr.Span.String() != tt.span {
				t.Fatalf("span = %s, want %s", perr.Span, tt.span)
			}
			if perr.Message() != tt.msg {
				t.Fatalf("message = %q, want %q", perr.Message(), tt.msg)
			}
		})
	}
}

func TestParseTermUnterminatedParenDetails(t *testing.T) {
	_, err := ParseTerm(lex(t, "(x"))
	perr := asError(t, err)
	if perr.Expected.Lexeme() != ")" {
		t.Fatalf("expected token = %s", perr.Expected)
	}
	if perr.Found.Kind.String() != "EOF" {
		t.Fatalf("found token = %s", perr.Found.Kind)
	}
}

func TestParseTermLongApplication(t *testing.T) {
	const n = 5000
	src := "f" + strings.Repeat(" a", n)
	tm, err := ParseTerm(lex(t, src))
	if err != nil {
		t.Fatal(err)
	}
	app, ok := tm.(*ast.AppTerm)
	if !ok || len(app.Args) != n {
		t.Fatalf("expected application with %d args, got %T", n, tm)
	}
}

func TestParseTermDeepNesting(t *testing.T) {
	const depth = 2000
	src := strings.Repeat("(f ", depth) + "x" + strings.Repeat(")", depth)
	tm, err := ParseTerm(lex(t, src))
	if err != nil {
		t.Fatal(err)
	}
	checkSpans(t, tm)
}
