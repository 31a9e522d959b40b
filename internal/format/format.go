package format

import (
	"bytes"

	"fern/internal/ast"
	"fern/internal/lexer"
	"fern/internal/parser"
	"fern/internal/source"
)

// FormatFile parses sf as a program and returns its canonical text.
// A parse failure is returned as *parser.Error.
func FormatFile(sf *source.File, opt Options) ([]byte, error) {
	toks, err := lexer.LexFile(sf)
	if err != nil {
		return nil, err
	}
	prog, err := parser.Parse(toks)
	if err != nil {
		return nil, err
	}
	return Program(prog, opt), nil
}

// Program prints every definition of prog, each terminated by a newline.
func Program(prog *ast.Program, opt Options) []byte {
	opt = opt.withDefaults()
	p := printer{w: NewWriter(opt), opt: opt}
	if prog != nil {
		p.printProgram(prog)
	}
	return p.w.Bytes()
}

// Node renders a single node on one line.
func Node(n ast.Node, opt Options) string {
	opt = opt.withDefaults()
	opt.LineWidth = 0
	p := printer{w: NewWriter(opt), opt: opt}
	switch n := n.(type) {
	case ast.Kind:
		p.printKind(n, kindLevelArrow)
	case ast.Type:
		p.printType(n, typeLevelLambda)
	case ast.Term:
		p.printTerm(n, termLevelLambda)
	case ast.Def:
		p.printDef(n)
	}
	return p.w.String()
}

// Changed reports whether formatting content would modify it.
func Changed(content, formatted []byte) bool {
	return !bytes.Equal(content, formatted)
}
