package driver

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"fern/internal/ast"
	"fern/internal/diag"
	"fern/internal/lexer"
	"fern/internal/observ"
	"fern/internal/parser"
	"fern/internal/source"
	"fern/internal/token"
	"fern/internal/trace"
)

// Mode selects what a file is parsed as.
type Mode uint8

const (
	// ModeProgram parses a sequence of definitions.
	ModeProgram Mode = iota
	// ModeType parses one type expression.
	ModeType
	ModeTerm
	ModeKind
)

// ParseMode maps a CLI name onto Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "program":
		return ModeProgram, nil
	case "type":
		return ModeType, nil
	case "term":
		return ModeTerm, nil
	case "kind":
		return ModeKind, nil
	}
	return ModeProgram, fmt.Errorf("unknown parse mode %q (expected: program|type|term|kind)", s)
}

// ParseOptions configures a single-file parse.
type ParseOptions struct {
	MaxDiagnostics int
	Mode           Mode
	// Timer, если задан, получает фазы lex/parse.
	Timer *observ.Timer
}

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	// Program is set in ModeProgram when parsing succeeded.
	Program *ast.Program
	// Node is set in the other modes when parsing succeeded.
	Node ast.Node
	// Err is the parse failure, also present in Bag as a diagnostic.
	Err *parser.Error
	Bag *diag.Bag
}

// Defs returns a summary of the parsed definitions.
func (r *ParseResult) Defs() []DefSummary {
	if r == nil || r.Program == nil {
		return nil
	}
	return summarize(r.Program)
}

// Parse loads path and parses it.
func Parse(ctx context.Context, path string, opts ParseOptions) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return parseFile(ctx, fs, fileID, opts), nil
}

// ParseSource parses in-memory content registered under name.
func ParseSource(ctx context.Context, name string, content []byte, opts ParseOptions) *ParseResult {
	fs := source.NewFileSet()
	return parseFile(ctx, fs, fs.AddVirtual(name, content), opts)
}

func parseFile(ctx context.Context, fs *source.FileSet, id source.FileID, opts ParseOptions) *ParseResult {
	file := fs.Get(id)

	res := &ParseResult{
		FileSet: fs,
		File:    file,
		Bag:     diag.NewBag(opts.MaxDiagnostics),
	}

	lexSpan, _ := trace.Start(ctx, trace.ScopePhase, "lex")
	phase := beginPhase(opts.Timer, "lex")
	tokens, err := lexer.LexFile(file)
	endPhase(opts.Timer, phase, "")
	lexSpan.Attr("tokens", strconv.Itoa(len(tokens))).End("")
	if err != nil {
		res.Bag.Add(diag.NewError(diag.LexInfo, id, source.Span{}, err.Error()))
		return res
	}
	res.Tokens = tokens
	trace.Point(ctx, trace.ScopeCount, "tokens", strconv.Itoa(len(tokens)))

	parseSpan, _ := trace.Start(ctx, trace.ScopePhase, "parse")
	phase = beginPhase(opts.Timer, "parse")
	switch opts.Mode {
	case ModeType:
		var n ast.Type
		n, err = parser.ParseType(tokens)
		if err == nil {
			res.Node = n
		}
	case ModeTerm:
		var n ast.Term
		n, err = parser.ParseTerm(tokens)
		if err == nil {
			res.Node = n
		}
	case ModeKind:
		var n ast.Kind
		n, err = parser.ParseKind(tokens)
		if err == nil {
			res.Node = n
		}
	default:
		res.Program, err = parser.Parse(tokens)
	}
	endPhase(opts.Timer, phase, file.Path)

	var perr *parser.Error
	if errors.As(err, &perr) {
		res.Err = perr
		perr.Report(diag.BagReporter{Bag: res.Bag}, id)
		parseSpan.End(perr.Message())
		return res
	}
	parseSpan.Attr("defs", strconv.Itoa(len(res.Defs()))).End("")
	trace.Point(ctx, trace.ScopeCount, "defs", strconv.Itoa(len(res.Defs())))
	return res
}

func beginPhase(t *observ.Timer, name string) int {
	if t == nil {
		return -1
	}
	return t.Begin(name)
}

func endPhase(t *observ.Timer, idx int, note string) {
	if t != nil {
		t.End(idx, note)
	}
}
