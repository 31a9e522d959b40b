package parser

import (
	"fmt"

	"fern/internal/diag"
	"fern/internal/source"
	"fern/internal/token"
)

// ErrorKind classifies a parse failure.
type ErrorKind uint8

const (
	// UnexpectedToken: the current token cannot start any alternative of the
	// grammar category named by Error.Context.
	UnexpectedToken ErrorKind = iota
	// TokenMismatch: a required token (closing paren, '.', '=', EOF) is missing.
	TokenMismatch
	// ExpectedIdentifier: a binder or name position held a non-identifier.
	ExpectedIdentifier
	// UnexpectedDefinition: a top-level token starts no definition.
	UnexpectedDefinition
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "UnexpectedToken"
	case TokenMismatch:
		return "TokenMismatch"
	case ExpectedIdentifier:
		return "ExpectedIdentifier"
	case UnexpectedDefinition:
		return "UnexpectedDefinition"
	}
	return "Unknown"
}

// Context names the grammar category being parsed when an atom fails.
type Context uint8

const (
	CtxNone Context = iota
	CtxType
	CtxTerm
	CtxKind
)

func (c Context) String() string {
	switch c {
	case CtxType:
		return "type"
	case CtxTerm:
		return "term"
	case CtxKind:
		return "kind"
	}
	return ""
}

// Error is the single failure a parse can produce.
type Error struct {
	Kind     ErrorKind
	Context  Context    // UnexpectedToken only
	Expected token.Kind // TokenMismatch only
	Found    token.Token
	Span     source.Span
}

// Message is the human readable part of the error, without location.
func (e *Error) Message() string {
	switch e.Kind {
	case UnexpectedToken:
		return fmt.Sprintf("unexpected token %s when parsing a %s", e.Found, e.Context)
	case TokenMismatch:
		return fmt.Sprintf("expected %s here but got %s", e.Expected.Lexeme(), e.Found)
	case ExpectedIdentifier:
		return "expected an identifier here"
	case UnexpectedDefinition:
		return fmt.Sprintf("expected a definition here but got %s", e.Found)
	}
	return "parse error"
}

func (e *Error) Error() string {
	l, r := e.Span.Bounds()
	return fmt.Sprintf("Error from line %d, column %d to line %d, column %d: %s",
		l.Line, l.Col, r.Line, r.Col, e.Message())
}

// Code maps the error kind onto the diagnostics code table.
func (e *Error) Code() diag.Code {
	switch e.Kind {
	case UnexpectedToken:
		return diag.SynUnexpectedToken
	case TokenMismatch:
		return diag.SynTokenMismatch
	case ExpectedIdentifier:
		return diag.SynExpectIdentifier
	case UnexpectedDefinition:
		return diag.SynUnexpectedTopLevel
	}
	return diag.UnknownCode
}

// Diagnostic converts the error into a diagnostic for file.
func (e *Error) Diagnostic(file source.FileID) diag.Diagnostic {
	return diag.NewError(e.Code(), file, e.Span, e.Message())
}

// Report emits the error through r.
func (e *Error) Report(r diag.Reporter, file source.FileID) {
	diag.ReportError(r, e.Code(), file, e.Span, e.Message()).Emit()
}
