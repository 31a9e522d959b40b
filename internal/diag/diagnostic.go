package diag

import (
	"fern/internal/source"
)

type Note struct {
	File source.FileID
	Span source.Span
	Msg  string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	File     source.FileID
	Primary  source.Span
	Notes    []Note
}
