package diag

import "fern/internal/source"

func New(sev Severity, code Code, file source.FileID, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		File:     file,
		Primary:  primary,
		Notes:    nil,
	}
}

func NewError(code Code, file source.FileID, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, file, primary, msg)
}

func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{File: d.File, Span: sp, Msg: msg})
	return d
}
