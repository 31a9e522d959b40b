package lsp

import (
	"context"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"fern/internal/diag"
	"fern/internal/driver"
	"fern/internal/source"
)

const diagnosticSource = "fern"

// analyze parses text as a Fern program and converts the resulting
// diagnostics to LSP form. The slice is never nil so that publishing it
// clears stale markers.
func analyze(ctx context.Context, name, text string, maxDiagnostics int) []protocol.Diagnostic {
	res := driver.ParseSource(ctx, name, []byte(text), driver.ParseOptions{MaxDiagnostics: maxDiagnostics})
	out := make([]protocol.Diagnostic, 0, res.Bag.Len())
	for _, d := range res.Bag.Items() {
		out = append(out, toProtocol(res.FileSet, d))
	}
	return out
}

func toProtocol(fs *source.FileSet, d diag.Diagnostic) protocol.Diagnostic {
	file := fs.Get(d.File)
	severity := severityFor(d.Severity)
	src := diagnosticSource
	out := protocol.Diagnostic{
		Range:    rangeForSpan(file, d.Primary),
		Severity: &severity,
		Code:     &protocol.IntegerOrString{Value: d.Code.ID()},
		Source:   &src,
		Message:  d.Message,
	}
	for _, n := range d.Notes {
		out.RelatedInformation = append(out.RelatedInformation, protocol.DiagnosticRelatedInformation{
			Location: protocol.Location{
				URI:   pathToURI(fs.Get(n.File).Path),
				Range: rangeForSpan(fs.Get(n.File), n.Span),
			},
			Message: n.Msg,
		})
	}
	return out
}

func severityFor(sev diag.Severity) protocol.DiagnosticSeverity {
	switch sev {
	case diag.SevError:
		return protocol.DiagnosticSeverityError
	case diag.SevWarning:
		return protocol.DiagnosticSeverityWarning
	default:
		return protocol.DiagnosticSeverityInformation
	}
}
