package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"fern/internal/diag"
	"fern/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes с аналогичным форматом.
// Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil || fs == nil {
		return
	}
	p := painter{on: opts.Color}
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		writeDiagnostic(w, &d, fs, opts, p)
	}
}

func writeDiagnostic(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p painter) {
	if int(d.File) >= fs.Len() {
		fmt.Fprintf(w, "%s %s: %s\n", p.severity(d.Severity), d.Code.ID(), d.Message)
		return
	}
	f := fs.Get(d.File)
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		p.paint(formatPath(f, fs, opts.PathMode), color.Bold),
		d.Primary.L.Line, d.Primary.L.Col,
		p.severity(d.Severity),
		p.paint(d.Code.ID(), color.Bold),
		d.Message,
	)
	writeSnippet(w, f, d.Primary, opts.Context, p, severityColor(d.Severity))

	if !opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		nf := f
		if n.File != d.File && int(n.File) < fs.Len() {
			nf = fs.Get(n.File)
		}
		fmt.Fprintf(w, "  %s %s:%d:%d: %s\n",
			p.paint("note:", color.FgCyan, color.Bold),
			formatPath(nf, fs, opts.PathMode),
			n.Span.L.Line, n.Span.L.Col, n.Msg)
		writeSnippet(w, nf, n.Span, 0, p, []color.Attribute{color.FgCyan})
	}
}

// writeSnippet prints the line holding sp.L (plus ctx lines before it) and an
// underline. Columns are rune based; the underline is placed by display width
// so wide characters line up.
func writeSnippet(w io.Writer, f *source.File, sp source.Span, ctx int8, p painter, attrs []color.Attribute) {
	line := sp.L.Line
	if line == 0 {
		return
	}
	first := line
	for i := int8(0); i < ctx && first > 1; i++ {
		first--
	}
	gutter := len(fmt.Sprint(line))
	for n := first; n <= line; n++ {
		text := expandTabs(f.GetLine(n))
		fmt.Fprintf(w, " %*d | %s\n", gutter, n, text)
	}

	text := []rune(expandTabs(f.GetLine(line)))
	start := clampCol(sp.L.Col, len(text))
	end := len(text)
	if sp.R.Line == line {
		end = clampCol(sp.R.Col, len(text))
	}
	if end < start {
		end = start
	}
	pad := runewidth.StringWidth(string(text[:start]))
	width := runewidth.StringWidth(string(text[start:end]))
	underline := "^"
	if width > 1 {
		underline += strings.Repeat("~", width-1)
	}
	fmt.Fprintf(w, " %*s | %s%s\n", gutter, "", strings.Repeat(" ", pad), p.paint(underline, attrs...))
}

func clampCol(col uint32, n int) int {
	if int(col) > n {
		return n
	}
	return int(col)
}

// табы считаются одной колонкой в позициях, поэтому печатаем их пробелом
func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", " ")
}

type painter struct{ on bool }

func (p painter) paint(s string, attrs ...color.Attribute) string {
	if !p.on || len(attrs) == 0 {
		return s
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(s)
}

func (p painter) severity(sev diag.Severity) string {
	return p.paint(sev.String(), severityColor(sev)...)
}

func severityColor(sev diag.Severity) []color.Attribute {
	switch sev {
	case diag.SevError:
		return []color.Attribute{color.FgRed, color.Bold}
	case diag.SevWarning:
		return []color.Attribute{color.FgYellow, color.Bold}
	default:
		return []color.Attribute{color.FgBlue, color.Bold}
	}
}
