package format

import (
	"unicode/utf8"

	"fern/internal/ast"
)

// Уровни приоритета совпадают с уровнями грамматики: чем больше число,
// тем сильнее связывание. Узел берётся в скобки, если его уровень ниже
// требуемого позицией.
const (
	typeLevelLambda = iota + 1
	typeLevelForall
	typeLevelArrow
	typeLevelApp
	typeLevelAtom
)

const (
	termLevelLambda = iota + 1
	termLevelApp
	termLevelAtom
)

const (
	kindLevelArrow = iota + 1
	kindLevelAtom
)

type printer struct {
	w   *Writer
	opt Options
}

func (p *printer) lambda() string {
	if p.opt.ASCII {
		return `\`
	}
	return "λ"
}

func (p *printer) parens(need bool, body func()) {
	if need {
		_ = p.w.WriteByte('(')
	}
	body()
	if need {
		_ = p.w.WriteByte(')')
	}
}

func (p *printer) printProgram(prog *ast.Program) {
	for i, d := range prog.Defs {
		if i > 0 {
			for range p.opt.BlankLines {
				p.w.BlankLine()
			}
		}
		p.printDef(d)
		p.w.Newline()
	}
}

// printDef prints the header and body on one line, or moves the body to an
// indented continuation line when the definition is wider than LineWidth.
func (p *printer) printDef(d ast.Def) {
	var (
		keyword string
		header  func()
		body    func()
	)
	switch d := d.(type) {
	case *ast.TermDef:
		keyword = "def "
		header = func() {
			if d.Annot != nil {
				p.w.WriteString(" : ")
				p.printType(d.Annot, typeLevelLambda)
			}
		}
		body = func() { p.printTerm(d.Body, termLevelLambda) }
	case *ast.TypeDef:
		keyword = "type "
		header = func() {
			if d.Annot != nil {
				p.w.WriteString(" : ")
				p.printKind(d.Annot, kindLevelArrow)
			}
		}
		body = func() { p.printType(d.Body, typeLevelLambda) }
	default:
		return
	}

	p.w.WriteString(keyword)
	p.w.WriteString(d.DefName().Name)
	header()
	p.w.WriteString(" =")

	if p.opt.LineWidth > 0 && p.defWidth(d) > p.opt.LineWidth {
		p.w.Newline()
		p.w.IndentPush()
		body()
		p.w.IndentPop()
		return
	}
	p.w.Space()
	body()
}

func (p *printer) defWidth(d ast.Def) int {
	flat := printer{w: NewWriter(p.opt), opt: Options{ASCII: p.opt.ASCII}}
	flat.printDef(d)
	return utf8.RuneCount(flat.w.Bytes())
}

func (p *printer) printKind(k ast.Kind, min int) {
	switch k := k.(type) {
	case *ast.StarKind:
		_ = p.w.WriteByte('*')
	case *ast.ArrowKind:
		p.parens(min > kindLevelArrow, func() {
			p.printKind(k.Domain, kindLevelAtom)
			p.w.WriteString(" -> ")
			p.printKind(k.Codomain, kindLevelArrow)
		})
	}
}

func (p *printer) printType(t ast.Type, min int) {
	switch t := t.(type) {
	case *ast.VarType:
		p.w.WriteString(t.Name)
	case *ast.AppType:
		p.parens(min > typeLevelApp, func() {
			p.printType(t.Head, typeLevelAtom)
			for _, a := range t.Args {
				_ = p.w.WriteByte(' ')
				p.printType(a, typeLevelAtom)
			}
		})
	case *ast.ArrowType:
		p.parens(min > typeLevelArrow, func() {
			p.printType(t.Domain, typeLevelApp)
			p.w.WriteString(" -> ")
			p.printType(t.Codomain, typeLevelForall)
		})
	case *ast.ForallType:
		p.parens(min > typeLevelForall, func() {
			p.w.WriteString("forall ")
			p.printTypeBinder(t.Binder.Name, t.Annot)
			p.printType(t.Body, typeLevelForall)
		})
	case *ast.LambdaType:
		p.parens(min > typeLevelLambda, func() {
			p.w.WriteString(p.lambda())
			p.printTypeBinder(t.Binder.Name, t.Annot)
			p.printType(t.Body, typeLevelLambda)
		})
	}
}

func (p *printer) printTypeBinder(name string, annot ast.Kind) {
	p.w.WriteString(name)
	if annot != nil {
		p.w.WriteString(" : ")
		p.printKind(annot, kindLevelArrow)
	}
	p.w.WriteString(". ")
}

func (p *printer) printTerm(t ast.Term, min int) {
	switch t := t.(type) {
	case *ast.VarTerm:
		p.w.WriteString(t.Name)
	case *ast.AppTerm:
		p.parens(min > termLevelApp, func() {
			p.printTerm(t.Head, termLevelAtom)
			for _, a := range t.Args {
				_ = p.w.WriteByte(' ')
				p.printTerm(a, termLevelAtom)
			}
		})
	case *ast.LambdaTerm:
		p.parens(min > termLevelLambda, func() {
			p.w.WriteString(p.lambda())
			p.w.WriteString(t.Binder.Name)
			if t.Annot != nil {
				p.w.WriteString(" : ")
				p.printType(t.Annot, typeLevelLambda)
			}
			p.w.WriteString(". ")
			p.printTerm(t.Body, termLevelLambda)
		})
	}
}
