package format

type Options struct {
	IndentWidth int
	UseTabs     bool
	// ASCII prints `\` instead of `λ`.
	ASCII bool
	// LineWidth is the width (in runes) after which a definition body moves
	// to its own indented line. <= 0 never breaks.
	LineWidth int
	// BlankLines separates definitions.
	BlankLines int
}

// DefaultLineWidth is used by the fmt command.
const DefaultLineWidth = 80

func (o Options) withDefaults() Options {
	if o.IndentWidth == 0 {
		o.IndentWidth = 4
	}
	if o.BlankLines < 0 {
		o.BlankLines = 0
	}
	return o
}
