package lsp

import (
	"fortio.org/safecast"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"fern/internal/source"
)

const maxUint32 = ^uint32(0)

func safeUint32(n int) uint32 {
	if n < 0 {
		return 0
	}
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		return maxUint32
	}
	return v
}

// utf16Column converts a rune column on line into UTF-16 code units.
// Columns past the end of the line keep counting one unit per rune.
func utf16Column(line string, col uint32) uint32 {
	var units, runes uint32
	for _, r := range line {
		if runes == col {
			return units
		}
		if r > 0xFFFF {
			units += 2
		} else {
			units++
		}
		runes++
	}
	return units + (col - runes)
}

func positionFor(file *source.File, pos source.Pos) protocol.Position {
	if pos.Line == 0 {
		return protocol.Position{}
	}
	var line string
	if file != nil {
		line = file.GetLine(pos.Line)
	}
	return protocol.Position{
		Line:      pos.Line - 1,
		Character: utf16Column(line, pos.Col),
	}
}

func rangeForSpan(file *source.File, span source.Span) protocol.Range {
	return protocol.Range{
		Start: positionFor(file, span.L),
		End:   positionFor(file, span.R),
	}
}
