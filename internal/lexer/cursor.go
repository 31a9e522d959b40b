package lexer

import (
	"fern/internal/source"
)

// Cursor представляет собой позицию во входном тексте: индекс руны и
// соответствующие ей строку/колонку.
type Cursor struct {
	src []rune
	off int
	pos source.Pos
}

// NewCursor creates a cursor at the start of src.
func NewCursor(src []rune) Cursor {
	return Cursor{src: src, off: 0, pos: source.StartPos}
}

// EOF проверяет, достигнут ли конец входа
func (c *Cursor) EOF() bool {
	return c.off >= len(c.src)
}

// Peek читает текущую руну, если есть, иначе возвращает 0
func (c *Cursor) Peek() rune {
	if c.EOF() {
		return 0
	}
	return c.src[c.off]
}

// Bump перемещает курсор на одну руну вперед и возвращает её.
// Перевод строки переносит позицию на начало следующей строки.
func (c *Cursor) Bump() rune {
	if c.EOF() {
		return 0
	}
	r := c.src[c.off]
	c.off++
	if r == '\n' {
		c.pos = c.pos.AdvanceLine()
	} else {
		c.pos = c.pos.AdvanceCols(1)
	}
	return r
}

// Pos returns the coordinate of the rune under the cursor.
func (c *Cursor) Pos() source.Pos {
	return c.pos
}

// Mark это метка, что бы быстро получать текст читаемого фрагмента
type Mark struct {
	off int
	pos source.Pos
}

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark{off: c.off, pos: c.pos}
}

// TextFrom returns the runes consumed since m.
func (c *Cursor) TextFrom(m Mark) string {
	return string(c.src[m.off:c.off])
}

// Reset возвращает курсор назад к метке
func (c *Cursor) Reset(m Mark) {
	c.off = m.off
	c.pos = m.pos
}
