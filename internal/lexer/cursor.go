package lexer

import "glint/internal/source"

// Cursor walks a file's content one byte at a time, tracking 1-based
// line/column position so spans can be produced without a separate
// offset-to-position pass.
type Cursor struct {
	content string
	off     int
	line    uint32
	col     uint32
}

// NewCursor creates a cursor positioned at the start of f.
func NewCursor(f *source.File) Cursor {
	return Cursor{content: f.Content, off: 0, line: 1, col: 1}
}

// EOF reports whether the cursor has consumed the entire input.
func (c *Cursor) EOF() bool {
	return c.off >= len(c.content)
}

// Peek returns the current byte without consuming it, or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.content[c.off]
}

// Peek2 returns the byte one past the current one, or 0 if unavailable.
func (c *Cursor) Peek2() byte {
	if c.off+1 >= len(c.content) {
		return 0
	}
	return c.content[c.off+1]
}

// Bump consumes and returns the current byte, advancing line/col.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.content[c.off]
	c.off++
	if b == '\n' {
		c.line++
		c.col = 1
	} else {
		c.col++
	}
	return b
}

// Mark is a saved cursor position, usable to compute the Span of the bytes
// consumed since it was taken.
type Mark struct {
	off  int
	line uint32
	col  uint32
}

// Mark saves the current position.
func (c *Cursor) Mark() Mark {
	return Mark{off: c.off, line: c.line, col: c.col}
}

// SpanFrom builds the Span covering [m, current position). The grammar this
// lexer serves never spans a token across a newline, so the result always
// carries m's line.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{Line: m.line, StartCol: m.col, EndCol: c.col}
}

// TextFrom returns the raw source text consumed since m.
func (c *Cursor) TextFrom(m Mark) string {
	return c.content[m.off:c.off]
}

// Pos returns the cursor's current line and column, for zero-length spans
// such as EOF.
func (c *Cursor) Pos() (line, col uint32) {
	return c.line, c.col
}
