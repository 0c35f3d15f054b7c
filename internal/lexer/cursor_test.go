package lexer

import (
	"testing"

	"glint/internal/source"
)

func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.Add("test.glint", content)
	return fs.Get(id)
}

func TestCursorSequentialReading(t *testing.T) {
	c := NewCursor(createFile("a\nb"))

	if c.EOF() {
		t.Fatal("expected not EOF at start")
	}
	if got := c.Bump(); got != 'a' {
		t.Fatalf("Bump() = %c, want 'a'", got)
	}
	if got := c.Bump(); got != '\n' {
		t.Fatalf("Bump() = %q, want '\\n'", got)
	}
	if got := c.Bump(); got != 'b' {
		t.Fatalf("Bump() = %c, want 'b'", got)
	}
	if !c.EOF() {
		t.Fatal("expected EOF at end")
	}
	if c.Peek() != 0 {
		t.Fatalf("Peek() at EOF = %v, want 0", c.Peek())
	}
}

func TestCursorLineColTracking(t *testing.T) {
	c := NewCursor(createFile("ab\ncd"))
	c.Bump() // a, col 1->2
	c.Bump() // b, col 2->3
	c.Bump() // \n, line 1->2, col ->1
	line, col := c.Pos()
	if line != 2 || col != 1 {
		t.Fatalf("Pos() after newline = (%d,%d), want (2,1)", line, col)
	}
}

func TestCursorMarkAndSpanFrom(t *testing.T) {
	c := NewCursor(createFile("abc"))
	m := c.Mark()
	c.Bump()
	c.Bump()
	sp := c.SpanFrom(m)
	if sp.Line != 1 || sp.StartCol != 1 || sp.EndCol != 3 {
		t.Fatalf("SpanFrom() = %+v, want {1 1 3}", sp)
	}
	if got := c.TextFrom(m); got != "ab" {
		t.Fatalf("TextFrom() = %q, want \"ab\"", got)
	}
}
