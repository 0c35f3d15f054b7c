// Package diagfmt renders diagnostics the way spec.md §6 requires: one
// header line, the offending source line, and a caret underline. It is
// the human-readable counterpart to internal/encode's machine-readable
// wire format.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"glint/internal/diag"
	"glint/internal/source"
)

// PrettyOpts configures how a diagnostic is rendered.
type PrettyOpts struct {
	Color   bool
	Context int // lines of leading context shown above the faulting line
}

const tabWidth = 8

// phaseLabel maps a diag.Phase to the exact wording spec.md §6 specifies
// for the "(at PHASE)" suffix, which differs from diag.Phase.String()'s
// terser package-internal names.
func phaseLabel(p diag.Phase) string {
	switch p {
	case diag.PhaseLex:
		return "tokenizing"
	case diag.PhaseParse:
		return "parsing"
	case diag.PhaseResolve:
		return "name resolution"
	case diag.PhaseCheck:
		return "type checking"
	default:
		return p.String()
	}
}

// Pretty writes one diagnostic in the format
//
//	FILE:LINE:COL: error: MESSAGE (at PHASE)
//	<context lines>
//	<faulting line>
//	<caret underline>
//
// path is the display path for file (the caller decides absolute vs
// relative); file supplies the source text the span points into.
func Pretty(w io.Writer, path string, file *source.File, d *diag.Diagnostic, opts PrettyOpts) error {
	errorColor := color.New(color.FgRed, color.Bold)
	pathColor := color.New(color.FgWhite, color.Bold)
	lineNumColor := color.New(color.FgBlue)
	underlineColor := color.New(color.FgRed, color.Bold)

	prevNoColor := color.NoColor
	defer func() { color.NoColor = prevNoColor }()
	color.NoColor = !opts.Color

	if _, err := fmt.Fprintf(w, "%s:%d:%d: %s: %s (at %s)\n",
		pathColor.Sprint(path),
		d.Span.Line, d.Span.StartCol,
		errorColor.Sprint("error"),
		d.Message,
		phaseLabel(d.Phase),
	); err != nil {
		return err
	}

	context := opts.Context
	if context <= 0 {
		context = 1
	}
	startLine := d.Span.Line - uint32(context)
	if int(d.Span.Line) <= context {
		startLine = 1
	}

	for line := startLine; line <= d.Span.Line; line++ {
		text := file.Line(line)
		gutter := fmt.Sprintf("%4d | ", line)
		if _, err := io.WriteString(w, lineNumColor.Sprint(gutter)); err != nil {
			return err
		}
		if _, err := io.WriteString(w, text+"\n"); err != nil {
			return err
		}
		if line != d.Span.Line {
			continue
		}

		visualStart := visualWidthUpTo(text, d.Span.StartCol)
		visualEnd := visualWidthUpTo(text, d.Span.EndCol)

		var underline strings.Builder
		underline.WriteString(strings.Repeat(" ", len(gutter)+visualStart))
		span := visualEnd - visualStart
		if span <= 0 {
			underline.WriteByte('^')
		} else {
			underline.WriteString(strings.Repeat("~", span-1))
			underline.WriteByte('^')
		}
		if _, err := fmt.Fprintln(w, underlineColor.Sprint(underline.String())); err != nil {
			return err
		}
	}
	return nil
}

// visualWidthUpTo computes the on-screen column width of text up to the
// given 1-based byte column, expanding tabs and accounting for
// double-width runes (spec.md's grammar is ASCII-only, but the caret
// underline stays correct for arbitrary UTF-8 source text).
func visualWidthUpTo(text string, byteCol uint32) int {
	if byteCol <= 1 {
		return 0
	}
	bytePos, visualPos := 0, 0
	for _, r := range text {
		if bytePos >= int(byteCol-1) {
			break
		}
		if r == '\t' {
			visualPos = (visualPos + tabWidth) / tabWidth * tabWidth
		} else {
			visualPos += runewidth.RuneWidth(r)
		}
		bytePos += len(string(r))
	}
	return visualPos
}
