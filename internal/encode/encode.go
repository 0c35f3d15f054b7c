// Package encode provides the `--emit msgpack` wire format: a one-shot,
// stdout-only binary encoding of a checked program's declaration summary
// or of a diagnostic, for tools that want glint's output without
// re-parsing diagfmt's text. This is not persisted state (spec.md §6
// names "None"); nothing here ever reads its own output back, unlike the
// teacher's internal/driver/dcache.go, the msgpack usage this is
// grounded on.
package encode

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"glint/internal/check"
	"glint/internal/diag"
)

// ProgramSummary is the msgpack-encoded shape of a successfully checked
// program: one entry per declaration, in source order.
type ProgramSummary struct {
	Declarations []DeclSummary `msgpack:"declarations"`
}

// DeclSummary mirrors check.Summary in a tag-stable wire shape.
type DeclSummary struct {
	Name string `msgpack:"name"`
	Kind string `msgpack:"kind"`
	Type string `msgpack:"type"`
}

// Program encodes a checked program's declaration summaries to w.
func Program(w io.Writer, summaries []check.Summary) error {
	out := ProgramSummary{Declarations: make([]DeclSummary, len(summaries))}
	for i, s := range summaries {
		out.Declarations[i] = DeclSummary{Name: s.Name, Kind: s.Kind, Type: s.Type}
	}
	return msgpack.NewEncoder(w).Encode(out)
}

// DiagnosticOutput is the msgpack-encoded shape of a single diagnostic.
type DiagnosticOutput struct {
	Severity string `msgpack:"severity"`
	Code     string `msgpack:"code"`
	Phase    string `msgpack:"phase"`
	Message  string `msgpack:"message"`
	Line     uint32 `msgpack:"line"`
	StartCol uint32 `msgpack:"start_col"`
	EndCol   uint32 `msgpack:"end_col"`
}

// Diagnostic encodes a single diagnostic to w.
func Diagnostic(w io.Writer, d *diag.Diagnostic) error {
	out := DiagnosticOutput{
		Severity: d.Severity.String(),
		Code:     d.Code.String(),
		Phase:    d.Phase.String(),
		Message:  d.Message,
		Line:     d.Span.Line,
		StartCol: d.Span.StartCol,
		EndCol:   d.Span.EndCol,
	}
	return msgpack.NewEncoder(w).Encode(out)
}
