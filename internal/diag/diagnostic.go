package diag

import (
	"fmt"

	"glint/internal/source"
)

// Diagnostic is the one error type every phase of the pipeline raises. It
// implements error so callers can propagate it with plain %w wrapping, and
// carries enough structure (Span, Code, Phase) for diagfmt to render the
// "FILE:LINE:COL: error: MESSAGE (at PHASE)" format and for tooling to
// switch on Code without parsing Message.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Phase    Phase
	Message  string
	Span     source.Span
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s (at %s)", d.Severity, d.Message, d.Phase)
}

// New builds an error-severity Diagnostic, the only severity the pipeline
// currently produces.
func New(phase Phase, code Code, span source.Span, message string) *Diagnostic {
	return &Diagnostic{Severity: SevError, Code: code, Phase: phase, Message: message, Span: span}
}

// Newf is New with fmt.Sprintf-style formatting.
func Newf(phase Phase, code Code, span source.Span, format string, args ...any) *Diagnostic {
	return New(phase, code, span, fmt.Sprintf(format, args...))
}
