package diag_test

import (
	"strings"
	"testing"

	"glint/internal/diag"
	"glint/internal/source"
)

func TestDiagnosticError(t *testing.T) {
	d := diag.New(diag.PhaseCheck, diag.TypeMismatch, source.Span{Line: 3, StartCol: 1, EndCol: 2}, "type mismatch")
	got := d.Error()
	if !strings.Contains(got, "type mismatch") || !strings.Contains(got, "check") {
		t.Fatalf("Error() = %q, want it to mention the message and phase", got)
	}
}

func TestBagSort(t *testing.T) {
	b := diag.NewBag()
	b.Add(diag.New(diag.PhaseLex, diag.LexUnknownTokenStart, source.Span{Line: 2, StartCol: 1, EndCol: 2}, "x"))
	b.Add(diag.New(diag.PhaseLex, diag.LexUnknownTokenStart, source.Span{Line: 1, StartCol: 5, EndCol: 6}, "y"))
	b.Add(nil)
	b.Sort()

	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}
	if b.Items()[0].Span.Line != 1 {
		t.Fatalf("expected line 1 diagnostic first after Sort")
	}
}
