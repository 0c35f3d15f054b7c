package encode

import (
	"bytes"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"glint/internal/check"
	"glint/internal/diag"
	"glint/internal/source"
)

func TestProgramRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	summaries := []check.Summary{{Name: "a", Kind: "value", Type: "isize"}}
	if err := Program(&buf, summaries); err != nil {
		t.Fatalf("Program: %v", err)
	}

	var decoded ProgramSummary
	if err := msgpack.NewDecoder(&buf).Decode(&decoded); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(decoded.Declarations) != 1 || decoded.Declarations[0].Name != "a" {
		t.Fatalf("decoded = %+v", decoded)
	}
}

func TestDiagnosticRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	d := diag.New(diag.PhaseCheck, diag.TypeMismatch, source.Span{Line: 1, StartCol: 2, EndCol: 3}, "boom")
	if err := Diagnostic(&buf, d); err != nil {
		t.Fatalf("Diagnostic: %v", err)
	}

	var decoded DiagnosticOutput
	if err := msgpack.NewDecoder(&buf).Decode(&decoded); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.Message != "boom" || decoded.Line != 1 {
		t.Fatalf("decoded = %+v", decoded)
	}
}
