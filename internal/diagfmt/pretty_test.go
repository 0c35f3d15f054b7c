package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"glint/internal/diag"
	"glint/internal/source"
)

func TestPrettyRendersHeaderAndCaret(t *testing.T) {
	file := source.NewFile(1, "test.glint", "defn a = x\n")
	d := diag.New(diag.PhaseResolve, diag.ResUnboundIdentifier,
		source.Span{Line: 1, StartCol: 10, EndCol: 11}, `unbound identifier "x"`)

	var buf bytes.Buffer
	if err := Pretty(&buf, "test.glint", file, d, PrettyOpts{Color: false, Context: 1}); err != nil {
		t.Fatalf("Pretty: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `test.glint:1:10: error: unbound identifier "x" (at name resolution)`) {
		t.Fatalf("missing header line, got:\n%s", out)
	}
	if !strings.Contains(out, "defn a = x") {
		t.Fatalf("missing source line, got:\n%s", out)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	last := lines[len(lines)-1]
	if !strings.HasSuffix(last, "^") {
		t.Fatalf("expected caret underline, got %q", last)
	}
}

func TestPhaseLabelsMatchSpecWording(t *testing.T) {
	cases := map[diag.Phase]string{
		diag.PhaseLex:     "tokenizing",
		diag.PhaseParse:   "parsing",
		diag.PhaseResolve: "name resolution",
		diag.PhaseCheck:   "type checking",
	}
	for phase, want := range cases {
		if got := phaseLabel(phase); got != want {
			t.Errorf("phaseLabel(%v) = %q, want %q", phase, got, want)
		}
	}
}
