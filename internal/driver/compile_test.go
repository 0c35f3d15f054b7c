package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestCompileSourceSuccess(t *testing.T) {
	r := CompileSource("test.glint", "decl a : isize\ndefn a = 1 + 2")
	if r.Err != nil {
		t.Fatalf("Err = %v", r.Err)
	}
	if len(r.Summaries) != 2 {
		t.Fatalf("Summaries = %+v, want 2 entries", r.Summaries)
	}
}

func TestCompileSourceReportsFirstError(t *testing.T) {
	r := CompileSource("test.glint", "defn a = x")
	if r.Err == nil {
		t.Fatal("expected an unbound-identifier error")
	}
}

func TestCompileFileMissingReportsErr(t *testing.T) {
	r := CompileFile(filepath.Join(t.TempDir(), "nope.glint"))
	if r.Err == nil {
		t.Fatal("expected a file-not-found error")
	}
}

func TestCompileDirCompilesEachFileIndependently(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.glint")
	bad := filepath.Join(dir, "bad.glint")
	if err := os.WriteFile(good, []byte("decl a : isize\ndefn a = 1"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.WriteFile(bad, []byte("defn a = x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	results, err := CompileDir(context.Background(), dir, 0)
	if err != nil {
		t.Fatalf("CompileDir: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %+v, want 2", results)
	}

	var sawGood, sawBad bool
	for _, r := range results {
		switch r.Path {
		case good:
			sawGood = r.Err == nil
		case bad:
			sawBad = r.Err != nil
		}
	}
	if !sawGood || !sawBad {
		t.Fatalf("results = %+v, want one success and one independent failure", results)
	}
}
