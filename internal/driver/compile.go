// Package driver wires the four compiler phases (lexer, parser, resolver,
// checker) into the CompileSource/CompileFile entry points the CLI and REPL
// use, and adds directory-mode orchestration over independent per-file
// compilations. Per spec.md §5 there is no shared mutable state between
// compilations: each CompileSource call builds its own Interner and FileSet.
package driver

import (
	"os"

	"glint/internal/ast"
	"glint/internal/check"
	"glint/internal/lexer"
	"glint/internal/parser"
	"glint/internal/resolve"
	"glint/internal/source"
	"glint/internal/types"
)

// Result holds everything a single compilation produced: the parsed
// program and its checked declaration summaries on success, or the first
// diagnostic encountered on failure (spec.md §5's fail-fast rule — at
// most one error per compilation).
type Result struct {
	Path      string
	File      *source.File
	Interner  *source.Interner
	Prog      *ast.Program
	Types     *types.Interner
	Summaries []check.Summary
	Err       error
}

// CompileSource runs the full pipeline over src, named name for
// diagnostics.
func CompileSource(name, src string) *Result {
	fs := source.NewFileSet()
	id := fs.Add(name, src)
	file := fs.Get(id)
	in := source.NewInterner()
	r := &Result{Path: name, File: file, Interner: in}

	prog, err := parser.ParseProgram(lexer.New(file), in)
	if err != nil {
		r.Err = err
		return r
	}
	r.Prog = prog

	if err := resolve.Resolve(prog, in); err != nil {
		r.Err = err
		return r
	}

	ti := types.NewInterner()
	summaries, err := check.CheckProgram(prog, in, ti)
	r.Types = ti
	r.Summaries = summaries
	r.Err = err
	return r
}

// CompileFile reads path and compiles it. A read failure is reported as
// r.Err rather than a Go error return, so callers can treat every
// Compile* entry point uniformly.
func CompileFile(path string) *Result {
	content, err := os.ReadFile(path)
	if err != nil {
		return &Result{Path: path, Err: err}
	}
	return CompileSource(path, string(content))
}
