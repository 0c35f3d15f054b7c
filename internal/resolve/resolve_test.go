package resolve

import (
	"testing"

	"glint/internal/ast"
	"glint/internal/lexer"
	"glint/internal/parser"
	"glint/internal/source"
)

func resolveSrc(t *testing.T, src string) (*ast.Program, *source.Interner, error) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.Add("test.glint", src)
	in := source.NewInterner()
	prog, err := parser.ParseProgram(lexer.New(fs.Get(id)), in)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return prog, in, Resolve(prog, in)
}

func TestResolveLocalShadowing(t *testing.T) {
	// \x \x x must resolve the inner x to the innermost binding (index 0).
	prog, _, err := resolveSrc(t, "defn f = \\x \\x x")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	bind := prog.Decls[0]
	lam1, _ := prog.Exprs.Lambda(bind.Value)
	lam2, _ := prog.Exprs.Lambda(lam1.Body)
	ident, ok := prog.Exprs.Ident(lam2.Body)
	if !ok {
		t.Fatalf("body is not an identifier")
	}
	if ident.Bound.Kind != ast.Local || ident.Bound.Index != 0 {
		t.Fatalf("bound = %+v, want Local(0)", ident.Bound)
	}
}

func TestResolveOuterLocal(t *testing.T) {
	prog, _, err := resolveSrc(t, "defn f = \\x \\y x")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	lam1, _ := prog.Exprs.Lambda(prog.Decls[0].Value)
	lam2, _ := prog.Exprs.Lambda(lam1.Body)
	ident, _ := prog.Exprs.Ident(lam2.Body)
	if ident.Bound.Kind != ast.Local || ident.Bound.Index != 1 {
		t.Fatalf("bound = %+v, want Local(1)", ident.Bound)
	}
}

func TestResolveGlobalBind(t *testing.T) {
	prog, _, err := resolveSrc(t, "defn one = 1\ndefn two = one")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	ident, _ := prog.Exprs.Ident(prog.Decls[1].Value)
	if ident.Bound.Kind != ast.Global {
		t.Fatalf("bound = %+v, want Global", ident.Bound)
	}
}

func TestResolveUnboundIdentifier(t *testing.T) {
	_, _, err := resolveSrc(t, "defn f = x")
	if err == nil {
		t.Fatal("expected an unbound identifier error")
	}
}

func TestResolveDeclAndDefnSameNameIsNotDuplicate(t *testing.T) {
	// decl + defn pairing of the same name is the normal, expected shape.
	_, _, err := resolveSrc(t, "decl id : isize -> isize\ndefn id = \\x x")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
}

func TestResolveDuplicateBindIsRejected(t *testing.T) {
	_, _, err := resolveSrc(t, "defn f = 1\ndefn f = 2")
	if err == nil {
		t.Fatal("expected a duplicate-name error")
	}
}

func TestResolveDuplicateTypeAliasIsRejected(t *testing.T) {
	_, _, err := resolveSrc(t, "type N = isize\ntype N = isize")
	if err == nil {
		t.Fatal("expected a duplicate-name error")
	}
}

func TestResolveBareIsizeResolvesWithoutDeclaration(t *testing.T) {
	// isize is the language's only built-in scalar: it must resolve as a
	// type global even though no `type isize = ...` declaration exists.
	prog, _, err := resolveSrc(t, "decl a : isize")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	ident, ok := prog.TypeExprs.Ident(prog.Decls[0].TypeExpr)
	if !ok {
		t.Fatalf("type expr is not a bare identifier")
	}
	if ident.Bound.Kind != ast.Global {
		t.Fatalf("bound = %+v, want Global", ident.Bound)
	}
}

func TestResolveIsizeCannotBeRedeclared(t *testing.T) {
	_, _, err := resolveSrc(t, "type isize = isize")
	if err == nil {
		t.Fatal("expected a built-in-redeclaration error")
	}
}

func TestResolveTypeIdentifierGlobalOnly(t *testing.T) {
	prog, _, err := resolveSrc(t, "type N = isize\ndecl x : N")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	ident, _ := prog.TypeExprs.Ident(prog.Decls[1].TypeExpr)
	if ident.Bound.Kind != ast.Global {
		t.Fatalf("bound = %+v, want Global", ident.Bound)
	}
}

func TestResolveUnboundTypeIdentifier(t *testing.T) {
	_, _, err := resolveSrc(t, "decl x : Missing")
	if err == nil {
		t.Fatal("expected an unbound type identifier error")
	}
}
