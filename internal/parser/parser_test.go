package parser

import (
	"testing"

	"glint/internal/ast"
	"glint/internal/lexer"
	"glint/internal/source"
)

func parseExprSrc(t *testing.T, src string) (*ast.Program, ast.ExprID) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.Add("test.glint", src)
	in := source.NewInterner()
	prog, exprID, err := ParseExpression(lexer.New(fs.Get(id)), in)
	if err != nil {
		t.Fatalf("ParseExpression(%q): %v", src, err)
	}
	return prog, exprID
}

func TestParsePrecedence(t *testing.T) {
	// 1 + 2 * 3 must parse as 1 + (2 * 3): top node is Binary{Add}.
	prog, id := parseExprSrc(t, "1 + 2 * 3")
	bin, ok := prog.Exprs.Binary(id)
	if !ok || bin.Op != ast.Add {
		t.Fatalf("top node = %+v, want a top-level Add", prog.Exprs.Get(id))
	}
	rhsBin, ok := prog.Exprs.Binary(bin.Rhs)
	if !ok || rhsBin.Op != ast.Mul {
		t.Fatalf("rhs = %+v, want Mul", rhsBin)
	}
}

func TestParseLeftAssociativity(t *testing.T) {
	// 1 + 2 + 3 must parse as (1 + 2) + 3: lhs of the top node is a Binary.
	prog, id := parseExprSrc(t, "1 + 2 + 3")
	top, ok := prog.Exprs.Binary(id)
	if !ok {
		t.Fatalf("top node not Binary: %+v", prog.Exprs.Get(id))
	}
	if _, ok := prog.Exprs.Binary(top.Lhs); !ok {
		t.Fatalf("expected left-associative nesting, lhs = %+v", prog.Exprs.Get(top.Lhs))
	}
	if _, ok := prog.Exprs.Integer(top.Rhs); !ok {
		t.Fatalf("expected rhs to be the bare literal 3")
	}
}

func TestParseApplicationBindsTighterThanBinary(t *testing.T) {
	// f x + 1 must parse as (f x) + 1.
	prog, id := parseExprSrc(t, "f x + 1")
	bin, ok := prog.Exprs.Binary(id)
	if !ok || bin.Op != ast.Add {
		t.Fatalf("top node = %+v, want Add", prog.Exprs.Get(id))
	}
	if _, ok := prog.Exprs.Application(bin.Lhs); !ok {
		t.Fatalf("lhs = %+v, want Application", prog.Exprs.Get(bin.Lhs))
	}
}

func TestParseApplicationLeftAssociative(t *testing.T) {
	// f x y must parse as (f x) y.
	prog, id := parseExprSrc(t, "f x y")
	app, ok := prog.Exprs.Application(id)
	if !ok {
		t.Fatalf("top node = %+v, want Application", prog.Exprs.Get(id))
	}
	if _, ok := prog.Exprs.Application(app.Function); !ok {
		t.Fatalf("function = %+v, want nested Application", prog.Exprs.Get(app.Function))
	}
}

func TestParseProjectionBindsTighterThanApplication(t *testing.T) {
	// f x.y must parse as f (x.y).
	prog, id := parseExprSrc(t, "f x.y")
	app, ok := prog.Exprs.Application(id)
	if !ok {
		t.Fatalf("top node = %+v, want Application", prog.Exprs.Get(id))
	}
	if _, ok := prog.Exprs.Projection(app.Argument); !ok {
		t.Fatalf("argument = %+v, want Projection", prog.Exprs.Get(app.Argument))
	}
}

func TestParseProductLiteral(t *testing.T) {
	prog, id := parseExprSrc(t, "{a = 1; b = 2}")
	prod, ok := prog.Exprs.Product(id)
	if !ok || len(prod.Fields) != 2 {
		t.Fatalf("product = %+v", prod)
	}
}

func TestParseEmptyProductLiteral(t *testing.T) {
	prog, id := parseExprSrc(t, "{}")
	prod, ok := prog.Exprs.Product(id)
	if !ok || len(prod.Fields) != 0 {
		t.Fatalf("product = %+v, want empty", prod)
	}
}

func TestParseProductLiteralRejectsTrailingSemicolon(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.Add("test.glint", "{a = 1;}")
	_, _, err := ParseExpression(lexer.New(fs.Get(id)), source.NewInterner())
	if err == nil {
		t.Fatal("expected an error for a trailing ';' before '}'")
	}
}

func TestParseLetAndLambda(t *testing.T) {
	prog, id := parseExprSrc(t, "let x = 1 in \\y y")
	let, ok := prog.Exprs.Let(id)
	if !ok {
		t.Fatalf("top node = %+v, want Let", prog.Exprs.Get(id))
	}
	if _, ok := prog.Exprs.Lambda(let.Body); !ok {
		t.Fatalf("body = %+v, want Lambda", prog.Exprs.Get(let.Body))
	}
}

func parseTypeSrc(t *testing.T, src string) (*ast.Program, ast.TypeExprID) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.Add("test.glint", src)
	in := source.NewInterner()
	lx := lexer.New(fs.Get(id))
	p := New(lx, in)
	te, err := p.parseTypeExpr()
	if err != nil {
		t.Fatalf("parseTypeExpr(%q): %v", src, err)
	}
	return p.prog, te
}

func TestParseTypeArrowRightAssociative(t *testing.T) {
	// A -> B -> C must parse as A -> (B -> C).
	prog, id := parseTypeSrc(t, "A -> B -> C")
	top, ok := prog.TypeExprs.Arrow(id)
	if !ok {
		t.Fatalf("top node = %+v, want Arrow", prog.TypeExprs.Get(id))
	}
	if _, ok := prog.TypeExprs.Arrow(top.To); !ok {
		t.Fatalf("to = %+v, want nested Arrow", prog.TypeExprs.Get(top.To))
	}
	if _, ok := prog.TypeExprs.Ident(top.From); !ok {
		t.Fatalf("from = %+v, want bare identifier", prog.TypeExprs.Get(top.From))
	}
}

func TestParseProductType(t *testing.T) {
	prog, id := parseTypeSrc(t, "{x: Isize; y: Isize}")
	prod, ok := prog.TypeExprs.Product(id)
	if !ok || len(prod.Fields) != 2 {
		t.Fatalf("product = %+v", prod)
	}
}

func TestParseProgramDecls(t *testing.T) {
	fs := source.NewFileSet()
	src := "decl id : Isize -> Isize\ndefn id = \\x x\ntype N = Isize\n"
	id := fs.Add("test.glint", src)
	in := source.NewInterner()
	prog, err := ParseProgram(lexer.New(fs.Get(id)), in)
	if err != nil {
		t.Fatalf("ParseProgram: %v", err)
	}
	if len(prog.Decls) != 3 {
		t.Fatalf("len(Decls) = %d, want 3", len(prog.Decls))
	}
	if prog.Decls[0].Kind != ast.DeclSig || prog.Decls[1].Kind != ast.DeclBind || prog.Decls[2].Kind != ast.DeclTypeAlias {
		t.Fatalf("decl kinds = %v", []ast.DeclKind{prog.Decls[0].Kind, prog.Decls[1].Kind, prog.Decls[2].Kind})
	}
}

func TestParseUnexpectedTokenAtTopLevel(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.Add("test.glint", "42")
	_, err := ParseProgram(lexer.New(fs.Get(id)), source.NewInterner())
	if err == nil {
		t.Fatal("expected an UnexpectedToken error")
	}
}
