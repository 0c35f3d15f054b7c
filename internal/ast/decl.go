package ast

import "glint/internal/source"

// DeclKind enumerates the three top-level declaration forms.
type DeclKind uint8

const (
	DeclBind DeclKind = iota
	DeclSig
	DeclTypeAlias
)

// Decl is one top-level declaration. Value and TypeExpr are populated
// according to Kind: Bind uses Value, Sig and TypeAlias use TypeExpr.
type Decl struct {
	Kind     DeclKind
	Name     source.InternId
	NameSpan source.Span
	Value    ExprID     // valid iff Kind == DeclBind
	TypeExpr TypeExprID // valid iff Kind == DeclSig or DeclTypeAlias
}

// Program is the parsed, ordered sequence of declarations produced by one
// compilation, together with the arenas that own every node it references.
// Declaration order is preserved but irrelevant to resolution and
// type-checking: both phases pre-collect all top-level names before
// walking any declaration's body.
type Program struct {
	Decls     []Decl
	Exprs     *Exprs
	TypeExprs *TypeExprs
}

// NewProgram creates an empty Program with fresh arenas.
func NewProgram() *Program {
	return &Program{
		Exprs:     NewExprs(0),
		TypeExprs: NewTypeExprs(0),
	}
}
