// Package resolve implements the two-sweep bidirectional scope analysis
// that turns every Identifier node's Bound from Undetermined into Local or
// Global.
package resolve

import (
	"glint/internal/ast"
	"glint/internal/diag"
	"glint/internal/source"
)

// builtinTypeNames lists the type names that resolve as globals without any
// user `type` declaration. isize is the language's only built-in scalar
// (spec: "the single built-in scalar"); it lexes as a plain Identifier, not
// a keyword, so it must be seeded into the type-globals namespace before
// sweep 1 rather than special-cased in the grammar.
var builtinTypeNames = [...]string{"isize"}

// Resolver walks one Program's declarations, maintaining the two global
// namespaces (value and type) collected in sweep 1.
type Resolver struct {
	prog     *ast.Program
	interner *source.Interner

	// bindNames and sigNames are tracked separately so that a `decl`
	// paired with a matching `defn` of the same name is not mistaken for
	// a duplicate; each is only a conflict against another of its own
	// kind. valueGlobals is their union, used for identifier lookup.
	bindNames    map[source.InternId]source.Span
	sigNames     map[source.InternId]source.Span
	valueGlobals map[source.InternId]bool
	typeGlobals  map[source.InternId]source.Span
	builtinTypes map[source.InternId]bool
}

// Resolve runs both sweeps over prog and returns the first error
// encountered, if any. It mutates prog.Exprs/TypeExprs in place, writing
// each Identifier node's Bound exactly once.
func Resolve(prog *ast.Program, interner *source.Interner) error {
	r := &Resolver{
		prog:         prog,
		interner:     interner,
		bindNames:    make(map[source.InternId]source.Span),
		sigNames:     make(map[source.InternId]source.Span),
		valueGlobals: make(map[source.InternId]bool),
		typeGlobals:  make(map[source.InternId]source.Span),
		builtinTypes: make(map[source.InternId]bool),
	}
	r.seedBuiltinTypes()
	if err := r.collectNames(); err != nil {
		return err
	}
	for _, d := range prog.Decls {
		switch d.Kind {
		case ast.DeclBind:
			if err := r.walkExpr(d.Value, nil); err != nil {
				return err
			}
		case ast.DeclSig, ast.DeclTypeAlias:
			if err := r.walkTypeExpr(d.TypeExpr); err != nil {
				return err
			}
		}
	}
	return nil
}

// seedBuiltinTypes pre-populates the type-globals namespace with the
// language's built-in scalar, so `decl a : isize` resolves without a
// preceding `type` declaration.
func (r *Resolver) seedBuiltinTypes() {
	for _, name := range builtinTypeNames {
		id := r.interner.Intern(name)
		r.typeGlobals[id] = source.Span{}
		r.builtinTypes[id] = true
	}
}

// collectNames is sweep 1: scan declarations and add each Bind/Decl name to
// the value-globals namespace, each TypeAlias name to the type-globals
// namespace. The two namespaces are independent, so a value name and a
// type name may coincide.
func (r *Resolver) collectNames() error {
	for _, d := range r.prog.Decls {
		switch d.Kind {
		case ast.DeclBind:
			if prev, ok := r.bindNames[d.Name]; ok {
				return r.duplicateName(d, prev)
			}
			r.bindNames[d.Name] = d.NameSpan
			r.valueGlobals[d.Name] = true
		case ast.DeclSig:
			if prev, ok := r.sigNames[d.Name]; ok {
				return r.duplicateName(d, prev)
			}
			r.sigNames[d.Name] = d.NameSpan
			r.valueGlobals[d.Name] = true
		case ast.DeclTypeAlias:
			if r.builtinTypes[d.Name] {
				return r.builtinRedeclared(d)
			}
			if prev, ok := r.typeGlobals[d.Name]; ok {
				return r.duplicateName(d, prev)
			}
			r.typeGlobals[d.Name] = d.NameSpan
		}
	}
	return nil
}

func (r *Resolver) builtinRedeclared(d ast.Decl) error {
	name, _ := r.interner.Lookup(d.Name)
	return diag.Newf(diag.PhaseResolve, diag.ResDuplicateName, d.NameSpan,
		"%q is a built-in type and cannot be redeclared", name)
}

func (r *Resolver) duplicateName(d ast.Decl, prev source.Span) error {
	name, _ := r.interner.Lookup(d.Name)
	return diag.Newf(diag.PhaseResolve, diag.ResDuplicateName, d.NameSpan,
		"%q is already declared at %s", name, prev)
}
