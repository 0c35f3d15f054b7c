// Package check implements the bidirectional type checker: it evaluates
// type expressions into types.Type values and decides, for every
// declaration and subexpression, whether the program is well-typed.
package check

import (
	"glint/internal/ast"
	"glint/internal/source"
	"glint/internal/types"
)

// Checker holds the state one Check call needs: the global name tables
// built by the pre-sweep, the alias-evaluation cache (and its
// cycle-detection guard), and the locals stack mirroring the resolver's.
type Checker struct {
	prog     *ast.Program
	interner *source.Interner
	types    *types.Interner

	sigExprs   map[source.InternId]ast.TypeExprID // Decl (signature) name -> its type expr
	aliasExprs map[source.InternId]ast.TypeExprID // TypeAlias name -> its type expr

	aliasCache map[source.InternId]types.TypeID
	evaluating map[source.InternId]bool

	isizeName source.InternId

	locals []types.TypeID
}

// Summary is one declaration's evaluated type, for tools that want a
// checked program's shape without re-running the checker themselves
// (internal/encode's msgpack emitter).
type Summary struct {
	Name string
	Kind string // "value", "signature", or "type"
	Type string
}

// Check runs the pre-sweep and then type-checks every declaration in
// order, returning the first diagnostic encountered. On success, ti is
// left populated with every type the program's declarations reference.
func Check(prog *ast.Program, interner *source.Interner, ti *types.Interner) error {
	_, err := CheckProgram(prog, interner, ti)
	return err
}

// CheckProgram is Check plus a Summary per declaration, in source order,
// for successfully checked programs.
func CheckProgram(prog *ast.Program, interner *source.Interner, ti *types.Interner) ([]Summary, error) {
	c := &Checker{
		prog:       prog,
		interner:   interner,
		types:      ti,
		sigExprs:   make(map[source.InternId]ast.TypeExprID),
		aliasExprs: make(map[source.InternId]ast.TypeExprID),
		aliasCache: make(map[source.InternId]types.TypeID),
		evaluating: make(map[source.InternId]bool),
		isizeName:  interner.Intern("isize"),
	}
	c.collectTypes()

	var summaries []Summary
	for _, d := range prog.Decls {
		name, _ := interner.Lookup(d.Name)
		switch d.Kind {
		case ast.DeclBind:
			sigTE, ok := c.sigExprs[d.Name]
			if !ok {
				return nil, c.missingSignature(d)
			}
			expected, err := c.eval(sigTE)
			if err != nil {
				return nil, err
			}
			if err := c.checkExpr(d.Value, expected); err != nil {
				return nil, err
			}
			summaries = append(summaries, Summary{Name: name, Kind: "value", Type: ti.Display(expected, interner)})
		case ast.DeclSig:
			t, err := c.eval(d.TypeExpr)
			if err != nil {
				return nil, err
			}
			summaries = append(summaries, Summary{Name: name, Kind: "signature", Type: ti.Display(t, interner)})
		case ast.DeclTypeAlias:
			t, err := c.eval(d.TypeExpr)
			if err != nil {
				return nil, err
			}
			summaries = append(summaries, Summary{Name: name, Kind: "type", Type: ti.Display(t, interner)})
		}
	}
	return summaries, nil
}

// collectTypes is the pre-sweep: Decl signatures go into sigExprs (value
// globals), TypeAlias bodies go into aliasExprs (type globals). Bind
// contributes nothing, matching spec's "Bind contributes nothing" pre-sweep
// rule.
func (c *Checker) collectTypes() {
	for _, d := range c.prog.Decls {
		switch d.Kind {
		case ast.DeclSig:
			c.sigExprs[d.Name] = d.TypeExpr
		case ast.DeclTypeAlias:
			c.aliasExprs[d.Name] = d.TypeExpr
		}
	}
}

func (c *Checker) missingSignature(d ast.Decl) error {
	name, _ := c.interner.Lookup(d.Name)
	return missingSignatureErr(d.Name, name, d.NameSpan)
}
