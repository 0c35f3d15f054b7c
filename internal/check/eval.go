package check

import (
	"glint/internal/ast"
	"glint/internal/diag"
	"glint/internal/source"
	"glint/internal/types"
)

// eval evaluates a type expression into a types.Type, per spec's "evaluate
// type expression" pass: Identifier looks up the alias (or resolves
// directly to the built-in isize), Arrow and Product recurse structurally.
func (c *Checker) eval(id ast.TypeExprID) (types.TypeID, error) {
	te := c.prog.TypeExprs.Get(id)
	switch te.Kind {
	case ast.TypeExprIdentifier:
		data, _ := c.prog.TypeExprs.Ident(id)
		return c.evalGlobalType(data.Name, te)

	case ast.TypeExprArrow:
		data, _ := c.prog.TypeExprs.Arrow(id)
		from, err := c.eval(data.From)
		if err != nil {
			return types.NoTypeID, err
		}
		to, err := c.eval(data.To)
		if err != nil {
			return types.NoTypeID, err
		}
		return c.types.RegisterArrow(from, to), nil

	case ast.TypeExprProduct:
		data, _ := c.prog.TypeExprs.Product(id)
		seen := make(map[string]bool, len(data.Fields))
		fields := make([]types.Field, 0, len(data.Fields))
		for _, f := range data.Fields {
			fieldType, err := c.eval(f.Type)
			if err != nil {
				return types.NoTypeID, err
			}
			name, _ := c.interner.Lookup(f.Name)
			if seen[name] {
				return types.NoTypeID, diag.Newf(diag.PhaseCheck, diag.TypeDuplicateField, te.Span,
					"duplicate field %q in product type", name)
			}
			seen[name] = true
			fields = append(fields, types.Field{Name: f.Name, Type: fieldType})
		}
		return c.types.RegisterProduct(fields), nil

	default:
		return types.NoTypeID, nil
	}
}

// evalGlobalType resolves a type-level Identifier's name: isize maps
// directly to the built-in scalar (it is pre-seeded by the resolver's
// type-globals namespace, not declared by any `type` alias); any other name
// must be a TypeAlias, evaluated (and cached) recursively, with a cycle
// guard since type aliases can reference each other.
func (c *Checker) evalGlobalType(name source.InternId, te *ast.TypeExpr) (types.TypeID, error) {
	if name == c.isizeName {
		return c.types.Isize(), nil
	}
	if cached, ok := c.aliasCache[name]; ok {
		return cached, nil
	}
	aliasTE, ok := c.aliasExprs[name]
	if !ok {
		// The resolver already proved this name lives in type globals, so
		// it must be isize or a declared alias; this is unreachable.
		return c.types.Isize(), nil
	}
	if c.evaluating[name] {
		text, _ := c.interner.Lookup(name)
		return types.NoTypeID, diag.Newf(diag.PhaseCheck, diag.TypeAliasCycle, te.Span,
			"type alias %q is defined in terms of itself", text)
	}
	c.evaluating[name] = true
	t, err := c.eval(aliasTE)
	delete(c.evaluating, name)
	if err != nil {
		return types.NoTypeID, err
	}
	c.aliasCache[name] = t
	return t, nil
}
