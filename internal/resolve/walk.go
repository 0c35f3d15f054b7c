package resolve

import (
	"glint/internal/ast"
	"glint/internal/diag"
	"glint/internal/source"
)

// walkExpr is sweep 2's tree walk over an expression, under the given
// lexical stack of local names (index len(locals)-1 is the innermost/most
// recently pushed binding).
func (r *Resolver) walkExpr(id ast.ExprID, locals []source.InternId) error {
	expr := r.prog.Exprs.Get(id)
	switch expr.Kind {
	case ast.ExprInteger:
		return nil

	case ast.ExprIdentifier:
		data, _ := r.prog.Exprs.Ident(id)
		if idx, ok := lookupLocal(locals, data.Name); ok {
			data.Bound = ast.LocalBound(idx)
			return nil
		}
		if r.valueGlobals[data.Name] {
			data.Bound = ast.GlobalBound(data.Name)
			return nil
		}
		return r.unbound(data.Name, expr.Span)

	case ast.ExprBinary:
		data, _ := r.prog.Exprs.Binary(id)
		if err := r.walkExpr(data.Lhs, locals); err != nil {
			return err
		}
		return r.walkExpr(data.Rhs, locals)

	case ast.ExprLet:
		data, _ := r.prog.Exprs.Let(id)
		if err := r.walkExpr(data.Value, locals); err != nil {
			return err
		}
		return r.walkExpr(data.Body, push(locals, data.Var))

	case ast.ExprLambda:
		data, _ := r.prog.Exprs.Lambda(id)
		return r.walkExpr(data.Body, push(locals, data.Param))

	case ast.ExprApplication:
		data, _ := r.prog.Exprs.Application(id)
		if err := r.walkExpr(data.Function, locals); err != nil {
			return err
		}
		return r.walkExpr(data.Argument, locals)

	case ast.ExprProduct:
		data, _ := r.prog.Exprs.Product(id)
		for _, f := range data.Fields {
			if err := r.walkExpr(f.Value, locals); err != nil {
				return err
			}
		}
		return nil

	case ast.ExprProjection:
		data, _ := r.prog.Exprs.Projection(id)
		return r.walkExpr(data.Record, locals)

	default:
		return nil
	}
}

// walkTypeExpr is sweep 2's tree walk over a type expression. Type
// identifiers are looked up only in the type-globals namespace: local type
// variables are not supported by this language.
func (r *Resolver) walkTypeExpr(id ast.TypeExprID) error {
	te := r.prog.TypeExprs.Get(id)
	switch te.Kind {
	case ast.TypeExprIdentifier:
		data, _ := r.prog.TypeExprs.Ident(id)
		if _, ok := r.typeGlobals[data.Name]; ok {
			data.Bound = ast.GlobalBound(data.Name)
			return nil
		}
		return r.unbound(data.Name, te.Span)

	case ast.TypeExprArrow:
		data, _ := r.prog.TypeExprs.Arrow(id)
		if err := r.walkTypeExpr(data.From); err != nil {
			return err
		}
		return r.walkTypeExpr(data.To)

	case ast.TypeExprProduct:
		data, _ := r.prog.TypeExprs.Product(id)
		for _, f := range data.Fields {
			if err := r.walkTypeExpr(f.Type); err != nil {
				return err
			}
		}
		return nil

	default:
		return nil
	}
}

func (r *Resolver) unbound(name source.InternId, span source.Span) error {
	text, _ := r.interner.Lookup(name)
	return diag.Newf(diag.PhaseResolve, diag.ResUnboundIdentifier, span, "unbound identifier %q", text)
}

// push returns a new stack with name pushed on top, without mutating
// locals (sibling branches of a Let/Lambda body must not see each other's
// pushes).
func push(locals []source.InternId, name source.InternId) []source.InternId {
	next := make([]source.InternId, len(locals)+1)
	copy(next, locals)
	next[len(locals)] = name
	return next
}

// lookupLocal searches locals from the top (most recently pushed) down,
// returning the de Bruijn index of the first match: 0 for the topmost.
func lookupLocal(locals []source.InternId, name source.InternId) (uint32, bool) {
	for i := len(locals) - 1; i >= 0; i-- {
		if locals[i] == name {
			return uint32(len(locals) - 1 - i), true
		}
	}
	return 0, false
}
