package check

import (
	"glint/internal/ast"
	"glint/internal/diag"
	"glint/internal/types"
)

// infer synthesizes an expression's type bottom-up. Lambda has no rule
// here: per spec, it is checkable but not inferrable.
func (c *Checker) infer(id ast.ExprID) (types.TypeID, error) {
	expr := c.prog.Exprs.Get(id)
	switch expr.Kind {
	case ast.ExprInteger:
		return c.types.Isize(), nil

	case ast.ExprIdentifier:
		data, _ := c.prog.Exprs.Ident(id)
		switch data.Bound.Kind {
		case ast.Local:
			return c.localType(data.Bound.Index), nil
		default: // ast.Global
			return c.globalValueType(data.Bound.Name, expr.Span)
		}

	case ast.ExprBinary:
		data, _ := c.prog.Exprs.Binary(id)
		if err := c.checkExpr(data.Lhs, c.types.Isize()); err != nil {
			return types.NoTypeID, err
		}
		if err := c.checkExpr(data.Rhs, c.types.Isize()); err != nil {
			return types.NoTypeID, err
		}
		return c.types.Isize(), nil

	case ast.ExprLet:
		data, _ := c.prog.Exprs.Let(id)
		vt, err := c.infer(data.Value)
		if err != nil {
			return types.NoTypeID, err
		}
		c.pushLocal(vt)
		bt, err := c.infer(data.Body)
		c.popLocal()
		if err != nil {
			return types.NoTypeID, err
		}
		return bt, nil

	case ast.ExprLambda:
		return types.NoTypeID, diag.New(diag.PhaseCheck, diag.TypeCannotInferLambda, expr.Span,
			"cannot infer a lambda's type; an expected function type is required")

	case ast.ExprApplication:
		data, _ := c.prog.Exprs.Application(id)
		ft, err := c.infer(data.Function)
		if err != nil {
			return types.NoTypeID, err
		}
		arrow, ok := c.types.ArrowInfo(ft)
		if !ok {
			return types.NoTypeID, c.expectedFunction(ft, expr.Span)
		}
		if err := c.checkExpr(data.Argument, arrow.From); err != nil {
			return types.NoTypeID, err
		}
		return arrow.To, nil

	case ast.ExprProduct:
		data, _ := c.prog.Exprs.Product(id)
		seen := make(map[string]bool, len(data.Fields))
		fields := make([]types.Field, 0, len(data.Fields))
		for _, f := range data.Fields {
			ft, err := c.infer(f.Value)
			if err != nil {
				return types.NoTypeID, err
			}
			name, _ := c.interner.Lookup(f.Name)
			if seen[name] {
				return types.NoTypeID, diag.Newf(diag.PhaseCheck, diag.TypeDuplicateField, expr.Span,
					"duplicate field %q in product literal", name)
			}
			seen[name] = true
			fields = append(fields, types.Field{Name: f.Name, Type: ft})
		}
		return c.types.RegisterProduct(fields), nil

	case ast.ExprProjection:
		data, _ := c.prog.Exprs.Projection(id)
		rt, err := c.infer(data.Record)
		if err != nil {
			return types.NoTypeID, err
		}
		info, ok := c.types.ProductInfo(rt)
		if !ok {
			return types.NoTypeID, c.expectedProduct(rt, expr.Span)
		}
		for _, f := range info.Fields {
			if f.Name == data.Field {
				return f.Type, nil
			}
		}
		return types.NoTypeID, c.noSuchField(data.Field, expr.Span)

	default:
		return types.NoTypeID, nil
	}
}
