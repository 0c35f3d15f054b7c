package check

import (
	"glint/internal/ast"
	"glint/internal/types"
)

// checkExpr is the "expected type known" judgement. Lambda is the only
// expression that branches here instead of delegating to infer: every
// other form is checked by inferring its type and comparing structurally,
// per spec's `check(e, expected)` rule.
func (c *Checker) checkExpr(id ast.ExprID, expected types.TypeID) error {
	expr := c.prog.Exprs.Get(id)
	if expr.Kind == ast.ExprLambda {
		data, _ := c.prog.Exprs.Lambda(id)
		arrow, ok := c.types.ArrowInfo(expected)
		if !ok {
			return c.expectedFunction(expected, expr.Span)
		}
		c.pushLocal(arrow.From)
		err := c.checkExpr(data.Body, arrow.To)
		c.popLocal()
		return err
	}

	found, err := c.infer(id)
	if err != nil {
		return err
	}
	if !c.types.Equal(found, expected) {
		return c.mismatch(expected, found, expr.Span)
	}
	return nil
}
