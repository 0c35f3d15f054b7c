package parser

import (
	"glint/internal/ast"
	"glint/internal/token"
)

// binaryPrec maps an infix operator's token kind to its Pratt precedence.
// Both operators are left-associative, so the loop recurses with
// min_prec = prec + 1.
var binaryPrec = map[token.Kind]int{
	token.Plus: 1,
	token.Star: 2,
}

var binaryOp = map[token.Kind]ast.BinaryOp{
	token.Plus: ast.Add,
	token.Star: ast.Mul,
}
