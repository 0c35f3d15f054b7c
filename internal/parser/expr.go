package parser

import (
	"glint/internal/ast"
	"glint/internal/token"
)

// parseExpr is the top of the expression grammar: let and lambda fully
// determine the node from their leading keyword/operator, otherwise fall
// through to the binary-operator Pratt loop.
func (p *Parser) parseExpr() (ast.ExprID, error) {
	tok, err := p.peek()
	if err != nil {
		return ast.NoExprID, err
	}
	switch tok.Kind {
	case token.KwLet:
		return p.parseLet()
	case token.Backslash:
		return p.parseLambda()
	default:
		return p.parseBinary(0)
	}
}

func (p *Parser) parseLet() (ast.ExprID, error) {
	letTok, err := p.next() // 'let'
	if err != nil {
		return ast.NoExprID, err
	}
	nameTok, err := p.expect(token.Identifier, "an identifier")
	if err != nil {
		return ast.NoExprID, err
	}
	if _, err := p.expect(token.Assign, "'='"); err != nil {
		return ast.NoExprID, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return ast.NoExprID, err
	}
	if _, err := p.expect(token.KwIn, "'in'"); err != nil {
		return ast.NoExprID, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return ast.NoExprID, err
	}
	return p.prog.Exprs.NewLet(letTok.Span, p.intern(nameTok), value, body), nil
}

func (p *Parser) parseLambda() (ast.ExprID, error) {
	bsTok, err := p.next() // '\'
	if err != nil {
		return ast.NoExprID, err
	}
	paramTok, err := p.expect(token.Identifier, "an identifier")
	if err != nil {
		return ast.NoExprID, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return ast.NoExprID, err
	}
	return p.prog.Exprs.NewLambda(bsTok.Span, p.intern(paramTok), body), nil
}

// parseBinary is the classic precedence-climbing loop: peek an operator;
// stop if its precedence is below minPrec; otherwise consume it and
// recurse with minPrec = prec + 1 so both operators associate left.
func (p *Parser) parseBinary(minPrec int) (ast.ExprID, error) {
	lhs, err := p.parseApplication()
	if err != nil {
		return ast.NoExprID, err
	}
	for {
		tok, err := p.peek()
		if err != nil {
			return ast.NoExprID, err
		}
		prec, ok := binaryPrec[tok.Kind]
		if !ok || prec < minPrec {
			return lhs, nil
		}
		if _, err := p.next(); err != nil {
			return ast.NoExprID, err
		}
		rhs, err := p.parseBinary(prec + 1)
		if err != nil {
			return ast.NoExprID, err
		}
		lhs = p.prog.Exprs.NewBinary(tok.Span, binaryOp[tok.Kind], lhs, rhs)
	}
}

// parseApplication parses a projection, then folds further projections
// left-associatively into Application as long as the next token can start
// a primary.
func (p *Parser) parseApplication() (ast.ExprID, error) {
	fn, err := p.parseProjection()
	if err != nil {
		return ast.NoExprID, err
	}
	for {
		tok, err := p.peek()
		if err != nil {
			return ast.NoExprID, err
		}
		if !tok.CanStartPrimary() {
			return fn, nil
		}
		arg, err := p.parseProjection()
		if err != nil {
			return ast.NoExprID, err
		}
		span := p.prog.Exprs.Get(fn).Span
		fn = p.prog.Exprs.NewApplication(span, fn, arg)
	}
}

// parseProjection parses a primary, then folds `.field` left-associatively.
func (p *Parser) parseProjection() (ast.ExprID, error) {
	record, err := p.parsePrimary()
	if err != nil {
		return ast.NoExprID, err
	}
	for {
		tok, err := p.peek()
		if err != nil {
			return ast.NoExprID, err
		}
		if tok.Kind != token.Dot {
			return record, nil
		}
		if _, err := p.next(); err != nil {
			return ast.NoExprID, err
		}
		fieldTok, err := p.expect(token.Identifier, "a field name")
		if err != nil {
			return ast.NoExprID, err
		}
		record = p.prog.Exprs.NewProjection(fieldTok.Span, record, p.intern(fieldTok))
	}
}

func (p *Parser) parsePrimary() (ast.ExprID, error) {
	tok, err := p.peek()
	if err != nil {
		return ast.NoExprID, err
	}
	switch tok.Kind {
	case token.Integer:
		if _, err := p.next(); err != nil {
			return ast.NoExprID, err
		}
		return p.prog.Exprs.NewInteger(tok.Span, tok.IntValue), nil
	case token.Identifier:
		if _, err := p.next(); err != nil {
			return ast.NoExprID, err
		}
		return p.prog.Exprs.NewIdentifier(tok.Span, p.intern(tok)), nil
	case token.LParen:
		if _, err := p.next(); err != nil {
			return ast.NoExprID, err
		}
		inner, err := p.parseExpr()
		if err != nil {
			return ast.NoExprID, err
		}
		if _, err := p.expect(token.RParen, "')'"); err != nil {
			return ast.NoExprID, err
		}
		return inner, nil
	case token.LBrace:
		return p.parseProductLiteral()
	default:
		return ast.NoExprID, p.unexpected(tok, "an expression")
	}
}

// parseProductLiteral parses `{` (Identifier `=` Expression (`;` Identifier
// `=` Expression)*)? `}`. A trailing ';' before '}' is not permitted: the
// loop stops as soon as the token after a field is not ';'.
func (p *Parser) parseProductLiteral() (ast.ExprID, error) {
	openTok, err := p.next() // '{'
	if err != nil {
		return ast.NoExprID, err
	}

	var fields []ast.ProductField
	tok, err := p.peek()
	if err != nil {
		return ast.NoExprID, err
	}
	for tok.Kind != token.RBrace {
		nameTok, err := p.expect(token.Identifier, "a field name")
		if err != nil {
			return ast.NoExprID, err
		}
		if _, err := p.expect(token.Assign, "'='"); err != nil {
			return ast.NoExprID, err
		}
		value, err := p.parseExpr()
		if err != nil {
			return ast.NoExprID, err
		}
		fields = append(fields, ast.ProductField{Name: p.intern(nameTok), Value: value})

		tok, err = p.peek()
		if err != nil {
			return ast.NoExprID, err
		}
		if tok.Kind != token.Semicolon {
			break
		}
		if _, err := p.next(); err != nil {
			return ast.NoExprID, err
		}
		tok, err = p.peek()
		if err != nil {
			return ast.NoExprID, err
		}
		if tok.Kind == token.RBrace {
			return ast.NoExprID, p.unexpected(tok, "a field name")
		}
	}

	if _, err := p.expect(token.RBrace, "'}'"); err != nil {
		return ast.NoExprID, err
	}
	return p.prog.Exprs.NewProduct(openTok.Span, fields), nil
}
