package parser

import (
	"glint/internal/ast"
	"glint/internal/token"
)

// parseTypeExpr parses a type primary, then, if the next token is '->',
// consumes it and recurses — right-associative, since the recursive call
// re-enters parseTypeExpr rather than a precedence-bounded loop.
func (p *Parser) parseTypeExpr() (ast.TypeExprID, error) {
	from, err := p.parseTypePrimary()
	if err != nil {
		return ast.NoTypeExprID, err
	}
	tok, err := p.peek()
	if err != nil {
		return ast.NoTypeExprID, err
	}
	if tok.Kind != token.Arrow {
		return from, nil
	}
	if _, err := p.next(); err != nil {
		return ast.NoTypeExprID, err
	}
	to, err := p.parseTypeExpr()
	if err != nil {
		return ast.NoTypeExprID, err
	}
	return p.prog.TypeExprs.NewArrow(tok.Span, from, to), nil
}

func (p *Parser) parseTypePrimary() (ast.TypeExprID, error) {
	tok, err := p.peek()
	if err != nil {
		return ast.NoTypeExprID, err
	}
	switch tok.Kind {
	case token.Identifier:
		if _, err := p.next(); err != nil {
			return ast.NoTypeExprID, err
		}
		return p.prog.TypeExprs.NewIdentifier(tok.Span, p.intern(tok)), nil
	case token.LParen:
		if _, err := p.next(); err != nil {
			return ast.NoTypeExprID, err
		}
		inner, err := p.parseTypeExpr()
		if err != nil {
			return ast.NoTypeExprID, err
		}
		if _, err := p.expect(token.RParen, "')'"); err != nil {
			return ast.NoTypeExprID, err
		}
		return inner, nil
	case token.LBrace:
		return p.parseProductType()
	default:
		return ast.NoTypeExprID, p.unexpected(tok, "a type")
	}
}

// parseProductType mirrors parseProductLiteral with ':' between name and
// type instead of '='.
func (p *Parser) parseProductType() (ast.TypeExprID, error) {
	openTok, err := p.next() // '{'
	if err != nil {
		return ast.NoTypeExprID, err
	}

	var fields []ast.TypeProductField
	tok, err := p.peek()
	if err != nil {
		return ast.NoTypeExprID, err
	}
	for tok.Kind != token.RBrace {
		nameTok, err := p.expect(token.Identifier, "a field name")
		if err != nil {
			return ast.NoTypeExprID, err
		}
		if _, err := p.expect(token.Colon, "':'"); err != nil {
			return ast.NoTypeExprID, err
		}
		fieldType, err := p.parseTypeExpr()
		if err != nil {
			return ast.NoTypeExprID, err
		}
		fields = append(fields, ast.TypeProductField{Name: p.intern(nameTok), Type: fieldType})

		tok, err = p.peek()
		if err != nil {
			return ast.NoTypeExprID, err
		}
		if tok.Kind != token.Semicolon {
			break
		}
		if _, err := p.next(); err != nil {
			return ast.NoTypeExprID, err
		}
		tok, err = p.peek()
		if err != nil {
			return ast.NoTypeExprID, err
		}
		if tok.Kind == token.RBrace {
			return ast.NoTypeExprID, p.unexpected(tok, "a field name")
		}
	}

	if _, err := p.expect(token.RBrace, "'}'"); err != nil {
		return ast.NoTypeExprID, err
	}
	return p.prog.TypeExprs.NewProduct(openTok.Span, fields), nil
}
