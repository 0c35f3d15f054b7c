package parser

import (
	"glint/internal/ast"
	"glint/internal/token"
)

// parseDecl dispatches the three top-level declaration forms. The grammar
// requires every top-level construct to start with one of defn/decl/type;
// anything else is an UnexpectedToken.
func (p *Parser) parseDecl() (ast.Decl, error) {
	tok, err := p.peek()
	if err != nil {
		return ast.Decl{}, err
	}

	switch tok.Kind {
	case token.KwDefn:
		return p.parseBind()
	case token.KwDecl:
		return p.parseSig()
	case token.KwType:
		return p.parseTypeAlias()
	default:
		return ast.Decl{}, p.unexpected(tok, "'defn', 'decl', or 'type'")
	}
}

func (p *Parser) parseBind() (ast.Decl, error) {
	if _, err := p.next(); err != nil { // consume 'defn'
		return ast.Decl{}, err
	}
	nameTok, err := p.expect(token.Identifier, "an identifier")
	if err != nil {
		return ast.Decl{}, err
	}
	if _, err := p.expect(token.Assign, "'='"); err != nil {
		return ast.Decl{}, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return ast.Decl{}, err
	}
	return ast.Decl{
		Kind:     ast.DeclBind,
		Name:     p.intern(nameTok),
		NameSpan: nameTok.Span,
		Value:    value,
	}, nil
}

func (p *Parser) parseSig() (ast.Decl, error) {
	if _, err := p.next(); err != nil { // consume 'decl'
		return ast.Decl{}, err
	}
	nameTok, err := p.expect(token.Identifier, "an identifier")
	if err != nil {
		return ast.Decl{}, err
	}
	if _, err := p.expect(token.Colon, "':'"); err != nil {
		return ast.Decl{}, err
	}
	te, err := p.parseTypeExpr()
	if err != nil {
		return ast.Decl{}, err
	}
	return ast.Decl{
		Kind:     ast.DeclSig,
		Name:     p.intern(nameTok),
		NameSpan: nameTok.Span,
		TypeExpr: te,
	}, nil
}

func (p *Parser) parseTypeAlias() (ast.Decl, error) {
	if _, err := p.next(); err != nil { // consume 'type'
		return ast.Decl{}, err
	}
	nameTok, err := p.expect(token.Identifier, "an identifier")
	if err != nil {
		return ast.Decl{}, err
	}
	if _, err := p.expect(token.Assign, "'='"); err != nil {
		return ast.Decl{}, err
	}
	te, err := p.parseTypeExpr()
	if err != nil {
		return ast.Decl{}, err
	}
	return ast.Decl{
		Kind:     ast.DeclTypeAlias,
		Name:     p.intern(nameTok),
		NameSpan: nameTok.Span,
		TypeExpr: te,
	}, nil
}
