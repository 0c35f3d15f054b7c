// Package parser implements a single-pass Pratt parser over the token
// stream produced by internal/lexer, building the ast.Program that
// internal/resolve and internal/check operate on.
package parser

import (
	"glint/internal/ast"
	"glint/internal/diag"
	"glint/internal/lexer"
	"glint/internal/source"
	"glint/internal/token"
)

// Parser holds the one-token-lookahead state for a single source file. It
// is fail-fast: the first error returned aborts parsing entirely, matching
// the pipeline's "first error wins" contract.
type Parser struct {
	lx       *lexer.Lexer
	interner *source.Interner
	prog     *ast.Program
	lastSpan source.Span
}

// New creates a Parser reading from lx, interning identifiers through in.
func New(lx *lexer.Lexer, in *source.Interner) *Parser {
	return &Parser{lx: lx, interner: in, prog: ast.NewProgram()}
}

// ParseProgram consumes tokens from lx until EOF and returns the resulting
// Program, or the first error encountered.
func ParseProgram(lx *lexer.Lexer, in *source.Interner) (*ast.Program, error) {
	p := New(lx, in)
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.EOF {
			return p.prog, nil
		}
		decl, err := p.parseDecl()
		if err != nil {
			return nil, err
		}
		p.prog.Decls = append(p.prog.Decls, decl)
	}
}

// ParseExpression parses a single expression, for interactive (REPL) use.
// It returns the Program whose arenas own the parsed tree, the root
// expression's id, and the first error encountered.
func ParseExpression(lx *lexer.Lexer, in *source.Interner) (*ast.Program, ast.ExprID, error) {
	p := New(lx, in)
	id, err := p.parseExpr()
	if err != nil {
		return nil, ast.NoExprID, err
	}
	return p.prog, id, nil
}

func (p *Parser) peek() (token.Token, error) {
	return p.lx.Peek()
}

func (p *Parser) next() (token.Token, error) {
	tok, err := p.lx.Next()
	if err != nil {
		return token.Token{}, err
	}
	if tok.Kind != token.EOF {
		p.lastSpan = tok.Span
	}
	return tok, nil
}

// expect consumes the next token if it has kind k, otherwise returns an
// UnexpectedToken (or UnexpectedEOF, at the done sentinel) diagnostic.
func (p *Parser) expect(k token.Kind, what string) (token.Token, error) {
	tok, err := p.peek()
	if err != nil {
		return token.Token{}, err
	}
	if tok.Kind == k {
		return p.next()
	}
	return token.Token{}, p.unexpected(tok, what)
}

func (p *Parser) unexpected(tok token.Token, what string) error {
	if tok.Kind == token.EOF {
		return diag.Newf(diag.PhaseParse, diag.SynUnexpectedEOF, tok.Span, "unexpected end of input, expected %s", what)
	}
	return diag.Newf(diag.PhaseParse, diag.SynUnexpectedToken, tok.Span, "unexpected token %q, expected %s", tok.Text, what)
}

func (p *Parser) intern(tok token.Token) source.InternId {
	return p.interner.Intern(tok.Text)
}
