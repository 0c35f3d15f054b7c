package token_test

import (
	"testing"

	"glint/internal/source"
	"glint/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Line: 1, StartCol: 1, EndCol: 1}}
}

func TestIsKeyword(t *testing.T) {
	kws := []token.Kind{token.KwLet, token.KwIn, token.KwDefn, token.KwDecl, token.KwType}
	for _, k := range kws {
		if !tok(k).IsKeyword() {
			t.Fatalf("%v should be a keyword", k)
		}
	}
	non := []token.Kind{token.Identifier, token.Integer, token.Plus, token.LParen}
	for _, k := range non {
		if tok(k).IsKeyword() {
			t.Fatalf("%v must NOT be a keyword", k)
		}
	}
}

func TestCanStartPrimary(t *testing.T) {
	yes := []token.Kind{token.Integer, token.Identifier, token.LParen, token.LBrace}
	for _, k := range yes {
		if !tok(k).CanStartPrimary() {
			t.Fatalf("%v should start a primary", k)
		}
	}
	no := []token.Kind{token.Plus, token.RParen, token.EOF, token.KwLet}
	for _, k := range no {
		if tok(k).CanStartPrimary() {
			t.Fatalf("%v must NOT start a primary", k)
		}
	}
}

func TestKindString(t *testing.T) {
	if got := token.Arrow.String(); got != "->" {
		t.Fatalf("Arrow.String() = %q, want \"->\"", got)
	}
	if got := token.KwDefn.String(); got != "defn" {
		t.Fatalf("KwDefn.String() = %q, want \"defn\"", got)
	}
}
