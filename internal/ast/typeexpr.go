package ast

import "glint/internal/source"

// TypeExprKind enumerates the syntactic surface for types.
type TypeExprKind uint8

const (
	TypeExprIdentifier TypeExprKind = iota
	TypeExprArrow
	TypeExprProduct
)

// TypeExpr is the small fixed header for every type-expression node.
type TypeExpr struct {
	Kind    TypeExprKind
	Span    source.Span
	Payload PayloadID
}

type TypeExprIdentData struct {
	Name  source.InternId
	Bound Bound
}

type TypeExprArrowData struct {
	From TypeExprID
	To   TypeExprID
}

// TypeProductField is one `name : type` entry of a product type, in source
// order.
type TypeProductField struct {
	Name source.InternId
	Type TypeExprID
}

type TypeExprProductData struct {
	Fields []TypeProductField
}

// TypeExprs owns every type-expression node allocated for one Program.
type TypeExprs struct {
	Arena    *Arena[TypeExpr]
	Idents   *Arena[TypeExprIdentData]
	Arrows   *Arena[TypeExprArrowData]
	Products *Arena[TypeExprProductData]
}

func NewTypeExprs(capHint uint) *TypeExprs {
	if capHint == 0 {
		capHint = 32
	}
	return &TypeExprs{
		Arena:    NewArena[TypeExpr](capHint),
		Idents:   NewArena[TypeExprIdentData](capHint),
		Arrows:   NewArena[TypeExprArrowData](capHint),
		Products: NewArena[TypeExprProductData](capHint),
	}
}

func (t *TypeExprs) new(kind TypeExprKind, span source.Span, payload PayloadID) TypeExprID {
	return TypeExprID(t.Arena.Allocate(TypeExpr{Kind: kind, Span: span, Payload: payload}))
}

func (t *TypeExprs) Get(id TypeExprID) *TypeExpr {
	return t.Arena.Get(uint32(id))
}

func (t *TypeExprs) NewIdentifier(span source.Span, name source.InternId) TypeExprID {
	payload := t.Idents.Allocate(TypeExprIdentData{Name: name, Bound: UndeterminedBound()})
	return t.new(TypeExprIdentifier, span, PayloadID(payload))
}

func (t *TypeExprs) Ident(id TypeExprID) (*TypeExprIdentData, bool) {
	te := t.Get(id)
	if te == nil || te.Kind != TypeExprIdentifier {
		return nil, false
	}
	return t.Idents.Get(uint32(te.Payload)), true
}

func (t *TypeExprs) NewArrow(span source.Span, from, to TypeExprID) TypeExprID {
	payload := t.Arrows.Allocate(TypeExprArrowData{From: from, To: to})
	return t.new(TypeExprArrow, span, PayloadID(payload))
}

func (t *TypeExprs) Arrow(id TypeExprID) (*TypeExprArrowData, bool) {
	te := t.Get(id)
	if te == nil || te.Kind != TypeExprArrow {
		return nil, false
	}
	return t.Arrows.Get(uint32(te.Payload)), true
}

func (t *TypeExprs) NewProduct(span source.Span, fields []TypeProductField) TypeExprID {
	payload := t.Products.Allocate(TypeExprProductData{Fields: append([]TypeProductField(nil), fields...)})
	return t.new(TypeExprProduct, span, PayloadID(payload))
}

func (t *TypeExprs) Product(id TypeExprID) (*TypeExprProductData, bool) {
	te := t.Get(id)
	if te == nil || te.Kind != TypeExprProduct {
		return nil, false
	}
	return t.Products.Get(uint32(te.Payload)), true
}
