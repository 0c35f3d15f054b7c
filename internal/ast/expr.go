package ast

import "glint/internal/source"

// ExprKind enumerates the node shapes an Expr can take.
type ExprKind uint8

const (
	ExprInteger ExprKind = iota
	ExprIdentifier
	ExprBinary
	ExprLet
	ExprLambda
	ExprApplication
	ExprProduct
	ExprProjection
)

// BinaryOp enumerates the infix operators this language supports.
type BinaryOp uint8

const (
	Add BinaryOp = iota
	Mul
)

func (op BinaryOp) String() string {
	switch op {
	case Add:
		return "+"
	case Mul:
		return "*"
	default:
		return "?"
	}
}

// Expr is the small fixed header every expression node shares; Payload
// indexes into whichever per-kind arena Kind names. Span is the node's
// signifying span: the operator, keyword, or literal that gives it its
// identity, not the full extent of its subtree.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

type ExprIdentData struct {
	Name  source.InternId
	Bound Bound
}

type ExprBinaryData struct {
	Op    BinaryOp
	Lhs   ExprID
	Rhs   ExprID
}

type ExprLetData struct {
	Var   source.InternId
	Value ExprID
	Body  ExprID
}

type ExprLambdaData struct {
	Param source.InternId
	Body  ExprID
}

type ExprApplicationData struct {
	Function ExprID
	Argument ExprID
}

// ProductField is one `name = value` entry of a product literal, in source
// order.
type ProductField struct {
	Name  source.InternId
	Value ExprID
}

type ExprProductData struct {
	Fields []ProductField
}

type ExprProjectionData struct {
	Record ExprID
	Field  source.InternId
}

// Exprs owns every expression node allocated for one Program: the shared
// Expr header arena plus one payload arena per kind that carries data.
// Integer literals store their value in IntegerVals, addressed the same
// way as every other payload.
type Exprs struct {
	Arena        *Arena[Expr]
	IntegerVals  *Arena[uint64]
	Idents       *Arena[ExprIdentData]
	Binaries     *Arena[ExprBinaryData]
	Lets         *Arena[ExprLetData]
	Lambdas      *Arena[ExprLambdaData]
	Applications *Arena[ExprApplicationData]
	Products     *Arena[ExprProductData]
	Projections  *Arena[ExprProjectionData]
}

// NewExprs creates an Exprs with every arena preallocated to capHint (or a
// small default if capHint is 0).
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 64
	}
	return &Exprs{
		Arena:        NewArena[Expr](capHint),
		IntegerVals:  NewArena[uint64](capHint),
		Idents:       NewArena[ExprIdentData](capHint),
		Binaries:     NewArena[ExprBinaryData](capHint),
		Lets:         NewArena[ExprLetData](capHint),
		Lambdas:      NewArena[ExprLambdaData](capHint),
		Applications: NewArena[ExprApplicationData](capHint),
		Products:     NewArena[ExprProductData](capHint),
		Projections:  NewArena[ExprProjectionData](capHint),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{Kind: kind, Span: span, Payload: payload}))
}

// Get returns the node at id, or nil if id is NoExprID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

func (e *Exprs) NewInteger(span source.Span, value uint64) ExprID {
	payload := e.IntegerVals.Allocate(value)
	return e.new(ExprInteger, span, PayloadID(payload))
}

func (e *Exprs) Integer(id ExprID) (uint64, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprInteger {
		return 0, false
	}
	return *e.IntegerVals.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewIdentifier(span source.Span, name source.InternId) ExprID {
	payload := e.Idents.Allocate(ExprIdentData{Name: name, Bound: UndeterminedBound()})
	return e.new(ExprIdentifier, span, PayloadID(payload))
}

// Ident returns the mutable payload of an Identifier node, so the resolver
// can write its Bound exactly once in place.
func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIdentifier {
		return nil, false
	}
	return e.Idents.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewBinary(span source.Span, op BinaryOp, lhs, rhs ExprID) ExprID {
	payload := e.Binaries.Allocate(ExprBinaryData{Op: op, Lhs: lhs, Rhs: rhs})
	return e.new(ExprBinary, span, PayloadID(payload))
}

func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewLet(span source.Span, v source.InternId, value, body ExprID) ExprID {
	payload := e.Lets.Allocate(ExprLetData{Var: v, Value: value, Body: body})
	return e.new(ExprLet, span, PayloadID(payload))
}

func (e *Exprs) Let(id ExprID) (*ExprLetData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprLet {
		return nil, false
	}
	return e.Lets.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewLambda(span source.Span, param source.InternId, body ExprID) ExprID {
	payload := e.Lambdas.Allocate(ExprLambdaData{Param: param, Body: body})
	return e.new(ExprLambda, span, PayloadID(payload))
}

func (e *Exprs) Lambda(id ExprID) (*ExprLambdaData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprLambda {
		return nil, false
	}
	return e.Lambdas.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewApplication(span source.Span, function, argument ExprID) ExprID {
	payload := e.Applications.Allocate(ExprApplicationData{Function: function, Argument: argument})
	return e.new(ExprApplication, span, PayloadID(payload))
}

func (e *Exprs) Application(id ExprID) (*ExprApplicationData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprApplication {
		return nil, false
	}
	return e.Applications.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewProduct(span source.Span, fields []ProductField) ExprID {
	payload := e.Products.Allocate(ExprProductData{Fields: append([]ProductField(nil), fields...)})
	return e.new(ExprProduct, span, PayloadID(payload))
}

func (e *Exprs) Product(id ExprID) (*ExprProductData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprProduct {
		return nil, false
	}
	return e.Products.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewProjection(span source.Span, record ExprID, field source.InternId) ExprID {
	payload := e.Projections.Allocate(ExprProjectionData{Record: record, Field: field})
	return e.new(ExprProjection, span, PayloadID(payload))
}

func (e *Exprs) Projection(id ExprID) (*ExprProjectionData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprProjection {
		return nil, false
	}
	return e.Projections.Get(uint32(expr.Payload)), true
}
