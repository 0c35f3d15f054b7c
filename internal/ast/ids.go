package ast

type (
	// ExprID identifies an expression node.
	ExprID uint32
	// TypeExprID identifies a type-expression node.
	TypeExprID uint32
	// PayloadID indexes a node's per-kind auxiliary data.
	PayloadID uint32
	// DeclID identifies a top-level declaration.
	DeclID uint32
)

const (
	NoExprID     ExprID     = 0
	NoTypeExprID TypeExprID = 0
	NoPayloadID  PayloadID  = 0
	NoDeclID     DeclID     = 0
)

func (id ExprID) IsValid() bool     { return id != NoExprID }
func (id TypeExprID) IsValid() bool { return id != NoTypeExprID }
func (id PayloadID) IsValid() bool  { return id != NoPayloadID }
func (id DeclID) IsValid() bool     { return id != NoDeclID }
