package ast

import "glint/internal/source"

// BoundKind tags which case a Bound is in.
type BoundKind uint8

const (
	// Undetermined is the only BoundKind a freshly parsed Identifier may
	// carry. The resolver must replace it with Local or Global; any
	// Undetermined surviving past resolution is a bug.
	Undetermined BoundKind = iota
	// Local names a de Bruijn index into the enclosing lexical stack.
	Local
	// Global names a top-level declaration, in whichever namespace
	// (value or type) the identifier's position implies.
	Global
)

// Bound records how an Identifier node's name resolves. Zero value is
// Undetermined.
type Bound struct {
	Kind  BoundKind
	Index uint32          // de Bruijn index, valid iff Kind == Local
	Name  source.InternId // valid iff Kind == Global
}

// UndeterminedBound is the bound every freshly parsed Identifier carries.
func UndeterminedBound() Bound {
	return Bound{Kind: Undetermined}
}

// LocalBound builds a Bound naming the i-th de Bruijn index.
func LocalBound(i uint32) Bound {
	return Bound{Kind: Local, Index: i}
}

// GlobalBound builds a Bound naming a top-level declaration.
func GlobalBound(name source.InternId) Bound {
	return Bound{Kind: Global, Name: name}
}
