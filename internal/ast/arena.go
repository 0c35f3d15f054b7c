package ast

import (
	"fmt"

	"fortio.org/safecast"
)

// Arena is a generic typed arena: an append-only, acyclic store of T whose
// elements are addressed by 1-based index so the zero value of an index
// type can mean "absent" without a sentinel field.
type Arena[T any] struct {
	data []*T
}

// NewArena creates an Arena[T] with its backing slice preallocated to
// capHint; capHint may be 0.
func NewArena[T any](capHint uint) *Arena[T] {
	return &Arena[T]{data: make([]*T, 0, capHint)}
}

// Allocate appends value and returns its 1-based index.
func (a *Arena[T]) Allocate(value T) uint32 {
	elem := new(T)
	*elem = value
	a.data = append(a.data, elem)
	return a.Len()
}

// Get returns a pointer to the element at index, or nil if index is 0 (or
// out of range). The pointer aliases the arena's storage, so callers that
// need to mutate a field in place (the resolver writing Bound) may do so
// through it.
func (a *Arena[T]) Get(index uint32) *T {
	if index == 0 || int(index) > len(a.data) {
		return nil
	}
	return a.data[index-1]
}

// Len returns the number of elements allocated.
func (a *Arena[T]) Len() uint32 {
	n, err := safecast.Conv[uint32](len(a.data))
	if err != nil {
		panic(fmt.Errorf("ast: arena length overflow: %w", err))
	}
	return n
}
