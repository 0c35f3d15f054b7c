package types

import (
	"fmt"

	"fortio.org/safecast"
)

// Interner owns every Type reachable from a checked program, plus the
// per-kind payload slices Arrow/Product types index into.
type Interner struct {
	types    []Type
	arrows   []ArrowInfo
	products []ProductInfo
	isize    TypeID
}

// NewInterner constructs an interner seeded with the Isize builtin.
func NewInterner() *Interner {
	in := &Interner{types: make([]Type, 1, 64)} // index 0 reserved for NoTypeID
	in.isize = in.append(Type{Kind: KindIsize})
	return in
}

// Isize returns the single TypeID naming the built-in scalar.
func (in *Interner) Isize() TypeID {
	return in.isize
}

// Lookup returns the Type named by id.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	if int(id) <= 0 || int(id) >= len(in.types) {
		return Type{}, false
	}
	return in.types[id], true
}

func (in *Interner) append(t Type) TypeID {
	id, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("types: interner overflow: %w", err))
	}
	in.types = append(in.types, t)
	return TypeID(id)
}
