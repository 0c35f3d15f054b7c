package types

// Equal reports whether a and b are structurally the same type: Isize only
// equals Isize; Arrow compares From/To pointwise; Product ignores field
// order and requires each field name in a to have a unique, equal-typed
// match in b. Behavior is unspecified if either product repeats a field
// name.
func (in *Interner) Equal(a, b TypeID) bool {
	ta, ok := in.Lookup(a)
	if !ok {
		return false
	}
	tb, ok := in.Lookup(b)
	if !ok {
		return false
	}
	if ta.Kind != tb.Kind {
		return false
	}
	switch ta.Kind {
	case KindIsize:
		return true
	case KindArrow:
		arrowA := in.arrows[ta.Payload]
		arrowB := in.arrows[tb.Payload]
		return in.Equal(arrowA.From, arrowB.From) && in.Equal(arrowA.To, arrowB.To)
	case KindProduct:
		prodA := in.products[ta.Payload]
		prodB := in.products[tb.Payload]
		if len(prodA.Fields) != len(prodB.Fields) {
			return false
		}
		for _, fa := range prodA.Fields {
			found := false
			for _, fb := range prodB.Fields {
				if fa.Name == fb.Name {
					found = true
					if !in.Equal(fa.Type, fb.Type) {
						return false
					}
				}
			}
			if !found {
				return false
			}
		}
		return true
	default:
		return false
	}
}
