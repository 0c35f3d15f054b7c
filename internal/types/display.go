package types

import (
	"strings"

	"glint/internal/source"
)

// Display renders id the way the grammar would write it back: "isize",
// "A -> B", "{ a : isize; b : isize }".
func (in *Interner) Display(id TypeID, interner *source.Interner) string {
	t, ok := in.Lookup(id)
	if !ok {
		return "<invalid type>"
	}
	switch t.Kind {
	case KindIsize:
		return "isize"
	case KindArrow:
		a := in.arrows[t.Payload]
		return in.Display(a.From, interner) + " -> " + in.Display(a.To, interner)
	case KindProduct:
		p := in.products[t.Payload]
		if len(p.Fields) == 0 {
			return "{}"
		}
		var b strings.Builder
		b.WriteString("{")
		for i, f := range p.Fields {
			name, _ := interner.Lookup(f.Name)
			b.WriteString(" ")
			b.WriteString(name)
			b.WriteString(" : ")
			b.WriteString(in.Display(f.Type, interner))
			if i != len(p.Fields)-1 {
				b.WriteString(";")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("}")
		return b.String()
	default:
		return "<invalid type>"
	}
}
