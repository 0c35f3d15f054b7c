package types

import (
	"testing"

	"glint/internal/source"
)

func TestIsizeEqualsItself(t *testing.T) {
	in := NewInterner()
	if !in.Equal(in.Isize(), in.Isize()) {
		t.Fatal("Isize must equal Isize")
	}
}

func TestArrowEquality(t *testing.T) {
	in := NewInterner()
	a := in.RegisterArrow(in.Isize(), in.Isize())
	b := in.RegisterArrow(in.Isize(), in.Isize())
	if !in.Equal(a, b) {
		t.Fatal("two identical arrows must be Equal")
	}
}

func TestArrowNotEqualToIsize(t *testing.T) {
	in := NewInterner()
	a := in.RegisterArrow(in.Isize(), in.Isize())
	if in.Equal(a, in.Isize()) {
		t.Fatal("an arrow must not equal Isize")
	}
}

func TestProductEqualityIgnoresOrder(t *testing.T) {
	in := NewInterner()
	interner := source.NewInterner()
	x := interner.Intern("x")
	y := interner.Intern("y")

	xy := in.RegisterProduct([]Field{{Name: x, Type: in.Isize()}, {Name: y, Type: in.Isize()}})
	yx := in.RegisterProduct([]Field{{Name: y, Type: in.Isize()}, {Name: x, Type: in.Isize()}})
	if !in.Equal(xy, yx) {
		t.Fatal("product field order must not affect equality")
	}
}

func TestProductNotEqualOnFieldTypeMismatch(t *testing.T) {
	in := NewInterner()
	interner := source.NewInterner()
	x := interner.Intern("x")

	arrow := in.RegisterArrow(in.Isize(), in.Isize())
	p1 := in.RegisterProduct([]Field{{Name: x, Type: in.Isize()}})
	p2 := in.RegisterProduct([]Field{{Name: x, Type: arrow}})
	if in.Equal(p1, p2) {
		t.Fatal("products with differently typed fields must not be Equal")
	}
}

func TestProductNotEqualOnFieldCountMismatch(t *testing.T) {
	in := NewInterner()
	interner := source.NewInterner()
	x := interner.Intern("x")
	y := interner.Intern("y")

	p1 := in.RegisterProduct([]Field{{Name: x, Type: in.Isize()}})
	p2 := in.RegisterProduct([]Field{{Name: x, Type: in.Isize()}, {Name: y, Type: in.Isize()}})
	if in.Equal(p1, p2) {
		t.Fatal("products with different field counts must not be Equal")
	}
}

func TestDisplay(t *testing.T) {
	in := NewInterner()
	interner := source.NewInterner()
	x := interner.Intern("x")

	arrow := in.RegisterArrow(in.Isize(), in.Isize())
	if got := in.Display(arrow, interner); got != "isize -> isize" {
		t.Fatalf("Display(arrow) = %q", got)
	}

	prod := in.RegisterProduct([]Field{{Name: x, Type: in.Isize()}})
	if got := in.Display(prod, interner); got != "{ x : isize }" {
		t.Fatalf("Display(product) = %q", got)
	}
}
