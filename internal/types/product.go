package types

import "glint/internal/source"

// Field is one name/type pair of a product type. Order follows the
// declaration or literal that produced it; Equal ignores order.
type Field struct {
	Name source.InternId
	Type TypeID
}

// ProductInfo stores a product type's fields, in declaration order.
type ProductInfo struct {
	Fields []Field
}

// RegisterProduct creates a new product type with these fields, in this
// order. Every call returns a fresh TypeID, even for fields identical to an
// earlier product's; products with the same fields compare Equal.
func (in *Interner) RegisterProduct(fields []Field) TypeID {
	slot := uint32(len(in.products))
	in.products = append(in.products, ProductInfo{Fields: cloneFields(fields)})
	return in.append(Type{Kind: KindProduct, Payload: slot})
}

// ProductInfo retrieves a product type's fields by TypeID.
func (in *Interner) ProductInfo(id TypeID) (ProductInfo, bool) {
	t, ok := in.Lookup(id)
	if !ok || t.Kind != KindProduct {
		return ProductInfo{}, false
	}
	return in.products[t.Payload], true
}

func cloneFields(fields []Field) []Field {
	if len(fields) == 0 {
		return nil
	}
	cpy := make([]Field, len(fields))
	copy(cpy, fields)
	return cpy
}
