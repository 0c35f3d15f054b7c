package check

import (
	"glint/internal/diag"
	"glint/internal/source"
	"glint/internal/types"
)

func missingSignatureErr(name source.InternId, text string, span source.Span) error {
	return diag.Newf(diag.PhaseCheck, diag.TypeMissingSignature, span,
		"%q has no matching 'decl' signature", text)
}

func (c *Checker) expectedFunction(found types.TypeID, span source.Span) error {
	return diag.Newf(diag.PhaseCheck, diag.TypeExpectedFunction, span,
		"expected a function but found %q", c.types.Display(found, c.interner))
}

func (c *Checker) expectedProduct(found types.TypeID, span source.Span) error {
	return diag.Newf(diag.PhaseCheck, diag.TypeExpectedProduct, span,
		"expected a product but found %q", c.types.Display(found, c.interner))
}

func (c *Checker) noSuchField(field source.InternId, span source.Span) error {
	name, _ := c.interner.Lookup(field)
	return diag.Newf(diag.PhaseCheck, diag.TypeNoSuchField, span,
		"product has no field named %q", name)
}

func (c *Checker) mismatch(expected, found types.TypeID, span source.Span) error {
	return diag.Newf(diag.PhaseCheck, diag.TypeMismatch, span,
		"expected %q but found %q", c.types.Display(expected, c.interner), c.types.Display(found, c.interner))
}
