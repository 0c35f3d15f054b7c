package check

import (
	"glint/internal/source"
	"glint/internal/types"
)

// globalValueType evaluates the signature type expression registered for a
// value global. A name with no signature is the "missing signature" case;
// this path catches it even when the first reference comes from another
// declaration processed earlier than the offending Bind.
func (c *Checker) globalValueType(name source.InternId, span source.Span) (types.TypeID, error) {
	sigTE, ok := c.sigExprs[name]
	if !ok {
		text, _ := c.interner.Lookup(name)
		return types.NoTypeID, missingSignatureErr(name, text, span)
	}
	return c.eval(sigTE)
}
