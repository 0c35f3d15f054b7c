package check

import "glint/internal/types"

// pushLocal/popLocal mirror the resolver's lexical stack, one entry per
// Let/Lambda currently open. Lookup is by the same de Bruijn index the
// resolver already computed.
func (c *Checker) pushLocal(t types.TypeID) {
	c.locals = append(c.locals, t)
}

func (c *Checker) popLocal() {
	c.locals = c.locals[:len(c.locals)-1]
}

func (c *Checker) localType(index uint32) types.TypeID {
	return c.locals[len(c.locals)-1-int(index)]
}
