package diag

import "sort"

// Bag collects the Diagnostics produced by compiling several files at once
// (directory mode). Each file contributes at most one Diagnostic, since a
// single compilation still aborts on its first error; the Bag only exists
// to gather those per-file results into one deterministic report.
type Bag struct {
	items []*Diagnostic
}

// NewBag creates an empty Bag.
func NewBag() *Bag {
	return &Bag{}
}

// Add appends d to the bag. A nil d is ignored so callers can add the
// result of a possibly-successful compilation unconditionally.
func (b *Bag) Add(d *Diagnostic) {
	if d == nil {
		return
	}
	b.items = append(b.items, d)
}

// Len returns the number of diagnostics in the bag.
func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns a read-only view of the bag's diagnostics.
func (b *Bag) Items() []*Diagnostic {
	return b.items
}

// Sort orders diagnostics by line, then column, then code, for a stable and
// reproducible report across runs.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Span.Line != dj.Span.Line {
			return di.Span.Line < dj.Span.Line
		}
		if di.Span.StartCol != dj.Span.StartCol {
			return di.Span.StartCol < dj.Span.StartCol
		}
		return di.Code < dj.Code
	})
}
