package source

import "sync"

// InternId is an opaque handle into an Interner. Two InternIds compare equal
// iff the strings they name are equal.
type InternId uint32

// NoInternId marks the absence of an interned string.
const NoInternId InternId = 0

// Interner is an injective string<->InternId table, safe for concurrent use
// so a single process can intern identifiers from several compilations at
// once (the directory-mode driver does not actually share one across files,
// but nothing here prevents it).
type Interner struct {
	mu    sync.RWMutex
	byID  []string
	index map[string]InternId
}

// NewInterner creates an empty interner. Index 0 is reserved for NoInternId
// and maps to the empty string.
func NewInterner() *Interner {
	return &Interner{
		byID:  []string{""},
		index: map[string]InternId{"": 0},
	}
}

// Intern returns the InternId for s, assigning a new one if s was not seen
// before.
func (in *Interner) Intern(s string) InternId {
	in.mu.RLock()
	if id, ok := in.index[s]; ok {
		in.mu.RUnlock()
		return id
	}
	in.mu.RUnlock()

	cpy := string([]byte(s)) // detach from the caller's buffer

	in.mu.Lock()
	defer in.mu.Unlock()
	if id, ok := in.index[cpy]; ok {
		return id
	}
	id := InternId(len(in.byID))
	in.byID = append(in.byID, cpy)
	in.index[cpy] = id
	return id
}

// Lookup returns the string named by id.
func (in *Interner) Lookup(id InternId) (string, bool) {
	in.mu.RLock()
	defer in.mu.RUnlock()
	if int(id) < 0 || int(id) >= len(in.byID) {
		return "", false
	}
	return in.byID[id], true
}

// MustLookup returns the string named by id, panicking if id is invalid.
func (in *Interner) MustLookup(id InternId) string {
	s, ok := in.Lookup(id)
	if !ok {
		panic("source: invalid InternId")
	}
	return s
}

// Len returns the number of distinct strings interned, including the empty
// string reserved for NoInternId.
func (in *Interner) Len() int {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return len(in.byID)
}
