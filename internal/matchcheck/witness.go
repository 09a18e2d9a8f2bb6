package matchcheck

import "github.com/funvibe/matchuse/internal/ast"

// Witness is a partial non-exhaustive witness under construction: an
// ordered list of surface patterns, stored in reverse order of emission.
// At termination of the outermost call a witness has length 1 and
// represents one uncovered value.
type Witness struct {
	Patterns []ast.Handle
}

// EmptyWitness is the starting point for synthesizing a new witness.
func EmptyWitness() Witness { return Witness{} }

// Clone returns an independent copy of w.
func (w Witness) Clone() Witness {
	cp := make([]ast.Handle, len(w.Patterns))
	copy(cp, w.Patterns)
	return Witness{Patterns: cp}
}

// Push appends h and returns the resulting witness, leaving w unmodified.
func (w Witness) Push(h ast.Handle) Witness {
	cp := w.Clone()
	cp.Patterns = append(cp.Patterns, h)
	return cp
}
