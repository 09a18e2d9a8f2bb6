package ast

// Arena is a monotonically growing identity store for patterns. Every
// pattern the engine sees or synthesizes is allocated here and referred to
// by its Handle; handles are stable for the lifetime of the arena and
// nothing is ever deleted.
type Arena struct {
	pats []Pattern

	// flatCache memoizes the pre-order flattened alternative list for a
	// given Or-pattern handle, so the ordering used to assign alt_count /
	// alt_id when an or-pattern is first expanded is identical to the
	// ordering used later when reporting unreachable sub-patterns.
	flatCache map[Handle][]Handle
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{flatCache: make(map[Handle][]Handle)}
}

// Alloc stores p and returns its stable handle.
func (a *Arena) Alloc(p Pattern) Handle {
	a.pats = append(a.pats, p)
	return Handle(len(a.pats) - 1)
}

// Get dereferences a handle. Undefined (panics) for an out-of-range or
// NoHandle value — callers are expected to have checked for NoHandle first.
func (a *Arena) Get(h Handle) *Pattern {
	return &a.pats[h]
}

// ExpandOrLeaves deep-expands an or-pattern into its flat list of
// alternative-leaf handles: if the pattern at h is Or{alts}, each
// alternative is recursively expanded (nested or-patterns are flattened);
// otherwise h itself is the single-element result. The traversal order is
// pre-order and is cached per handle so that the alt_count and alt_id used
// when the or-pattern is first encountered (reachability phase) exactly
// match the order used later when reporting unreachable sub-patterns.
// This stability is load-bearing, not cosmetic.
func (a *Arena) ExpandOrLeaves(h Handle) []Handle {
	if cached, ok := a.flatCache[h]; ok {
		return cached
	}
	var out []Handle
	p := a.Get(h)
	if p.Kind != Or {
		out = []Handle{h}
	} else {
		for _, alt := range p.Alts {
			out = append(out, a.ExpandOrLeaves(alt)...)
		}
	}
	a.flatCache[h] = out
	return out
}
