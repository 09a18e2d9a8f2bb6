package matchcheck

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/funvibe/matchuse/internal/ast"
	"github.com/funvibe/matchuse/internal/diagnostics"
)

type spKind int

const (
	spEmpty spKind = iota
	spFull
	spSeq
	spAlt
)

// SubPatSet is the lattice over sub-patterns of a single pattern or
// pattern-stack used during reachability.
type SubPatSet struct {
	kind spKind

	// spSeq: a product (constructor with fields, or a pattern-stack).
	// Missing keys mean Full.
	seq map[int]*SubPatSet

	// spAlt: a sum (or-pattern). Missing keys mean Empty.
	alt      map[int]*SubPatSet
	altCount int
	altPat   ast.Handle
}

// Empty returns the SubPatSet meaning "nothing reachable".
func Empty() *SubPatSet { return &SubPatSet{kind: spEmpty} }

// Full returns the SubPatSet meaning "everything reachable".
func Full() *SubPatSet { return &SubPatSet{kind: spFull} }

// IsEmpty reports whether s is structurally Empty.
func (s *SubPatSet) IsEmpty() bool { return s.kind == spEmpty }

// IsFull reports whether s is structurally Full.
func (s *SubPatSet) IsFull() bool { return s.kind == spFull }

func (k spKind) String() string {
	switch k {
	case spEmpty:
		return "Empty"
	case spFull:
		return "Full"
	case spSeq:
		return "Seq"
	case spAlt:
		return "Alt"
	default:
		return "?"
	}
}

// NewSeq builds a normalized Seq from its children: a Seq with any empty
// child collapses to Empty (invariant: Seq is empty iff any child is
// empty); Full children are dropped (missing means Full); a Seq with no
// remaining children collapses to Full.
func NewSeq(children map[int]*SubPatSet) *SubPatSet {
	for _, v := range children {
		if v.IsEmpty() {
			return Empty()
		}
	}
	filtered := make(map[int]*SubPatSet)
	for k, v := range children {
		if !v.IsFull() {
			filtered[k] = v
		}
	}
	if len(filtered) == 0 {
		return Full()
	}
	return &SubPatSet{kind: spSeq, seq: filtered}
}

// NewAlt builds a normalized Alt from its children: entries that are
// Empty are dropped (missing means Empty); if none remain the result is
// Empty (invariant: Alt is empty iff every child is empty); if every one
// of altCount alternatives is present and Full, the result collapses to
// Full.
func NewAlt(children map[int]*SubPatSet, altCount int, pat ast.Handle) *SubPatSet {
	filtered := make(map[int]*SubPatSet)
	for k, v := range children {
		if !v.IsEmpty() {
			filtered[k] = v
		}
	}
	if len(filtered) == 0 {
		return Empty()
	}
	if len(filtered) == altCount {
		allFull := true
		for _, v := range filtered {
			if !v.IsFull() {
				allFull = false
				break
			}
		}
		if allFull {
			return Full()
		}
	}
	return &SubPatSet{kind: spAlt, alt: filtered, altCount: altCount, altPat: pat}
}

// Union is commutative, associative, with Empty as identity and Full as
// the absorbing element.
func Union(ctx *Context, a, b *SubPatSet) *SubPatSet {
	if a.IsFull() || b.IsFull() {
		return Full()
	}
	if a.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return a
	}
	if a.kind != b.kind {
		ctx.raise(diagnostics.ErrM002, a.kind.String(), b.kind.String())
	}
	switch a.kind {
	case spSeq:
		keys := unionIntKeys(a.seq, b.seq)
		children := make(map[int]*SubPatSet, len(keys))
		for _, k := range keys {
			av := childOr(a.seq, k, Full())
			bv := childOr(b.seq, k, Full())
			children[k] = Union(ctx, av, bv)
		}
		return NewSeq(children)
	case spAlt:
		keys := unionIntKeys(a.alt, b.alt)
		children := make(map[int]*SubPatSet, len(keys))
		for _, k := range keys {
			av := childOr(a.alt, k, Empty())
			bv := childOr(b.alt, k, Empty())
			children[k] = Union(ctx, av, bv)
		}
		return NewAlt(children, a.altCount, a.altPat)
	default:
		ctx.raise(diagnostics.ErrM002, a.kind.String(), b.kind.String())
		return nil
	}
}

func childOr(m map[int]*SubPatSet, k int, dflt *SubPatSet) *SubPatSet {
	if v, ok := m[k]; ok {
		return v
	}
	return dflt
}

func unionIntKeys(a, b map[int]*SubPatSet) []int {
	seen := make(map[int]bool, len(a)+len(b))
	for k := range a {
		seen[k] = true
	}
	for k := range b {
		seen[k] = true
	}
	out := maps.Keys(seen)
	slices.Sort(out)
	return out
}

// Unspecialize inverts the effect of popping a constructor whose
// specialization produced arity new columns on the left: child keys below
// arity are folded into a fresh inner Seq placed at key 0, and those at or
// above are shifted to key-arity+1. Full/Empty pass through; Alt input is
// invalid here (a pattern-stack, not an or-pattern alternative).
func (s *SubPatSet) Unspecialize(ctx *Context, arity int) *SubPatSet {
	switch s.kind {
	case spFull:
		return Full()
	case spEmpty:
		return Empty()
	case spAlt:
		ctx.raise(diagnostics.ErrM003, "unspecialize")
		return nil
	default: // spSeq
		inner := make(map[int]*SubPatSet)
		outer := make(map[int]*SubPatSet)
		for k, v := range s.seq {
			if k < arity {
				inner[k] = v
			} else {
				outer[k-arity+1] = v
			}
		}
		outer[0] = NewSeq(inner)
		return NewSeq(outer)
	}
}

// UnsplitOrPat inverts the effect of replacing an or-pattern head with one
// of its alternatives: the set at column 0 of s (defaulting to Full) is
// wrapped into an Alt with a single entry at altID, and reinserted at
// column 0 of a fresh Seq. Empty input stays empty.
func (s *SubPatSet) UnsplitOrPat(ctx *Context, altID, altCount int, pat ast.Handle) *SubPatSet {
	if s.IsEmpty() {
		return Empty()
	}
	var col0 *SubPatSet
	switch s.kind {
	case spFull:
		col0 = Full()
	case spSeq:
		col0 = childOr(s.seq, 0, Full())
	default:
		ctx.raise(diagnostics.ErrM003, "unsplit_or_pat")
		return nil
	}
	altSet := NewAlt(map[int]*SubPatSet{altID: col0}, altCount, pat)
	return NewSeq(map[int]*SubPatSet{0: altSet})
}

// ListUnreachableSubpatterns returns (nil, false) if s is wholly Empty
// (the caller should treat this as "None" — the whole arm/alternative is
// unreachable); (nil, true) if s is Full; otherwise it recursively walks
// Alt nodes and collects the handle of every alternative that is missing
// or empty.
func (s *SubPatSet) ListUnreachableSubpatterns(ctx *Context) ([]ast.Handle, bool) {
	if s.IsEmpty() {
		return nil, false
	}
	var out []ast.Handle
	var walk func(*SubPatSet)
	walk = func(n *SubPatSet) {
		switch n.kind {
		case spFull:
			return
		case spEmpty:
			ctx.raise(diagnostics.ErrM005)
		case spSeq:
			keys := maps.Keys(n.seq)
			slices.Sort(keys)
			for _, k := range keys {
				walk(n.seq[k])
			}
		case spAlt:
			alts := ctx.Arena.ExpandOrLeaves(n.altPat)
			for i := 0; i < n.altCount; i++ {
				child, ok := n.alt[i]
				if !ok || child.IsEmpty() {
					out = append(out, alts[i])
				} else {
					walk(child)
				}
			}
		}
	}
	walk(s)
	return out, true
}
