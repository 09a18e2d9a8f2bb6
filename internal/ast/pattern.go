// Package ast defines the pattern tree the usefulness engine operates on,
// and the arena that owns it. Everything about surface syntax, lowering,
// and the concrete host type system lives outside this package; a Pattern
// here is already fully lowered and typed.
package ast

import "fmt"

// Type is the type carried by a pattern. The engine never inspects it
// itself; it is forwarded to the oracle, which knows the concrete type
// representation of the host language.
type Type interface {
	String() string
}

// Kind is the head shape of a pattern.
type Kind int

const (
	Wild Kind = iota
	Binding
	Variant
	Or
	Literal
	Range
	Slice
)

func (k Kind) String() string {
	switch k {
	case Wild:
		return "Wild"
	case Binding:
		return "Binding"
	case Variant:
		return "Variant"
	case Or:
		return "Or"
	case Literal:
		return "Literal"
	case Range:
		return "Range"
	case Slice:
		return "Slice"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Handle is a stable, cheap reference to a Pattern stored in an Arena.
// Handles are never reused and remain valid for the lifetime of the arena.
type Handle int

// NoHandle is the zero value of an absent handle (e.g. a Binding with no
// inner subpattern).
const NoHandle Handle = -1

// Pattern is the recursive pattern tree node. Not every field is
// meaningful for every Kind; see the per-kind comments below.
type Pattern struct {
	Kind Kind
	Type Type

	// Binding: name of the bound variable; Variant: constructor name;
	// Literal: a label used for diagnostics (the literal value itself is
	// in Value).
	Name string

	// Binding: the wrapped subpattern, or NoHandle if this is a bare
	// binding (treated as a wildcard).
	Sub Handle

	// Variant: ordered field patterns. Slice: the fixed-length prefix.
	Fields []Handle

	// Slice: the variable-length middle binding, or NoHandle if the slice
	// has no `...rest` and is therefore fixed-length.
	Rest Handle

	// Slice: the fixed-length suffix (patterns following `...rest`).
	Suffix []Handle

	// Or: the direct alternatives as written (not yet flattened — see
	// Arena.ExpandOrLeaves for the flattened, recursively-expanded form).
	Alts []Handle

	// Literal: the literal value (comparable Go value: int64, bool,
	// string, rune, ...). Range: Lo/Hi carry the bounds instead.
	Value interface{}

	// Range: inclusive bounds. Both ends use the same representation as
	// Literal.Value; the oracle interprets them against the column type.
	Lo, Hi interface{}
}

// IsCatchAll reports whether a pattern head always matches, ignoring
// whatever is bound along the way: Wild, or a Binding with no subpattern.
func (p *Pattern) IsCatchAll() bool {
	if p.Kind == Wild {
		return true
	}
	if p.Kind == Binding && p.Sub == NoHandle {
		return true
	}
	return false
}
