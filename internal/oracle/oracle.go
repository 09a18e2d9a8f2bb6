package oracle

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/funvibe/matchuse/internal/ast"
	"github.com/funvibe/matchuse/internal/ctor"
)

// Oracle is the reference ctor.Oracle implementation. It owns the arena it
// allocates wildcard and witness patterns into, which must be the same
// arena the matchcheck.Context driving it was built with.
type Oracle struct {
	Arena *ast.Arena
}

// New returns an Oracle that allocates into arena.
func New(arena *ast.Arena) *Oracle {
	return &Oracle{Arena: arena}
}

// ConstructorOf classifies the head of pat against the small closed type
// system this package knows about.
func (o *Oracle) ConstructorOf(pat *ast.Pattern) ctor.Constructor {
	switch pat.Kind {
	case ast.Wild, ast.Binding:
		return ctor.Constructor{Tag: ctor.Wildcard, Type: pat.Type}

	case ast.Variant:
		switch t := pat.Type.(type) {
		case EnumType:
			arity := 0
			if v, ok := t.VariantByName(pat.Name); ok {
				arity = len(v.Fields)
			}
			return ctor.Constructor{Tag: ctor.Single, Type: pat.Type, Name: pat.Name, Arity: arity}
		case TupleType:
			return ctor.Constructor{Tag: ctor.Single, Type: pat.Type, Name: "Tuple", Arity: len(t.Elems)}
		case ForeignEnumType:
			return ctor.Constructor{Tag: ctor.Single, Type: pat.Type, Name: pat.Name, Arity: len(pat.Fields)}
		default:
			panic(fmt.Sprintf("oracle: Variant pattern with unsupported type %T", pat.Type))
		}

	case ast.Literal:
		switch t := pat.Type.(type) {
		case EnumType:
			name := fmt.Sprintf("%v", pat.Value)
			if b, ok := pat.Value.(bool); ok {
				if b {
					name = "true"
				} else {
					name = "false"
				}
			}
			return ctor.Constructor{Tag: ctor.Single, Type: pat.Type, Name: name}
		case IntRangeType:
			v := toInt64(pat.Value)
			return ctor.Constructor{Tag: ctor.Single, Type: pat.Type, IsRange: true, Lo: v, Hi: v}
		default:
			return ctor.Constructor{Tag: ctor.Single, Type: pat.Type, Name: fmt.Sprintf("%v", pat.Value)}
		}

	case ast.Range:
		return ctor.Constructor{Tag: ctor.Single, Type: pat.Type, IsRange: true, Lo: toInt64(pat.Lo), Hi: toInt64(pat.Hi)}

	case ast.Slice:
		fixedLen := len(pat.Fields) + len(pat.Suffix)
		hasVarTail := pat.Rest != ast.NoHandle
		arity := fixedLen
		if hasVarTail {
			arity++
		}
		return ctor.Constructor{Tag: ctor.Single, Type: pat.Type, IsSlice: true, FixedLen: fixedLen, HasVarTail: hasVarTail, Arity: arity}

	default:
		panic(fmt.Sprintf("oracle: ConstructorOf called on pattern kind %s", pat.Kind))
	}
}

// IsCoveredBy reports whether every value matching a also matches b.
func (o *Oracle) IsCoveredBy(a, b ctor.Constructor) bool {
	if b.Tag == ctor.Wildcard {
		return true
	}
	if a.Tag == ctor.Wildcard {
		return false
	}
	if a.Tag == ctor.Missing || b.Tag == ctor.Missing {
		return false
	}
	if a.IsRange || b.IsRange {
		if !(a.IsRange && b.IsRange) {
			return false
		}
		return a.Lo >= b.Lo && a.Hi <= b.Hi
	}
	if a.IsSlice || b.IsSlice {
		if !(a.IsSlice && b.IsSlice) {
			return false
		}
		return sliceIsCoveredBy(a, b)
	}
	if a.Tag == ctor.NonExhaustive || b.Tag == ctor.NonExhaustive {
		return a.Tag == ctor.NonExhaustive && b.Tag == ctor.NonExhaustive
	}
	return a.Name == b.Name
}

func sliceIsCoveredBy(a, b ctor.Constructor) bool {
	if !b.HasVarTail {
		return !a.HasVarTail && a.FixedLen == b.FixedLen
	}
	return a.FixedLen >= b.FixedLen
}

// Split partitions self into the family of constructors the matrix's head
// constructors can actually distinguish.
func (o *Oracle) Split(self ctor.Constructor, headCtors []ctor.Constructor) []ctor.Constructor {
	switch t := self.Type.(type) {
	case ForeignEnumType:
		return o.splitForeign(t, headCtors)
	case EnumType:
		return o.splitEnum(t, self, headCtors)
	case TupleType:
		return []ctor.Constructor{{Tag: ctor.Single, Type: self.Type, Name: "Tuple", Arity: len(t.Elems)}}
	case IntRangeType:
		return o.splitIntRange(t, self, headCtors)
	case SliceType:
		return o.splitSlice(t, self, headCtors)
	default:
		panic(fmt.Sprintf("oracle: Split: unsupported type %T", self.Type))
	}
}

func (o *Oracle) splitEnum(t EnumType, self ctor.Constructor, headCtors []ctor.Constructor) []ctor.Constructor {
	if self.Tag == ctor.Single {
		return []ctor.Constructor{self}
	}
	present := make(map[string]bool)
	for _, hc := range headCtors {
		if hc.Tag == ctor.Single {
			if et, ok := hc.Type.(EnumType); ok && et.Name == t.Name {
				present[hc.Name] = true
			}
		}
	}
	var out []ctor.Constructor
	var missingNames []string
	for _, v := range t.Variants {
		if present[v.Name] {
			out = append(out, ctor.Constructor{Tag: ctor.Single, Type: self.Type, Name: v.Name, Arity: len(v.Fields)})
		} else {
			missingNames = append(missingNames, v.Name)
		}
	}
	if len(missingNames) > 0 {
		out = append(out, ctor.Constructor{Tag: ctor.Missing, Type: self.Type, MissingNames: missingNames})
	}
	return out
}

func (o *Oracle) splitForeign(t ForeignEnumType, headCtors []ctor.Constructor) []ctor.Constructor {
	seen := make(map[string]bool)
	var names []string
	for _, hc := range headCtors {
		if hc.Tag == ctor.Single {
			if et, ok := hc.Type.(ForeignEnumType); ok && et.Name == t.Name && !seen[hc.Name] {
				seen[hc.Name] = true
				names = append(names, hc.Name)
			}
		}
	}
	slices.Sort(names)
	out := make([]ctor.Constructor, 0, len(names)+1)
	for _, n := range names {
		out = append(out, ctor.Constructor{Tag: ctor.Single, Type: ast.Type(t), Name: n})
	}
	// A foreign enum's variant set is never known to be complete, so there
	// is always a residual, unnameable bucket: never report this type
	// exhaustive by naming variants alone.
	out = append(out, ctor.Constructor{Tag: ctor.NonExhaustive, Type: ast.Type(t)})
	return out
}

// splitIntRange partitions [lo, hi] (self's own bounds, or the full type's
// bounds if self is the wildcard) at every boundary a head constructor's
// range introduces, so each resulting segment is either fully covered or
// fully uncovered by any single row of the matrix.
func (o *Oracle) splitIntRange(t IntRangeType, self ctor.Constructor, headCtors []ctor.Constructor) []ctor.Constructor {
	lo, hi := t.Lo, t.Hi
	if self.Tag == ctor.Single {
		lo, hi = self.Lo, self.Hi
	}

	boundSet := map[int64]bool{lo: true, hi + 1: true}
	for _, hc := range headCtors {
		if !hc.IsRange {
			continue
		}
		if rt, ok := hc.Type.(IntRangeType); !ok || rt.Name != t.Name {
			continue
		}
		segLo := hc.Lo
		if segLo < lo {
			segLo = lo
		}
		segHiExcl := hc.Hi + 1
		if segHiExcl > hi+1 {
			segHiExcl = hi + 1
		}
		if segLo < segHiExcl {
			boundSet[segLo] = true
			boundSet[segHiExcl] = true
		}
	}

	bounds := maps.Keys(boundSet)
	slices.Sort(bounds)

	var out []ctor.Constructor
	for i := 0; i+1 < len(bounds); i++ {
		segLo, segHiExcl := bounds[i], bounds[i+1]
		if segLo >= segHiExcl {
			continue
		}
		out = append(out, ctor.Constructor{Tag: ctor.Single, Type: self.Type, IsRange: true, Lo: segLo, Hi: segHiExcl - 1})
	}
	return out
}

// splitSlice partitions slice length-space into "exactly length n" buckets
// for every length up to and including the longest length any head
// constructor names, plus one catch-all bucket for everything longer.
func (o *Oracle) splitSlice(t SliceType, self ctor.Constructor, headCtors []ctor.Constructor) []ctor.Constructor {
	if self.Tag == ctor.Single {
		return []ctor.Constructor{self}
	}

	maxNeeded := 0
	for _, hc := range headCtors {
		if !hc.IsSlice {
			continue
		}
		if st, ok := hc.Type.(SliceType); !ok || st.Elem.String() != t.Elem.String() {
			continue
		}
		needed := hc.FixedLen + 1
		if needed > maxNeeded {
			maxNeeded = needed
		}
	}
	if maxNeeded == 0 {
		maxNeeded = 1
	}

	out := make([]ctor.Constructor, 0, maxNeeded+1)
	for n := 0; n < maxNeeded; n++ {
		out = append(out, ctor.Constructor{Tag: ctor.Single, Type: self.Type, IsSlice: true, FixedLen: n, Arity: n})
	}
	out = append(out, ctor.Constructor{Tag: ctor.Single, Type: self.Type, IsSlice: true, FixedLen: maxNeeded, HasVarTail: true, Arity: maxNeeded + 1})
	return out
}

// WildcardFields returns one freshly allocated wildcard per field of c, in
// canonical order.
func (o *Oracle) WildcardFields(c ctor.Constructor) ctor.Fields {
	switch {
	case c.IsRange:
		return nil
	case c.Tag == ctor.NonExhaustive:
		return nil
	case c.IsSlice:
		elemType := sliceElemType(c.Type)
		out := make(ctor.Fields, c.Arity)
		idx := 0
		for ; idx < c.FixedLen; idx++ {
			out[idx] = o.Arena.Alloc(ast.Pattern{Kind: ast.Wild, Type: elemType})
		}
		if c.HasVarTail {
			out[idx] = o.Arena.Alloc(ast.Pattern{Kind: ast.Wild, Type: ast.Type(SliceType{Elem: elemType})})
		}
		return out
	default:
		switch t := c.Type.(type) {
		case EnumType:
			v, ok := t.VariantByName(c.Name)
			if !ok {
				return nil
			}
			out := make(ctor.Fields, len(v.Fields))
			for i, ft := range v.Fields {
				out[i] = o.Arena.Alloc(ast.Pattern{Kind: ast.Wild, Type: ft})
			}
			return out
		case TupleType:
			out := make(ctor.Fields, len(t.Elems))
			for i, ft := range t.Elems {
				out[i] = o.Arena.Alloc(ast.Pattern{Kind: ast.Wild, Type: ft})
			}
			return out
		default:
			return nil
		}
	}
}

// Apply reconstructs a surface pattern from c and its ordered field
// patterns.
func (o *Oracle) Apply(c ctor.Constructor, fields ctor.Fields, arena *ast.Arena) ast.Handle {
	switch {
	case c.IsRange:
		return arena.Alloc(ast.Pattern{Kind: ast.Range, Type: c.Type, Lo: c.Lo, Hi: c.Hi})
	case c.Tag == ctor.NonExhaustive:
		// The concrete missing variant of a foreign enum is unknowable by
		// construction; render the witness as a catch-all.
		return arena.Alloc(ast.Pattern{Kind: ast.Wild, Type: c.Type})
	case c.IsSlice:
		prefix := make([]ast.Handle, 0, c.FixedLen)
		idx := 0
		for ; idx < c.FixedLen; idx++ {
			prefix = append(prefix, fields[idx])
		}
		rest := ast.NoHandle
		if c.HasVarTail {
			rest = fields[idx]
		}
		return arena.Alloc(ast.Pattern{Kind: ast.Slice, Type: c.Type, Fields: prefix, Rest: rest})
	default:
		return arena.Alloc(ast.Pattern{Kind: ast.Variant, Type: c.Type, Name: c.Name, Fields: fields})
	}
}

// ReplaceWithPatternArguments overlays headPat's actual field patterns onto
// the canonical wildcard fields, filling unspecified positions with
// wildcards.
func (o *Oracle) ReplaceWithPatternArguments(wildFields ctor.Fields, headPat *ast.Pattern) ctor.Fields {
	switch headPat.Kind {
	case ast.Variant:
		if len(headPat.Fields) == len(wildFields) {
			return headPat.Fields
		}
		return wildFields
	case ast.Slice:
		// The template (WildcardFields) lays out FixedLen=len(Fields)+len(Suffix)
		// plain-element slots first, then the var-tail SliceType slot last (if
		// any); the overlay below must follow the same layout so Rest always
		// lands in the var-tail slot instead of shifting the suffix over by one.
		out := make(ctor.Fields, len(wildFields))
		copy(out, wildFields)
		idx := 0
		for ; idx < len(headPat.Fields) && idx < len(out); idx++ {
			out[idx] = headPat.Fields[idx]
		}
		for _, suf := range headPat.Suffix {
			if idx >= len(out) {
				break
			}
			out[idx] = suf
			idx++
		}
		if headPat.Rest != ast.NoHandle && idx < len(out) {
			out[idx] = headPat.Rest
			idx++
		}
		return out
	default:
		return wildFields
	}
}

// IsUninhabited always reports false. Uninhabited-type pruning is left as
// a hook for a host compiler with a richer type system to fill in; this
// reference oracle's closed little type system has no uninhabited types
// to report.
func (o *Oracle) IsUninhabited(t ast.Type) bool {
	return false
}

func sliceElemType(t ast.Type) ast.Type {
	if st, ok := t.(SliceType); ok {
		return st.Elem
	}
	return nil
}
