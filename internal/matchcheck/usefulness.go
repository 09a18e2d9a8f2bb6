package matchcheck

import (
	"github.com/funvibe/matchuse/internal/ast"
	"github.com/funvibe/matchuse/internal/ctor"
	"github.com/funvibe/matchuse/internal/diagnostics"
)

// Pref selects whether is_useful should bother synthesizing witnesses: the
// reachability phase only needs a yes/no answer (and sub-pattern detail),
// while the exhaustiveness phase needs concrete witnesses.
type Pref int

const (
	// LeaveOutWitness runs the cheaper SubPatSet-only accounting, used for
	// per-arm reachability.
	LeaveOutWitness Pref = iota
	// ConstructWitness additionally builds witness patterns, used for the
	// final exhaustiveness probe.
	ConstructWitness
)

// Usefulness is a sum: NoWitnesses(SubPatSet) during reachability,
// WithWitnesses(list of Witness) during exhaustiveness.
type Usefulness struct {
	withWitnesses bool
	witnesses     []Witness
	subpats       *SubPatSet
}

// NewUseful returns the "value was useful" result for the given
// preference: WithWitnesses([empty witness]) or NoWitnesses(Full).
func NewUseful(pref Pref) Usefulness {
	if pref == ConstructWitness {
		return Usefulness{withWitnesses: true, witnesses: []Witness{EmptyWitness()}}
	}
	return Usefulness{withWitnesses: false, subpats: Full()}
}

// NewNotUseful returns the "value was not useful" result for the given
// preference: WithWitnesses([]) or NoWitnesses(Empty).
func NewNotUseful(pref Pref) Usefulness {
	if pref == ConstructWitness {
		return Usefulness{withWitnesses: true, witnesses: nil}
	}
	return Usefulness{withWitnesses: false, subpats: Empty()}
}

// IsUseful reports whether this result represents "useful" — at least one
// witness, or a non-empty SubPatSet.
func (u Usefulness) IsUseful() bool {
	if u.withWitnesses {
		return len(u.witnesses) > 0
	}
	return !u.subpats.IsEmpty()
}

// SubPats returns the NoWitnesses payload. Only meaningful when this
// Usefulness was produced with LeaveOutWitness.
func (u Usefulness) SubPats() *SubPatSet { return u.subpats }

// Witnesses returns the WithWitnesses payload. Only meaningful when this
// Usefulness was produced with ConstructWitness.
func (u Usefulness) Witnesses() []Witness { return u.witnesses }

// Extend combines two like-kinded Usefulness values: witness lists are
// concatenated, NoWitnesses sets are unioned.
func (u Usefulness) Extend(ctx *Context, other Usefulness) Usefulness {
	if u.withWitnesses != other.withWitnesses {
		ctx.raise(diagnostics.ErrM004, "extend")
	}
	if u.withWitnesses {
		merged := make([]Witness, 0, len(u.witnesses)+len(other.witnesses))
		merged = append(merged, u.witnesses...)
		merged = append(merged, other.witnesses...)
		return Usefulness{withWitnesses: true, witnesses: merged}
	}
	return Usefulness{withWitnesses: false, subpats: Union(ctx, u.subpats, other.subpats)}
}

// Merge folds Extend across items starting from NewNotUseful(pref),
// short-circuiting once the accumulated NoWitnesses set becomes Full,
// since further unions cannot change it.
func Merge(ctx *Context, pref Pref, items []Usefulness) Usefulness {
	acc := NewNotUseful(pref)
	for _, it := range items {
		acc = acc.Extend(ctx, it)
		if !acc.withWitnesses && acc.subpats.IsFull() {
			break
		}
	}
	return acc
}

// UnsplitOrPat lifts SubPatSet.UnsplitOrPat to Usefulness. Invalid on
// WithWitnesses.
func (u Usefulness) UnsplitOrPat(ctx *Context, altID, altCount int, pat ast.Handle) Usefulness {
	if u.withWitnesses {
		ctx.raise(diagnostics.ErrM003, "Usefulness.unsplit_or_pat on WithWitnesses")
	}
	return Usefulness{withWitnesses: false, subpats: u.subpats.UnsplitOrPat(ctx, altID, altCount, pat)}
}

// ApplyConstructor un-specializes the result of recursing into a
// constructor's fields:
//   - NoWitnesses(subpats) becomes NoWitnesses(subpats.unspecialize(arity)).
//   - WithWitnesses([]) is unchanged.
//   - WithWitnesses(ws) with ctor == Missing enumerates the missing
//     constructors and crosses each existing witness with each missing
//     constructor's all-wildcard pattern.
//   - Otherwise each witness has its last arity(ctor) elements consumed
//     (in reverse) and replaced by ctor.apply(those_fields).
func (u Usefulness) ApplyConstructor(ctx *Context, matrix *Matrix, c ctor.Constructor, ctorWildFields ctor.Fields) Usefulness {
	if !u.withWitnesses {
		return Usefulness{withWitnesses: false, subpats: u.subpats.Unspecialize(ctx, len(ctorWildFields))}
	}
	if len(u.witnesses) == 0 {
		return u
	}
	if c.Tag == ctor.Missing {
		missing := make([]ctor.Constructor, len(c.MissingNames))
		for i, name := range c.MissingNames {
			missing[i] = ctor.Constructor{Tag: ctor.Single, Type: c.Type, Name: name}
		}
		var out []Witness
		for _, w := range u.witnesses {
			for _, m := range missing {
				fields := ctx.Oracle.WildcardFields(m)
				pat := ctx.Oracle.Apply(m, fields, ctx.Arena)
				out = append(out, w.Push(pat))
			}
		}
		return Usefulness{withWitnesses: true, witnesses: out}
	}

	arity := len(ctorWildFields)
	out := make([]Witness, len(u.witnesses))
	for i, w := range u.witnesses {
		n := len(w.Patterns)
		tail := w.Patterns[n-arity:]
		fieldsInOrder := make(ctor.Fields, arity)
		for j := 0; j < arity; j++ {
			fieldsInOrder[j] = tail[arity-1-j]
		}
		pat := ctx.Oracle.Apply(c, fieldsInOrder, ctx.Arena)
		rest := make([]ast.Handle, n-arity, n-arity+1)
		copy(rest, w.Patterns[:n-arity])
		out[i] = Witness{Patterns: append(rest, pat)}
	}
	return Usefulness{withWitnesses: true, witnesses: out}
}
