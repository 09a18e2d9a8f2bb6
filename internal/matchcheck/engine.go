package matchcheck

import (
	"github.com/funvibe/matchuse/internal/ast"
	"github.com/funvibe/matchuse/internal/diagnostics"
)

// Field nesting depth is bounded by config.MaxPatternDepth; see
// Context.enterField in context.go.

// IsUseful is the algorithm proper. v is useful against M iff some value
// matches v and no row of M.
//
// Precondition: every row of M has the same length as v; violated lengths
// are an invariant violation (ErrM001), not a recoverable error.
func IsUseful(ctx *Context, m *Matrix, v *PatStack, pref Pref, isUnderGuard, isTopLevel bool) Usefulness {
	for _, row := range m.Rows() {
		if row.Len() != v.Len() {
			ctx.raise(diagnostics.ErrM001, row.Len(), v.Len())
		}
	}

	if v.IsEmpty() {
		if len(m.Rows()) == 0 {
			return NewUseful(pref)
		}
		return NewNotUseful(pref)
	}

	head := ctx.Arena.Get(v.Head())

	if head.Kind == ast.Or {
		return isUsefulOrPath(ctx, m, v, pref, isUnderGuard)
	}
	return isUsefulConstructorPath(ctx, m, v, pref, isUnderGuard)
}

// isUsefulOrPath expands v's or-pattern head into alternatives and feeds
// them through is_useful one at a time; non-guarded alternatives become
// visible to later ones within the same arm, which is what makes
// `Some(_) | Some(0)` flag the second alternative as unreachable.
func isUsefulOrPath(ctx *Context, m *Matrix, v *PatStack, pref Pref, isUnderGuard bool) Usefulness {
	altPat := v.Head()
	localM := m.Clone()
	altStacks := v.ExpandOrPat(ctx)
	altCount := len(altStacks)

	results := make([]Usefulness, 0, altCount)
	for i, vi := range altStacks {
		ui := IsUseful(ctx, localM, vi, pref, isUnderGuard, false)
		if !isUnderGuard {
			localM.Push(ctx, vi)
		}
		results = append(results, ui.UnsplitOrPat(ctx, i, altCount, altPat))
	}
	return Merge(ctx, pref, results)
}

// isUsefulConstructorPath splits v's head constructor against the
// matrix's head constructors, specializes both M and v for each resulting
// sub-constructor, recurses, and un-specializes the result.
func isUsefulConstructorPath(ctx *Context, m *Matrix, v *PatStack, pref Pref, isUnderGuard bool) Usefulness {
	c := v.HeadCtor(ctx)
	split := ctx.Oracle.Split(c, m.HeadCtors(ctx))

	results := make([]Usefulness, 0, len(split))
	for _, cPrime := range split {
		fieldWildcards := ctx.Oracle.WildcardFields(cPrime)
		mPrime := m.SpecializeConstructor(ctx, cPrime, fieldWildcards)
		vPrime := v.PopHeadConstructor(ctx, fieldWildcards)
		leave := ctx.enterField()
		u := IsUseful(ctx, mPrime, vPrime, pref, isUnderGuard, false)
		leave()
		results = append(results, u.ApplyConstructor(ctx, m, cPrime, fieldWildcards))
	}
	return Merge(ctx, pref, results)
}

// MatchArm is one pattern => body clause of the match under analysis.
// Guard presence is a flag only — the engine never evaluates guards.
type MatchArm struct {
	Pat      ast.Handle
	HasGuard bool
}

// ReachabilityKind distinguishes a dead arm from a live one.
type ReachabilityKind int

const (
	Unreachable ReachabilityKind = iota
	Reachable
)

// Reachability is Unreachable, or Reachable with the handles of any
// sub-patterns (or-pattern alternatives) that are themselves unreachable
// even though the arm as a whole is reachable.
type Reachability struct {
	Kind                   ReachabilityKind
	UnreachableSubpatterns []ast.Handle
}

// ArmUsefulness pairs an arm with its computed reachability.
type ArmUsefulness struct {
	Arm          MatchArm
	Reachability Reachability
}

// UsefulnessReport is the public output of a single match analysis.
type UsefulnessReport struct {
	ArmUsefulness              []ArmUsefulness
	NonExhaustivenessWitnesses []ast.Handle
}

// ComputeMatchUsefulness is the top-level driver: it seeds
// an empty matrix, feeds arms through IsUseful one by one, growing the
// matrix with non-guarded arms, then probes with a wildcard row of the
// scrutinee's type to obtain non-exhaustiveness witnesses.
func ComputeMatchUsefulness(ctx *Context, arms []MatchArm, scrutineeType ast.Type) *UsefulnessReport {
	m := NewMatrix()
	armResults := make([]ArmUsefulness, 0, len(arms))

	for _, arm := range arms {
		v := NewPatStack(arm.Pat)
		u := IsUseful(ctx, m, v, LeaveOutWitness, arm.HasGuard, true)
		if !arm.HasGuard {
			m.Push(ctx, v)
		}

		sp := u.SubPats()
		var r Reachability
		if sp.IsEmpty() {
			r = Reachability{Kind: Unreachable}
		} else {
			subs, _ := sp.ListUnreachableSubpatterns(ctx)
			r = Reachability{Kind: Reachable, UnreachableSubpatterns: subs}
		}
		armResults = append(armResults, ArmUsefulness{Arm: arm, Reachability: r})
	}

	wildcardHandle := ctx.Arena.Alloc(ast.Pattern{Kind: ast.Wild, Type: scrutineeType})
	wildcardRow := NewPatStack(wildcardHandle)
	uEx := IsUseful(ctx, m, wildcardRow, ConstructWitness, false, true)

	witnesses := make([]ast.Handle, 0, len(uEx.Witnesses()))
	for _, w := range uEx.Witnesses() {
		// Every witness is necessarily length 1 at the top level: the
		// wildcard row has a single column and every transformation along
		// the way preserves that invariant.
		witnesses = append(witnesses, w.Patterns[len(w.Patterns)-1])
	}

	return &UsefulnessReport{ArmUsefulness: armResults, NonExhaustivenessWitnesses: witnesses}
}
