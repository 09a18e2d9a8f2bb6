package matchcheck_test

import (
	"strings"
	"testing"

	"github.com/funvibe/matchuse/internal/ast"
	"github.com/funvibe/matchuse/internal/matchcheck"
	"github.com/funvibe/matchuse/internal/oracle"
	"github.com/funvibe/matchuse/internal/render"
)

func TestComputeMatchUsefulness_OptionBool(t *testing.T) {
	tests := []struct {
		name                string
		buildArms           func(arena *ast.Arena, boolT, optT ast.Type) []matchcheck.MatchArm
		wantUnreachable     []int // arm indices expected Unreachable
		wantWitnesses       []string
		wantDeadAltsForArms map[int][]string // arm index -> printed dead alternatives
	}{
		{
			name: "Some(true)+Some(false)+None is exhaustive",
			buildArms: func(arena *ast.Arena, boolT, optT ast.Type) []matchcheck.MatchArm {
				return []matchcheck.MatchArm{
					{Pat: oracle.Var(arena, optT, "Some", oracle.Lit(arena, boolT, true))},
					{Pat: oracle.Var(arena, optT, "Some", oracle.Lit(arena, boolT, false))},
					{Pat: oracle.Var(arena, optT, "None")},
				}
			},
			wantWitnesses: nil,
		},
		{
			name: "Some(_)+None is exhaustive",
			buildArms: func(arena *ast.Arena, boolT, optT ast.Type) []matchcheck.MatchArm {
				return []matchcheck.MatchArm{
					{Pat: oracle.Var(arena, optT, "Some", oracle.Wild(arena, boolT))},
					{Pat: oracle.Var(arena, optT, "None")},
				}
			},
			wantWitnesses: nil,
		},
		{
			name: "Some(true)+None is missing Some(false)",
			buildArms: func(arena *ast.Arena, boolT, optT ast.Type) []matchcheck.MatchArm {
				return []matchcheck.MatchArm{
					{Pat: oracle.Var(arena, optT, "Some", oracle.Lit(arena, boolT, true))},
					{Pat: oracle.Var(arena, optT, "None")},
				}
			},
			wantWitnesses: []string{"Some(false)"},
		},
		{
			name: "Some(_)+Some(true) makes the second arm unreachable",
			buildArms: func(arena *ast.Arena, boolT, optT ast.Type) []matchcheck.MatchArm {
				return []matchcheck.MatchArm{
					{Pat: oracle.Var(arena, optT, "Some", oracle.Wild(arena, boolT))},
					{Pat: oracle.Var(arena, optT, "Some", oracle.Lit(arena, boolT, true))},
					{Pat: oracle.Var(arena, optT, "None")},
				}
			},
			wantUnreachable: []int{1},
			wantWitnesses:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arena := ast.NewArena()
			o := oracle.New(arena)
			boolT := oracle.NewBoolType()
			optT := oracle.NewOptionType(boolT)

			arms := tt.buildArms(arena, boolT, optT)
			ctx := matchcheck.NewContext(arena, o, "test", tt.name)
			report := matchcheck.ComputeMatchUsefulness(ctx, arms, optT)

			gotUnreachable := map[int]bool{}
			for i, au := range report.ArmUsefulness {
				if au.Reachability.Kind == matchcheck.Unreachable {
					gotUnreachable[i] = true
				}
			}
			for _, idx := range tt.wantUnreachable {
				if !gotUnreachable[idx] {
					t.Errorf("expected arm %d to be unreachable, got reachable", idx)
				}
			}
			for i := range arms {
				wantDead := contains(tt.wantUnreachable, i)
				if gotUnreachable[i] != wantDead {
					t.Errorf("arm %d: got unreachable=%v, want %v", i, gotUnreachable[i], wantDead)
				}
			}

			gotWitnesses := render.Patterns(arena, report.NonExhaustivenessWitnesses)
			if !stringSlicesEqual(gotWitnesses, tt.wantWitnesses) {
				t.Errorf("witnesses = %v, want %v", gotWitnesses, tt.wantWitnesses)
			}
		})
	}
}

func TestComputeMatchUsefulness_OrPatternInnerAlternativeUnreachable(t *testing.T) {
	arena := ast.NewArena()
	o := oracle.New(arena)
	boolT := oracle.NewBoolType()
	optT := oracle.NewOptionType(boolT)

	alt0 := oracle.Var(arena, optT, "Some", oracle.Lit(arena, boolT, true))
	alt1 := oracle.Var(arena, optT, "Some", oracle.Lit(arena, boolT, true))
	orHead := oracle.Or(arena, optT, alt0, alt1)

	arms := []matchcheck.MatchArm{
		{Pat: orHead},
		{Pat: oracle.Var(arena, optT, "None")},
	}
	ctx := matchcheck.NewContext(arena, o, "test", "or-pattern duplicate alt")
	report := matchcheck.ComputeMatchUsefulness(ctx, arms, optT)

	first := report.ArmUsefulness[0]
	if first.Reachability.Kind != matchcheck.Reachable {
		t.Fatalf("expected arm 0 (the or-pattern) to be reachable overall, got %v", first.Reachability.Kind)
	}
	if len(first.Reachability.UnreachableSubpatterns) != 1 {
		t.Fatalf("expected exactly one dead alternative, got %d", len(first.Reachability.UnreachableSubpatterns))
	}
	if got := render.Pattern(arena, first.Reachability.UnreachableSubpatterns[0]); got != "Some(true)" {
		t.Errorf("dead alternative = %q, want %q", got, "Some(true)")
	}

	second := report.ArmUsefulness[1]
	if second.Reachability.Kind != matchcheck.Reachable {
		t.Errorf("expected None arm reachable, got %v", second.Reachability.Kind)
	}
	if got := render.Patterns(arena, report.NonExhaustivenessWitnesses); !stringSlicesEqual(got, []string{"Some(false)"}) {
		t.Errorf("witnesses = %v, want [Some(false)]", got)
	}
}

func TestComputeMatchUsefulness_Tuple(t *testing.T) {
	arena := ast.NewArena()
	o := oracle.New(arena)
	boolT := oracle.NewBoolType()
	tupT := oracle.TupleType{Elems: []ast.Type{boolT, boolT}}

	arms := []matchcheck.MatchArm{
		{Pat: oracle.Var(arena, tupT, "Tuple", oracle.Lit(arena, boolT, true), oracle.Wild(arena, boolT))},
		{Pat: oracle.Var(arena, tupT, "Tuple", oracle.Lit(arena, boolT, false), oracle.Wild(arena, boolT))},
	}
	ctx := matchcheck.NewContext(arena, o, "test", "tuple of bools")
	report := matchcheck.ComputeMatchUsefulness(ctx, arms, tupT)

	if len(report.NonExhaustivenessWitnesses) != 0 {
		t.Fatalf("expected exhaustive, got witnesses %v", render.Patterns(arena, report.NonExhaustivenessWitnesses))
	}
	for i, au := range report.ArmUsefulness {
		if au.Reachability.Kind != matchcheck.Reachable {
			t.Errorf("arm %d should be reachable", i)
		}
	}
}

func TestComputeMatchUsefulness_U8RangeGap(t *testing.T) {
	arena := ast.NewArena()
	o := oracle.New(arena)
	u8T := oracle.IntRangeType{Name: "u8", Lo: 0, Hi: 255}

	arms := []matchcheck.MatchArm{
		{Pat: oracle.Rng(arena, u8T, 0, 127)},
		{Pat: oracle.Rng(arena, u8T, 200, 255)},
	}
	ctx := matchcheck.NewContext(arena, o, "test", "u8 range gap")
	report := matchcheck.ComputeMatchUsefulness(ctx, arms, u8T)

	witnesses := render.Patterns(arena, report.NonExhaustivenessWitnesses)
	if len(witnesses) != 1 {
		t.Fatalf("expected exactly one gap witness, got %v", witnesses)
	}
	if !strings.Contains(witnesses[0], "128") || !strings.Contains(witnesses[0], "199") {
		t.Errorf("gap witness = %q, want it to cover 128..=199", witnesses[0])
	}
}

func TestComputeMatchUsefulness_ForeignEnumNeedsWildcard(t *testing.T) {
	arena := ast.NewArena()
	o := oracle.New(arena)
	foreignT := oracle.ForeignEnumType{Name: "ForeignStatus"}

	arms := []matchcheck.MatchArm{
		{Pat: oracle.Var(arena, foreignT, "Known")},
	}
	ctx := matchcheck.NewContext(arena, o, "test", "foreign enum without wildcard")
	report := matchcheck.ComputeMatchUsefulness(ctx, arms, foreignT)

	if len(report.NonExhaustivenessWitnesses) == 0 {
		t.Fatalf("expected a non-exhaustive report for a foreign enum covered only by a named variant")
	}

	arena2 := ast.NewArena()
	o2 := oracle.New(arena2)
	armsWithWildcard := []matchcheck.MatchArm{
		{Pat: oracle.Var(arena2, foreignT, "Known")},
		{Pat: oracle.Wild(arena2, foreignT)},
	}
	ctx2 := matchcheck.NewContext(arena2, o2, "test", "foreign enum with wildcard")
	report2 := matchcheck.ComputeMatchUsefulness(ctx2, armsWithWildcard, foreignT)
	if len(report2.NonExhaustivenessWitnesses) != 0 {
		t.Errorf("expected exhaustive once a wildcard arm is added, got witnesses %v", render.Patterns(arena2, report2.NonExhaustivenessWitnesses))
	}
}

func contains(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func stringSlicesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
