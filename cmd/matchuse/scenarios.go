package main

import (
	"github.com/funvibe/matchuse/internal/ast"
	"github.com/funvibe/matchuse/internal/matchcheck"
	"github.com/funvibe/matchuse/internal/oracle"
)

// scenario is one self-contained match expression to run through the
// engine: its own arena, its own oracle, its own arm list.
type scenario struct {
	Name          string
	MatchExpr     string
	Arena         *ast.Arena
	Oracle        *oracle.Oracle
	Arms          []matchcheck.MatchArm
	ScrutineeType ast.Type
}

func allScenarios() []scenario {
	return []scenario{
		optionBoolExhaustive(),
		optionWildcardExhaustive(),
		optionBoolMissingSome(),
		optionBoolUnreachableArm(),
		orPatternInnerUnreachable(),
		tupleOfBools(),
		u8RangeGap(),
		sliceLengthClasses(),
		foreignEnumNeverExhaustive(),
	}
}

func optionBoolExhaustive() scenario {
	arena := ast.NewArena()
	o := oracle.New(arena)
	boolT := oracle.NewBoolType()
	optT := oracle.NewOptionType(boolT)

	arms := []matchcheck.MatchArm{
		{Pat: oracle.Var(arena, optT, "Some", oracle.Lit(arena, boolT, true))},
		{Pat: oracle.Var(arena, optT, "Some", oracle.Lit(arena, boolT, false))},
		{Pat: oracle.Var(arena, optT, "None")},
	}
	return scenario{
		Name:          "option_bool_exhaustive",
		MatchExpr:     "Some(true) | Some(false) | None",
		Arena:         arena,
		Oracle:        o,
		Arms:          arms,
		ScrutineeType: optT,
	}
}

func optionWildcardExhaustive() scenario {
	arena := ast.NewArena()
	o := oracle.New(arena)
	boolT := oracle.NewBoolType()
	optT := oracle.NewOptionType(boolT)

	arms := []matchcheck.MatchArm{
		{Pat: oracle.Var(arena, optT, "Some", oracle.Wild(arena, boolT))},
		{Pat: oracle.Var(arena, optT, "None")},
	}
	return scenario{
		Name:          "option_wildcard_exhaustive",
		MatchExpr:     "Some(_) | None",
		Arena:         arena,
		Oracle:        o,
		Arms:          arms,
		ScrutineeType: optT,
	}
}

func optionBoolMissingSome() scenario {
	arena := ast.NewArena()
	o := oracle.New(arena)
	boolT := oracle.NewBoolType()
	optT := oracle.NewOptionType(boolT)

	arms := []matchcheck.MatchArm{
		{Pat: oracle.Var(arena, optT, "Some", oracle.Lit(arena, boolT, true))},
		{Pat: oracle.Var(arena, optT, "None")},
	}
	return scenario{
		Name:          "option_bool_missing_some_false",
		MatchExpr:     "Some(true) | None",
		Arena:         arena,
		Oracle:        o,
		Arms:          arms,
		ScrutineeType: optT,
	}
}

func optionBoolUnreachableArm() scenario {
	arena := ast.NewArena()
	o := oracle.New(arena)
	boolT := oracle.NewBoolType()
	optT := oracle.NewOptionType(boolT)

	arms := []matchcheck.MatchArm{
		{Pat: oracle.Var(arena, optT, "Some", oracle.Wild(arena, boolT))},
		{Pat: oracle.Var(arena, optT, "Some", oracle.Lit(arena, boolT, true))},
		{Pat: oracle.Var(arena, optT, "None")},
	}
	return scenario{
		Name:          "option_bool_second_some_arm_unreachable",
		MatchExpr:     "Some(_) | Some(true) | None",
		Arena:         arena,
		Oracle:        o,
		Arms:          arms,
		ScrutineeType: optT,
	}
}

func orPatternInnerUnreachable() scenario {
	arena := ast.NewArena()
	o := oracle.New(arena)
	boolT := oracle.NewBoolType()
	optT := oracle.NewOptionType(boolT)

	someTrue1 := oracle.Var(arena, optT, "Some", oracle.Lit(arena, boolT, true))
	someTrue2 := oracle.Var(arena, optT, "Some", oracle.Lit(arena, boolT, true))
	orHead := oracle.Or(arena, optT, someTrue1, someTrue2)

	arms := []matchcheck.MatchArm{
		{Pat: orHead},
		{Pat: oracle.Var(arena, optT, "None")},
	}
	return scenario{
		Name:          "or_pattern_duplicate_alt_unreachable",
		MatchExpr:     "(Some(true) | Some(true)) | None",
		Arena:         arena,
		Oracle:        o,
		Arms:          arms,
		ScrutineeType: optT,
	}
}

func tupleOfBools() scenario {
	arena := ast.NewArena()
	o := oracle.New(arena)
	boolT := oracle.NewBoolType()
	tupT := oracle.TupleType{Elems: []ast.Type{boolT, boolT}}

	arms := []matchcheck.MatchArm{
		{Pat: oracle.Var(arena, tupT, "Tuple", oracle.Lit(arena, boolT, true), oracle.Wild(arena, boolT))},
		{Pat: oracle.Var(arena, tupT, "Tuple", oracle.Lit(arena, boolT, false), oracle.Wild(arena, boolT))},
	}
	return scenario{
		Name:          "tuple_of_bools_exhaustive",
		MatchExpr:     "(true, _) | (false, _)",
		Arena:         arena,
		Oracle:        o,
		Arms:          arms,
		ScrutineeType: tupT,
	}
}

func u8RangeGap() scenario {
	arena := ast.NewArena()
	o := oracle.New(arena)
	u8T := oracle.IntRangeType{Name: "u8", Lo: 0, Hi: 255}

	arms := []matchcheck.MatchArm{
		{Pat: oracle.Rng(arena, u8T, 0, 127)},
		{Pat: oracle.Rng(arena, u8T, 200, 255)},
	}
	return scenario{
		Name:          "u8_range_gap",
		MatchExpr:     "0..=127 | 200..=255",
		Arena:         arena,
		Oracle:        o,
		Arms:          arms,
		ScrutineeType: u8T,
	}
}

func sliceLengthClasses() scenario {
	arena := ast.NewArena()
	o := oracle.New(arena)
	boolT := oracle.NewBoolType()
	sliceT := oracle.SliceType{Elem: boolT}

	arms := []matchcheck.MatchArm{
		{Pat: oracle.SlicePat(arena, sliceT, nil, ast.NoHandle, nil)},
		{Pat: oracle.SlicePat(arena, sliceT, []ast.Handle{oracle.Wild(arena, boolT)}, ast.NoHandle, nil)},
		{Pat: oracle.SlicePat(arena, sliceT, []ast.Handle{oracle.Wild(arena, boolT)}, oracle.Wild(arena, sliceT), nil)},
	}
	return scenario{
		Name:          "slice_length_classes_exhaustive",
		MatchExpr:     "[] | [_] | [_, ...rest]",
		Arena:         arena,
		Oracle:        o,
		Arms:          arms,
		ScrutineeType: sliceT,
	}
}

func foreignEnumNeverExhaustive() scenario {
	arena := ast.NewArena()
	o := oracle.New(arena)
	foreignT := oracle.ForeignEnumType{Name: "ForeignStatus"}

	arms := []matchcheck.MatchArm{
		{Pat: oracle.Var(arena, foreignT, "Known")},
	}
	return scenario{
		Name:          "foreign_enum_wildcard_required",
		MatchExpr:     "Known",
		Arena:         arena,
		Oracle:        o,
		Arms:          arms,
		ScrutineeType: foreignT,
	}
}
