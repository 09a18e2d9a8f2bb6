// Package oracle is a concrete, self-contained implementation of
// ctor.Oracle over a small closed host type system: enums with named
// variants, tuples, bounded integer ranges, slices, and a foreign
// (non-exhaustive) enum shape. It exists for tests and the CLI demo; the
// engine itself never imports it directly.
package oracle

import (
	"fmt"
	"strings"

	"github.com/funvibe/matchuse/internal/ast"
	"github.com/funvibe/matchuse/internal/config"
)

// EnumVariant is one named, fixed-arity case of an EnumType.
type EnumVariant struct {
	Name   string
	Fields []ast.Type
}

// EnumType is a closed sum type: every value belongs to exactly one of
// Variants, and Variants is the complete list.
type EnumType struct {
	Name     string
	Variants []EnumVariant
}

func (t EnumType) String() string { return t.Name }

// VariantByName looks up a variant by name.
func (t EnumType) VariantByName(name string) (EnumVariant, bool) {
	for _, v := range t.Variants {
		if v.Name == name {
			return v, true
		}
	}
	return EnumVariant{}, false
}

// NewBoolType models Bool as a two-variant EnumType so the engine's enum
// machinery (including Missing-constructor bucketing) handles it uniformly
// rather than needing a special case.
func NewBoolType() EnumType {
	return EnumType{
		Name: config.BoolTypeName,
		Variants: []EnumVariant{
			{Name: "true"},
			{Name: "false"},
		},
	}
}

// NewOptionType models Option<inner> as the familiar two-variant
// Some/None enum found in most standard libraries.
func NewOptionType(inner ast.Type) EnumType {
	return EnumType{
		Name: config.OptionTypeName,
		Variants: []EnumVariant{
			{Name: config.SomeCtorName, Fields: []ast.Type{inner}},
			{Name: config.NoneCtorName},
		},
	}
}

// NewResultType models Result<ok, err> the same way.
func NewResultType(okT, errT ast.Type) EnumType {
	return EnumType{
		Name: config.ResultTypeName,
		Variants: []EnumVariant{
			{Name: config.OkCtorName, Fields: []ast.Type{okT}},
			{Name: config.ErrCtorName, Fields: []ast.Type{errT}},
		},
	}
}

// TupleType is a fixed-arity product type; it has exactly one constructor.
type TupleType struct {
	Elems []ast.Type
}

func (t TupleType) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// IntRangeType is a bounded integer type (e.g. u8's 0..=255): closed, but
// large enough that the oracle must split by interval rather than by
// enumerating individual values.
type IntRangeType struct {
	Name   string
	Lo, Hi int64
}

func (t IntRangeType) String() string { return t.Name }

// SliceType is a variable-length sequence of Elem; never closed, so the
// oracle splits it into a finite family of "exactly length n" buckets plus
// one "length >= n" catch-all bucket.
type SliceType struct {
	Elem ast.Type
}

func (t SliceType) String() string { return "[]" + t.Elem.String() }

// ForeignEnumType models a non_exhaustive-style enum whose full variant set
// is not known to the oracle: matching it can never be proven exhaustive by
// naming variants alone.
type ForeignEnumType struct {
	Name string
}

func (t ForeignEnumType) String() string { return t.Name }

func toInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case int32:
		return int64(n)
	default:
		panic(fmt.Sprintf("oracle: cannot interpret %v (%T) as an integer bound", v, v))
	}
}
