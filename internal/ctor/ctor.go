// Package ctor declares the Constructor/Fields/Oracle contract the
// usefulness engine is built against. Everything in this package is an
// interface onto the host type system; the engine never assumes a
// concrete representation. internal/oracle provides one concrete
// implementation used by tests and the CLI.
package ctor

import "github.com/funvibe/matchuse/internal/ast"

// Tag classifies a Constructor by its shape.
type Tag int

const (
	// Single is a concrete value constructor: an enum variant, a tuple
	// shape, a fixed literal, a finite integer, a fixed-length slice.
	Single Tag = iota
	// Wildcard stands for "any value of this type".
	Wildcard
	// Missing means some constructors of this type are not covered by the
	// current matrix.
	Missing
	// NonExhaustive marks a type with an unbounded or hidden constructor
	// set (a foreign non-exhaustive enum, an opaque integer range).
	NonExhaustive
)

func (t Tag) String() string {
	switch t {
	case Single:
		return "Single"
	case Wildcard:
		return "Wildcard"
	case Missing:
		return "Missing"
	case NonExhaustive:
		return "NonExhaustive"
	default:
		return "Tag(?)"
	}
}

// Constructor is the opaque, tagged value the engine reasons about. Name,
// Arity and the payload fields are meaningful only to the oracle that
// produced the Constructor; the engine reads only Tag, and for a Missing
// constructor also Type and MissingNames.
type Constructor struct {
	Tag  Tag
	Type ast.Type

	// Name identifies a Single constructor within its type (an enum
	// variant name, a synthetic tuple/slice label, a literal's printed
	// form). Ignored for Wildcard/Missing/NonExhaustive.
	Name string

	// Arity is the number of fields a Single constructor carries.
	Arity int

	// Range-shaped constructors (bounded or opaque integer ranges) use Lo
	// and Hi as inclusive bounds; IsRange distinguishes them from other
	// Single constructors so the oracle can special-case them.
	IsRange  bool
	Lo, Hi   int64

	// Slice-shaped constructors carry their fixed length and whether they
	// additionally match "at least FixedLen" (i.e. have a `...rest`).
	IsSlice     bool
	FixedLen    int
	HasVarTail  bool

	// MissingNames lists the Single-constructor names this Missing bucket
	// stands in for. Set only when Tag == Missing; lets apply_constructor
	// recover the concrete variants later without re-splitting (which
	// would just hand back another Missing).
	MissingNames []string
}

// Fields is an ordered list of pattern handles: the arguments a
// constructor is applied to, or the wildcard fields standing in for them.
type Fields []ast.Handle

// Oracle is the external collaborator the engine consumes.
// Implementations own the concrete host type system; the engine calls
// these methods and never inspects a Type itself, and of a Constructor's
// payload it reads only a Missing constructor's MissingNames.
type Oracle interface {
	// ConstructorOf classifies the head of pat.
	ConstructorOf(pat *ast.Pattern) Constructor

	// IsCoveredBy reports whether every value matching a also matches b.
	// Reflexive; Wildcard covers every value constructor of the type.
	IsCoveredBy(a, b Constructor) bool

	// Split partitions self into constructors that together cover the
	// same values as self but are each indistinguishable against the
	// supplied matrix head constructors. Missing is produced only when
	// the matrix fails to cover all value constructors of a closed type.
	Split(self Constructor, headCtors []Constructor) []Constructor

	// WildcardFields returns one wildcard pattern handle per field of c,
	// in canonical order.
	WildcardFields(c Constructor) Fields

	// Apply reconstructs a surface pattern from a constructor and ordered
	// field patterns, allocating it in arena.
	Apply(c Constructor, fields Fields, arena *ast.Arena) ast.Handle

	// ReplaceWithPatternArguments overlays headPat's actual field patterns
	// onto the canonical wildcard fields, filling unspecified positions
	// with wildcards (e.g. a struct pattern using `..`).
	ReplaceWithPatternArguments(wildFields Fields, headPat *ast.Pattern) Fields

	// IsUninhabited reports whether t has no values at all. This is a
	// deliberate stub hook for a host type system with uninhabited types;
	// not every implementation needs a real answer here.
	IsUninhabited(t ast.Type) bool
}
