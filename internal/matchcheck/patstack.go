package matchcheck

import (
	"github.com/funvibe/matchuse/internal/ast"
	"github.com/funvibe/matchuse/internal/ctor"
	"github.com/funvibe/matchuse/internal/diagnostics"
)

// PatStack is a single row of a Matrix: an ordered sequence of pattern
// handles. Its length is the matrix's column count. Once a PatStack is
// stored in a Matrix its head is never an or-pattern — those are expanded
// into multiple rows at insertion time.
type PatStack struct {
	cells []ast.Handle

	// headCtor memoizes the head's constructor classification. Write-once
	// interior mutability: valid because patterns are immutable after
	// lowering.
	headCtor    *ctor.Constructor
}

// NewPatStack builds a row from the given cells, left to right.
func NewPatStack(cells ...ast.Handle) *PatStack {
	cp := make([]ast.Handle, len(cells))
	copy(cp, cells)
	return &PatStack{cells: cp}
}

// Len returns the column count of the row.
func (s *PatStack) Len() int { return len(s.cells) }

// IsEmpty reports whether the row has no columns left.
func (s *PatStack) IsEmpty() bool { return len(s.cells) == 0 }

// Head returns the leftmost handle. Undefined (panics) on an empty row.
func (s *PatStack) Head() ast.Handle { return s.cells[0] }

// Rest returns the handles after the head.
func (s *PatStack) Rest() []ast.Handle { return s.cells[1:] }

// HeadCtor returns the memoized constructor classification of the head.
func (s *PatStack) HeadCtor(ctx *Context) ctor.Constructor {
	if s.headCtor == nil {
		c := ctx.Oracle.ConstructorOf(ctx.Arena.Get(s.Head()))
		s.headCtor = &c
	}
	return *s.headCtor
}

// ExpandOrPat yields one PatStack per alternative of an or-pattern head:
// each new stack has the alternative as its first element, followed by the
// remaining columns verbatim. Only valid when the head is an or-pattern.
func (s *PatStack) ExpandOrPat(ctx *Context) []*PatStack {
	head := ctx.Arena.Get(s.Head())
	if head.Kind != ast.Or {
		ctx.raise(diagnostics.ErrM006)
	}
	alts := ctx.Arena.ExpandOrLeaves(s.Head())
	out := make([]*PatStack, len(alts))
	for i, alt := range alts {
		cells := make([]ast.Handle, 0, len(s.cells))
		cells = append(cells, alt)
		cells = append(cells, s.cells[1:]...)
		out[i] = NewPatStack(cells...)
	}
	return out
}

// PopHeadConstructor computes S(c, row): the head cell is replaced by the
// field patterns obtained by overlaying ctorWildFields with the actual
// arguments of the head pattern. The rest of the stack is preserved; the
// result has length Len()-1+arity(c).
func (s *PatStack) PopHeadConstructor(ctx *Context, ctorWildFields ctor.Fields) *PatStack {
	head := ctx.Arena.Get(s.Head())
	fields := ctx.Oracle.ReplaceWithPatternArguments(ctorWildFields, head)
	cells := make([]ast.Handle, 0, len(fields)+len(s.cells)-1)
	cells = append(cells, fields...)
	cells = append(cells, s.cells[1:]...)
	return NewPatStack(cells...)
}
