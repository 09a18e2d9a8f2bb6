package matchcheck

import (
	"github.com/funvibe/matchuse/internal/ast"
	"github.com/funvibe/matchuse/internal/ctor"
)

// Matrix is an ordered list of PatStacks sharing a column count. Columns
// are type-homogeneous and a head-of-column or-pattern is always flattened
// away before it can be observed in a stored row.
type Matrix struct {
	rows []*PatStack
}

// NewMatrix returns an empty matrix.
func NewMatrix() *Matrix {
	return &Matrix{}
}

// Clone returns a shallow copy sharing rows with m. Used by the or-pattern
// path of IsUseful, which grows a local copy of the matrix as earlier
// alternatives become visible to later ones.
func (m *Matrix) Clone() *Matrix {
	rows := make([]*PatStack, len(m.rows))
	copy(rows, m.rows)
	return &Matrix{rows: rows}
}

// Rows exposes the underlying rows for iteration.
func (m *Matrix) Rows() []*PatStack { return m.rows }

// Push appends row; if its head is an or-pattern it is expanded and each
// alternative is pushed as a separate row instead.
func (m *Matrix) Push(ctx *Context, row *PatStack) {
	if !row.IsEmpty() {
		head := ctx.Arena.Get(row.Head())
		if head.Kind == ast.Or {
			for _, alt := range row.ExpandOrPat(ctx) {
				m.Push(ctx, alt)
			}
			return
		}
	}
	m.rows = append(m.rows, row)
}

// Heads iterates the head handle of each row.
func (m *Matrix) Heads() []ast.Handle {
	out := make([]ast.Handle, len(m.rows))
	for i, r := range m.rows {
		out[i] = r.Head()
	}
	return out
}

// HeadCtors iterates the cached head constructor of each row.
func (m *Matrix) HeadCtors(ctx *Context) []ctor.Constructor {
	out := make([]ctor.Constructor, len(m.rows))
	for i, r := range m.rows {
		out[i] = r.HeadCtor(ctx)
	}
	return out
}

// SpecializeConstructor keeps only rows whose head constructor covers c
// (c is covered by the row head, per Oracle.IsCoveredBy), pops the head of
// each such row, and assembles the results into a new matrix. Or-patterns produced by popping are re-expanded by Push.
func (m *Matrix) SpecializeConstructor(ctx *Context, c ctor.Constructor, ctorWildFields ctor.Fields) *Matrix {
	out := NewMatrix()
	for _, row := range m.rows {
		rowHeadCtor := row.HeadCtor(ctx)
		if !ctx.Oracle.IsCoveredBy(c, rowHeadCtor) {
			continue
		}
		out.Push(ctx, row.PopHeadConstructor(ctx, ctorWildFields))
	}
	return out
}
