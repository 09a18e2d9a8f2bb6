// Package matchcheck implements the pattern-match usefulness algorithm: a
// recursive, specialization-based search over pattern matrices, combined
// with constructor splitting, a sub-pattern reachability lattice for
// or-patterns, and a witness synthesizer for non-exhaustiveness.
package matchcheck

import (
	"github.com/funvibe/matchuse/internal/ast"
	"github.com/funvibe/matchuse/internal/config"
	"github.com/funvibe/matchuse/internal/ctor"
	"github.com/funvibe/matchuse/internal/diagnostics"
)

// Context bundles everything a single match analysis needs: the arena
// patterns live in, the oracle that classifies and splits constructors,
// and the panic context used to tag invariant violations.
type Context struct {
	Arena    *ast.Arena
	Oracle   ctor.Oracle
	PanicCtx diagnostics.PanicContext

	depth int
}

// NewContext builds a Context for analyzing a single match expression.
func NewContext(arena *ast.Arena, oracle ctor.Oracle, module, matchExpr string) *Context {
	return &Context{
		Arena:  arena,
		Oracle: oracle,
		PanicCtx: diagnostics.PanicContext{
			Module:    module,
			MatchExpr: matchExpr,
		},
	}
}

func (c *Context) raise(code diagnostics.ErrorCode, args ...interface{}) {
	diagnostics.Raise(c.PanicCtx, code, args...)
}

// enterField tracks constructor-nesting depth and raises ErrM007 once a
// pathological or malformed pattern tree nests deeper than
// config.MaxPatternDepth; the returned func restores the previous depth.
func (c *Context) enterField() func() {
	c.depth++
	if c.depth > config.MaxPatternDepth {
		c.raise(diagnostics.ErrM007, config.MaxPatternDepth)
	}
	return func() { c.depth-- }
}
