// Package diagnostics provides the structured error type shared by the
// usefulness engine's invariant-violation panics and the CLI's user-facing
// reporting.
package diagnostics

import "fmt"

// Phase identifies which stage of analysis produced a diagnostic.
type Phase string

const (
	PhaseMatchCheck Phase = "matchcheck"
	PhaseOracle     Phase = "oracle"
	PhaseCLI        Phase = "cli"
)

// ErrorCode tags a diagnostic with a stable, greppable identifier.
type ErrorCode string

const (
	// Invariant violations raised by the usefulness engine.
	ErrM001 ErrorCode = "M001" // row length mismatch between matrix and candidate row
	ErrM002 ErrorCode = "M002" // SubPatSet union with mismatched tags
	ErrM003 ErrorCode = "M003" // unspecialize/unsplit_or_pat called on Alt/non-Seq
	ErrM004 ErrorCode = "M004" // Usefulness merge/extend mixing WithWitnesses and NoWitnesses
	ErrM005 ErrorCode = "M005" // list_unreachable_subpatterns encountered Empty mid-recursion
	ErrM006 ErrorCode = "M006" // expand_or_pat called on a non-or-pattern head
	ErrM007 ErrorCode = "M007" // pattern recursion exceeded the configured depth guard
)

var errorTemplates = map[ErrorCode]string{
	ErrM001: "matrix/row arity mismatch: matrix columns=%d, row columns=%d",
	ErrM002: "SubPatSet union of mismatched kinds: %s vs %s",
	ErrM003: "%s called on Alt (expected Seq/Full/Empty)",
	ErrM004: "Usefulness.%s mixed WithWitnesses and NoWitnesses",
	ErrM005: "list_unreachable_subpatterns hit Empty while recursing",
	ErrM006: "expand_or_pat called on non-or-pattern head",
	ErrM007: "pattern nesting exceeded max depth %d",
}

// PanicContext identifies the match expression under analysis, carried
// through every invariant-violation panic so the caller can locate the
// offending match.
type PanicContext struct {
	Module    string
	MatchExpr string
}

func (c PanicContext) String() string {
	if c.Module == "" && c.MatchExpr == "" {
		return "<unknown match>"
	}
	return fmt.Sprintf("%s::%s", c.Module, c.MatchExpr)
}

// InvariantViolation is the panic value raised whenever the engine detects
// one of its own invariants has broken. It is never recovered inside the
// engine; callers that want a clean exit recover it at their own boundary.
type InvariantViolation struct {
	Code    ErrorCode
	Context PanicContext
	Args    []interface{}
}

func (e *InvariantViolation) Error() string {
	tmpl, ok := errorTemplates[e.Code]
	if !ok {
		tmpl = "unknown invariant violation"
	}
	return fmt.Sprintf("[%s] invariant violation in %s: %s", e.Code, e.Context, fmt.Sprintf(tmpl, e.Args...))
}

// Raise panics with a formatted InvariantViolation. Engine code calls this
// instead of returning an error: invariant violations are not recoverable
// conditions, they terminate the analysis.
func Raise(ctx PanicContext, code ErrorCode, args ...interface{}) {
	panic(&InvariantViolation{Code: code, Context: ctx, Args: args})
}
