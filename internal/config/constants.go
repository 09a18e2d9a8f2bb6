package config

// MaxPatternDepth bounds the recursion the engine will follow into nested
// patterns before treating further nesting as an invariant violation. Real
// matches rarely nest more than a handful of constructors deep; this exists
// to turn a pathological or malformed pattern tree into a diagnosable panic
// instead of a stack overflow.
const MaxPatternDepth = 256

// Built-in type names recognized by the reference oracle.
const (
	BoolTypeName    = "Bool"
	OptionTypeName  = "Option"
	ResultTypeName  = "Result"
	SomeCtorName    = "Some"
	NoneCtorName    = "None"
	OkCtorName      = "Ok"
	ErrCtorName     = "Err"
)

// CacheFileName is the default SQLite database file for the analysis cache.
const CacheFileName = "matchuse_cache.sqlite"
