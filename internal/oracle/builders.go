package oracle

import "github.com/funvibe/matchuse/internal/ast"

// The functions below are small conveniences for assembling ast.Pattern
// trees against this package's type system; they do nothing Alloc itself
// couldn't do; tests and the CLI use them to keep scenario setup readable.

// Wild allocates a bare wildcard pattern of type t.
func Wild(arena *ast.Arena, t ast.Type) ast.Handle {
	return arena.Alloc(ast.Pattern{Kind: ast.Wild, Type: t})
}

// Bind allocates a bare variable-binding pattern (equivalent to a wildcard
// for matching purposes).
func Bind(arena *ast.Arena, name string, t ast.Type) ast.Handle {
	return arena.Alloc(ast.Pattern{Kind: ast.Binding, Type: t, Name: name, Sub: ast.NoHandle})
}

// Var allocates a named-constructor pattern (an enum variant or tuple)
// applied to fields.
func Var(arena *ast.Arena, t ast.Type, name string, fields ...ast.Handle) ast.Handle {
	return arena.Alloc(ast.Pattern{Kind: ast.Variant, Type: t, Name: name, Fields: fields})
}

// Or allocates an or-pattern over alts.
func Or(arena *ast.Arena, t ast.Type, alts ...ast.Handle) ast.Handle {
	return arena.Alloc(ast.Pattern{Kind: ast.Or, Type: t, Alts: alts})
}

// Lit allocates a literal pattern.
func Lit(arena *ast.Arena, t ast.Type, value interface{}) ast.Handle {
	return arena.Alloc(ast.Pattern{Kind: ast.Literal, Type: t, Value: value})
}

// Rng allocates an inclusive integer range pattern.
func Rng(arena *ast.Arena, t ast.Type, lo, hi int64) ast.Handle {
	return arena.Alloc(ast.Pattern{Kind: ast.Range, Type: t, Lo: lo, Hi: hi})
}

// SlicePat allocates a slice pattern with a fixed prefix, an optional
// `...rest` binding, and a fixed suffix following it.
func SlicePat(arena *ast.Arena, t ast.Type, prefix []ast.Handle, rest ast.Handle, suffix []ast.Handle) ast.Handle {
	return arena.Alloc(ast.Pattern{Kind: ast.Slice, Type: t, Fields: prefix, Rest: rest, Suffix: suffix})
}
