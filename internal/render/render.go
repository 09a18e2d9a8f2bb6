// Package render prints ast.Pattern trees back into source-like surface
// syntax, for CLI diagnostics and as the stable input to the cache's
// content hash.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/funvibe/matchuse/internal/ast"
)

// Pattern renders the pattern at h, and everything it contains, as source
// text.
func Pattern(arena *ast.Arena, h ast.Handle) string {
	var buf bytes.Buffer
	writePattern(&buf, arena, h)
	return buf.String()
}

// Patterns renders each handle in hs independently.
func Patterns(arena *ast.Arena, hs []ast.Handle) []string {
	out := make([]string, len(hs))
	for i, h := range hs {
		out[i] = Pattern(arena, h)
	}
	return out
}

func writePattern(buf *bytes.Buffer, arena *ast.Arena, h ast.Handle) {
	if h == ast.NoHandle {
		buf.WriteString("_")
		return
	}
	p := arena.Get(h)
	switch p.Kind {
	case ast.Wild:
		buf.WriteString("_")

	case ast.Binding:
		buf.WriteString(p.Name)
		if p.Sub != ast.NoHandle {
			buf.WriteString(" @ ")
			writePattern(buf, arena, p.Sub)
		}

	case ast.Variant:
		if p.Name != "Tuple" {
			buf.WriteString(p.Name)
		}
		if len(p.Fields) > 0 || p.Name == "Tuple" {
			buf.WriteString("(")
			writeList(buf, arena, p.Fields)
			buf.WriteString(")")
		}

	case ast.Or:
		parts := make([]string, len(p.Alts))
		for i, alt := range p.Alts {
			parts[i] = Pattern(arena, alt)
		}
		buf.WriteString(strings.Join(parts, " | "))

	case ast.Literal:
		fmt.Fprintf(buf, "%v", p.Value)

	case ast.Range:
		fmt.Fprintf(buf, "%v..=%v", p.Lo, p.Hi)

	case ast.Slice:
		buf.WriteString("[")
		writeList(buf, arena, p.Fields)
		if p.Rest != ast.NoHandle {
			if len(p.Fields) > 0 {
				buf.WriteString(", ")
			}
			writePattern(buf, arena, p.Rest)
			buf.WriteString("...")
			if len(p.Suffix) > 0 {
				buf.WriteString(", ")
				writeList(buf, arena, p.Suffix)
			}
		}
		buf.WriteString("]")

	default:
		fmt.Fprintf(buf, "<%s>", p.Kind)
	}
}

func writeList(buf *bytes.Buffer, arena *ast.Arena, hs []ast.Handle) {
	for i, h := range hs {
		if i > 0 {
			buf.WriteString(", ")
		}
		writePattern(buf, arena, h)
	}
}
