// Command matchuse runs the pattern-match usefulness engine over a fixed
// set of demonstration match expressions and reports per-arm reachability
// and exhaustiveness witnesses for each.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/funvibe/matchuse/internal/config"
	"github.com/funvibe/matchuse/internal/diagnostics"
	"github.com/funvibe/matchuse/internal/matchcheck"
	"github.com/funvibe/matchuse/internal/render"
	"github.com/funvibe/matchuse/internal/store"
)

var useColor = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

func colorize(code, s string) string {
	if !useColor {
		return s
	}
	return fmt.Sprintf("\x1b[%sm%s\x1b[0m", code, s)
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			if iv, ok := r.(*diagnostics.InvariantViolation); ok {
				fmt.Fprintf(os.Stderr, "internal error: %s\n", iv.Error())
				os.Exit(2)
			}
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "internal error: %v\n", r)
			os.Exit(1)
		}
	}()

	dbPath := filepath.Join(os.TempDir(), config.CacheFileName)
	noCache := false
	only := ""

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch a := args[i]; a {
		case "-help", "--help":
			printHelp()
			return
		case "-no-cache":
			noCache = true
		case "-db":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "-db requires a path argument")
				os.Exit(1)
			}
			i++
			dbPath = args[i]
		default:
			only = a
		}
	}

	var cache *store.Cache
	if !noCache {
		var err error
		cache, err = store.Open(dbPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: cache disabled: %s\n", err)
		} else {
			defer cache.Close()
		}
	}

	scenarios := allScenarios()
	ran := 0
	for _, sc := range scenarios {
		if only != "" && sc.Name != only {
			continue
		}
		ran++
		runScenario(sc, cache)
	}
	if only != "" && ran == 0 {
		fmt.Fprintf(os.Stderr, "no such scenario: %s (use -help to list)\n", only)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Usage: matchuse [-db path] [-no-cache] [scenario-name]")
	fmt.Println("Available scenarios:")
	for _, sc := range allScenarios() {
		fmt.Printf("  %-38s %s\n", sc.Name, sc.MatchExpr)
	}
}

func runScenario(sc scenario, cache *store.Cache) {
	analysisID := uuid.New()
	start := time.Now()

	ctx := matchcheck.NewContext(sc.Arena, sc.Oracle, "cmd/matchuse", sc.MatchExpr)
	report := matchcheck.ComputeMatchUsefulness(ctx, sc.Arms, sc.ScrutineeType)

	elapsed := time.Since(start)

	fmt.Printf("\n=== %s [%s], %s ago ===\n", sc.Name, analysisID, humanize.RelTime(start, time.Now(), "", ""))
	fmt.Printf("match %s {\n", sc.MatchExpr)
	for i, au := range report.ArmUsefulness {
		armText := render.Pattern(sc.Arena, sc.Arms[i].Pat)
		switch au.Reachability.Kind {
		case matchcheck.Unreachable:
			fmt.Printf("  %s  %s\n", colorize("31", "[unreachable]"), armText)
		case matchcheck.Reachable:
			if len(au.Reachability.UnreachableSubpatterns) == 0 {
				fmt.Printf("  %s  %s\n", colorize("32", "[reachable]  "), armText)
			} else {
				subs := render.Patterns(sc.Arena, au.Reachability.UnreachableSubpatterns)
				fmt.Printf("  %s  %s (dead alternatives: %s)\n", colorize("33", "[reachable]  "), armText, strings.Join(subs, ", "))
			}
		}
	}
	fmt.Println("}")

	if len(report.NonExhaustivenessWitnesses) == 0 {
		fmt.Printf("exhaustive — %s arms checked in %v\n", humanize.Comma(int64(len(sc.Arms))), elapsed)
	} else {
		witnesses := render.Patterns(sc.Arena, report.NonExhaustivenessWitnesses)
		fmt.Printf("NOT exhaustive, missing: %s\n", strings.Join(witnesses, ", "))
	}

	if cache != nil {
		armPatterns := make([]string, len(sc.Arms))
		reachableCount := 0
		for i, arm := range sc.Arms {
			armPatterns[i] = render.Pattern(sc.Arena, arm.Pat)
		}
		for _, au := range report.ArmUsefulness {
			if au.Reachability.Kind == matchcheck.Reachable {
				reachableCount++
			}
		}
		key := store.ContentKey(armPatterns)
		if _, err := cache.Put(key, len(sc.Arms), reachableCount, len(report.NonExhaustivenessWitnesses) == 0, render.Patterns(sc.Arena, report.NonExhaustivenessWitnesses), time.Now()); err != nil {
			fmt.Fprintf(os.Stderr, "warning: cache write failed: %s\n", err)
		}
	}
}
