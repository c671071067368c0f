// Command bolt-conformance runs every `.bolt` fixture named on its command
// line end to end through the parser and checker and asserts its
// `@expect_diagnostic` directives against the resulting diagnostics
// (SPEC_FULL.md §6, internal/testdirective). It exits 0 if every fixture's
// directives matched, 1 otherwise, printing one failure line per mismatch.
package main

import (
	"fmt"
	"os"

	"github.com/bolt-lang/bolt/internal/check"
	"github.com/bolt-lang/bolt/internal/diag"
	"github.com/bolt-lang/bolt/internal/parser"
	"github.com/bolt-lang/bolt/internal/testdirective"
)

// collectingFailer accumulates testdirective.Check failures instead of
// aborting the process on the first one, so one fixture's mismatch doesn't
// hide the rest (testdirective.Failer is satisfied by *testing.T in
// internal/check's own tests; here it's this harness's own recorder).
type collectingFailer struct {
	path    string
	entries []string
}

func (f *collectingFailer) Fatalf(format string, args ...any) {
	f.entries = append(f.entries, fmt.Sprintf(format, args...))
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: bolt-conformance <fixture.bolt>...")
		os.Exit(1)
	}

	failed := false
	for _, path := range os.Args[1:] {
		if !runFixture(path) {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func runFixture(path string) bool {
	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return false
	}

	diags := diag.NewStore()
	file := parser.ParseSourceFile(content, diags)
	check.Check(file, diags)

	f := &collectingFailer{path: path}
	testdirective.Check(f, content, diags)
	if len(f.entries) == 0 {
		fmt.Printf("ok   %s\n", path)
		return true
	}
	fmt.Printf("FAIL %s\n", path)
	for _, e := range f.entries {
		fmt.Printf("     %s\n", e)
	}
	return false
}
