// Package testdirective scans a bolt source file's comments for
// `@expect_diagnostic <code>` directives and checks a compiled diagnostic
// store against them (spec.md §6 "Test directive"). It is ambient test
// tooling, not part of the compiler pipeline itself: cmd/bolt-conformance
// drives fixtures through it.
//
// Grounded on _examples/bitgirder-bitgirder-main/testing/go/lib/bitgirder/assert:
// a Failer interface standing in for *testing.T's Fatal/Fatalf, so this
// package never imports "testing" itself and can equally be driven by a
// conformance binary's own small Failer.
package testdirective

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/bolt-lang/bolt/internal/diag"
)

// Directive is one `@expect_diagnostic <code>` annotation, anchored at the
// 1-based source line of the declaration it precedes (the line right after
// the comment itself).
type Directive struct {
	Code Code
	Line int
}

// Code is the bare numeric diagnostic code a directive names, kept
// distinct from diag.Code so a malformed directive (naming a code the
// compiler never produces) is a harness error, not a silent zero value.
type Code int

const directivePrefix = "@expect_diagnostic"

// ParseDirectives scans content line by line for `#`-comments containing
// an @expect_diagnostic directive, recording the declaration line as the
// comment's own line plus one (spec.md §6: "immediately preceding a
// declaration").
func ParseDirectives(content []byte) ([]Directive, error) {
	var out []Directive
	scanner := bufio.NewScanner(bytes.NewReader(content))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		idx := strings.Index(line, "#")
		if idx < 0 {
			continue
		}
		comment := strings.TrimSpace(line[idx+1:])
		if !strings.HasPrefix(comment, directivePrefix) {
			continue
		}
		rest := strings.TrimSpace(comment[len(directivePrefix):])
		n, err := strconv.Atoi(rest)
		if err != nil {
			return nil, fmt.Errorf("line %d: malformed %s directive: %q", lineNo, directivePrefix, rest)
		}
		out = append(out, Directive{Code: Code(n), Line: lineNo + 1})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Failer is the subset of *testing.T this package drives fixtures through,
// so neither this package nor anything that imports it needs "testing" as
// a non-test dependency.
type Failer interface {
	Fatalf(format string, args ...any)
}

// Check parses content's directives and asserts every one is matched by a
// diagnostic with its code in diags at the same line, and that diags
// contains no diagnostic on a line no directive names; further diagnostics
// on a directive's own line are not rejected (spec.md §6: "asserts
// that compiling the file should emit exactly the given code at that
// declaration").
func Check(f Failer, content []byte, diags *diag.Store) {
	directives, err := ParseDirectives(content)
	if err != nil {
		f.Fatalf("%s", err)
		return
	}

	byLine := make(map[int][]diag.Diagnostic)
	for _, d := range diags.All() {
		byLine[d.Range.Start.Line] = append(byLine[d.Range.Start.Line], d)
	}

	seen := make(map[int]bool, len(directives))
	for _, want := range directives {
		seen[want.Line] = true
		got := byLine[want.Line]
		if !containsCode(got, want.Code) {
			f.Fatalf("line %d: expected diagnostic code %d, got %v", want.Line, want.Code, codesOf(got))
		}
	}

	for line, ds := range byLine {
		if !seen[line] {
			f.Fatalf("line %d: unexpected diagnostic(s) %v not predicted by any directive", line, codesOf(ds))
		}
	}
}

func containsCode(ds []diag.Diagnostic, code Code) bool {
	for _, d := range ds {
		if int(d.Code) == int(code) {
			return true
		}
	}
	return false
}

func codesOf(ds []diag.Diagnostic) []diag.Code {
	out := make([]diag.Code, len(ds))
	for i, d := range ds {
		out[i] = d.Code
	}
	return out
}
