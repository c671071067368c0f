package check_test

import (
	"strings"
	"testing"

	"github.com/bolt-lang/bolt/internal/ast"
	"github.com/bolt-lang/bolt/internal/check"
	"github.com/bolt-lang/bolt/internal/diag"
	"github.com/bolt-lang/bolt/internal/parser"
	"github.com/bolt-lang/bolt/internal/types"
)

func checkSource(t *testing.T, src string) (*ast.SourceFile, *check.Checker, *diag.Store) {
	t.Helper()
	diags := diag.NewStore()
	file := parser.ParseSourceFile([]byte(src), diags)
	c := check.Check(file, diags)
	return file, c, diags
}

// Scenario 1 (spec.md §8): `1` alone, as the entire program, produces no
// diagnostics and the literal's own inferred type is Int.
func TestLoneIntegerLiteralHasTypeInt(t *testing.T) {
	file, _, diags := checkSource(t, "1\n")
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.All())
	}
	if len(file.Decls) != 1 {
		t.Fatalf("expected 1 top-level element, got %d", len(file.Decls))
	}
	stmt, ok := file.Decls[0].(*ast.ExprStatement)
	if !ok {
		t.Fatalf("expected *ast.ExprStatement, got %T", file.Decls[0])
	}
	if stmt.Expr.Type() == nil {
		t.Fatalf("expected a non-nil inferred type")
	}
	if got := types.String(stmt.Expr.Type()); got != "Int" {
		t.Fatalf("inferred type = %s, want Int", got)
	}
}

// Scenario 2: `let a: Int = "foo"` produces exactly one UnificationError
// naming Int and String.
func TestLetWithMismatchedSignatureReportsUnificationError(t *testing.T) {
	_, _, diags := checkSource(t, `let a : Int = "foo"`+"\n")

	errs := diags.All()
	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 diagnostic, got %d: %v", len(errs), errs)
	}
	if errs[0].Code != diag.UnificationError {
		t.Fatalf("code = %s, want UnificationError", errs[0].Code)
	}
	for _, want := range []string{"Int", "String"} {
		if !strings.Contains(errs[0].Message, want) {
			t.Fatalf("message %q does not mention %q", errs[0].Message, want)
		}
	}
}

// Scenario 3: two mutually recursive bindings produce no diagnostics and
// both generalize to Int -> Bool. Expressed with `match` rather than
// spec.md §8's literal `if`/`else` one-liner, since this grammar's
// IfStatement is a statement usable only inside an already-open block
// (spec.md §6 BNF: `letBody ::= '=' expr | BlockStart element* BlockEnd`,
// and IfStatement has no value type per §4.I) — `match` is the expression
// form that carries the same mutually-recursive, Bool-branching shape.
func TestMutualRecursionGeneralizesToIntArrowBool(t *testing.T) {
	const src = "let even n = match n .\n" +
		"  0 => True\n" +
		"  m => odd (n - 1)\n" +
		"let odd n = match n .\n" +
		"  0 => False\n" +
		"  m => even (n - 1)\n"

	_, c, diags := checkSource(t, src)
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.All())
	}

	for _, name := range []string{"even", "odd"} {
		scheme, ok := c.Env().Get(name)
		if !ok {
			t.Fatalf("expected %q in the top-level environment", name)
		}
		if got := types.String(scheme.Type); got != "Int -> Bool" {
			t.Fatalf("%s : %s, want Int -> Bool", name, got)
		}
	}
}

// Scenario 4: an explicit signature's class constraint is available to
// discharge the body's own use of the class method.
func TestExplicitSignatureConstraintCoversBody(t *testing.T) {
	const src = "class Eq a.\n" +
		"  let eq : a -> a -> Bool\n" +
		"instance Eq String.\n" +
		"  let eq a b = True\n" +
		"let f x y : (Eq a) => a -> a -> Bool = eq x y\n"

	_, _, diags := checkSource(t, src)
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.All())
	}
}

// Scenario 5: the same program with the signature's class constraint
// dropped reports exactly one TypeSignatureMismatch (2201).
func TestDroppedConstraintReportsSignatureMismatch(t *testing.T) {
	const src = "class Eq a.\n" +
		"  let eq : a -> a -> Bool\n" +
		"instance Eq String.\n" +
		"  let eq a b = True\n" +
		"let f x y : a -> a -> Bool = eq x y\n"

	_, _, diags := checkSource(t, src)

	errs := diags.All()
	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 diagnostic, got %d: %v", len(errs), errs)
	}
	if errs[0].Code != diag.TypeSignatureMismatch {
		t.Fatalf("code = %s, want TypeSignatureMismatch", errs[0].Code)
	}
}

// Scenario 6: `let loop f = f f` is an occurs-check failure.
func TestSelfApplicationFailsOccursCheck(t *testing.T) {
	_, _, diags := checkSource(t, "let loop f = f f\n")

	errs := diags.All()
	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 diagnostic, got %d: %v", len(errs), errs)
	}
	if errs[0].Code != diag.OccursCheck {
		t.Fatalf("code = %s, want OccursCheck", errs[0].Code)
	}
}

// Diagnostics are sorted by (line, column) in Store.Sorted (invariant 5).
func TestSortedOrdersDiagnosticsByPosition(t *testing.T) {
	const src = "let a : Int = \"x\"\n" +
		"let b : Int = \"y\"\n"

	_, _, diags := checkSource(t, src)
	sorted := diags.Sorted()
	if len(sorted) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(sorted))
	}
	if !sorted[0].Range.Start.Less(sorted[1].Range.Start) {
		t.Fatalf("diagnostics not in position order: %+v then %+v", sorted[0].Range.Start, sorted[1].Range.Start)
	}
}
