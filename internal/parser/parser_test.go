package parser_test

import (
	"testing"

	"github.com/bolt-lang/bolt/internal/ast"
	"github.com/bolt-lang/bolt/internal/diag"
	"github.com/bolt-lang/bolt/internal/parser"
)

func parseSource(t *testing.T, src string) (*ast.SourceFile, *diag.Store) {
	t.Helper()
	diags := diag.NewStore()
	file := parser.ParseSourceFile([]byte(src), diags)
	return file, diags
}

func assertNoErrors(t *testing.T, diags *diag.Store) {
	t.Helper()
	if !diags.HasErrors() {
		return
	}
	for _, d := range diags.All() {
		t.Errorf("unexpected diagnostic: %s", d.Message)
	}
	t.Fatalf("parser reported %d diagnostic(s)", diags.Len())
}

func TestParseLetDeclarationWithLiteralBody(t *testing.T) {
	file, diags := parseSource(t, "let x = 1\n")
	assertNoErrors(t, diags)

	if len(file.Decls) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(file.Decls))
	}
	decl, ok := file.Decls[0].(*ast.LetDeclaration)
	if !ok {
		t.Fatalf("expected *ast.LetDeclaration, got %T", file.Decls[0])
	}

	name, ok := decl.Name.(*ast.BindPattern)
	if !ok {
		t.Fatalf("expected *ast.BindPattern name, got %T", decl.Name)
	}
	if name.Name != "x" {
		t.Fatalf("name = %q, want %q", name.Name, "x")
	}

	lit, ok := decl.Body.(*ast.IntegerLiteral)
	if !ok {
		t.Fatalf("expected *ast.IntegerLiteral body, got %T", decl.Body)
	}
	if lit.Value.String() != "1" {
		t.Fatalf("literal value = %s, want 1", lit.Value.String())
	}
}

func TestParseLetDeclarationWithParamsAndSignature(t *testing.T) {
	file, diags := parseSource(t, "let f x y : a -> a -> Bool = eq x y\n")
	assertNoErrors(t, diags)

	decl, ok := file.Decls[0].(*ast.LetDeclaration)
	if !ok {
		t.Fatalf("expected *ast.LetDeclaration, got %T", file.Decls[0])
	}
	if len(decl.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(decl.Params))
	}
	if decl.Signature == nil {
		t.Fatalf("expected a non-nil signature")
	}

	call, ok := decl.Body.(*ast.CallExpression)
	if !ok {
		t.Fatalf("expected *ast.CallExpression body, got %T", decl.Body)
	}
	if len(call.Args) != 2 {
		t.Fatalf("expected 2 call args, got %d", len(call.Args))
	}
}

func TestParseMutualRecursionProducesTwoDeclarations(t *testing.T) {
	const src = "let even n = match n .\n" +
		"  0 => True\n" +
		"  m => odd (n - 1)\n" +
		"let odd n = match n .\n" +
		"  0 => False\n" +
		"  m => even (n - 1)\n"

	file, diags := parseSource(t, src)
	assertNoErrors(t, diags)

	if len(file.Decls) != 2 {
		t.Fatalf("expected 2 declarations, got %d", len(file.Decls))
	}
	for _, d := range file.Decls {
		if _, ok := d.(*ast.LetDeclaration); !ok {
			t.Fatalf("expected *ast.LetDeclaration, got %T", d)
		}
	}
}

func TestParseUnexpectedTokenRecovers(t *testing.T) {
	file, diags := parseSource(t, "let x = )\nlet y = 2\n")
	if !diags.HasErrors() {
		t.Fatalf("expected at least one diagnostic")
	}
	found := false
	for _, d := range diags.All() {
		if d.Code == diag.UnexpectedToken {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an UnexpectedToken diagnostic")
	}
	// The parser must still resynchronize and parse the declaration that
	// follows (spec.md §7: "parse desync (skip to next LineFoldEnd)").
	if len(file.Decls) < 2 {
		t.Fatalf("expected the parser to recover and see a second declaration, got %d", len(file.Decls))
	}
}

// TestNodeRangeMatchesFirstLastToken covers invariant 2 (spec.md §8): every
// parsed node's range equals (firstToken.start, lastToken.end).
func TestNodeRangeMatchesFirstLastToken(t *testing.T) {
	file, diags := parseSource(t, "let x = 1\n")
	assertNoErrors(t, diags)

	rng := file.Decls[0].Range()
	if rng.Start.IsEmpty() || rng.End.IsEmpty() {
		t.Fatalf("expected a populated range, got %+v", rng)
	}
	if !rng.Start.Less(rng.End) && rng.Start != rng.End {
		t.Fatalf("expected start <= end, got %+v", rng)
	}
	// First token `let` starts at 1:1; last token `1` ends at 1:10.
	if rng.Start.Line != 1 || rng.Start.Column != 1 || rng.End.Line != 1 || rng.End.Column != 10 {
		t.Fatalf("expected range 1:1-1:10, got %+v", rng)
	}
}
