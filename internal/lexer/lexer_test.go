package lexer

import (
	"testing"

	"github.com/bolt-lang/bolt/internal/diag"
)

func scanAll(t *testing.T, src string) ([]Token, *diag.Store) {
	t.Helper()
	diags := diag.NewStore()
	stream := Scan([]byte(src), diags)
	var toks []Token
	for i := 0; i < stream.Len(); i++ {
		toks = append(toks, stream.At(i))
	}
	return toks, diags
}

func kinds(toks []Token) []Kind {
	out := make([]Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestScanBasicLetBinding(t *testing.T) {
	toks, diags := scanAll(t, "let x = 1\n")
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.All())
	}

	want := []Kind{KwLet, Identifier, Equals, IntegerLiteral, LineFoldEnd, EndOfFile}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("kind sequence length mismatch: got %v, want %v", got, want)
	}
	for i, k := range want {
		if got[i] != k {
			t.Fatalf("token %d: got %s, want %s", i, got[i], k)
		}
	}
}

func TestScanStringLiteralDecodesEscapes(t *testing.T) {
	toks, diags := scanAll(t, `let s = "a\nb"`+"\n")
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.All())
	}
	for _, tok := range toks {
		if tok.Kind == StringLiteral {
			if tok.StringValue != "a\nb" {
				t.Fatalf("StringValue = %q, want %q", tok.StringValue, "a\nb")
			}
			return
		}
	}
	t.Fatalf("no StringLiteral token found in %v", kinds(toks))
}

// TestBlockStartEndBalanced covers invariant 1 (spec.md §8): for any
// source, the number of BlockStart tokens equals the number of BlockEnd
// tokens.
func TestBlockStartEndBalanced(t *testing.T) {
	tests := []string{
		"let x = 1\n",
		"let even n = if n == 0 . True else . odd (n - 1)\nlet odd n = if n == 0 . False else . even (n - 1)\n",
		"let f x = \n  let y = x\n  return y\n",
	}
	for _, src := range tests {
		toks, _ := scanAll(t, src)
		var starts, ends int
		for _, tok := range toks {
			switch tok.Kind {
			case BlockStart:
				starts++
			case BlockEnd:
				ends++
			}
		}
		if starts != ends {
			t.Fatalf("src %q: %d BlockStart vs %d BlockEnd", src, starts, ends)
		}
	}
}

func TestScanInvalidCharacterEmitsInvalidToken(t *testing.T) {
	toks, diags := scanAll(t, "let x = `\n")
	if !diags.HasErrors() {
		t.Fatalf("expected a diagnostic for an unknown character")
	}
	found := false
	for _, tok := range toks {
		if tok.Kind == Invalid {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an Invalid token in %v", kinds(toks))
	}
}
