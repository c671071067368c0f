package testdirective_test

import (
	"fmt"
	"testing"

	"github.com/bolt-lang/bolt/internal/diag"
	"github.com/bolt-lang/bolt/internal/source"
	"github.com/bolt-lang/bolt/internal/testdirective"
)

// recordingFailer captures Fatalf calls instead of aborting, so a test can
// assert both the pass and fail paths of Check without using testing.T's
// own (test-ending) Fatalf.
type recordingFailer struct {
	messages []string
}

func (f *recordingFailer) Fatalf(format string, args ...any) {
	f.messages = append(f.messages, fmt.Sprintf(format, args...))
}

func TestParseDirectivesFindsLineAfterComment(t *testing.T) {
	content := []byte("# @expect_diagnostic 2014\nlet a : Int = \"foo\"\n")
	directives, err := testdirective.ParseDirectives(content)
	if err != nil {
		t.Fatalf("ParseDirectives: %v", err)
	}
	if len(directives) != 1 {
		t.Fatalf("expected 1 directive, got %d", len(directives))
	}
	if directives[0].Code != 2014 {
		t.Fatalf("code = %d, want 2014", directives[0].Code)
	}
	if directives[0].Line != 2 {
		t.Fatalf("line = %d, want 2", directives[0].Line)
	}
}

func TestParseDirectivesRejectsMalformedCode(t *testing.T) {
	content := []byte("# @expect_diagnostic not-a-number\nlet x = 1\n")
	if _, err := testdirective.ParseDirectives(content); err == nil {
		t.Fatalf("expected an error for a malformed directive")
	}
}

func TestCheckPassesWhenDiagnosticMatchesDirective(t *testing.T) {
	content := []byte("# @expect_diagnostic 2014\nlet a : Int = \"foo\"\n")
	diags := diag.NewStore()
	diags.Errorf(diag.UnificationError, source.Range{Start: source.Loc{Line: 2, Column: 1}}, 0, "cannot unify Int with String")

	f := &recordingFailer{}
	testdirective.Check(f, content, diags)
	if len(f.messages) != 0 {
		t.Fatalf("expected no failures, got %v", f.messages)
	}
}

func TestCheckFailsOnMissingDiagnostic(t *testing.T) {
	content := []byte("# @expect_diagnostic 2014\nlet a : Int = \"foo\"\n")
	diags := diag.NewStore()

	f := &recordingFailer{}
	testdirective.Check(f, content, diags)
	if len(f.messages) == 0 {
		t.Fatalf("expected a failure when no diagnostic is recorded")
	}
}

func TestCheckFailsOnUnpredictedDiagnostic(t *testing.T) {
	content := []byte("let a = 1\n")
	diags := diag.NewStore()
	diags.Errorf(diag.UnificationError, source.Range{Start: source.Loc{Line: 1, Column: 1}}, 0, "surprise")

	f := &recordingFailer{}
	testdirective.Check(f, content, diags)
	if len(f.messages) == 0 {
		t.Fatalf("expected a failure for a diagnostic no directive predicted")
	}
}
