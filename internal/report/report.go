// Package report renders a diagnostic store to a stream for cmd/bolt. It is
// deliberately minimal: one line per diagnostic, path:line:column, severity,
// code, and message — not a source-snippet renderer, which spec.md §1
// places out of scope as "a console diagnostic printer" external
// collaborator.
package report

import (
	"fmt"
	"io"

	"github.com/bolt-lang/bolt/internal/diag"
)

// Print writes every diagnostic in d, sorted by source position (spec.md
// §8 invariant 5), to w. path labels every line since the front end is
// single-file but a caller may still want the file named in its output.
func Print(w io.Writer, path string, d *diag.Store) {
	for _, diagnostic := range d.Sorted() {
		fmt.Fprintf(w, "%s:%d:%d: %s: %s [%s]\n",
			path,
			diagnostic.Range.Start.Line, diagnostic.Range.Start.Column,
			severityLabel(diagnostic.Severity),
			diagnostic.Message,
			diagnostic.Code,
		)
	}
}

func severityLabel(s diag.Severity) string {
	switch s {
	case diag.SeverityWarning:
		return "warning"
	case diag.SeverityNote:
		return "note"
	default:
		return "error"
	}
}

// FatalError distinguishes a condition cmd/bolt cannot recover from at all
// (the source file could not be opened) from the ordinary diagnostics a
// compile pass records and continues past (spec.md §7: "fatal conditions
// are file-open failure and internal invariant violation" — mirroring the
// original main.cc's early `return 1` on a readFile failure).
type FatalError struct {
	Path string
	Err  error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FatalError) Unwrap() error { return e.Err }
