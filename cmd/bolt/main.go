package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bolt-lang/bolt/internal/check"
	"github.com/bolt-lang/bolt/internal/diag"
	"github.com/bolt-lang/bolt/internal/parser"
	"github.com/bolt-lang/bolt/internal/report"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: bolt <file>\n")
		fmt.Fprintf(os.Stderr, "\nParses and type-checks a bolt source file, printing diagnostics to stderr.\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	path := flag.Arg(0)
	if err := run(path); err != nil {
		fmt.Fprintf(os.Stderr, "bolt: %s\n", err)
		os.Exit(1)
	}
}

// run parses and checks path, printing diagnostics and returning a non-nil
// *report.FatalError only for the unrecoverable file-open case (spec.md
// §7); an ordinary diagnostic-producing compile still returns nil here and
// signals failure only via the process exit code.
func run(path string) *report.FatalError {
	content, err := os.ReadFile(path)
	if err != nil {
		return &report.FatalError{Path: path, Err: err}
	}

	diags := diag.NewStore()
	file := parser.ParseSourceFile(content, diags)
	check.Check(file, diags)

	report.Print(os.Stderr, path, diags)

	if diags.HasErrors() {
		os.Exit(1)
	}
	return nil
}
