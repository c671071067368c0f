// Package diag collects structured diagnostics. It neither aborts nor
// prints (spec.md §7): every failure anywhere in the front end is recorded
// here as data and the responsible component continues.
package diag

import (
	"fmt"
	"sort"

	"github.com/bolt-lang/bolt/internal/source"
)

// Code is a stable, user-visible diagnostic code (spec.md §6).
type Code int

const (
	UnexpectedToken          Code = 1001
	BindingNotFound          Code = 2010
	UnificationError         Code = 2014
	OccursCheck              Code = 2015
	ArityMismatch            Code = 2020
	InstanceNotFound         Code = 2101
	TypeSignatureMismatch    Code = 2201
	// InstanceOverlap is an (added) code: spec.md §9 resolves the
	// overlapping-instance Open Question by rejecting overlap outright,
	// which needs a diagnostic of its own rather than reusing 2101
	// (InstanceNotFound means the opposite failure: no matching instance).
	InstanceOverlap Code = 2102
)

// String renders the code the way spec.md names it, e.g. "2014 UnificationError".
func (c Code) String() string {
	name, ok := codeNames[c]
	if !ok {
		return fmt.Sprintf("%d", int(c))
	}
	return fmt.Sprintf("%d %s", int(c), name)
}

var codeNames = map[Code]string{
	UnexpectedToken:       "UnexpectedToken",
	BindingNotFound:       "BindingNotFound",
	UnificationError:      "UnificationError",
	OccursCheck:           "OccursCheck",
	ArityMismatch:         "ArityMismatch",
	InstanceNotFound:      "InstanceNotFound",
	TypeSignatureMismatch: "TypeSignatureMismatch",
	InstanceOverlap:       "InstanceOverlap",
}

// Severity captures how impactful a diagnostic is.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityNote
)

// Diagnostic is a single structured compiler diagnostic.
type Diagnostic struct {
	Code     Code
	Severity Severity
	Message  string
	Range    source.Range
	// NodeID identifies the CST node this diagnostic is anchored to, if
	// any. Diagnostics hold a stable index rather than a node pointer, per
	// spec.md §9's ref-counted-sharing design note.
	NodeID int
}

// Store is an append-only diagnostic collector. No operation on Store can
// fail or throw; it is the sideways channel every other component reports
// into (spec.md §2).
type Store struct {
	diags []Diagnostic
}

// NewStore constructs an empty diagnostic store.
func NewStore() *Store { return &Store{} }

// Add records a diagnostic.
func (s *Store) Add(d Diagnostic) { s.diags = append(s.diags, d) }

// Errorf is a convenience wrapper around Add for the common case.
func (s *Store) Errorf(code Code, rng source.Range, nodeID int, format string, args ...any) {
	s.Add(Diagnostic{
		Code:     code,
		Severity: SeverityError,
		Message:  fmt.Sprintf(format, args...),
		Range:    rng,
		NodeID:   nodeID,
	})
}

// Len returns the number of recorded diagnostics.
func (s *Store) Len() int { return len(s.diags) }

// HasErrors reports whether any recorded diagnostic has error severity.
func (s *Store) HasErrors() bool {
	for _, d := range s.diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// All returns the diagnostics in insertion order.
func (s *Store) All() []Diagnostic { return s.diags }

// Sorted returns the diagnostics ordered by (start-line, start-column), the
// final ordering guarantee of spec.md §5/§8.
func (s *Store) Sorted() []Diagnostic {
	out := make([]Diagnostic, len(s.diags))
	copy(out, s.diags)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Range.Start.Less(out[j].Range.Start)
	})
	return out
}
