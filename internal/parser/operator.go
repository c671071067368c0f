// Package parser implements the recursive-descent parser (component F) with
// Pratt/precedence-climbing expression parsing driven by the operator table
// below (component E).
package parser

// OperatorFlags marks an operator's fixity. Grounded on
// _examples/original_source/include/bolt/Parser.hpp's OperatorFlags enum
// (Prefix/Suffix/InfixL/InfixR bit flags).
type OperatorFlags uint

const (
	OperatorPrefix OperatorFlags = 1 << iota
	OperatorSuffix
	OperatorInfixL
	OperatorInfixR
)

// OperatorInfo is one operator's precedence and fixity, mirroring the
// original OperatorInfo struct's Precedence/Flags pair.
type OperatorInfo struct {
	Precedence int
	Flags      OperatorFlags
}

func (o OperatorInfo) IsPrefix() bool  { return o.Flags&OperatorPrefix != 0 }
func (o OperatorInfo) IsSuffix() bool  { return o.Flags&OperatorSuffix != 0 }
func (o OperatorInfo) IsInfix() bool   { return o.Flags&(OperatorInfixL|OperatorInfixR) != 0 }
func (o OperatorInfo) IsRightAssoc() bool { return o.Flags&OperatorInfixR != 0 }

// OperatorTable is a mutable, dynamically populated registry of operators
// (spec.md §4.E). Per spec.md §9's second Open Question, the grammar never
// reaches the path that would register a user-declared operator, so Add is
// exposed for completeness but only ever called by NewOperatorTable to seed
// the built-in set.
type OperatorTable struct {
	mapping map[string]OperatorInfo
}

// NewOperatorTable returns a table seeded with bolt's built-in operators.
func NewOperatorTable() *OperatorTable {
	t := &OperatorTable{mapping: make(map[string]OperatorInfo)}

	// Precedence climbs with binding strength, following the usual
	// arithmetic-before-comparison-before-logic ladder.
	t.Add("||", OperatorInfixL, 1)
	t.Add("&&", OperatorInfixL, 2)
	t.Add("==", OperatorInfixL, 3)
	t.Add("!=", OperatorInfixL, 3)
	t.Add("<", OperatorInfixL, 4)
	t.Add(">", OperatorInfixL, 4)
	t.Add("<=", OperatorInfixL, 4)
	t.Add(">=", OperatorInfixL, 4)
	t.Add("+", OperatorInfixL, 5)
	t.Add("-", OperatorInfixL|OperatorPrefix, 5)
	t.Add("*", OperatorInfixL, 6)
	t.Add("/", OperatorInfixL, 6)
	t.Add("%", OperatorInfixL, 6)
	t.Add("!", OperatorPrefix, 7)

	return t
}

// Add registers or replaces an operator's fixity and precedence.
func (t *OperatorTable) Add(name string, flags OperatorFlags, precedence int) {
	t.mapping[name] = OperatorInfo{Precedence: precedence, Flags: flags}
}

// Get returns the registered info for name, if any.
func (t *OperatorTable) Get(name string) (OperatorInfo, bool) {
	info, ok := t.mapping[name]
	return info, ok
}

// IsInfix reports whether name is registered with infix fixity.
func (t *OperatorTable) IsInfix(name string) bool {
	info, ok := t.mapping[name]
	return ok && info.IsInfix()
}

// IsPrefix reports whether name is registered with prefix fixity.
func (t *OperatorTable) IsPrefix(name string) bool {
	info, ok := t.mapping[name]
	return ok && info.IsPrefix()
}

// IsSuffix reports whether name is registered with suffix fixity.
func (t *OperatorTable) IsSuffix(name string) bool {
	info, ok := t.mapping[name]
	return ok && info.IsSuffix()
}
