package ast

import "github.com/bolt-lang/bolt/internal/bigint"

// Ident is a lowercase-leading identifier reference, possibly the first
// segment of a dotted qualified path (spec.md §1: "bare namespacing via
// dotted names").
type Ident struct {
	base
	Name string
	Path []string // additional dotted segments, empty for a bare name
}

// IdentAlt is an uppercase-leading identifier reference: a data constructor,
// a type name, or a class name used in expression/pattern position.
type IdentAlt struct {
	base
	Name string
	Path []string
}

// IntegerLiteral is a decimal integer literal, decoded via internal/bigint.
type IntegerLiteral struct {
	base
	Value bigint.Integer
}

// StringLiteral is a `"`-delimited string literal with escapes resolved.
type StringLiteral struct {
	base
	Value string
}

// CallExpression is juxtaposition-applied: `callee arg1 arg2 ...`.
type CallExpression struct {
	base
	Callee Node
	Args   []Node
}

// InfixExpression is a binary operator application resolved against the
// operator table (component E).
type InfixExpression struct {
	base
	Op    string
	Left  Node
	Right Node
}

// PrefixExpression is a unary operator application.
type PrefixExpression struct {
	base
	Op      string
	Operand Node
}

// MemberExpression is `<expr> . <name>`.
type MemberExpression struct {
	base
	Target Node
	Field  string
}

// TupleExpression is `( e1, e2, ... )` with two or more elements (a single
// parenthesized element is not a tuple; the parser unwraps it).
type TupleExpression struct {
	base
	Elements []Node
}

// RecordFieldExpr is one `name = expr` member of a record expression.
type RecordFieldExpr struct {
	base
	Name  string
	Value Node
}

// RecordExpression is `{ field=expr, ... }`, checked against a named record
// type by field-name matching (spec.md §4.I).
type RecordExpression struct {
	base
	Fields []*RecordFieldExpr
}

// MatchCase is one `pattern => expr` arm of a match expression.
type MatchCase struct {
	base
	Pattern Node
	Body    Node
}

// MatchExpression is `match <expr> . case*`.
type MatchExpression struct {
	base
	Scrutinee Node
	Cases     []*MatchCase
}
