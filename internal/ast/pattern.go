package ast

import "github.com/bolt-lang/bolt/internal/bigint"

// LiteralKind distinguishes the payload of a LiteralPattern.
type LiteralKind int

const (
	LiteralInteger LiteralKind = iota
	LiteralString
)

// BindPattern binds a fresh name (spec.md §4.I: "BindPattern(x): x gets a
// fresh type variable at the current level, added to the enclosing scope").
type BindPattern struct {
	base
	Name string
}

// LiteralPattern constrains the scrutinee to a literal value's type.
type LiteralPattern struct {
	base
	LitKind     LiteralKind
	IntValue    bigint.Integer
	StringValue string
}

// NamedPattern matches a data constructor applied to argument patterns.
type NamedPattern struct {
	base
	Ctor string
	Args []Node
}

// NestedPattern is a parenthesized pattern; transparent to type checking
// (spec.md §4.I: "NestedPattern: transparent").
type NestedPattern struct {
	base
	Inner Node
}
