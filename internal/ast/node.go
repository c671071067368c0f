// Package ast defines the concrete syntax tree produced by the parser
// (component F) and the lazy scope tables built over it (component G).
package ast

import (
	"github.com/bolt-lang/bolt/internal/lexer"
	"github.com/bolt-lang/bolt/internal/source"
	"github.com/bolt-lang/bolt/internal/types"
)

// NodeKind tags every CST node with a member of a closed set (spec.md §3).
// Exhaustive switches over Kind() stand in for an open Expr/Stmt/Decl
// marker-interface hierarchy (spec.md §9 design note).
type NodeKind int

const (
	KindInvalid NodeKind = iota

	KindSourceFile

	// Declarations.
	KindLetDeclaration
	KindStructDeclaration
	KindEnumDeclaration
	KindClassDeclaration
	KindInstanceDeclaration
	KindField
	KindVariant
	KindParam

	// Statements.
	KindBlock
	KindIfStatement
	KindElifClause
	KindReturnStatement
	KindExprStatement

	// Expressions.
	KindIdent
	KindIdentAlt
	KindIntegerLiteral
	KindStringLiteral
	KindCallExpression
	KindInfixExpression
	KindPrefixExpression
	KindMemberExpression
	KindTupleExpression
	KindRecordExpression
	KindRecordField
	KindMatchExpression
	KindMatchCase

	// Patterns.
	KindBindPattern
	KindLiteralPattern
	KindNamedPattern
	KindNestedPattern

	// Type expressions.
	KindNamedType
	KindAppType
	KindArrowType
	KindTupleType
	KindQualifiedType
	KindClassConstraint
	KindEqualConstraint
)

var kindNames = map[NodeKind]string{
	KindInvalid:             "Invalid",
	KindSourceFile:          "SourceFile",
	KindLetDeclaration:      "LetDeclaration",
	KindStructDeclaration:   "StructDeclaration",
	KindEnumDeclaration:     "EnumDeclaration",
	KindClassDeclaration:    "ClassDeclaration",
	KindInstanceDeclaration: "InstanceDeclaration",
	KindField:               "Field",
	KindVariant:             "Variant",
	KindParam:               "Param",
	KindBlock:               "Block",
	KindIfStatement:         "IfStatement",
	KindElifClause:          "ElifClause",
	KindReturnStatement:     "ReturnStatement",
	KindExprStatement:       "ExprStatement",
	KindIdent:               "Ident",
	KindIdentAlt:            "IdentAlt",
	KindIntegerLiteral:      "IntegerLiteral",
	KindStringLiteral:       "StringLiteral",
	KindCallExpression:      "CallExpression",
	KindInfixExpression:     "InfixExpression",
	KindPrefixExpression:    "PrefixExpression",
	KindMemberExpression:    "MemberExpression",
	KindTupleExpression:     "TupleExpression",
	KindRecordExpression:    "RecordExpression",
	KindRecordField:         "RecordField",
	KindMatchExpression:     "MatchExpression",
	KindMatchCase:           "MatchCase",
	KindBindPattern:         "BindPattern",
	KindLiteralPattern:      "LiteralPattern",
	KindNamedPattern:        "NamedPattern",
	KindNestedPattern:       "NestedPattern",
	KindNamedType:           "NamedType",
	KindAppType:             "AppType",
	KindArrowType:           "ArrowType",
	KindTupleType:           "TupleType",
	KindQualifiedType:       "QualifiedType",
	KindClassConstraint:     "ClassConstraint",
	KindEqualConstraint:     "EqualConstraint",
}

func (k NodeKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Node is implemented by every CST node. A stable NodeKind discriminant lets
// callers exhaustively switch on shape instead of type-asserting against a
// family of marker interfaces.
type Node interface {
	ID() int
	Kind() NodeKind
	Parent() Node
	setParent(Node)
	Scope() *Scope
	Type() types.Type
	SetType(types.Type)
	Range() source.Range
	FirstToken() int
	LastToken() int
}

// IDGen hands out stable, file-unique node identifiers as the parser builds
// the tree (spec.md §9: ref-counting replaced by stable ids held by
// diagnostics and scope entries).
type IDGen struct{ next int }

// Next returns the next unused node id.
func (g *IDGen) Next() int {
	g.next++
	return g.next
}

// base is embedded by every concrete node type and carries the fields
// spec.md §3 requires of all CST nodes: kind, parent back-reference, lazily
// built scope, inferred type (nil until checked), and a first/last token
// index pair resolved against the file's token stream (spec.md §3 invariant
// 2 and §9's arena-by-index note).
//
// Scope-owning kinds (SourceFile, LetDeclaration, Block — spec.md §4.G)
// shadow Scope() with their own method that lazily builds and caches into
// this same scope field; every other kind inherits the default below, which
// always reports "I own no scope."
type base struct {
	id     int
	kind   NodeKind
	parent Node

	stream            *lexer.Stream
	firstTok, lastTok int

	scope *Scope
	typ   types.Type
}

func newBase(id int, kind NodeKind, stream *lexer.Stream, first, last int) base {
	return base{id: id, kind: kind, stream: stream, firstTok: first, lastTok: last}
}

func (b *base) ID() int               { return b.id }
func (b *base) Kind() NodeKind        { return b.kind }
func (b *base) Parent() Node          { return b.parent }
func (b *base) setParent(p Node)      { b.parent = p }
func (b *base) Type() types.Type      { return b.typ }
func (b *base) SetType(t types.Type)  { b.typ = t }
func (b *base) FirstToken() int       { return b.firstTok }
func (b *base) LastToken() int        { return b.lastTok }
func (b *base) Scope() *Scope         { return nil }

// Range recovers the node's source range from its first/last token indices
// in O(1) (spec.md §3 invariant 2).
func (b *base) Range() source.Range {
	if b.stream == nil {
		return source.Range{}
	}
	return source.Range{
		Start: b.stream.TokenAt(b.firstTok).Start(),
		End:   b.stream.TokenAt(b.lastTok).End(),
	}
}
