package ast

import (
	"github.com/bolt-lang/bolt/internal/bigint"
	"github.com/bolt-lang/bolt/internal/lexer"
)

// This file collects one exported constructor per concrete node type. base's
// fields are unexported so that Range()/Scope()/Parent() stay read-only from
// outside the package; the parser (component F) builds every node through
// these constructors instead.

func NewSourceFile(id int, s *lexer.Stream, first, last int, decls []Node) *SourceFile {
	return &SourceFile{base: newBase(id, KindSourceFile, s, first, last), Decls: decls}
}

func NewLetDeclaration(id int, s *lexer.Stream, first, last int, pub, mut bool, name Node, params []*Param, sig Node, body Node) *LetDeclaration {
	return &LetDeclaration{
		base: newBase(id, KindLetDeclaration, s, first, last),
		Pub:  pub, Mut: mut, Name: name, Params: params, Signature: sig, Body: body,
	}
}

func NewParam(id int, s *lexer.Stream, first, last int, pattern, typ Node) *Param {
	return &Param{base: newBase(id, KindParam, s, first, last), Pattern: pattern, TypeAnnotation: typ}
}

func NewField(id int, s *lexer.Stream, first, last int, name string, typ Node) *Field {
	return &Field{base: newBase(id, KindField, s, first, last), Name: name, TypeAnnotation: typ}
}

func NewStructDeclaration(id int, s *lexer.Stream, first, last int, pub bool, name string, fields []*Field) *StructDeclaration {
	return &StructDeclaration{base: newBase(id, KindStructDeclaration, s, first, last), Pub: pub, Name: name, Fields: fields}
}

func NewVariant(id int, s *lexer.Stream, first, last int, name string, fields []*Field) *Variant {
	return &Variant{base: newBase(id, KindVariant, s, first, last), Name: name, Fields: fields}
}

func NewEnumDeclaration(id int, s *lexer.Stream, first, last int, pub bool, name string, typeParams []string, variants []*Variant) *EnumDeclaration {
	return &EnumDeclaration{base: newBase(id, KindEnumDeclaration, s, first, last), Pub: pub, Name: name, TypeParams: typeParams, Variants: variants}
}

func NewClassDeclaration(id int, s *lexer.Stream, first, last int, pub bool, name string, typeParams []string, body []Node) *ClassDeclaration {
	return &ClassDeclaration{base: newBase(id, KindClassDeclaration, s, first, last), Pub: pub, Name: name, TypeParams: typeParams, Body: body}
}

func NewInstanceDeclaration(id int, s *lexer.Stream, first, last int, className string, args []Node, body []Node) *InstanceDeclaration {
	return &InstanceDeclaration{base: newBase(id, KindInstanceDeclaration, s, first, last), ClassName: className, Args: args, Body: body}
}

func NewBlock(id int, s *lexer.Stream, first, last int, elements []Node) *Block {
	return &Block{base: newBase(id, KindBlock, s, first, last), Elements: elements}
}

func NewElifClause(id int, s *lexer.Stream, first, last int, cond Node, then *Block) *ElifClause {
	return &ElifClause{base: newBase(id, KindElifClause, s, first, last), Cond: cond, Then: then}
}

func NewIfStatement(id int, s *lexer.Stream, first, last int, cond Node, then *Block, elifs []*ElifClause, els *Block) *IfStatement {
	return &IfStatement{base: newBase(id, KindIfStatement, s, first, last), Cond: cond, Then: then, Elifs: elifs, Else: els}
}

func NewReturnStatement(id int, s *lexer.Stream, first, last int, value Node) *ReturnStatement {
	return &ReturnStatement{base: newBase(id, KindReturnStatement, s, first, last), Value: value}
}

func NewExprStatement(id int, s *lexer.Stream, first, last int, expr Node) *ExprStatement {
	return &ExprStatement{base: newBase(id, KindExprStatement, s, first, last), Expr: expr}
}

func NewIdent(id int, s *lexer.Stream, first, last int, name string, path []string) *Ident {
	return &Ident{base: newBase(id, KindIdent, s, first, last), Name: name, Path: path}
}

func NewIdentAlt(id int, s *lexer.Stream, first, last int, name string, path []string) *IdentAlt {
	return &IdentAlt{base: newBase(id, KindIdentAlt, s, first, last), Name: name, Path: path}
}

func NewIntegerLiteral(id int, s *lexer.Stream, first, last int, value bigint.Integer) *IntegerLiteral {
	return &IntegerLiteral{base: newBase(id, KindIntegerLiteral, s, first, last), Value: value}
}

func NewStringLiteral(id int, s *lexer.Stream, first, last int, value string) *StringLiteral {
	return &StringLiteral{base: newBase(id, KindStringLiteral, s, first, last), Value: value}
}

func NewCallExpression(id int, s *lexer.Stream, first, last int, callee Node, args []Node) *CallExpression {
	return &CallExpression{base: newBase(id, KindCallExpression, s, first, last), Callee: callee, Args: args}
}

func NewInfixExpression(id int, s *lexer.Stream, first, last int, op string, left, right Node) *InfixExpression {
	return &InfixExpression{base: newBase(id, KindInfixExpression, s, first, last), Op: op, Left: left, Right: right}
}

func NewPrefixExpression(id int, s *lexer.Stream, first, last int, op string, operand Node) *PrefixExpression {
	return &PrefixExpression{base: newBase(id, KindPrefixExpression, s, first, last), Op: op, Operand: operand}
}

func NewMemberExpression(id int, s *lexer.Stream, first, last int, target Node, field string) *MemberExpression {
	return &MemberExpression{base: newBase(id, KindMemberExpression, s, first, last), Target: target, Field: field}
}

func NewTupleExpression(id int, s *lexer.Stream, first, last int, elements []Node) *TupleExpression {
	return &TupleExpression{base: newBase(id, KindTupleExpression, s, first, last), Elements: elements}
}

func NewRecordFieldExpr(id int, s *lexer.Stream, first, last int, name string, value Node) *RecordFieldExpr {
	return &RecordFieldExpr{base: newBase(id, KindRecordField, s, first, last), Name: name, Value: value}
}

func NewRecordExpression(id int, s *lexer.Stream, first, last int, fields []*RecordFieldExpr) *RecordExpression {
	return &RecordExpression{base: newBase(id, KindRecordExpression, s, first, last), Fields: fields}
}

func NewMatchCase(id int, s *lexer.Stream, first, last int, pattern, body Node) *MatchCase {
	return &MatchCase{base: newBase(id, KindMatchCase, s, first, last), Pattern: pattern, Body: body}
}

func NewMatchExpression(id int, s *lexer.Stream, first, last int, scrutinee Node, cases []*MatchCase) *MatchExpression {
	return &MatchExpression{base: newBase(id, KindMatchExpression, s, first, last), Scrutinee: scrutinee, Cases: cases}
}

func NewBindPattern(id int, s *lexer.Stream, first, last int, name string) *BindPattern {
	return &BindPattern{base: newBase(id, KindBindPattern, s, first, last), Name: name}
}

func NewLiteralPatternInt(id int, s *lexer.Stream, first, last int, v bigint.Integer) *LiteralPattern {
	return &LiteralPattern{base: newBase(id, KindLiteralPattern, s, first, last), LitKind: LiteralInteger, IntValue: v}
}

func NewLiteralPatternString(id int, s *lexer.Stream, first, last int, v string) *LiteralPattern {
	return &LiteralPattern{base: newBase(id, KindLiteralPattern, s, first, last), LitKind: LiteralString, StringValue: v}
}

func NewNamedPattern(id int, s *lexer.Stream, first, last int, ctor string, args []Node) *NamedPattern {
	return &NamedPattern{base: newBase(id, KindNamedPattern, s, first, last), Ctor: ctor, Args: args}
}

func NewNestedPattern(id int, s *lexer.Stream, first, last int, inner Node) *NestedPattern {
	return &NestedPattern{base: newBase(id, KindNestedPattern, s, first, last), Inner: inner}
}

func NewNamedType(id int, s *lexer.Stream, first, last int, name string) *NamedType {
	return &NamedType{base: newBase(id, KindNamedType, s, first, last), Name: name}
}

func NewAppType(id int, s *lexer.Stream, first, last int, head Node, args []Node) *AppType {
	return &AppType{base: newBase(id, KindAppType, s, first, last), Head: head, Args: args}
}

func NewArrowType(id int, s *lexer.Stream, first, last int, params []Node, result Node) *ArrowType {
	return &ArrowType{base: newBase(id, KindArrowType, s, first, last), Params: params, Result: result}
}

func NewTupleType(id int, s *lexer.Stream, first, last int, elements []Node) *TupleType {
	return &TupleType{base: newBase(id, KindTupleType, s, first, last), Elements: elements}
}

func NewClassConstraint(id int, s *lexer.Stream, first, last int, className string, args []Node) *ClassConstraint {
	return &ClassConstraint{base: newBase(id, KindClassConstraint, s, first, last), ClassName: className, Args: args}
}

func NewEqualConstraint(id int, s *lexer.Stream, first, last int, left, right Node) *EqualConstraint {
	return &EqualConstraint{base: newBase(id, KindEqualConstraint, s, first, last), Left: left, Right: right}
}

func NewQualifiedType(id int, s *lexer.Stream, first, last int, constraints []Node, typ Node) *QualifiedType {
	return &QualifiedType{base: newBase(id, KindQualifiedType, s, first, last), Constraints: constraints, TypeAnnotation: typ}
}
