package lexer

import (
	"github.com/bolt-lang/bolt/internal/bigint"
	"github.com/bolt-lang/bolt/internal/source"
)

// Kind is a token's kind tag. Kinds fall into three families: raw kinds
// produced by the scanner (component C), reserved-word kinds, and synthetic
// kinds injected by the layout filter (component D).
type Kind int

const (
	Invalid Kind = iota
	EndOfFile

	// Identifiers and literals.
	Identifier    // lowercase-leading
	IdentifierAlt // uppercase-leading
	IntegerLiteral
	StringLiteral

	// Reserved words.
	KwLet
	KwMut
	KwPub
	KwType
	KwReturn
	KwMod
	KwStruct
	KwEnum
	KwClass
	KwInstance
	KwIf
	KwElif
	KwElse
	KwMatch

	// Fixed punctuation.
	Equals     // =
	Colon      // :
	Comma      // ,
	Dot        // .
	DotDot     // ..
	Tilde      // ~
	LParen     // (
	RParen     // )
	LBracket   // [
	RBracket   // ]
	LBrace     // {
	RBrace     // }
	RArrow     // ->
	RFatArrow  // =>

	// Dynamic operator-character runs (component E consults these).
	CustomOperator
	Assignment

	// Synthetic tokens injected by the layout filter (component D). They
	// carry the location at which they were injected (spec.md §3).
	BlockStart
	BlockEnd
	LineFoldEnd
)

var kindNames = map[Kind]string{
	Invalid: "Invalid", EndOfFile: "EndOfFile",
	Identifier: "Identifier", IdentifierAlt: "IdentifierAlt",
	IntegerLiteral: "IntegerLiteral", StringLiteral: "StringLiteral",
	KwLet: "let", KwMut: "mut", KwPub: "pub", KwType: "type", KwReturn: "return",
	KwMod: "mod", KwStruct: "struct", KwEnum: "enum", KwClass: "class",
	KwInstance: "instance", KwIf: "if", KwElif: "elif", KwElse: "else", KwMatch: "match",
	Equals: "=", Colon: ":", Comma: ",", Dot: ".", DotDot: "..", Tilde: "~",
	LParen: "(", RParen: ")", LBracket: "[", RBracket: "]", LBrace: "{", RBrace: "}",
	RArrow: "->", RFatArrow: "=>",
	CustomOperator: "CustomOperator", Assignment: "Assignment",
	BlockStart: "BlockStart", BlockEnd: "BlockEnd", LineFoldEnd: "LineFoldEnd",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// keywords maps reserved-word spellings to their dedicated kinds (spec.md §4.C).
var keywords = map[string]Kind{
	"let": KwLet, "mut": KwMut, "pub": KwPub, "type": KwType, "return": KwReturn,
	"mod": KwMod, "struct": KwStruct, "enum": KwEnum, "class": KwClass,
	"instance": KwInstance, "if": KwIf, "elif": KwElif, "else": KwElse, "match": KwMatch,
}

// Token is one lexical unit: a kind, a start location, and a kind-specific
// payload. End location is always resolved eagerly during scanning rather
// than derived lazily, since the scanner already walks every byte of the
// token's text and must respect embedded newlines for line/column tracking.
type Token struct {
	Kind  Kind
	Range source.Range

	// Text is the raw source text for identifiers, operators, and
	// punctuation (its own spelling for fixed punctuation).
	Text string
	// StringValue is the decoded value of a StringLiteral (escapes resolved).
	StringValue string
	// IntValue is the decoded value of an IntegerLiteral.
	IntValue bigint.Integer
}

// Start is a convenience accessor for the token's start location.
func (t Token) Start() source.Loc { return t.Range.Start }

// End is a convenience accessor for the token's end location.
func (t Token) End() source.Loc { return t.Range.End }

// IsSynthetic reports whether this token was injected by the layout filter
// rather than produced by the raw scanner.
func (t Token) IsSynthetic() bool {
	switch t.Kind {
	case BlockStart, BlockEnd, LineFoldEnd:
		return true
	default:
		return false
	}
}
