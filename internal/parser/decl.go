package parser

import (
	"fmt"

	"github.com/bolt-lang/bolt/internal/ast"
	"github.com/bolt-lang/bolt/internal/lexer"
)

// parseElement parses one member of `sourceFile ::= element*` or of a block
// body (spec.md §6 BNF): a declaration or a statement.
func (p *Parser) parseElement() ast.Node {
	switch p.cur().Kind {
	case lexer.KwPub:
		return p.parsePubDeclaration()
	case lexer.KwLet:
		return p.parseLetDeclaration(false)
	case lexer.KwStruct:
		return p.parseStructDeclaration(false)
	case lexer.KwEnum:
		return p.parseEnumDeclaration(false)
	case lexer.KwClass:
		return p.parseClassDeclaration(false)
	case lexer.KwInstance:
		return p.parseInstanceDeclaration()
	case lexer.KwIf:
		return p.parseIfStatement()
	case lexer.KwReturn:
		return p.parseReturnStatement()
	case lexer.LineFoldEnd, lexer.EndOfFile:
		return nil
	default:
		return p.parseExprStatement()
	}
}

func (p *Parser) parsePubDeclaration() ast.Node {
	p.advance() // 'pub'
	switch p.cur().Kind {
	case lexer.KwLet:
		return p.parseLetDeclaration(true)
	case lexer.KwStruct:
		return p.parseStructDeclaration(true)
	case lexer.KwEnum:
		return p.parseEnumDeclaration(true)
	case lexer.KwClass:
		return p.parseClassDeclaration(true)
	default:
		p.unexpectedToken("let, struct, enum, or class")
		p.synchronize()
		return nil
	}
}

// parseLetDeclaration parses
// `[pub] let [mut] <pattern> <param>* [: <qualType>] [= <expr> | <block>]`.
func (p *Parser) parseLetDeclaration(pub bool) ast.Node {
	first := p.pos()
	p.advance() // 'let'

	mut := false
	if p.at(lexer.KwMut) {
		mut = true
		p.advance()
	}

	name := p.parsePattern()

	var params []*ast.Param
	for p.startsSimpleParam() {
		params = append(params, p.parseParam())
	}

	var sig ast.Node
	if p.at(lexer.Colon) {
		p.advance()
		sig = p.parseQualifiedType()
	}

	var body ast.Node
	if p.at(lexer.Equals) {
		p.advance()
		if p.at(lexer.BlockStart) {
			body = p.parseBlock()
		} else {
			body = p.parseExpression(0)
		}
	} else if p.at(lexer.BlockStart) {
		body = p.parseBlock()
	}

	last := p.pos() - 1
	if last < first {
		last = first
	}
	return ast.NewLetDeclaration(p.nextID(), p.stream, first, last, pub, mut, name, params, sig, body)
}

// startsSimpleParam reports whether the current token can begin another
// parameter pattern in a let header.
func (p *Parser) startsSimpleParam() bool {
	switch p.cur().Kind {
	case lexer.Identifier, lexer.IdentifierAlt, lexer.IntegerLiteral, lexer.StringLiteral, lexer.LParen:
		return true
	default:
		return false
	}
}

func (p *Parser) parseParam() *ast.Param {
	first := p.pos()
	pat := p.parsePattern()
	// A ':' after the last parameter starts the declaration's own signature
	// (`let f x y : T`), so a parameter never takes an annotation here.
	var typ ast.Node
	last := p.pos() - 1
	return ast.NewParam(p.nextID(), p.stream, first, last, pat, typ)
}

// parseStructDeclaration parses `[pub] struct <Name> . <field>*`.
func (p *Parser) parseStructDeclaration(pub bool) ast.Node {
	first := p.pos()
	p.advance() // 'struct'
	name := p.identAltText()

	if p.at(lexer.Dot) {
		p.advance()
	}

	var fields []*ast.Field
	if p.at(lexer.BlockStart) {
		fields = p.parseFieldBlock()
	}

	last := p.pos() - 1
	return ast.NewStructDeclaration(p.nextID(), p.stream, first, last, pub, name, fields)
}

// parseFieldBlock parses `BlockStart (name ':' type LineFoldEnd)* BlockEnd`.
func (p *Parser) parseFieldBlock() []*ast.Field {
	p.advance() // BlockStart
	var fields []*ast.Field
	p.skipLineFoldEnds()
	for !p.at(lexer.BlockEnd) && !p.at(lexer.EndOfFile) {
		ffirst := p.pos()
		name := p.identText()
		if _, ok := p.expect(lexer.Colon); !ok {
			p.synchronize()
			continue
		}
		typ := p.parseType()
		fields = append(fields, ast.NewField(p.nextID(), p.stream, ffirst, p.pos()-1, name, typ))
		p.skipLineFoldEnds()
	}
	if p.at(lexer.BlockEnd) {
		p.advance()
	}
	return fields
}

// parseEnumDeclaration parses `[pub] enum <Name> <tyvar>* . <variant>*`.
func (p *Parser) parseEnumDeclaration(pub bool) ast.Node {
	first := p.pos()
	p.advance() // 'enum'
	name := p.identAltText()

	var typeParams []string
	for p.at(lexer.Identifier) {
		typeParams = append(typeParams, p.cur().Text)
		p.advance()
	}

	if p.at(lexer.Dot) {
		p.advance()
	}

	var variants []*ast.Variant
	if p.at(lexer.BlockStart) {
		variants = p.parseVariantBlock()
	}

	last := p.pos() - 1
	return ast.NewEnumDeclaration(p.nextID(), p.stream, first, last, pub, name, typeParams, variants)
}

func (p *Parser) parseVariantBlock() []*ast.Variant {
	p.advance() // BlockStart
	var variants []*ast.Variant
	p.skipLineFoldEnds()
	for !p.at(lexer.BlockEnd) && !p.at(lexer.EndOfFile) {
		variants = append(variants, p.parseVariant())
		p.skipLineFoldEnds()
	}
	if p.at(lexer.BlockEnd) {
		p.advance()
	}
	return variants
}

// parseVariant parses one enum member: a bare constructor, a tuple-style
// constructor `Name(type, ...)`, or a record-style constructor `Name .
// field*` (grounded on
// _examples/original_source/include/bolt/CST.hpp's TupleVariantDeclarationMember
// / RecordVariantDeclarationMember split — spec.md itself leaves variant
// internals unspecified beyond "variant*").
func (p *Parser) parseVariant() *ast.Variant {
	first := p.pos()
	name := p.identAltText()

	var fields []*ast.Field
	switch {
	case p.at(lexer.LParen):
		p.advance()
		i := 0
		for !p.at(lexer.RParen) && !p.at(lexer.EndOfFile) {
			t := p.parseType()
			fields = append(fields, ast.NewField(p.nextID(), p.stream, first, p.pos()-1, fmt.Sprintf("%d", i), t))
			i++
			if p.at(lexer.Comma) {
				p.advance()
				continue
			}
			break
		}
		if p.at(lexer.RParen) {
			p.advance()
		}
	case p.at(lexer.Dot):
		p.advance()
		if p.at(lexer.BlockStart) {
			fields = p.parseFieldBlock()
		}
	}

	return ast.NewVariant(p.nextID(), p.stream, first, p.pos()-1, name, fields)
}

// parseClassDeclaration parses `[pub] class <Name> <tyvar>+ . <element>*`.
func (p *Parser) parseClassDeclaration(pub bool) ast.Node {
	first := p.pos()
	p.advance() // 'class'
	name := p.identAltText()

	var typeParams []string
	for p.at(lexer.Identifier) {
		typeParams = append(typeParams, p.cur().Text)
		p.advance()
	}

	if p.at(lexer.Dot) {
		p.advance()
	}

	body := p.parseElementBlock()

	last := p.pos() - 1
	return ast.NewClassDeclaration(p.nextID(), p.stream, first, last, pub, name, typeParams, body)
}

// parseInstanceDeclaration parses `instance <Name> <type>+ . <element>*`.
func (p *Parser) parseInstanceDeclaration() ast.Node {
	first := p.pos()
	p.advance() // 'instance'
	className := p.identAltText()

	var args []ast.Node
	for p.startsAtype() {
		args = append(args, p.parseAtype())
	}

	if p.at(lexer.Dot) {
		p.advance()
	}

	body := p.parseElementBlock()

	last := p.pos() - 1
	return ast.NewInstanceDeclaration(p.nextID(), p.stream, first, last, className, args, body)
}

// parseElementBlock parses `BlockStart element* BlockEnd`, used by class and
// instance bodies (their elements are LetDeclarations, spec.md §4.F).
func (p *Parser) parseElementBlock() []ast.Node {
	if !p.at(lexer.BlockStart) {
		return nil
	}
	p.advance()
	var elems []ast.Node
	p.skipLineFoldEnds()
	for !p.at(lexer.BlockEnd) && !p.at(lexer.EndOfFile) {
		if e := p.parseElement(); e != nil {
			elems = append(elems, e)
		}
		p.skipLineFoldEnds()
	}
	if p.at(lexer.BlockEnd) {
		p.advance()
	}
	return elems
}

func (p *Parser) identText() string {
	if p.at(lexer.Identifier) {
		tok := p.advance()
		return tok.Text
	}
	p.unexpectedToken("identifier")
	return ""
}

func (p *Parser) identAltText() string {
	if p.at(lexer.IdentifierAlt) {
		tok := p.advance()
		return tok.Text
	}
	p.unexpectedToken("uppercase identifier")
	return ""
}
