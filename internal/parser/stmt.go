package parser

import (
	"github.com/bolt-lang/bolt/internal/ast"
	"github.com/bolt-lang/bolt/internal/lexer"
)

// parseBlock parses `BlockStart element* BlockEnd`, the body of a let
// declaration, if-arm, or elif/else-arm (spec.md §3, §4.G).
func (p *Parser) parseBlock() *ast.Block {
	first := p.pos()
	if !p.at(lexer.BlockStart) {
		p.unexpectedToken(lexer.BlockStart.String())
		return ast.NewBlock(p.nextID(), p.stream, first, p.pos(), nil)
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
	return ast.NewBlock(p.nextID(), p.stream, first, p.pos()-1, elems)
}

// parseIfStatement parses
// `if <expr> . <block> (elif <expr> . <block>)* (else . <block>)?`.
func (p *Parser) parseIfStatement() ast.Node {
	first := p.pos()
	p.advance() // 'if'
	cond := p.parseExpression(0)
	if p.at(lexer.Dot) {
		p.advance()
	}
	then := p.parseBlock()

	var elifs []*ast.ElifClause
	for p.at(lexer.KwElif) {
		efirst := p.pos()
		p.advance()
		econd := p.parseExpression(0)
		if p.at(lexer.Dot) {
			p.advance()
		}
		ethen := p.parseBlock()
		elifs = append(elifs, ast.NewElifClause(p.nextID(), p.stream, efirst, p.pos()-1, econd, ethen))
	}

	var elseBlock *ast.Block
	if p.at(lexer.KwElse) {
		p.advance()
		if p.at(lexer.Dot) {
			p.advance()
		}
		elseBlock = p.parseBlock()
	}

	return ast.NewIfStatement(p.nextID(), p.stream, first, p.pos()-1, cond, then, elifs, elseBlock)
}

// parseReturnStatement parses `return <expr>?`.
func (p *Parser) parseReturnStatement() ast.Node {
	first := p.pos()
	p.advance() // 'return'
	var value ast.Node
	if p.startsCallArg() || p.cur().Kind == lexer.CustomOperator {
		value = p.parseExpression(0)
	}
	return ast.NewReturnStatement(p.nextID(), p.stream, first, p.pos()-1, value)
}

// parseExprStatement parses a bare expression used in statement position.
func (p *Parser) parseExprStatement() ast.Node {
	first := p.pos()
	expr := p.parseExpression(0)
	return ast.NewExprStatement(p.nextID(), p.stream, first, p.pos()-1, expr)
}
