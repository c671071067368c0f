package parser

import (
	"github.com/bolt-lang/bolt/internal/ast"
	"github.com/bolt-lang/bolt/internal/lexer"
)

// parseExpression implements precedence climbing over the dynamic operator
// table (component E): a Pratt-style loop in parseExpression(minPrec).
func (p *Parser) parseExpression(minPrec int) ast.Node {
	first := p.pos()
	left := p.parseUnary()

	for {
		tok := p.cur()
		if tok.Kind != lexer.CustomOperator {
			break
		}
		info, ok := p.ops.Get(tok.Text)
		if !ok || !info.IsInfix() || info.Precedence < minPrec {
			break
		}
		op := p.advance().Text
		nextMin := info.Precedence + 1
		if info.IsRightAssoc() {
			nextMin = info.Precedence
		}
		right := p.parseExpression(nextMin)
		left = ast.NewInfixExpression(p.nextID(), p.stream, first, p.pos()-1, op, left, right)
	}

	return left
}

// parseUnary handles prefix operators before falling through to call/primary
// parsing.
func (p *Parser) parseUnary() ast.Node {
	first := p.pos()
	if p.cur().Kind == lexer.CustomOperator {
		if info, ok := p.ops.Get(p.cur().Text); ok && info.IsPrefix() {
			op := p.advance().Text
			operand := p.parseUnary()
			return ast.NewPrefixExpression(p.nextID(), p.stream, first, p.pos()-1, op, operand)
		}
	}
	return p.parseCall()
}

// parseCall parses juxtaposition application `callee arg1 arg2 ...` followed
// by any chain of member accesses, applying to each argument atom in turn
// (spec.md §4.F/§4.I: CallExpression is left-associative juxtaposition).
func (p *Parser) parseCall() ast.Node {
	first := p.pos()
	callee := p.parsePostfix()

	var args []ast.Node
	for p.startsCallArg() {
		args = append(args, p.parsePostfix())
	}
	if len(args) == 0 {
		return callee
	}
	return ast.NewCallExpression(p.nextID(), p.stream, first, p.pos()-1, callee, args)
}

// startsCallArg reports whether the current token can begin another
// juxtaposed call argument, stopping at anything that would end the
// expression or introduce an infix/assignment context.
func (p *Parser) startsCallArg() bool {
	switch p.cur().Kind {
	case lexer.Identifier, lexer.IdentifierAlt, lexer.IntegerLiteral, lexer.StringLiteral,
		lexer.LParen, lexer.LBrace:
		return true
	default:
		return false
	}
}

// parsePostfix parses one primary expression followed by any chain of `.
// name` member accesses.
func (p *Parser) parsePostfix() ast.Node {
	first := p.pos()
	e := p.parsePrimary()
	for p.at(lexer.Dot) && p.peek(1).Kind == lexer.Identifier {
		p.advance()
		name := p.identText()
		e = ast.NewMemberExpression(p.nextID(), p.stream, first, p.pos()-1, e, name)
	}
	return e
}

// parsePrimary parses one atomic expression: a qualified name, a literal, a
// parenthesized/tuple expression, a record expression, or a match
// expression.
func (p *Parser) parsePrimary() ast.Node {
	first := p.pos()
	switch p.cur().Kind {
	case lexer.Identifier:
		name, path := p.parseDottedPath()
		return ast.NewIdent(p.nextID(), p.stream, first, p.pos()-1, name, path)
	case lexer.IdentifierAlt:
		name, path := p.parseDottedPath()
		return ast.NewIdentAlt(p.nextID(), p.stream, first, p.pos()-1, name, path)
	case lexer.IntegerLiteral:
		tok := p.advance()
		return ast.NewIntegerLiteral(p.nextID(), p.stream, first, p.pos()-1, tok.IntValue)
	case lexer.StringLiteral:
		tok := p.advance()
		return ast.NewStringLiteral(p.nextID(), p.stream, first, p.pos()-1, tok.StringValue)
	case lexer.LParen:
		return p.parseParenExpr()
	case lexer.LBrace:
		return p.parseRecordExpr()
	case lexer.KwMatch:
		return p.parseMatchExpr()
	default:
		p.unexpectedToken("expression")
		p.synchronize()
		return ast.NewIdent(p.nextID(), p.stream, first, p.pos()-1, "", nil)
	}
}

// parseDottedPath consumes one leading name followed by any `.name`
// segments that are themselves identifiers, stopping before a segment that
// would instead be a MemberExpression on a call result (spec.md §1: bare
// namespacing via dotted names is resolved at parse time by greedily
// consuming identifier segments; a later '.' followed by a non-identifier
// start is left for parsePostfix to handle as member access).
func (p *Parser) parseDottedPath() (string, []string) {
	tok := p.advance()
	name := tok.Text
	var path []string
	for p.at(lexer.Dot) && (p.peek(1).Kind == lexer.Identifier || p.peek(1).Kind == lexer.IdentifierAlt) {
		p.advance()
		seg := p.advance()
		path = append(path, seg.Text)
	}
	return name, path
}

// parseParenExpr parses `( expr )` or `( expr , expr , ... )` (a tuple).
func (p *Parser) parseParenExpr() ast.Node {
	first := p.pos()
	p.advance() // '('
	if p.at(lexer.RParen) {
		p.advance()
		return ast.NewTupleExpression(p.nextID(), p.stream, first, p.pos()-1, nil)
	}
	elems := []ast.Node{p.parseExpression(0)}
	for p.at(lexer.Comma) {
		p.advance()
		elems = append(elems, p.parseExpression(0))
	}
	if _, ok := p.expect(lexer.RParen); !ok {
		p.synchronize()
	}
	if len(elems) == 1 {
		return elems[0]
	}
	return ast.NewTupleExpression(p.nextID(), p.stream, first, p.pos()-1, elems)
}

// parseRecordExpr parses `{ name = expr , ... }`.
func (p *Parser) parseRecordExpr() ast.Node {
	first := p.pos()
	p.advance() // '{'
	var fields []*ast.RecordFieldExpr
	for !p.at(lexer.RBrace) && !p.at(lexer.EndOfFile) {
		ffirst := p.pos()
		name := p.identText()
		if _, ok := p.expect(lexer.Equals); !ok {
			p.synchronize()
			continue
		}
		value := p.parseExpression(0)
		fields = append(fields, ast.NewRecordFieldExpr(p.nextID(), p.stream, ffirst, p.pos()-1, name, value))
		if p.at(lexer.Comma) {
			p.advance()
			continue
		}
		break
	}
	if _, ok := p.expect(lexer.RBrace); !ok {
		p.synchronize()
	}
	return ast.NewRecordExpression(p.nextID(), p.stream, first, p.pos()-1, fields)
}

// parseMatchExpr parses `match <expr> . <case>*` where each case is
// `<pattern> => <expr>` on its own line-fold inside the block.
func (p *Parser) parseMatchExpr() ast.Node {
	first := p.pos()
	p.advance() // 'match'
	scrutinee := p.parseExpression(0)
	if p.at(lexer.Dot) {
		p.advance()
	}

	var cases []*ast.MatchCase
	if p.at(lexer.BlockStart) {
		p.advance()
		p.skipLineFoldEnds()
		for !p.at(lexer.BlockEnd) && !p.at(lexer.EndOfFile) {
			cfirst := p.pos()
			pat := p.parsePattern()
			if _, ok := p.expect(lexer.RFatArrow); !ok {
				p.synchronize()
				continue
			}
			body := p.parseExpression(0)
			cases = append(cases, ast.NewMatchCase(p.nextID(), p.stream, cfirst, p.pos()-1, pat, body))
			p.skipLineFoldEnds()
		}
		if p.at(lexer.BlockEnd) {
			p.advance()
		}
	}

	return ast.NewMatchExpression(p.nextID(), p.stream, first, p.pos()-1, scrutinee, cases)
}
