package parser

import (
	"github.com/bolt-lang/bolt/internal/ast"
	"github.com/bolt-lang/bolt/internal/lexer"
)

// parsePattern parses one pattern (spec.md §4.I: BindPattern, LiteralPattern,
// NamedPattern, NestedPattern).
func (p *Parser) parsePattern() ast.Node {
	first := p.pos()
	switch p.cur().Kind {
	case lexer.Identifier:
		tok := p.advance()
		return ast.NewBindPattern(p.nextID(), p.stream, first, p.pos()-1, tok.Text)
	case lexer.IntegerLiteral:
		tok := p.advance()
		return ast.NewLiteralPatternInt(p.nextID(), p.stream, first, p.pos()-1, tok.IntValue)
	case lexer.StringLiteral:
		tok := p.advance()
		return ast.NewLiteralPatternString(p.nextID(), p.stream, first, p.pos()-1, tok.StringValue)
	case lexer.IdentifierAlt:
		ctor := p.advance().Text
		var args []ast.Node
		for p.startsPatternArg() {
			args = append(args, p.parsePattern())
		}
		return ast.NewNamedPattern(p.nextID(), p.stream, first, p.pos()-1, ctor, args)
	case lexer.LParen:
		p.advance()
		inner := p.parsePattern()
		if _, ok := p.expect(lexer.RParen); !ok {
			p.synchronize()
		}
		return ast.NewNestedPattern(p.nextID(), p.stream, first, p.pos()-1, inner)
	default:
		p.unexpectedToken("pattern")
		p.synchronize()
		return ast.NewBindPattern(p.nextID(), p.stream, first, p.pos()-1, "")
	}
}

// startsPatternArg reports whether the current token can begin another
// argument pattern of a NamedPattern (a nested atomic pattern, not a full
// application — constructor arguments don't themselves take arguments
// without parens).
func (p *Parser) startsPatternArg() bool {
	switch p.cur().Kind {
	case lexer.Identifier, lexer.IntegerLiteral, lexer.StringLiteral, lexer.LParen:
		return true
	default:
		return false
	}
}
