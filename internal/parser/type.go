package parser

import (
	"github.com/bolt-lang/bolt/internal/ast"
	"github.com/bolt-lang/bolt/internal/lexer"
)

// parseQualifiedType parses `[ ( <constraint> , ... ) => ] <type>`.
func (p *Parser) parseQualifiedType() ast.Node {
	first := p.pos()

	if p.looksLikeConstraintList() {
		p.advance() // '('
		var constraints []ast.Node
		for !p.at(lexer.RParen) && !p.at(lexer.EndOfFile) {
			constraints = append(constraints, p.parseConstraint())
			if p.at(lexer.Comma) {
				p.advance()
				continue
			}
			break
		}
		if _, ok := p.expect(lexer.RParen); !ok {
			p.synchronize()
		}
		if _, ok := p.expect(lexer.RFatArrow); !ok {
			p.synchronize()
		}
		typ := p.parseType()
		return ast.NewQualifiedType(p.nextID(), p.stream, first, p.pos()-1, constraints, typ)
	}

	typ := p.parseType()
	return ast.NewQualifiedType(p.nextID(), p.stream, first, p.pos()-1, nil, typ)
}

// looksLikeConstraintList reports whether the parser sits at the opening
// paren of a `(...)  =>` constraint context, distinguished from a plain
// parenthesized/tuple type by scanning ahead to the matching close paren and
// checking for a following '=>' (spec.md leaves this ambiguity for the
// parser to resolve with a bounded-lookahead scan).
func (p *Parser) looksLikeConstraintList() bool {
	if !p.at(lexer.LParen) {
		return false
	}
	depth := 0
	for k := 0; ; k++ {
		tok := p.peek(k)
		switch tok.Kind {
		case lexer.LParen:
			depth++
		case lexer.RParen:
			depth--
			if depth == 0 {
				return p.peek(k + 1).Kind == lexer.RFatArrow
			}
		case lexer.EndOfFile:
			return false
		}
	}
}

// parseConstraint parses one class predicate `<IdentAlt> <atype>+` or one
// equality constraint `<type> ~ <type>` (spec.md §4.I qualified types).
func (p *Parser) parseConstraint() ast.Node {
	first := p.pos()
	if p.at(lexer.IdentifierAlt) && p.peek(1).Kind != lexer.Tilde {
		name := p.advance().Text
		var args []ast.Node
		for p.startsAtype() {
			args = append(args, p.parseAtype())
		}
		return ast.NewClassConstraint(p.nextID(), p.stream, first, p.pos()-1, name, args)
	}
	left := p.parseType()
	if _, ok := p.expect(lexer.Tilde); !ok {
		p.synchronize()
	}
	right := p.parseType()
	return ast.NewEqualConstraint(p.nextID(), p.stream, first, p.pos()-1, left, right)
}

// parseType parses `<atype> (-> <type>)?`, right-associative (spec.md §4.G).
func (p *Parser) parseType() ast.Node {
	first := p.pos()
	head := p.parseAtypeApp()
	if p.at(lexer.RArrow) {
		p.advance()
		result := p.parseType()
		// Flatten `a -> b -> c` into one n-ary arrow with params [a, b], the
		// shape the checker builds for a multi-parameter let.
		params := []ast.Node{head}
		if inner, ok := result.(*ast.ArrowType); ok {
			params = append(params, inner.Params...)
			result = inner.Result
		}
		return ast.NewArrowType(p.nextID(), p.stream, first, p.pos()-1, params, result)
	}
	return head
}

// parseAtypeApp parses an atype optionally applied to further atypes:
// `list a`, `Map k v`.
func (p *Parser) parseAtypeApp() ast.Node {
	first := p.pos()
	head := p.parseAtype()
	var args []ast.Node
	for p.startsAtype() {
		args = append(args, p.parseAtype())
	}
	if len(args) == 0 {
		return head
	}
	return ast.NewAppType(p.nextID(), p.stream, first, p.pos()-1, head, args)
}

// startsAtype reports whether the current token can begin an atomic type.
func (p *Parser) startsAtype() bool {
	switch p.cur().Kind {
	case lexer.Identifier, lexer.IdentifierAlt, lexer.LParen:
		return true
	default:
		return false
	}
}

// parseAtype parses one atomic type: a name, or a parenthesized
// type/tuple-type.
func (p *Parser) parseAtype() ast.Node {
	first := p.pos()
	switch p.cur().Kind {
	case lexer.Identifier, lexer.IdentifierAlt:
		tok := p.advance()
		return ast.NewNamedType(p.nextID(), p.stream, first, p.pos()-1, tok.Text)
	case lexer.LParen:
		p.advance()
		if p.at(lexer.RParen) {
			p.advance()
			return ast.NewTupleType(p.nextID(), p.stream, first, p.pos()-1, nil)
		}
		elems := []ast.Node{p.parseType()}
		for p.at(lexer.Comma) {
			p.advance()
			elems = append(elems, p.parseType())
		}
		if _, ok := p.expect(lexer.RParen); !ok {
			p.synchronize()
		}
		if len(elems) == 1 {
			return elems[0]
		}
		return ast.NewTupleType(p.nextID(), p.stream, first, p.pos()-1, elems)
	default:
		p.unexpectedToken("type")
		p.synchronize()
		return ast.NewNamedType(p.nextID(), p.stream, first, p.pos()-1, "")
	}
}
