package parser

import (
	"github.com/bolt-lang/bolt/internal/ast"
	"github.com/bolt-lang/bolt/internal/diag"
	"github.com/bolt-lang/bolt/internal/lexer"
)

// Parser is a hand-written recursive-descent parser over a layout-filtered
// token stream, with one token of lookahead plus peek(k) for limited k, and
// no backtracking (spec.md §4.F). It reads tokens through cur/peek(k) over a
// position into the token stream and parses binary expressions by
// precedence climbing over the dynamic OperatorTable of component E, on the
// layout-token-delimited syntax spec.md describes.
type Parser struct {
	stream *lexer.Stream
	diags  *diag.Store
	ops    *OperatorTable
	ids    ast.IDGen

	// depth tracks how many BlockStart tokens have been consumed without a
	// matching BlockEnd, used to keep error-recovery resynchronization from
	// crossing block boundaries (spec.md §4.F: "next LineFoldEnd at the
	// current block depth").
	depth int
}

// New constructs a parser over raw source content, which it scans and
// layout-filters with lexer.Scan.
func New(content []byte, diags *diag.Store) *Parser {
	return &Parser{
		stream: lexer.Scan(content, diags),
		diags:  diags,
		ops:    NewOperatorTable(),
	}
}

// ParseSourceFile parses one file end to end and assigns parent
// back-references in the single post-parse pass spec.md §3 requires.
func ParseSourceFile(content []byte, diags *diag.Store) *ast.SourceFile {
	p := New(content, diags)
	file := p.parseSourceFile()
	ast.AssignParents(file)
	return file
}

func (p *Parser) nextID() int { return p.ids.Next() }

func (p *Parser) cur() lexer.Token       { return p.stream.Current() }
func (p *Parser) peek(k int) lexer.Token { return p.stream.Peek(k) }
func (p *Parser) pos() int               { return p.stream.CurrentIndex() }

// advance consumes the current token and returns it, tracking block depth.
func (p *Parser) advance() lexer.Token {
	tok := p.stream.Advance()
	switch tok.Kind {
	case lexer.BlockStart:
		p.depth++
	case lexer.BlockEnd:
		p.depth--
	}
	return tok
}

func (p *Parser) at(kind lexer.Kind) bool { return p.cur().Kind == kind }

// expect consumes the current token if it matches kind, otherwise emits an
// UnexpectedToken diagnostic (spec.md §4.F) and returns the token unconsumed.
func (p *Parser) expect(kind lexer.Kind) (lexer.Token, bool) {
	if p.at(kind) {
		return p.advance(), true
	}
	p.unexpectedToken(kind.String())
	return p.cur(), false
}

func (p *Parser) unexpectedToken(expected string) {
	tok := p.cur()
	p.diags.Errorf(diag.UnexpectedToken, tok.Range, 0,
		"unexpected token %s, expected %s", tok.Kind, expected)
}

// synchronize skips tokens until the next LineFoldEnd at the current block
// depth, or EndOfFile, implementing the parser's sole resynchronization
// point (spec.md §4.F, §7).
func (p *Parser) synchronize() {
	startDepth := p.depth
	for {
		if p.at(lexer.EndOfFile) {
			return
		}
		if p.at(lexer.LineFoldEnd) && p.depth == startDepth {
			p.advance()
			return
		}
		if p.at(lexer.BlockEnd) && p.depth <= startDepth {
			return
		}
		p.advance()
	}
}

// skipLineFoldEnds consumes any run of LineFoldEnd tokens, used between
// elements of a block or source file where blank/empty logical lines
// produce no content.
func (p *Parser) skipLineFoldEnds() {
	for p.at(lexer.LineFoldEnd) {
		p.advance()
	}
}

func (p *Parser) parseSourceFile() *ast.SourceFile {
	first := p.pos()
	var decls []ast.Node
	p.skipLineFoldEnds()
	for !p.at(lexer.EndOfFile) {
		if d := p.parseElement(); d != nil {
			decls = append(decls, d)
		}
		p.skipLineFoldEnds()
	}
	last := p.pos()
	return ast.NewSourceFile(p.nextID(), p.stream, first, last, decls)
}
