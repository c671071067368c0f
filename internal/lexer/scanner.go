package lexer

import (
	"strings"
	"unicode"

	"github.com/bolt-lang/bolt/internal/bigint"
	"github.com/bolt-lang/bolt/internal/diag"
	"github.com/bolt-lang/bolt/internal/source"
)

// operatorChars is the set of runes a custom operator may be built from
// (spec.md §4.C), plus '=' so that runs such as ==, <=, != and += scan as
// one operator. A lone '=' is still claimed as Equals by
// scanFixedPunctuation.
const operatorChars = "+-*/%^&|<>!?@$="

// Scanner turns a character stream into raw tokens: keywords, punctuation,
// identifiers, literals, and operators (component C). It does not see
// indentation structure; that is the layout filter's job (component D).
type Scanner struct {
	cs    *charStream
	diags *diag.Store

	// pushback holds a single token a caller has returned to the stream,
	// used by the layout filter's one-token lookahead (component D).
	pushback    Token
	hasPushback bool
}

// NewScanner constructs a raw scanner over a file's content.
func NewScanner(content []byte, diags *diag.Store) *Scanner {
	return &Scanner{cs: newCharStream(content), diags: diags}
}

// PushBack returns a previously scanned token to the front of the stream,
// so the next call to Next yields it again.
func (s *Scanner) PushBack(tok Token) {
	s.pushback = tok
	s.hasPushback = true
}

func isIDStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIDContinue(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isOperatorChar(r rune) bool {
	return strings.ContainsRune(operatorChars, r)
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// Next scans and returns the next raw token. Once the input is exhausted,
// Next returns EndOfFile forever (spec.md §4.C).
func (s *Scanner) Next() Token {
	if s.hasPushback {
		s.hasPushback = false
		tok := s.pushback
		s.pushback = Token{}
		return tok
	}
	for {
		s.skipWhitespaceAndComments()

		start := s.cs.loc()

		if s.cs.atEOF() {
			return Token{Kind: EndOfFile, Range: source.Range{Start: start, End: start}}
		}

		ch := s.cs.peek()

		switch {
		case isIDStart(ch):
			return s.scanIdentifier(start)
		case isDigit(ch):
			return s.scanInteger(start)
		case ch == '"':
			return s.scanString(start)
		}

		if tok, ok := s.scanFixedPunctuation(start); ok {
			return tok
		}

		if isOperatorChar(ch) {
			return s.scanOperator(start)
		}

		// Unrecognized character: emit Invalid and continue (spec.md §4.C).
		s.cs.advance()
		end := s.cs.loc()
		rng := source.Range{Start: start, End: end}
		s.diags.Errorf(diag.UnexpectedToken, rng, 0, "invalid character %q", ch)
		return Token{Kind: Invalid, Range: rng, Text: string(ch)}
	}
}

// skipWhitespaceAndComments consumes runs of whitespace and '#' line
// comments; both contribute only to position (spec.md §4.C).
func (s *Scanner) skipWhitespaceAndComments() {
	for {
		switch s.cs.peek() {
		case ' ', '\t', '\r', '\n':
			s.cs.advance()
			continue
		case '#':
			for s.cs.peek() != '\n' && !s.cs.atEOF() {
				s.cs.advance()
			}
			continue
		}
		return
	}
}

func (s *Scanner) scanIdentifier(start source.Loc) Token {
	var b strings.Builder
	for isIDContinue(s.cs.peek()) {
		b.WriteRune(s.cs.advance())
	}
	text := b.String()
	end := s.cs.loc()
	rng := source.Range{Start: start, End: end}

	if kw, ok := keywords[text]; ok {
		return Token{Kind: kw, Range: rng, Text: text}
	}

	first := []rune(text)[0]
	if unicode.IsUpper(first) {
		return Token{Kind: IdentifierAlt, Range: rng, Text: text}
	}
	return Token{Kind: Identifier, Range: rng, Text: text}
}

func (s *Scanner) scanInteger(start source.Loc) Token {
	var b strings.Builder
	for isDigit(s.cs.peek()) {
		b.WriteRune(s.cs.advance())
	}
	text := b.String()
	end := s.cs.loc()
	rng := source.Range{Start: start, End: end}
	return Token{Kind: IntegerLiteral, Range: rng, Text: text, IntValue: bigint.FromDecimalDigits(text)}
}

// scanString reads a `"`...`"` string literal with \\, \", \n, \t escapes
// (spec.md §4.C). An unterminated literal (newline or EOF before the
// closing quote) is reported but still yields a best-effort token so the
// parser can keep going (spec.md §7).
func (s *Scanner) scanString(start source.Loc) Token {
	s.cs.advance() // opening quote

	var raw strings.Builder
	var decoded strings.Builder
	raw.WriteByte('"')

	for {
		ch := s.cs.peek()
		if ch == eof {
			end := s.cs.loc()
			rng := source.Range{Start: start, End: end}
			s.diags.Errorf(diag.UnexpectedToken, rng, 0, "unterminated string literal")
			return Token{Kind: StringLiteral, Range: rng, Text: raw.String(), StringValue: decoded.String()}
		}
		if ch == '"' {
			s.cs.advance()
			raw.WriteByte('"')
			end := s.cs.loc()
			rng := source.Range{Start: start, End: end}
			return Token{Kind: StringLiteral, Range: rng, Text: raw.String(), StringValue: decoded.String()}
		}
		if ch == '\n' {
			end := s.cs.loc()
			rng := source.Range{Start: start, End: end}
			s.diags.Errorf(diag.UnexpectedToken, rng, 0, "newline in string literal")
			return Token{Kind: StringLiteral, Range: rng, Text: raw.String(), StringValue: decoded.String()}
		}
		if ch == '\\' {
			s.cs.advance()
			raw.WriteByte('\\')
			esc := s.cs.peek()
			switch esc {
			case 'n':
				decoded.WriteByte('\n')
			case 't':
				decoded.WriteByte('\t')
			case '"':
				decoded.WriteByte('"')
			case '\\':
				decoded.WriteByte('\\')
			default:
				decoded.WriteRune(esc)
			}
			if esc != eof {
				raw.WriteRune(esc)
				s.cs.advance()
			}
			continue
		}
		raw.WriteRune(ch)
		decoded.WriteRune(ch)
		s.cs.advance()
	}
}

// fixedPunctuation lists the punctuation spec.md §4.C calls out as distinct
// kinds, longest-spelling first so e.g. ".." is preferred over ".".
var fixedPunctuation = []struct {
	text string
	kind Kind
}{
	{"->", RArrow},
	{"=>", RFatArrow},
	{"..", DotDot},
	{"=", Equals},
	{":", Colon},
	{",", Comma},
	{".", Dot},
	{"~", Tilde},
	{"(", LParen},
	{")", RParen},
	{"[", LBracket},
	{"]", RBracket},
	{"{", LBrace},
	{"}", RBrace},
}

func (s *Scanner) scanFixedPunctuation(start source.Loc) (Token, bool) {
	for _, p := range fixedPunctuation {
		if s.matchesAt(p.text) {
			// A '=' followed by another operator character is left to
			// scanOperator so that runs such as == and <= stay whole;
			// '->' and '=>' are always claimed here.
			if p.text == "=" && isOperatorChar(s.cs.peekAt(1)) {
				continue
			}
			for range p.text {
				s.cs.advance()
			}
			end := s.cs.loc()
			return Token{Kind: p.kind, Range: source.Range{Start: start, End: end}, Text: p.text}, true
		}
	}
	return Token{}, false
}

func (s *Scanner) matchesAt(text string) bool {
	for i, r := range []rune(text) {
		if s.cs.peekAt(i) != r {
			return false
		}
	}
	return true
}

// scanOperator reads a maximal run of operator characters and classifies it
// as Assignment or CustomOperator per spec.md §4.C.
func (s *Scanner) scanOperator(start source.Loc) Token {
	var b strings.Builder
	for isOperatorChar(s.cs.peek()) {
		b.WriteRune(s.cs.advance())
	}
	text := b.String()
	end := s.cs.loc()
	rng := source.Range{Start: start, End: end}

	if strings.HasSuffix(text, "=") && !isComparisonOrEquality(text) {
		return Token{Kind: Assignment, Range: rng, Text: text}
	}
	return Token{Kind: CustomOperator, Range: rng, Text: text}
}

func isComparisonOrEquality(text string) bool {
	switch text {
	case "==", ">=", "<=", "/=":
		return true
	default:
		return false
	}
}
