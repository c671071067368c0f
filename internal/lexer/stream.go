package lexer

import "github.com/bolt-lang/bolt/internal/diag"

// Stream is the finished, layout-filtered token sequence for one source
// file. The front end is synchronous and single-file (spec.md §5), so the
// stream is materialized eagerly rather than pulled lazily; this also gives
// the parser and CST stable integer token indices to record as node spans
// (spec.md §9's arena-index design note).
type Stream struct {
	tokens []Token
	pos    int
}

// Scan runs the full B->C->D pipeline (char stream, raw scanner, layout
// filter) over file content and returns the resulting token stream.
func Scan(content []byte, diags *diag.Store) *Stream {
	scanner := NewScanner(content, diags)
	layout := NewLayout(scanner)

	var tokens []Token
	for {
		tok := layout.Next()
		tokens = append(tokens, tok)
		if tok.Kind == EndOfFile {
			break
		}
	}
	return &Stream{tokens: tokens}
}

// Len returns the number of tokens in the stream, including the trailing EndOfFile.
func (s *Stream) Len() int { return len(s.tokens) }

// At returns the token at the given index, clamping to the final EndOfFile
// token for out-of-range indices so the stream behaves as an infinite
// EndOfFile-terminated sequence (spec.md §3).
func (s *Stream) At(i int) Token {
	if i < 0 {
		i = 0
	}
	if i >= len(s.tokens) {
		i = len(s.tokens) - 1
	}
	return s.tokens[i]
}

// Peek returns the token k positions ahead of pos without advancing.
func (s *Stream) Peek(k int) Token { return s.At(s.pos + k) }

// Current returns the token at the current position.
func (s *Stream) Current() Token { return s.At(s.pos) }

// CurrentIndex returns the current stream position as a stable token index.
func (s *Stream) CurrentIndex() int {
	if s.pos >= len(s.tokens) {
		return len(s.tokens) - 1
	}
	return s.pos
}

// Advance consumes the current token and returns it.
func (s *Stream) Advance() Token {
	tok := s.Current()
	if s.pos < len(s.tokens)-1 {
		s.pos++
	}
	return tok
}

// TokenAt exposes a token by its stable index, for CST nodes that recover
// their first/last token from stored indices (spec.md §3 invariant 2).
func (s *Stream) TokenAt(i int) Token { return s.At(i) }
