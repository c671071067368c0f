package lexer

import "github.com/bolt-lang/bolt/internal/source"

// Layout implements the off-side rule described in spec.md §4.D ("Punctuator"
// in the reference grammar). It sits between the raw Scanner and the
// Parser, rewriting the raw token
// stream by inserting BlockStart, BlockEnd, and LineFoldEnd tokens based on
// indentation.
//
// Pending-block trigger (spec.md §4.D rule 2): rather than grammar-aware
// lookahead at declaration headers, the filter tracks whichever rule applies
// uniformly across every layout-introducing construct in the grammar
// (class/instance/enum/struct headers, if/elif/else headers, match headers,
// and a let body): each of those constructs places either a bare '.' or a
// bare '=' as the last token of its header line. So a block becomes pending
// whenever a '.' or '=' token is immediately followed (after only
// insignificant whitespace/comments) by a token on a later source line.
//
// Open Question resolution (spec.md §9, see DESIGN.md): a match arm's body
// opens its own nested block under the same rule — the arm's '=>' is not
// itself a trigger (ordinary expression bodies on the same line are the
// common case), but if the expression after '=>' is itself a layout-pending
// construct (if/match/another block), that construct's own '.' or '='
// triggers the nested block exactly as it would anywhere else. No special
// casing is needed in the filter; it falls out of the uniform '.'/'=' rule.
type Layout struct {
	scanner *Scanner

	stack   []int // pending block columns, base entry is column 1
	pending bool  // true if the next indented line should open a block

	queue []Token

	lastLine int  // line of the most recently emitted non-synthetic token
	started  bool // whether any token has been emitted yet
	flushed  bool // whether the final EOF flush has run
}

// NewLayout constructs a layout filter over a raw scanner.
func NewLayout(scanner *Scanner) *Layout {
	return &Layout{
		scanner: scanner,
		stack:   []int{1},
	}
}

// Next returns the next token in the layout-filtered stream. Once the
// underlying scanner is exhausted and the filter has flushed its pending
// blocks, Next returns EndOfFile forever.
func (l *Layout) Next() Token {
	for len(l.queue) == 0 {
		l.fill()
	}
	tok := l.queue[0]
	l.queue = l.queue[1:]
	return tok
}

// fill pulls one raw token and appends whatever synthetic tokens plus that
// raw token belong in the output queue.
func (l *Layout) fill() {
	next := l.scanner.Next()

	if next.Kind == EndOfFile {
		if !l.flushed {
			l.flushed = true
			l.queue = append(l.queue, l.flushBlocks(next.Start())...)
			l.queue = append(l.queue, Token{
				Kind:  LineFoldEnd,
				Range: source.Range{Start: next.Start(), End: next.Start()},
			})
		}
		l.queue = append(l.queue, next)
		return
	}

	if !l.started {
		l.started = true
		l.lastLine = next.Start().Line
		l.queue = append(l.queue, next)
		l.notePendingTrigger(next)
		return
	}

	if next.Start().Line > l.lastLine {
		l.queue = append(l.queue, l.layoutDecision(next)...)
	}

	l.lastLine = next.Start().Line
	l.queue = append(l.queue, next)
	l.notePendingTrigger(next)
}

// layoutDecision runs the off-side comparison (spec.md §4.D rule 1) for the
// first token of a new logical line and returns the synthetic tokens that
// precede it, if any.
func (l *Layout) layoutDecision(next Token) []Token {
	col := next.Start().Column
	top := l.stack[len(l.stack)-1]

	var out []Token

	switch {
	case col > top && l.pending:
		l.stack = append(l.stack, col)
		out = append(out, Token{Kind: BlockStart, Range: source.Range{Start: next.Start(), End: next.Start()}})

	case col == top:
		out = append(out, Token{Kind: LineFoldEnd, Range: source.Range{Start: next.Start(), End: next.Start()}})

	case col < top:
		for len(l.stack) > 1 && l.stack[len(l.stack)-1] > col {
			l.stack = l.stack[:len(l.stack)-1]
			out = append(out, Token{Kind: BlockEnd, Range: source.Range{Start: next.Start(), End: next.Start()}})
		}
		out = append(out, Token{Kind: LineFoldEnd, Range: source.Range{Start: next.Start(), End: next.Start()}})

	default:
		// col > top but no block was pending: an indented continuation
		// line of the same logical statement (a line fold). Nothing is
		// injected; the fold simply continues.
	}

	l.pending = false
	return out
}

// flushBlocks pops every remaining pending block at end of file, emitting a
// BlockEnd for each (spec.md §4.D rule 3).
func (l *Layout) flushBlocks(at source.Loc) []Token {
	var out []Token
	for len(l.stack) > 1 {
		l.stack = l.stack[:len(l.stack)-1]
		out = append(out, Token{Kind: BlockEnd, Range: source.Range{Start: at, End: at}})
	}
	return out
}

// notePendingTrigger sets the pending flag when tok is a '.' or '=' that
// ends its logical line (spec.md §4.D rule 2), found by peeking at the next
// raw token without consuming the layout filter's own queue ordering.
func (l *Layout) notePendingTrigger(tok Token) {
	if tok.Kind != Dot && tok.Kind != Equals {
		return
	}
	// Peek the following raw token to see whether it starts a new line.
	// The scanner has no backtracking, so we buffer the peeked token and
	// splice it back in as the next raw token fill() will consume.
	peeked := l.scanner.Next()
	l.scanner.PushBack(peeked)
	if peeked.Start().Line > tok.Start().Line {
		l.pending = true
	}
}
