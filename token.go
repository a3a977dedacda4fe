package winarg

import "github.com/go-winarg/winarg/internal/wide"

// Token is either a UTF-16 code unit belonging to the argument currently
// being parsed, or a marker for the boundary between two arguments. The
// code-unit case is always nonzero, so AsUint16 can use 0 for the marker
// without ambiguity.
type Token struct {
	unit    uint16
	nextArg bool
}

// IsNextArg reports whether t is the "next argument" boundary marker.
func (t Token) IsNextArg() bool { return t.nextArg }

// AsUint16 returns t's code unit, or 0 if t is the NextArg marker.
func (t Token) AsUint16() uint16 {
	if t.nextArg {
		return 0
	}
	return t.unit
}

// Parser is a token iterator over a command line (spec.md §4.4). It is the
// lowest-level public view over the parser state machine; UnitStream,
// ScalarStream and ArgumentIterator are all built on top of it or of an
// equivalent parseState.
type Parser struct {
	state parseState
}

func newParser(cur wide.Cursor, isZeroth bool) Parser {
	return Parser{state: newParseState(cur, isZeroth)}
}

// Next returns the next token, or (Token{}, false) once the command line is
// exhausted. No NextArg marker is ever emitted after the final argument.
func (p *Parser) Next() (Token, bool) {
	if u, ok := p.state.step(); ok {
		return Token{unit: u}, true
	}
	p.state.moveToNextArgument()
	if p.state.atEnd() {
		return Token{}, false
	}
	return Token{nextArg: true}, true
}

// SizeHint returns the number of code units between the cursor and the
// buffer's terminator, found by scanning to it. O(n) in the remaining input.
// Backslashes already consumed into a pending escape run but not yet
// emitted are not counted, so while such a run is being drained the result
// can be smaller than the number of tokens still to come.
func (p *Parser) SizeHint() int {
	return p.state.cursor.MaxLen()
}
