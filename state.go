package winarg

import "github.com/go-winarg/winarg/internal/wide"

// parseState is the parser state machine from spec.md §4.3. It drives a
// wide.Cursor and yields the code units of the *current* argument one at a
// time, stopping (without consuming anything) at an argument boundary.
// Every public iterator in this package is a thin wrapper over one of
// these.
type parseState struct {
	cursor   wide.Cursor
	quoted   bool
	escape   wide.EscapeRun
	isZeroth bool
}

func newParseState(cur wide.Cursor, isZeroth bool) parseState {
	return parseState{cursor: cur, isZeroth: isZeroth}
}

// step yields the next code unit of the current argument, or (0, false) at
// the argument boundary: end of buffer, or unquoted whitespace.
func (s *parseState) step() (uint16, bool) {
	for {
		if u, ok := s.escape.Next(); ok {
			return u, true
		}

		u, ok := s.cursor.Peek()
		if !ok {
			return 0, false
		}

		switch {
		case (u == wide.Space || u == wide.Tab) && !s.quoted:
			return 0, false

		case u == wide.Backslash && !s.isZeroth:
			s.cursor.Advance()
			s.escape = wide.NewEscapeRun(&s.cursor)

		case u == wide.Quote:
			s.cursor.Advance()
			if !s.isZeroth && s.quoted {
				if next, ok := s.cursor.Peek(); ok && next == wide.Quote {
					s.cursor.Advance()
					return wide.Quote, true
				}
			}
			s.quoted = !s.quoted

		default:
			s.cursor.Advance()
			return u, true
		}
	}
}

// moveToNextArgument drains any remaining units of the current argument,
// skips inter-argument whitespace, and clears the zeroth-argument flag.
// After it returns, the cursor is either on the terminator or positioned
// at the first code unit of the next argument.
func (s *parseState) moveToNextArgument() {
	for {
		if _, ok := s.step(); !ok {
			break
		}
	}
	s.cursor.SkipWhitespace()
	s.isZeroth = false
}

// atEnd reports whether the cursor is sitting on the buffer's terminator.
func (s *parseState) atEnd() bool {
	_, ok := s.cursor.Peek()
	return !ok
}
