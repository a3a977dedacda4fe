package winarg

import (
	"unicode/utf16"

	"github.com/go-winarg/winarg/internal/wide"
)

// ArgumentIterator yields one ArgumentHandle per command-line argument
// (spec.md §4.6). It owns a single parseState; each call to Next snapshots
// that state into an independent handle before advancing past the
// argument.
type ArgumentIterator struct {
	state parseState
}

func newArgumentIterator(cur wide.Cursor, isZeroth bool) *ArgumentIterator {
	return &ArgumentIterator{state: newParseState(cur, isZeroth)}
}

// Next returns the next argument, or (ArgumentHandle{}, false) once the
// command line is exhausted.
func (it *ArgumentIterator) Next() (ArgumentHandle, bool) {
	start := ArgumentHandle{cursor: it.state.cursor, isZeroth: it.state.isZeroth}
	if it.state.atEnd() {
		return ArgumentHandle{}, false
	}
	it.state.moveToNextArgument()
	return start, true
}

// ArgumentHandle is a lightweight snapshot of one argument's position. It
// can be held onto and consumed independently of the ArgumentIterator that
// produced it, and each of its views constructs its own sub-parser over the
// snapshotted start so that consuming one view never disturbs another.
type ArgumentHandle struct {
	cursor   wide.Cursor
	isZeroth bool
}

// ArgumentUnits iterates the UTF-16 code units of one argument, parsed per
// spec.md §4.3.
type ArgumentUnits struct {
	state parseState
}

// Next returns the next code unit, or (0, false) at the argument's end.
func (u *ArgumentUnits) Next() (uint16, bool) { return u.state.step() }

// Units returns a fresh iterator over this argument's parsed UTF-16 code
// units.
func (a ArgumentHandle) Units() *ArgumentUnits {
	return &ArgumentUnits{state: newParseState(a.cursor, a.isZeroth)}
}

// CodePoints returns a fresh iterator over this argument's decoded code
// points, widening any unpaired surrogate to its raw value.
func (a ArgumentHandle) CodePoints() *CodePointStream {
	return newCodePointStream(a.Units())
}

// Scalars returns a fresh iterator over this argument's decoded scalar
// values, replacing any unpaired surrogate with U+FFFD.
func (a ArgumentHandle) Scalars() *ScalarStream {
	return newScalarStream(a.Units())
}

// RawTail returns the unparsed remainder of the command-line buffer
// starting at this argument's first code unit, up to (but not including)
// the buffer's terminating zero. Unlike Units, this exposes quotes and
// backslashes exactly as written, for callers implementing pass-through
// semantics such as a "-- rest" convention.
func (a ArgumentHandle) RawTail() []uint16 {
	return a.cursor.SliceUntilNull()
}

// Equal reports whether a and other parse to the same sequence of code
// units.
func (a ArgumentHandle) Equal(other ArgumentHandle) bool {
	au, bu := a.Units(), other.Units()
	for {
		x, okx := au.Next()
		y, oky := bu.Next()
		if okx != oky {
			return false
		}
		if !okx {
			return true
		}
		if x != y {
			return false
		}
	}
}

// EqualString reports whether a parses to the same sequence of code units
// as s encoded as UTF-16.
func (a ArgumentHandle) EqualString(s string) bool {
	units := a.Units()
	for _, want := range utf16.Encode([]rune(s)) {
		got, ok := units.Next()
		if !ok || got != want {
			return false
		}
	}
	_, ok := units.Next()
	return !ok
}
