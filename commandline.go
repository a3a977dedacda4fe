package winarg

import (
	"github.com/go-winarg/winarg/internal/boundary"
	"github.com/go-winarg/winarg/internal/wide"
)

// NewParser returns a token iterator over the current process's command
// line, as obtained from the operating system.
func NewParser() Parser {
	return newParser(wide.NewCursor(commandLine()), true)
}

// NewParserFromUTF16 returns a token iterator over buf, which must be
// null-terminated. This is the test-injection point spec.md §6 requires;
// it is equally usable by any caller that already holds a wide command
// line, for example one read back from a saved process snapshot.
//
// The returned Parser borrows buf; buf must outlive it and must not be
// mutated while in use.
func NewParserFromUTF16(buf []uint16) Parser {
	boundary.GuardNullTerminated(buf)
	return newParser(wide.NewCursor(&buf[0]), true)
}

// Arguments returns an iterator over the current process's arguments.
func Arguments() *ArgumentIterator {
	return newArgumentIterator(wide.NewCursor(commandLine()), true)
}

// ArgumentsFromUTF16 is the ArgumentIterator counterpart of
// NewParserFromUTF16: buf must be null-terminated and must outlive the
// returned iterator.
func ArgumentsFromUTF16(buf []uint16) *ArgumentIterator {
	boundary.GuardNullTerminated(buf)
	return newArgumentIterator(wide.NewCursor(&buf[0]), true)
}

// NullSeparatedUnits returns the current process's arguments as a single
// lazy stream of UTF-16 code units with a 0 between each argument and no
// trailing 0.
func NullSeparatedUnits() *UnitStream {
	return newUnitStream(NewParser())
}

// NullSeparatedScalars is NullSeparatedUnits decoded to characters, with
// U+FFFD in place of any isolated surrogate.
func NullSeparatedScalars() *ScalarStream {
	return newScalarStream(NullSeparatedUnits())
}
