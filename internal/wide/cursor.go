package wide

import "unsafe"

// Cursor is a position within a null-terminated UTF-16 sequence. It holds a
// single pointer and nothing else; copying a Cursor copies the position, not
// the data it points into.
//
// Dereferencing the current position is always defined: the sequence is
// required to be null-terminated, and Cursor never advances past a zero
// code unit. The caller that first constructs a Cursor is responsible for
// upholding that the pointer is valid and null-terminated and that the
// memory it addresses outlives every Cursor derived from it; on the target
// platform that's automatic (the OS command line has process lifetime), and
// test-injected buffers must replicate it by staying in scope.
type Cursor struct {
	ptr *uint16
}

// NewCursor returns a Cursor over the null-terminated sequence beginning at
// ptr. ptr must not be nil.
func NewCursor(ptr *uint16) Cursor {
	return Cursor{ptr: ptr}
}

// Peek returns the code unit at the cursor's current position, or (0, false)
// if that unit is the terminating zero.
func (c Cursor) Peek() (uint16, bool) {
	if u := *c.ptr; u != 0 {
		return u, true
	}
	return 0, false
}

// Advance moves the cursor one code unit forward. The caller must have
// already confirmed via Peek that the current unit is not the terminator;
// advancing past it is undefined.
func (c *Cursor) Advance() {
	c.ptr = (*uint16)(unsafe.Add(unsafe.Pointer(c.ptr), 2))
}

// Next returns the current code unit and advances past it, or reports false
// at the terminator without moving.
func (c *Cursor) Next() (uint16, bool) {
	u, ok := c.Peek()
	if ok {
		c.Advance()
	}
	return u, ok
}

// SkipWhitespace advances past a run of SPACE and TAB code units.
func (c *Cursor) SkipWhitespace() {
	for {
		u, ok := c.Peek()
		if !ok || (u != Space && u != Tab) {
			return
		}
		c.Advance()
	}
}

// MaxLen walks to the terminator and returns the number of code units
// between the cursor and it. O(n) in the remaining buffer length; used for
// size hints and by SliceUntilNull, never on the parse hot path.
func (c Cursor) MaxLen() int {
	walk := c
	n := 0
	for {
		if _, ok := walk.Peek(); !ok {
			return n
		}
		walk.Advance()
		n++
	}
}

// SliceUntilNull returns every code unit from the cursor's position up to,
// but not including, the terminating zero. The returned slice aliases the
// underlying buffer; it must not be retained past the buffer's lifetime.
func (c Cursor) SliceUntilNull() []uint16 {
	return unsafe.Slice(c.ptr, c.MaxLen())
}
