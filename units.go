package winarg

import (
	"unicode"
	"unicode/utf16"
)

// unitSource is anything that can be pulled one UTF-16 code unit at a time:
// a UnitStream, or the per-argument unit view from an ArgumentHandle.
type unitSource interface {
	Next() (uint16, bool)
}

// UnitStream is a flat view over a Parser's tokens: code units pass
// through unchanged, and each NextArg marker becomes a single 0. Splitting
// the stream on 0 recovers the individual arguments. There is no trailing
// 0, matching Parser's rule of never emitting a boundary after the last
// argument.
type UnitStream struct {
	tokens Parser
}

func newUnitStream(p Parser) *UnitStream {
	return &UnitStream{tokens: p}
}

// Next returns the next code unit (possibly a 0 separator), or
// (0, false) once exhausted.
func (s *UnitStream) Next() (uint16, bool) {
	t, ok := s.tokens.Next()
	if !ok {
		return 0, false
	}
	return t.AsUint16(), true
}

// surrogateWindow gives a one-unit lookahead over a unitSource, which both
// ScalarStream and CodePointStream need to recognize a surrogate pair
// without consuming the low surrogate before deciding it belongs to the
// pair.
type surrogateWindow struct {
	src        unitSource
	buffered   uint16
	isBuffered bool
}

func (w *surrogateWindow) next() (uint16, bool) {
	if w.isBuffered {
		w.isBuffered = false
		return w.buffered, true
	}
	return w.src.Next()
}

func (w *surrogateWindow) peek() (uint16, bool) {
	if !w.isBuffered {
		u, ok := w.src.Next()
		if !ok {
			return 0, false
		}
		w.buffered, w.isBuffered = u, true
	}
	return w.buffered, true
}

func isHighSurrogate(u uint16) bool { return u >= 0xD800 && u <= 0xDBFF }
func isLowSurrogate(u uint16) bool  { return u >= 0xDC00 && u <= 0xDFFF }

// ScalarStream decodes a unitSource as UTF-16, replacing any isolated
// surrogate (unpaired high, or a low surrogate with nothing preceding it)
// with U+FFFD.
type ScalarStream struct {
	units surrogateWindow
}

func newScalarStream(src unitSource) *ScalarStream {
	return &ScalarStream{units: surrogateWindow{src: src}}
}

// Next returns the next decoded scalar value, or (0, false) once exhausted.
func (s *ScalarStream) Next() (rune, bool) {
	u, ok := s.units.next()
	if !ok {
		return 0, false
	}
	if isHighSurrogate(u) {
		if low, ok := s.units.peek(); ok && isLowSurrogate(low) {
			s.units.next()
			return utf16.DecodeRune(rune(u), rune(low)), true
		}
		return unicode.ReplacementChar, true
	}
	if isLowSurrogate(u) {
		return unicode.ReplacementChar, true
	}
	return rune(u), true
}

// CodePointStream decodes a unitSource the same way as ScalarStream except
// that an isolated surrogate is widened to its raw u32 value instead of
// being replaced, matching the source library's code_points view.
type CodePointStream struct {
	units surrogateWindow
}

func newCodePointStream(src unitSource) *CodePointStream {
	return &CodePointStream{units: surrogateWindow{src: src}}
}

// Next returns the next code point, or (0, false) once exhausted.
func (s *CodePointStream) Next() (uint32, bool) {
	u, ok := s.units.next()
	if !ok {
		return 0, false
	}
	if isHighSurrogate(u) {
		if low, ok := s.units.peek(); ok && isLowSurrogate(low) {
			s.units.next()
			return uint32(utf16.DecodeRune(rune(u), rune(low))), true
		}
	}
	return uint32(u), true
}
