package winarg

import (
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/require"
)

// alphabet is the small alphabet spec.md §8's fuzzing harness enumerates:
// backslash, a letter, a quote, and the two whitespace units. Permutations
// of length 0 through 5 over this alphabet (5^0 + ... + 5^5 = 3906 cases) are cheap enough to
// run as a unit test; the full length-6 enumeration belongs to a harness
// that also cross-checks against the platform's own parser, which is
// explicitly out of scope here (spec.md §1 Resource Policy).
var alphabet = []rune{'\\', 'a', '"', ' ', '\t'}

const maxPermutationLen = 5

// forEachPermutation calls fn with every string of length 0..maxLen drawn
// from alphabet.
func forEachPermutation(maxLen int, fn func(string)) {
	var rec func(prefix []rune, depth int)
	rec = func(prefix []rune, depth int) {
		fn(string(prefix))
		if depth == maxLen {
			return
		}
		for _, c := range alphabet {
			rec(append(prefix, c), depth+1)
		}
	}
	rec(nil, 0)
}

// argumentBodies returns the scalar-decoded body of every argument in
// cmdline, in order.
func argumentBodies(cmdline string) []string {
	return parseArgs(cmdline)
}

// nextArgCount returns the number of NextArg markers Parser emits for
// cmdline, and whether it ever emitted at least one code unit.
func nextArgCount(cmdline string) (markers int, sawUnit bool) {
	p := NewParserFromUTF16(utf16Buf(cmdline))
	for {
		tok, ok := p.Next()
		if !ok {
			return markers, sawUnit
		}
		if tok.IsNextArg() {
			markers++
		} else {
			sawUnit = true
		}
	}
}

// Property 1: argument count equals NextArg marker count plus one more for
// the leading argument, unless the buffer held nothing before its
// terminator at all (in which case there is no zeroth argument either).
// Note this is not simply "marker count plus one if any code-unit token
// was ever emitted": a buffer of pure inter-argument whitespace emits zero
// code-unit tokens and zero markers yet still yields one (empty) zeroth
// argument, matching ArgsNative::next's peek-before-advance check in the
// original source.
func TestPropertyArgumentCountMatchesMarkerCount(t *testing.T) {
	forEachPermutation(maxPermutationLen, func(s string) {
		markers, _ := nextArgCount(s)
		bodies := argumentBodies(s)

		want := 0
		if s != "" {
			want = markers + 1
		}
		require.Equal(t, want, len(bodies), "cmdline %q", s)
	})
}

// Property 2: joining each argument's units with a synthetic 0 and
// splitting on 0 recovers the same sequence the argument iterator produces.
func TestPropertyNullJoinMatchesArgumentIterator(t *testing.T) {
	forEachPermutation(maxPermutationLen, func(s string) {
		if s == "" {
			// A genuinely empty command line is the one input where this
			// does not hold: splitting an empty collected sequence on 0
			// still yields one empty segment (ordinary slice.split
			// semantics), but the argument iterator reports zero
			// arguments, since it peeks before ever calling
			// moveToNextArgument. The same divergence exists in the
			// source this package is modeled on.
			require.Empty(t, argumentBodies(s))
			return
		}

		p := NewParserFromUTF16(utf16Buf(s))
		units := newUnitStream(p)

		var flat []uint16
		for {
			u, ok := units.Next()
			if !ok {
				break
			}
			flat = append(flat, u)
		}

		var got [][]uint16
		var cur []uint16
		for _, u := range flat {
			if u == 0 {
				got = append(got, cur)
				cur = nil
				continue
			}
			cur = append(cur, u)
		}
		got = append(got, cur)

		it := ArgumentsFromUTF16(utf16Buf(s))
		var want [][]uint16
		for {
			h, ok := it.Next()
			if !ok {
				break
			}
			var units []uint16
			au := h.Units()
			for {
				u, ok := au.Next()
				if !ok {
					break
				}
				units = append(units, u)
			}
			want = append(want, units)
		}

		require.Equal(t, len(want), len(got), "cmdline %q", s)
		for i := range want {
			require.Equal(t, want[i], got[i], "cmdline %q arg %d", s, i)
		}
	})
}

// Property 3: with no backslashes, quotes, or surrogates, the parser's
// output equals a naive whitespace split (with the usual "leading
// whitespace produces an empty zeroth argument" caveat this package
// shares with the source).
func TestPropertyNoSpecialCharsMatchesNaiveSplit(t *testing.T) {
	plainAlphabet := []rune{'a', ' ', '\t'}
	var rec func(prefix []rune, depth int)
	rec = func(prefix []rune, depth int) {
		s := string(prefix)
		got := argumentBodies(s)
		want := naiveSplit(s)
		require.Equal(t, want, got, "cmdline %q", s)
		if depth == maxPermutationLen {
			return
		}
		for _, c := range plainAlphabet {
			rec(append(prefix, c), depth+1)
		}
	}
	rec(nil, 0)
}

// naiveSplit mirrors strings.Fields except that it preserves a leading
// empty zeroth argument when the input starts with whitespace, matching
// the parser's documented zeroth-argument behavior instead of
// strings.Fields' "drop empties" behavior.
func naiveSplit(s string) []string {
	if s == "" {
		return nil
	}
	trimmedLeft := strings.TrimLeft(s, " \t")
	fields := strings.Fields(s)
	if len(trimmedLeft) != len(s) {
		return append([]string{""}, fields...)
	}
	return fields
}

// Property 4: an unclosed trailing quote never panics or hangs. This test
// checks only that parsing completes without a panic; it does not inspect
// the final quote mode.
func TestPropertyQuoteModeNeverPanics(t *testing.T) {
	forEachPermutation(maxPermutationLen, func(s string) {
		require.NotPanics(t, func() {
			argumentBodies(s)
		}, "cmdline %q", s)
	})
}

// Property 5: for any run of k backslashes followed by a quote, the
// output is floor(k/2) backslashes plus (k odd: one literal quote) or
// (k even: a mode toggle that consumes the quote without emitting it).
func TestPropertyBackslashQuoteCollapseRule(t *testing.T) {
	for k := 0; k <= 6; k++ {
		k := k
		t.Run(fmtK(k), func(t *testing.T) {
			// One argument after EXE: "<k backslashes>"a" — an opening
			// quote, the run, the quote under test, then a letter and a
			// closing quote so the argument has an unambiguous end.
			cmdline := `EXE "` + strings.Repeat(`\`, k) + `"a"`
			got := argumentBodies(cmdline)
			require.Len(t, got, 2)

			wantBackslashes := strings.Repeat(`\`, k/2)
			var want string
			if k%2 == 1 {
				want = wantBackslashes + `"a`
			} else {
				// An even run toggles quote mode instead of emitting a
				// literal quote, closing the quoted section before "a".
				want = wantBackslashes + "a"
			}
			require.Equal(t, want, got[1], "k=%d cmdline %q", k, cmdline)
		})
	}
}

func fmtK(k int) string {
	return "k=" + string(rune('0'+k))
}

// Property 6: idempotence under re-parse. Quoting an argument body per the
// reverse of these rules and feeding the result back as a single-argument
// command line reproduces the original body.
func TestPropertyQuoteRoundTrip(t *testing.T) {
	bodies := []string{
		``,
		`a`,
		`a b`,
		`a"b`,
		`a\b`,
		`a\"b`,
		`\`,
		`\\`,
		`"`,
		`a\\"b`,
	}
	for _, b := range bodies {
		b := b
		t.Run(b, func(t *testing.T) {
			requote := quoteArgument(b)
			got := argumentBodies("EXE " + requote)
			require.Len(t, got, 2)
			require.Equal(t, b, got[1])
		})
	}
}

// quoteArgument applies the reverse of the parser's rules: wrap in quotes
// if the body needs it, doubling each backslash run that immediately
// precedes a literal quote or the closing quote, and escaping each literal
// quote with one further backslash.
func quoteArgument(body string) string {
	needsQuotes := body == "" || strings.ContainsAny(body, " \t\"")
	if !needsQuotes {
		return body
	}

	var sb strings.Builder
	sb.WriteByte('"')
	backslashes := 0
	for _, r := range body {
		if r == '\\' {
			backslashes++
			continue
		}
		if r == '"' {
			sb.WriteString(strings.Repeat(`\`, backslashes*2+1))
			sb.WriteByte('"')
			backslashes = 0
			continue
		}
		sb.WriteString(strings.Repeat(`\`, backslashes))
		backslashes = 0
		sb.WriteRune(r)
	}
	sb.WriteString(strings.Repeat(`\`, backslashes*2))
	sb.WriteByte('"')
	return sb.String()
}

func TestQuoteArgumentProducesSingleArgument(t *testing.T) {
	// Sanity check that quoteArgument's output for a body with a space and
	// quotes encodes to UTF-16 and parses back as exactly one argument
	// after EXE.
	quoted := quoteArgument(`hello "world"`)
	encoded := utf16.Encode([]rune(quoted))
	require.NotEmpty(t, encoded)
	require.Len(t, argumentBodies("EXE "+quoted), 2)
}
