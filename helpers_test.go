package winarg

import (
	"strings"
	"unicode/utf16"
)

// utf16Buf encodes s as a null-terminated UTF-16 buffer suitable for
// NewParserFromUTF16 / ArgumentsFromUTF16.
func utf16Buf(s string) []uint16 {
	return append(utf16.Encode([]rune(s)), 0)
}

// parseArgs runs cmdline through ArgumentsFromUTF16 and collects each
// argument's scalar decoding into a string, mirroring tests.rs's chk
// helper in the original source.
func parseArgs(cmdline string) []string {
	it := ArgumentsFromUTF16(utf16Buf(cmdline))
	var out []string
	for {
		arg, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, scalarsToString(arg.Scalars()))
	}
	return out
}

func scalarsToString(sc *ScalarStream) string {
	var sb strings.Builder
	for {
		r, ok := sc.Next()
		if !ok {
			break
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
