//go:build !windows

package winarg

// commandLine has nothing to return: GetCommandLineW and its "post-2008"
// parsing rules are a Windows concept. On other platforms only the
// slice-based constructors (NewParserFromUTF16, ArgumentsFromUTF16) make
// sense; NewParser and Arguments panic if called here.
func commandLine() *uint16 {
	panic("winarg: no native command line on this platform; use NewParserFromUTF16 or ArgumentsFromUTF16")
}
