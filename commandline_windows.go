//go:build windows

package winarg

import "golang.org/x/sys/windows"

// commandLine returns a pointer to the process's command line as maintained
// by the Windows loader: GetCommandLineW's result is a static,
// null-terminated UTF-16 string that is never reallocated or freed for the
// life of the process, which is exactly what wide.Cursor requires.
func commandLine() *uint16 {
	return windows.GetCommandLine()
}
