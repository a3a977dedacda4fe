/*
Package winarg parses a Windows process command line into arguments, using
the same rules as the modern Microsoft C/C++ runtime's CommandLineToArgvW
(the "post-2008" rules) plus its special, simpler treatment of the zeroth
argument, the program name.

# Rules

Arguments are separated by runs of SPACE or TAB outside quotes. A quote
toggles an internal "inside quotes" mode; while inside quotes, whitespace is
not a separator. A pair of adjacent quotes while already inside quotes emits
one literal quote and leaves the mode as "inside". A run of n backslashes
followed by a quote collapses: even n emits n/2 backslashes and the quote
toggles the mode, odd n emits n/2 backslashes followed by one literal quote
and the mode is unchanged. A run of backslashes not followed by a quote is
emitted as-is. The zeroth argument (the program name) never honors backslash
escapes and never collapses doubled quotes into a literal one; quotes there
only toggle the mode.

# Layers

A wide.Cursor is a non-owning position into the command line buffer; it
never allocates and is the only place this module does anything unsafe. The
unexported parseState drives a Cursor through the rules above, yielding one
UTF-16 code unit of the current argument per step. Everything public —
Parser, UnitStream, ScalarStream, ArgumentIterator — is a thin adapter over
that same state machine, so equality, size hints and token boundaries all
stay consistent with each other.

# Example

Skipping the program name and forwarding the rest verbatim:

	args := winarg.Arguments()
	for {
		arg, ok := args.Next()
		if !ok {
			break
		}
		if arg.EqualString("--") {
			if next, ok := args.Next(); ok {
				forward(next.RawTail())
			}
			break
		}
	}
*/
package winarg
