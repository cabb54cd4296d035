// Package assert provides the fatal invariant check used by the decomposed
// representation. A failed assertion indicates a broken platform assumption
// (for example a numeric limits table that disagrees with the hardware), not
// a bad input, so it writes the failing condition to stderr and panics
// rather than returning an error.
package assert

import (
	"fmt"
	"os"
	"runtime"
)

// True does nothing when cond holds. Otherwise it reports the formatted
// condition with the caller's source location on stderr and panics.
func True(cond bool, format string, args ...any) {
	if cond {
		return
	}

	msg := fmt.Sprintf(format, args...)

	_, file, line, ok := runtime.Caller(1)
	if ok {
		fmt.Fprintf(os.Stderr, "%s:%d: assertion failed: %s\n", file, line, msg)
	} else {
		fmt.Fprintf(os.Stderr, "assertion failed: %s\n", msg)
	}

	panic("inrange: assertion failed: " + msg)
}
