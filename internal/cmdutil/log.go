package cmdutil

import (
	"fmt"
	"io"
)

// Warnf prints a single warning line unless quiet is set.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// Warnings prints every entry of warns (as returned by core loaders and
// remappers) through Warnf.
func Warnings(dst io.Writer, quiet bool, warns []string) {
	for _, w := range warns {
		Warnf(dst, quiet, "%s", w)
	}
}
