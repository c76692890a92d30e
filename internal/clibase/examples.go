// internal/clibase/examples.go
package clibase

import (
	"errors"
	"fmt"
	"io"

	"resmap/internal/version"
)

// ErrPrintedAndExitOK is returned by ParseArgs for --examples. appcore
// prints the tool's examples and exits 0.
var ErrPrintedAndExitOK = errors.New("examples requested")

// PrintExamples frames a tool's examples between a versioned header and
// a footer on input conventions shared by all tools.
func PrintExamples(out io.Writer, name string, body func(io.Writer)) {
	_, _ = fmt.Fprintf(out, "%s quickstart (resmap %s)\n\n", name, version.Version)
	body(out)
	_, _ = fmt.Fprintln(out, "\nInputs may be gzip-compressed; - reads STDIN.")
	_, _ = fmt.Fprintf(out, "Run %s -h for all flags.\n", name)
}
