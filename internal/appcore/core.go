// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"resmap/internal/clibase"
	"resmap/internal/cmdutil"
	"resmap/internal/version"
)

// Tool describes one command: how to parse its flags and what to do with them.
type Tool[O any] struct {
	Name       string
	NewFlagSet func(name string) *flag.FlagSet
	Parse      func(fs *flag.FlagSet, argv []string) (O, error)
	Common     func(O) clibase.Common
	Examples   func(io.Writer)
	Run        func(ctx context.Context, o O, out *bufio.Writer, stderr io.Writer) int
}

// Run handles help, examples, version and usage errors, then calls t.Run
// with a buffered stdout that is flushed before returning.
//
// Exit codes: 0 ok, 1 processing failure (from t.Run), 2 usage or input
// error, 3 stdout write failure.
func Run[O any](ctx context.Context, argv []string, stdout, stderr io.Writer, t Tool[O]) int {
	outw := bufio.NewWriterSize(stdout, 64<<10)

	fs := t.NewFlagSet(t.Name)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	opts, err := t.Parse(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			if t.Examples != nil {
				t.Examples(outw)
			}
			return cmdutil.Finish(outw, stderr, 0)
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return cmdutil.Finish(outw, stderr, 0)
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return cmdutil.Finish(outw, stderr, 2)
	}
	if t.Common(opts).Version {
		fmt.Fprintf(outw, "%s version %s\n", t.Name, version.Version)
		return cmdutil.Finish(outw, stderr, 0)
	}
	if err := ctx.Err(); err != nil {
		return cmdutil.Finish(outw, stderr, 1)
	}

	code := t.Run(ctx, opts, outw, stderr)
	return cmdutil.Finish(outw, stderr, code)
}
