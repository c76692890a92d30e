// internal/spanapp/app.go
package spanapp

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"

	"resmap-core/span"
	"resmap-core/textio"
	"resmap/internal/appcore"
	"resmap/internal/clibase"
	"resmap/internal/cmdutil"
	"resmap/internal/spancli"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	return appcore.Run(parent, argv, stdout, stderr, appcore.Tool[spancli.Options]{
		Name:       "ppm2span",
		NewFlagSet: spancli.NewFlagSet,
		Parse:      spancli.ParseArgs,
		Common:     func(o spancli.Options) clibase.Common { return o.Common },
		Examples:   spancli.PrintExamples,
		Run:        run,
	})
}

func run(_ context.Context, opts spancli.Options, out *bufio.Writer, stderr io.Writer) int {
	var msg io.Writer = out
	if opts.Output == "-" {
		msg = stderr
	}

	segs, err := span.ParsePPMFile(opts.Input)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	fmt.Fprintf(msg, "PPM Server detected %d transmembrane segments.\n", len(segs))
	if len(segs) == 0 {
		cmdutil.Warnf(stderr, opts.Quiet, "no transmembrane segments in %s", opts.Input)
	}

	f := span.File{Name: opts.Name, Residues: opts.Residues, Segments: segs}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", opts.Input, err)
		return 2
	}

	fmt.Fprintf(msg, "Now writing span file to %s\n", opts.Output)
	if opts.Output == "-" {
		if _, err := buf.WriteTo(out); err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
	} else if err := writeFile(opts.Output, &buf); err != nil {
		fmt.Fprintf(stderr, "error: writing %s: %v\n", opts.Output, err)
		return 1
	}
	fmt.Fprintf(msg, "Span file written to %s\n", opts.Output)
	return 0
}

func writeFile(path string, buf *bytes.Buffer) error {
	wc, err := textio.Create(path)
	if err != nil {
		return err
	}
	if _, err := buf.WriteTo(wc); err != nil {
		_ = wc.Close()
		return err
	}
	return wc.Close()
}
