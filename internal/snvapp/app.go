// internal/snvapp/app.go
package snvapp

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"resmap-core/align"
	"resmap-core/fasta"
	"resmap-core/textio"
	"resmap-core/variant"
	"resmap/internal/appcore"
	"resmap/internal/clibase"
	"resmap/internal/cmdutil"
	"resmap/internal/snvcli"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	return appcore.Run(parent, argv, stdout, stderr, appcore.Tool[snvcli.Options]{
		Name:       "update-snv",
		NewFlagSet: snvcli.NewFlagSet,
		Parse:      snvcli.ParseArgs,
		Common:     func(o snvcli.Options) clibase.Common { return o.Common },
		Examples:   snvcli.PrintExamples,
		Run:        run,
	})
}

func run(_ context.Context, opts snvcli.Options, out *bufio.Writer, stderr io.Writer) int {
	var msg io.Writer = out
	if opts.Output == "-" {
		msg = stderr
	}

	old, target, err := fasta.ReadPair(opts.Alignment)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	aln, err := align.FromRows(old.Seq, target.Seq)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", opts.Alignment, err)
		return 2
	}
	recs, err := variant.LoadFile(opts.Input)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	fmt.Fprintf(msg, "Updating %d variants from %s to %s numbering\n", len(recs), old.ID, target.ID)

	kept, warns, err := variant.Remap(recs, aln)
	cmdutil.Warnings(stderr, opts.Quiet, warns)
	if err != nil {
		if errors.Is(err, variant.ErrNoVariants) {
			fmt.Fprintln(stderr, "error: no variant could be placed on the new sequence")
			return 1
		}
		fmt.Fprintf(stderr, "%s: %v\n", opts.Alignment, err)
		return 2
	}

	if opts.Output == "-" {
		if err := variant.Write(out, kept); err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
	} else if err := writeFile(opts.Output, kept); err != nil {
		fmt.Fprintf(stderr, "error: writing %s: %v\n", opts.Output, err)
		return 1
	}
	fmt.Fprintf(msg, "%d of %d variants written to %s\n", len(kept), len(recs), opts.Output)
	return 0
}

func writeFile(path string, recs []variant.Record) error {
	var buf bytes.Buffer
	if err := variant.Write(&buf, recs); err != nil {
		return err
	}
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
