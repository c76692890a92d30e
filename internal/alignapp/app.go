// internal/alignapp/app.go
package alignapp

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"resmap-core/align"
	"resmap-core/fasta"
	"resmap-core/residue"
	"resmap/internal/aligncli"
	"resmap/internal/appcore"
	"resmap/internal/clibase"
	"resmap/internal/cmdutil"
	"resmap/internal/output"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	return appcore.Run(parent, argv, stdout, stderr, appcore.Tool[aligncli.Options]{
		Name:       "pairalign",
		NewFlagSet: aligncli.NewFlagSet,
		Parse:      aligncli.ParseArgs,
		Common:     func(o aligncli.Options) clibase.Common { return o.Common },
		Examples:   aligncli.PrintExamples,
		Run:        run,
	})
}

func run(_ context.Context, opts aligncli.Options, out *bufio.Writer, stderr io.Writer) int {
	text := opts.Report == output.FormatText
	// Progress and the text report go to stderr when the FASTA is on stdout.
	var msg io.Writer = out
	if opts.Output == "-" {
		msg = stderr
	}

	recA, err := readSequence(opts.SeqA)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	recB, err := readSequence(opts.SeqB)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	if text {
		printRecord(msg, recA)
		printRecord(msg, recB)
		fmt.Fprintf(msg, "Now aligning the two given sequences using global alignment (%s) ...\n", opts.Scoring)
	}
	aln, err := align.Global(recA.Seq, recB.Seq, opts.Scoring)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	rows := []fasta.Record{
		{ID: recA.ID, Desc: recA.Desc, Seq: aln.A},
		{ID: recB.ID, Desc: recB.Desc, Seq: aln.B},
	}
	if opts.Output == "-" {
		if err := fasta.Write(out, rows...); err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
	} else if err := fasta.WriteFile(opts.Output, rows...); err != nil {
		fmt.Fprintf(stderr, "error: writing %s: %v\n", opts.Output, err)
		return 1
	}
	if text {
		fmt.Fprintf(msg, "The following alignment has been written to %s\n\n", opts.Output)
	}

	rep := align.Validate(aln)
	if rep.Suspicious {
		cmdutil.Warnf(stderr, opts.Quiet, "Suspicious alignment between %s and %s (%d mismatches over %d residues), please check",
			recA.ID, recB.ID, rep.Mismatches, rep.Residues)
	}

	pair := output.Pair{
		IDA: recA.ID, IDB: recB.ID,
		Aln: aln, Scoring: opts.Scoring, Report: rep,
	}
	w := msg
	if !text {
		w = out
	}
	if err := output.Write(w, opts.Report, pair); err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}

// readSequence returns the first record of path with its residues checked.
func readSequence(path string) (fasta.Record, error) {
	rec, err := fasta.ReadFirst(path)
	if err != nil {
		return rec, err
	}
	seq, err := residue.Validate(rec.Seq)
	if err != nil {
		return rec, fmt.Errorf("%s: %s: %w", path, rec.ID, err)
	}
	rec.Seq = seq
	return rec, nil
}

func printRecord(w io.Writer, r fasta.Record) {
	fmt.Fprintf(w, "ID: %s\n", r.ID)
	if r.Desc != "" {
		fmt.Fprintf(w, "Description: %s\n", r.Desc)
	}
	fmt.Fprintf(w, "Length: %d\n%s\n\n", len(r.Seq), r.Seq)
}
