package grishincli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"resmap/internal/clibase"
	"resmap/internal/cliutil"
)

type Options struct {
	clibase.Common

	Inputs []string
	NSeqs  int
	OutDir string
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] -n 3 -i family.aln\n", name)
		_, _ = fmt.Fprintf(out, "  %s [options] -n 3 'alignments/*.aln'\n", name)

		_, _ = fmt.Fprintln(out, "\nInput:")
		_, _ = fmt.Fprintln(out, "  -i, --input file            Clustal alignment; more may follow as arguments [*]")
		_, _ = fmt.Fprintln(out, "  -n, --n-seqs int            Number of sequences in each alignment [required]")

		_, _ = fmt.Fprintln(out, "\nOutput:")
		_, _ = fmt.Fprintf(out, "      --outdir dir            Directory for the <id0>_<idk>.grishin files [%s]\n", def("outdir"))
	})
	return fs
}

// PrintExamples prints a tiny quickstart for clustal2grishin.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "clustal2grishin", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Split a Clustal alignment into pairwise Grishin files,")
		_, _ = fmt.Fprintln(w, "the first sequence against each of the others.")
		_, _ = fmt.Fprintln(w, "\nExample:")
		_, _ = fmt.Fprintln(w, "  clustal2grishin -n 4 -i kinases.clustal --outdir grishin/")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool
	var input string

	clibase.Register(fs, &o.Common)

	fs.StringVar(&input, "input", "", "Clustal alignment")
	fs.StringVar(&input, "i", "", "alias of --input")
	fs.IntVar(&o.NSeqs, "n-seqs", 0, "number of aligned sequences [required]")
	fs.IntVar(&o.NSeqs, "n", 0, "alias of --n-seqs")
	fs.StringVar(&o.OutDir, "outdir", ".", "output directory [.]")

	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if showExamples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if help {
		return o, flag.ErrHelp
	}
	if o.Version {
		return o, nil
	}

	if input != "" {
		o.Inputs = append(o.Inputs, input)
	}
	exp, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return o, err
	}
	o.Inputs = append(o.Inputs, exp...)

	if len(o.Inputs) == 0 {
		return o, errors.New("at least one Clustal alignment is required")
	}
	if o.NSeqs < 2 {
		return o, errors.New("--n-seqs must be at least 2")
	}
	if o.OutDir == "" {
		return o, errors.New("--outdir must not be empty")
	}
	return o, nil
}
