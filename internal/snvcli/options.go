package snvcli

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

	Input     string
	Output    string
	Alignment string
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s -i variants.txt -a old_vs_new.fasta -o updated.txt\n", name)

		_, _ = fmt.Fprintln(out, "\nInput:")
		_, _ = fmt.Fprintln(out, "  -i, --input file            Variants, one \"id pos wt var\" per line [required]")
		_, _ = fmt.Fprintln(out, "  -a, --alignment file        Two-record alignment FASTA, old sequence first [required]")

		_, _ = fmt.Fprintln(out, "\nOutput:")
		_, _ = fmt.Fprintln(out, "  -o, --output file           Updated variants ('-' for STDOUT) [required]")
	})
	return fs
}

// PrintExamples prints a tiny quickstart for update-snv.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "update-snv", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Move variant positions from an old sequence onto a new one.")
		_, _ = fmt.Fprintln(w, "\nInput lines may use ',' or ':' as separators:")
		_, _ = fmt.Fprintln(w, "  P12345 42 R H")
		_, _ = fmt.Fprintln(w, "  P12345:R:57:W")
		_, _ = fmt.Fprintln(w, "\nExample:")
		_, _ = fmt.Fprintln(w, "  update-snv -i snvs.txt -a isoform1_vs_canonical.fasta -o snvs_canonical.txt")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool

	clibase.Register(fs, &o.Common)

	fs.StringVar(&o.Input, "input", "", "variant list [required]")
	fs.StringVar(&o.Input, "i", "", "alias of --input")
	fs.StringVar(&o.Output, "output", "", "updated variant list [required]")
	fs.StringVar(&o.Output, "o", "", "alias of --output")
	fs.StringVar(&o.Alignment, "alignment", "", "two-record alignment FASTA [required]")
	fs.StringVar(&o.Alignment, "a", "", "alias of --alignment")

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
	if len(posArgs) > 0 {
		return o, fmt.Errorf("unexpected argument %q", posArgs[0])
	}
	switch {
	case o.Input == "":
		return o, errors.New("--input is required")
	case o.Alignment == "":
		return o, errors.New("--alignment is required")
	case o.Output == "":
		return o, errors.New("--output is required")
	case o.Input == "-" && o.Alignment == "-":
		return o, errors.New("only one input can be read from STDIN")
	}
	return o, nil
}
