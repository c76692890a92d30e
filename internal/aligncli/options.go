package aligncli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"resmap-core/align"
	"resmap/internal/clibase"
	"resmap/internal/cliutil"
	"resmap/internal/output"
)

type Options struct {
	clibase.Common

	SeqA    string
	SeqB    string
	Output  string // alignment FASTA
	Report  string // text | json
	Scoring align.Scoring
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] -a first.fa -b second.fa -o alignment.fasta\n", name)
		_, _ = fmt.Fprintf(out, "  %s [options] -o alignment.fasta first.fa second.fa\n", name)

		_, _ = fmt.Fprintln(out, "\nInput:")
		_, _ = fmt.Fprintln(out, "  -a, --sequence-a file        FASTA file holding the first sequence [*]")
		_, _ = fmt.Fprintln(out, "  -b, --sequence-b file        FASTA file holding the second sequence [*]")

		clibase.UsageScoring(out, def)

		_, _ = fmt.Fprintln(out, "\nOutput:")
		_, _ = fmt.Fprintln(out, "  -o, --output file           Two-record alignment FASTA to write, - for STDOUT [required]")
		_, _ = fmt.Fprintf(out, "      --report string         Report on stdout: text | json [%s]\n", def("report"))
	})
	return fs
}

// PrintExamples prints a tiny quickstart for pairalign.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "pairalign", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Global alignment of the first record of two FASTA files.")
		_, _ = fmt.Fprintln(w, "\nExample:")
		_, _ = fmt.Fprintln(w, "  pairalign -a 1abc_A.fasta -b P12345.fasta -o 1abc_P12345.fasta")
		_, _ = fmt.Fprintln(w, "\nMachine-readable report:")
		_, _ = fmt.Fprintln(w, "  pairalign --report json -o aln.fasta pdb.fa uniprot.fa")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool

	clibase.Register(fs, &o.Common)
	clibase.RegisterScoring(fs, &o.Scoring)

	fs.StringVar(&o.SeqA, "sequence-a", "", "FASTA file with the first sequence")
	fs.StringVar(&o.SeqA, "a", "", "alias of --sequence-a")
	fs.StringVar(&o.SeqB, "sequence-b", "", "FASTA file with the second sequence")
	fs.StringVar(&o.SeqB, "b", "", "alias of --sequence-b")
	fs.StringVar(&o.Output, "output", "", "alignment FASTA to write [required]")
	fs.StringVar(&o.Output, "o", "", "alias of --output")
	fs.StringVar(&o.Report, "report", output.FormatText, "report on stdout: text | json [text]")

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

	for _, p := range posArgs {
		switch {
		case o.SeqA == "":
			o.SeqA = p
		case o.SeqB == "":
			o.SeqB = p
		default:
			return o, fmt.Errorf("unexpected argument %q", p)
		}
	}
	return o, Validate(o)
}

// Validate checks option invariants after parsing.
func Validate(o Options) error {
	if o.SeqA == "" || o.SeqB == "" {
		return errors.New("two sequence files are required (--sequence-a and --sequence-b)")
	}
	if o.SeqA == "-" && o.SeqB == "-" {
		return errors.New("only one sequence can be read from STDIN")
	}
	if o.Output == "" {
		return errors.New("--output is required")
	}
	switch o.Report {
	case output.FormatText, output.FormatJSON:
	default:
		return fmt.Errorf("invalid --report %q", o.Report)
	}
	if o.Report == output.FormatJSON && o.Output == "-" {
		return errors.New("--report json cannot share STDOUT with the alignment (-o -)")
	}
	return o.Scoring.Validate()
}
