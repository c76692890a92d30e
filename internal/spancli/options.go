package spancli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"resmap/internal/clibase"
	"resmap/internal/cliutil"
)

type Options struct {
	clibase.Common

	Input    string
	Residues int
	Output   string
	Name     string // title of the span file; defaults to the output base name
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s -i ppm_segments.txt -n 245 -o 1abc.span\n", name)

		_, _ = fmt.Fprintln(out, "\nInput:")
		_, _ = fmt.Fprintln(out, "  -i, --input file            Transmembrane segments predicted by PPM [required]")
		_, _ = fmt.Fprintln(out, "  -n, --num-res int           Number of residues of the protein [required]")

		_, _ = fmt.Fprintln(out, "\nOutput:")
		_, _ = fmt.Fprintln(out, "  -o, --output file           Rosetta span file ('-' for STDOUT) [required]")
		_, _ = fmt.Fprintln(out, "      --name string           Protein name in the title line [output base name]")
	})
	return fs
}

// PrintExamples prints a tiny quickstart for ppm2span.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "ppm2span", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Write a Rosetta membrane span file from PPM segments like")
		_, _ = fmt.Fprintln(w, "  1( 12- 35), 2( 50- 70)")
		_, _ = fmt.Fprintln(w, "\nExample:")
		_, _ = fmt.Fprintln(w, "  ppm2span -i 1abc_ppm.txt -n 245 -o 1abc.span")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool

	clibase.Register(fs, &o.Common)

	fs.StringVar(&o.Input, "input", "", "PPM segments [required]")
	fs.StringVar(&o.Input, "i", "", "alias of --input")
	fs.IntVar(&o.Residues, "num-res", 0, "number of residues [required]")
	fs.IntVar(&o.Residues, "n", 0, "alias of --num-res")
	fs.StringVar(&o.Output, "output", "", "span file [required]")
	fs.StringVar(&o.Output, "o", "", "alias of --output")
	fs.StringVar(&o.Name, "name", "", "protein name in the title line")

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
	case o.Output == "":
		return o, errors.New("--output is required")
	case o.Residues < 1:
		return o, errors.New("--num-res must be a positive residue count")
	}
	if o.Name == "" {
		o.Name = baseName(o.Output)
		if o.Output == "-" {
			o.Name = baseName(o.Input)
		}
	}
	return o, nil
}

// baseName strips the directory and every extension from path.
func baseName(path string) string {
	b := filepath.Base(path)
	if i := strings.IndexByte(b, '.'); i > 0 {
		b = b[:i]
	}
	return b
}
