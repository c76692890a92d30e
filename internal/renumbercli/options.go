package renumbercli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"resmap-core/align"
	"resmap/internal/clibase"
	"resmap/internal/cliutil"
	"resmap/internal/output"
)

// Source names where the residue correspondence comes from.
type Source int

const (
	FromMapping   Source = iota // two-column mapping file
	FromAlignment               // two-record alignment FASTA
	FromSequence                // align the chain against a target sequence
)

type Options struct {
	clibase.Common

	Input   string
	ChainID string
	Chain   byte
	Output  string

	Mapping   string
	Alignment string
	Sequence  string
	Source    Source

	StartSeqres   int
	SaveAlignment string
	MappingOut    string
	Records       []string
	Report        string
	Scoring       align.Scoring
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] -i in.pdb -c A -o out.pdb (-m map.txt | -a aln.fasta | -s target.fa)\n", name)

		_, _ = fmt.Fprintln(out, "\nInput:")
		_, _ = fmt.Fprintln(out, "  -i, --input file            PDB file to renumber [required]")
		_, _ = fmt.Fprintln(out, "  -c, --chain-id string       Chain to renumber [required]")
		_, _ = fmt.Fprintln(out, "  -m, --mapping file          Two-column residue number mapping (old new) [*]")
		_, _ = fmt.Fprintln(out, "  -a, --alignment file        Pairwise alignment FASTA, PDB sequence first [*]")
		_, _ = fmt.Fprintln(out, "  -s, --sequence file         Target sequence FASTA; aligned against the chain [*]")
		_, _ = fmt.Fprintf(out, "      --start-seqres int      Residue number of the first aligned PDB residue [%s]\n", def("start-seqres"))
		_, _ = fmt.Fprintf(out, "      --records string        Record types to renumber, comma separated [%s]\n", def("records"))

		clibase.UsageScoring(out, def)

		_, _ = fmt.Fprintln(out, "\nOutput:")
		_, _ = fmt.Fprintln(out, "  -o, --output file           Renumbered PDB file [required]")
		_, _ = fmt.Fprintf(out, "      --save-alignment file   Where --sequence mode stores its alignment [%s]\n", def("save-alignment"))
		_, _ = fmt.Fprintln(out, "      --mapping-out file      Also write the residue mapping in --mapping format")
		_, _ = fmt.Fprintf(out, "      --report string         Alignment report on stdout: text | json [%s]\n", def("report"))
	})
	return fs
}

// PrintExamples prints a tiny quickstart for renumber-pdb.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "renumber-pdb", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Renumber chain A of a structure to UniProt numbering.")
		_, _ = fmt.Fprintln(w, "\nAlign against the UniProt sequence:")
		_, _ = fmt.Fprintln(w, "  renumber-pdb -i 1abc.pdb -c A -s P12345.fasta -o 1abc_uniprot.pdb")
		_, _ = fmt.Fprintln(w, "\nReuse a curated alignment or mapping:")
		_, _ = fmt.Fprintln(w, "  renumber-pdb -i 1abc.pdb -c A -a alignment.fasta --start-seqres 3 -o out.pdb")
		_, _ = fmt.Fprintln(w, "  renumber-pdb -i 1abc.pdb -c A -m 1abc_A.map -o out.pdb")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool
	var records string

	clibase.Register(fs, &o.Common)
	clibase.RegisterScoring(fs, &o.Scoring)

	fs.StringVar(&o.Input, "input", "", "PDB file [required]")
	fs.StringVar(&o.Input, "i", "", "alias of --input")
	fs.StringVar(&o.ChainID, "chain-id", "", "chain to renumber [required]")
	fs.StringVar(&o.ChainID, "c", "", "alias of --chain-id")
	fs.StringVar(&o.Output, "output", "", "output PDB file [required]")
	fs.StringVar(&o.Output, "o", "", "alias of --output")
	fs.StringVar(&o.Mapping, "mapping", "", "residue number mapping file")
	fs.StringVar(&o.Mapping, "m", "", "alias of --mapping")
	fs.StringVar(&o.Alignment, "alignment", "", "pairwise alignment FASTA")
	fs.StringVar(&o.Alignment, "a", "", "alias of --alignment")
	fs.StringVar(&o.Sequence, "sequence", "", "target sequence FASTA")
	fs.StringVar(&o.Sequence, "s", "", "alias of --sequence")
	fs.IntVar(&o.StartSeqres, "start-seqres", 1, "residue number of the first aligned PDB residue [1]")
	fs.StringVar(&records, "records", "ATOM", "record types to renumber [ATOM]")
	fs.StringVar(&o.SaveAlignment, "save-alignment", "alignment.fasta", "alignment written in --sequence mode")
	fs.StringVar(&o.MappingOut, "mapping-out", "", "write the residue mapping to this file")
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
	if len(posArgs) > 0 {
		return o, fmt.Errorf("unexpected argument %q", posArgs[0])
	}
	o.Records = splitRecords(records)
	return o, finalize(&o)
}

func splitRecords(s string) []string {
	var out []string
	for _, r := range strings.Split(s, ",") {
		if r = strings.ToUpper(strings.TrimSpace(r)); r != "" {
			out = append(out, r)
		}
	}
	return out
}

func finalize(o *Options) error {
	if o.Input == "" {
		return errors.New("--input is required")
	}
	if o.Output == "" {
		return errors.New("--output is required")
	}
	c, err := cliutil.ChainID(o.ChainID)
	if err != nil {
		return err
	}
	o.Chain = c

	n := 0
	for src, path := range map[Source]string{FromMapping: o.Mapping, FromAlignment: o.Alignment, FromSequence: o.Sequence} {
		if path != "" {
			o.Source = src
			n++
		}
	}
	switch {
	case n == 0:
		return errors.New("provide one of --mapping, --alignment or --sequence")
	case n > 1:
		return errors.New("--mapping, --alignment and --sequence are mutually exclusive")
	}

	if len(o.Records) == 0 {
		return errors.New("--records must name at least one record type")
	}
	for _, r := range o.Records {
		if len(r) > 6 {
			return fmt.Errorf("invalid record type %q", r)
		}
	}
	switch o.Report {
	case output.FormatText:
	case output.FormatJSON:
		if o.Source == FromMapping {
			return errors.New("--report json needs --alignment or --sequence")
		}
		if o.Output == "-" {
			return errors.New("--report json cannot share STDOUT with --output -")
		}
	default:
		return fmt.Errorf("invalid --report %q", o.Report)
	}
	if o.Source == FromSequence {
		if o.SaveAlignment == "" {
			return errors.New("--save-alignment must not be empty")
		}
		if o.Input == "-" {
			return errors.New("--sequence mode reads --input twice and cannot use STDIN")
		}
	}
	return o.Scoring.Validate()
}
