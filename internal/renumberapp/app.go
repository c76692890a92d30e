// internal/renumberapp/app.go
package renumberapp

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"resmap-core/align"
	"resmap-core/fasta"
	"resmap-core/mapping"
	"resmap-core/pdb"
	"resmap-core/residue"
	"resmap-core/textio"
	"resmap/internal/appcore"
	"resmap/internal/clibase"
	"resmap/internal/cmdutil"
	"resmap/internal/output"
	"resmap/internal/renumbercli"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	return appcore.Run(parent, argv, stdout, stderr, appcore.Tool[renumbercli.Options]{
		Name:       "renumber-pdb",
		NewFlagSet: renumbercli.NewFlagSet,
		Parse:      renumbercli.ParseArgs,
		Common:     func(o renumbercli.Options) clibase.Common { return o.Common },
		Examples:   renumbercli.PrintExamples,
		Run:        run,
	})
}

func run(_ context.Context, opts renumbercli.Options, out *bufio.Writer, stderr io.Writer) int {
	// Progress goes to stderr when the PDB itself is written to stdout.
	var msg io.Writer = out
	if opts.Output == "-" || opts.Report == output.FormatJSON {
		msg = stderr
	}

	table, pair, code := buildTable(opts, msg, stderr)
	if table == nil {
		return code
	}
	if pair != nil {
		if pair.Report.Suspicious {
			cmdutil.Warnf(stderr, opts.Quiet, "Suspicious alignment between the PDB sequence and %s (%d mismatches over %d residues), please check",
				pair.IDB, pair.Report.Mismatches, pair.Report.Residues)
		}
		w := msg
		if opts.Report == output.FormatJSON {
			w = out
		}
		if err := output.Write(w, opts.Report, *pair); err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
	}

	if opts.MappingOut != "" {
		if err := writeTable(opts.MappingOut, table); err != nil {
			fmt.Fprintf(stderr, "error: writing %s: %v\n", opts.MappingOut, err)
			return 1
		}
		fmt.Fprintf(msg, "Residue mapping written to %s\n", opts.MappingOut)
	}

	fmt.Fprintf(msg, "Renumbering %s records of chain %c\n", strings.Join(opts.Records, "/"), opts.Chain)
	var buf bytes.Buffer
	st, err := renumber(opts, table, &buf)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s: %v\n", opts.Input, err)
		if errors.Is(err, pdb.ErrIncompleteMapping) || errors.Is(err, pdb.ErrBadRecord) {
			return 1
		}
		return 2
	}
	if st.Renumbered == 0 {
		cmdutil.Warnf(stderr, opts.Quiet, "no %s records of chain %c in %s", strings.Join(opts.Records, "/"), opts.Chain, opts.Input)
	}

	if opts.Output == "-" {
		// msg is stderr here; keep the PDB ahead of anything else on stdout.
		if _, err := buf.WriteTo(out); err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
	} else if err := writeFile(opts.Output, &buf); err != nil {
		fmt.Fprintf(stderr, "error: writing %s: %v\n", opts.Output, err)
		return 1
	}
	fmt.Fprintf(msg, "Renumbered %d of %d lines, written to %s\n", st.Renumbered, st.Lines, opts.Output)
	fmt.Fprintln(msg, "Done!")
	return 0
}

// buildTable derives the residue correspondence from the selected source.
// pair is nil in mapping mode. A nil table means failure with code.
func buildTable(opts renumbercli.Options, msg, stderr io.Writer) (*mapping.Table, *output.Pair, int) {
	switch opts.Source {
	case renumbercli.FromMapping:
		fmt.Fprintf(msg, "Using mapping %s for renumbering.\n", opts.Mapping)
		t, warns, err := mapping.LoadFile(opts.Mapping)
		cmdutil.Warnings(stderr, opts.Quiet, warns)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return nil, nil, 2
		}
		return t, nil, 0

	case renumbercli.FromAlignment:
		fmt.Fprintf(msg, "Using alignment %s for renumbering.\n", opts.Alignment)
		a, b, err := fasta.ReadPair(opts.Alignment)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return nil, nil, 2
		}
		aln, err := align.FromRows(a.Seq, b.Seq)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", opts.Alignment, err)
			return nil, nil, 2
		}
		aln.Score = align.ScoreOf(aln, opts.Scoring)
		p := newPair(a.ID, b.ID, aln, opts)
		return p.Table, &p, 0
	}

	chain, err := pdb.ChainSequenceFile(opts.Input, opts.Chain)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return nil, nil, 2
	}
	for _, name := range chain.Skipped {
		cmdutil.Warnf(stderr, opts.Quiet, "chain %c: residue %s has no one-letter code, left out of the sequence", opts.Chain, name)
	}
	if chain.First() != opts.StartSeqres {
		cmdutil.Warnf(stderr, opts.Quiet, "chain %c starts at residue %d but --start-seqres is %d", opts.Chain, chain.First(), opts.StartSeqres)
	}
	// The mapping numbers chain residues consecutively from --start-seqres.
	for _, b := range chain.Breaks() {
		cmdutil.Warnf(stderr, opts.Quiet, "chain %c numbering jumps from %d to %d; residues after it are mapped as if consecutive", opts.Chain, b.Prev, b.Next)
	}
	target, err := fasta.ReadFirst(opts.Sequence)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return nil, nil, 2
	}
	seq, err := residue.Validate(target.Seq)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %s: %v\n", opts.Sequence, target.ID, err)
		return nil, nil, 2
	}

	fmt.Fprintf(msg, "Now aligning chain %c against %s using global alignment (%s) ...\n", opts.Chain, target.ID, opts.Scoring)
	aln, err := align.Global(chain.Seq, seq, opts.Scoring)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return nil, nil, 2
	}
	pdbID := fmt.Sprintf("PDB_%c", opts.Chain)
	err = fasta.WriteFile(opts.SaveAlignment,
		fasta.Record{ID: pdbID, Desc: opts.Input, Seq: aln.A},
		fasta.Record{ID: target.ID, Desc: target.Desc, Seq: aln.B},
	)
	if err != nil {
		fmt.Fprintf(stderr, "error: writing %s: %v\n", opts.SaveAlignment, err)
		return nil, nil, 1
	}
	fmt.Fprintf(msg, "Alignment written to %s\n", opts.SaveAlignment)
	p := newPair(pdbID, target.ID, aln, opts)
	return p.Table, &p, 0
}

func newPair(idA, idB string, aln align.Alignment, opts renumbercli.Options) output.Pair {
	return output.Pair{
		IDA: idA, IDB: idB,
		Aln: aln, Scoring: opts.Scoring,
		Report: align.Validate(aln),
		Start:  opts.StartSeqres,
		Table:  mapping.Build(aln, opts.StartSeqres),
	}
}

func renumber(opts renumbercli.Options, table *mapping.Table, w io.Writer) (pdb.Stats, error) {
	in, err := textio.Open(opts.Input)
	if err != nil {
		return pdb.Stats{}, err
	}
	defer func() { _ = in.Close() }()
	return pdb.Renumber(in, w, pdb.RenumberOptions{
		Chain:   opts.Chain,
		Table:   table,
		Records: opts.Records,
	})
}

func writeTable(path string, t *mapping.Table) error {
	var buf bytes.Buffer
	if err := mapping.Write(&buf, t); err != nil {
		return err
	}
	return writeFile(path, &buf)
}

func writeFile(path string, r io.Reader) error {
	wc, err := textio.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(wc, r); err != nil {
		_ = wc.Close()
		return err
	}
	return wc.Close()
}
