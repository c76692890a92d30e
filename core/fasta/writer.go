package fasta

import (
	"io"

	"github.com/biogo/biogo/alphabet"
	biofasta "github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"resmap-core/textio"
)

// LineWidth is the sequence line width of written records.
const LineWidth = 60

// Write emits recs in FASTA format.
func Write(w io.Writer, recs ...Record) error {
	fw := biofasta.NewWriter(w, LineWidth)
	for _, r := range recs {
		s := linear.NewSeq(r.ID, alphabet.BytesToLetters(r.Seq), alphabet.Protein)
		s.Desc = r.Desc
		if _, err := fw.Write(s); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes recs to path ("-" for stdout).
func WriteFile(path string, recs ...Record) error {
	wc, err := textio.Create(path)
	if err != nil {
		return err
	}
	if err := Write(wc, recs...); err != nil {
		_ = wc.Close()
		return err
	}
	return wc.Close()
}
