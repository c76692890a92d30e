// Package fasta reads protein sequences and pairwise alignments in FASTA
// format.
package fasta

import (
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	biofasta "github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"resmap-core/textio"
)

// Record is one FASTA entry. Seq is upper case with whitespace removed;
// gap symbols are kept.
type Record struct {
	ID   string
	Desc string
	Seq  []byte
}

// Read parses every record from r.
func Read(r io.Reader) ([]Record, error) {
	template := linear.NewSeq("", nil, alphabet.Protein)
	sc := seqio.NewScanner(biofasta.NewReader(r, template))
	var out []Record
	for sc.Next() {
		s, ok := sc.Seq().(*linear.Seq)
		if !ok {
			return nil, fmt.Errorf("fasta: unexpected sequence type %T", sc.Seq())
		}
		out = append(out, Record{ID: s.ID, Desc: s.Desc, Seq: letters(s.Seq)})
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("fasta: %w", err)
	}
	return out, nil
}

func letters(l alphabet.Letters) []byte {
	b := make([]byte, 0, len(l))
	for _, c := range l {
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			continue
		case c >= 'a' && c <= 'z':
			c -= 'a' - 'A'
		}
		b = append(b, byte(c))
	}
	return b
}

// ReadFile parses every record of path ("-" for stdin, gzip accepted).
func ReadFile(path string) ([]Record, error) {
	rc, err := textio.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	recs, err := Read(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

// ReadFirst returns the first record of path.
func ReadFirst(path string) (Record, error) {
	recs, err := ReadFile(path)
	if err != nil {
		return Record{}, err
	}
	if len(recs) == 0 {
		return Record{}, fmt.Errorf("no sequences found in %q", path)
	}
	return recs[0], nil
}

// ReadPair returns the two records of a pairwise alignment file.
func ReadPair(path string) (Record, Record, error) {
	recs, err := ReadFile(path)
	if err != nil {
		return Record{}, Record{}, err
	}
	if len(recs) != 2 {
		return Record{}, Record{}, fmt.Errorf("%d sequences found in %q, expected exactly 2", len(recs), path)
	}
	return recs[0], recs[1], nil
}
