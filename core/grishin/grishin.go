// Package grishin converts Clustal multiple alignments into pairwise
// alignments in Grishin format.
package grishin

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Alignment is a parsed Clustal alignment: one id and one gapped row per
// sequence, in file order.
type Alignment struct {
	IDs  []string
	Rows []string
}

// ParseClustal reads a Clustal alignment of n sequences. A leading
// "CLUSTAL" header and blank lines before the first block are skipped;
// after that the input is consumed in blocks of n sequence lines followed
// by two other lines (the conservation line and a blank separator).
func ParseClustal(r io.Reader, n int) (Alignment, error) {
	if n < 2 {
		return Alignment{}, fmt.Errorf("need at least 2 sequences, got %d", n)
	}
	aln := Alignment{Rows: make([]string, n)}
	rows := make([]strings.Builder, n)
	sc := bufio.NewScanner(r)
	started := false
	i, ln := 0, 0
	for sc.Scan() {
		ln++
		line := sc.Text()
		blank := strings.TrimSpace(line) == ""
		if !started {
			if blank || strings.HasPrefix(line, "CLUSTAL") {
				continue
			}
			started = true
		}
		slot := i % (n + 2)
		if slot < n && blank {
			continue
		}
		i++
		if slot >= n {
			continue
		}
		f := strings.Fields(line)
		if len(f) != 2 && len(f) != 3 {
			return Alignment{}, fmt.Errorf("line %d: expected \"id sequence [count]\", got %d fields", ln, len(f))
		}
		rows[slot].WriteString(f[1])
		if len(aln.IDs) < n {
			aln.IDs = append(aln.IDs, f[0])
		}
	}
	if err := sc.Err(); err != nil {
		return Alignment{}, err
	}
	if len(aln.IDs) < n {
		return Alignment{}, fmt.Errorf("found %d sequences, expected %d", len(aln.IDs), n)
	}
	for k := range rows {
		aln.Rows[k] = rows[k].String()
		if len(aln.Rows[k]) != len(aln.Rows[0]) {
			return Alignment{}, fmt.Errorf("%s: aligned length %d differs from %s (%d)",
				aln.IDs[k], len(aln.Rows[k]), aln.IDs[0], len(aln.Rows[0]))
		}
	}
	return aln, nil
}

// Name returns the conventional file name for the pair (0, k).
func (a Alignment) Name(k int) string {
	return a.IDs[0] + "_" + a.IDs[k] + ".grishin"
}

// Write emits the pairwise alignment of sequence 0 against sequence k.
func (a Alignment) Write(w io.Writer, k int) error {
	if k <= 0 || k >= len(a.IDs) {
		return fmt.Errorf("sequence index %d out of range", k)
	}
	_, err := fmt.Fprintf(w, "## %s %s.pdb\n#\nscore from program: 0\n0 %s\n0 %s",
		a.IDs[0], a.IDs[k], a.Rows[0], a.Rows[k])
	return err
}
