// Package align computes and inspects pairwise global protein alignments.
//
// An Alignment holds two gapped rows of equal length. Removing the gap
// symbol from row A yields the first input sequence, from row B the second.
package align

import (
	"bytes"
	"fmt"

	"resmap-core/residue"
)

// Alignment is a pairwise alignment. Score is only meaningful for
// alignments produced by Global.
type Alignment struct {
	A     []byte
	B     []byte
	Score float64
}

// FromRows builds an Alignment from two pre-aligned rows (e.g. read back
// from an alignment file). Rows are upper-cased and must have equal length.
func FromRows(a, b []byte) (Alignment, error) {
	ra, rb := bytes.ToUpper(a), bytes.ToUpper(b)
	if len(ra) != len(rb) {
		return Alignment{}, fmt.Errorf("aligned rows differ in length: %d vs %d", len(ra), len(rb))
	}
	if len(ra) == 0 {
		return Alignment{}, fmt.Errorf("%w: empty alignment", ErrEmptySequence)
	}
	return Alignment{A: ra, B: rb}, nil
}

// Len returns the number of alignment columns.
func (a Alignment) Len() int { return len(a.A) }

// Check verifies the round-trip invariant against the original sequences.
func (a Alignment) Check(seqA, seqB []byte) error {
	if len(a.A) != len(a.B) {
		return fmt.Errorf("aligned rows differ in length: %d vs %d", len(a.A), len(a.B))
	}
	if !bytes.Equal(residue.Degap(a.A), seqA) {
		return fmt.Errorf("row A does not reproduce sequence A")
	}
	if !bytes.Equal(residue.Degap(a.B), seqB) {
		return fmt.Errorf("row B does not reproduce sequence B")
	}
	return nil
}
