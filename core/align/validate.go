package align

import "resmap-core/residue"

// SuspiciousPercent is the mismatch rate, relative to the residues of
// row B, at which an alignment is flagged.
const SuspiciousPercent = 10

// Report summarizes alignment quality.
type Report struct {
	Mismatches int // gap-free columns whose residues differ
	Compared   int // gap-free columns
	Residues   int // non-gap symbols in row B
	Suspicious bool
}

// Validate counts mismatches and flags the alignment when they reach
// SuspiciousPercent of row B's residues. It never fails.
func Validate(aln Alignment) Report {
	var r Report
	for k := range aln.A {
		x, y := aln.A[k], aln.B[k]
		if y != residue.Gap {
			r.Residues++
		}
		if x == residue.Gap || y == residue.Gap {
			continue
		}
		r.Compared++
		if x != y {
			r.Mismatches++
		}
	}
	r.Suspicious = r.Residues > 0 && r.Mismatches*100 >= SuspiciousPercent*r.Residues
	return r
}

// Identity is the fraction of gap-free columns that match.
func (r Report) Identity() float64 {
	if r.Compared == 0 {
		return 0
	}
	return float64(r.Compared-r.Mismatches) / float64(r.Compared)
}
