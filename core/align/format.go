package align

import (
	"fmt"
	"strings"

	"resmap-core/residue"
)

// Format renders an alignment as three lines (row A, match line, row B)
// followed by the score. The match line uses '|' for identities, '.' for
// mismatches and a space for gap columns.
func Format(aln Alignment) string {
	var mid strings.Builder
	mid.Grow(len(aln.A))
	for k := range aln.A {
		x, y := aln.A[k], aln.B[k]
		switch {
		case x == residue.Gap || y == residue.Gap:
			mid.WriteByte(' ')
		case x == y:
			mid.WriteByte('|')
		default:
			mid.WriteByte('.')
		}
	}
	return fmt.Sprintf("%s\n%s\n%s\n  Score=%g\n", aln.A, mid.String(), aln.B, aln.Score)
}
