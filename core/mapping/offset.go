package mapping

import (
	"errors"

	"resmap-core/residue"
)

// ErrAllGaps is returned when an aligned row holds no residue.
var ErrAllGaps = errors.New("aligned row contains only gaps")

// Offset is a uniform shift between two numberings.
type Offset int

// LeadingOffset returns the 0-based column of the first residue in row.
func LeadingOffset(row []byte) (Offset, error) {
	for i, c := range row {
		if c != residue.Gap {
			return Offset(i), nil
		}
	}
	return 0, ErrAllGaps
}

// Shift moves pos by the offset.
func (o Offset) Shift(pos int) int { return pos + int(o) }
