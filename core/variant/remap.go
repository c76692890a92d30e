package variant

import (
	"errors"
	"fmt"

	"resmap-core/align"
	"resmap-core/mapping"
	"resmap-core/residue"
)

// ErrNoVariants is returned when no record survives remapping.
var ErrNoVariants = errors.New("no valid variant")

// Remap moves records from the numbering of aln's row A (old sequence) into
// that of row B (target sequence).
//
// A record whose wild type already matches the target at its position is
// kept as is. Otherwise it is shifted by the leading-gap offset of row A and
// kept only if the wild type matches at the shifted position; records that
// still disagree are dropped and described in warns.
func Remap(recs []Record, aln align.Alignment) ([]Record, []string, error) {
	target := residue.Degap(aln.B)
	offset, err := mapping.LeadingOffset(aln.A)
	if err != nil {
		return nil, nil, fmt.Errorf("old sequence: %w", err)
	}

	var (
		kept  []Record
		warns []string
	)
	for _, r := range recs {
		if matchesAt(target, r.Position, r.WildType) {
			kept = append(kept, r)
			continue
		}
		pos := offset.Shift(r.Position)
		if !matchesAt(target, pos, r.WildType) {
			warns = append(warns, mismatchWarning(r, target, pos))
			continue
		}
		moved, err := r.WithPosition(pos)
		if err != nil {
			warns = append(warns, fmt.Sprintf("%s: %v, skip to the next variant", r, err))
			continue
		}
		kept = append(kept, moved)
	}
	if len(kept) == 0 {
		return nil, warns, ErrNoVariants
	}
	return kept, warns, nil
}

func matchesAt(seq []byte, pos int, wt byte) bool {
	return pos >= 1 && pos <= len(seq) && seq[pos-1] == wt
}

func mismatchWarning(r Record, target []byte, pos int) string {
	if pos < 1 || pos > len(target) {
		return fmt.Sprintf("%s: shifted position %d is outside the new sequence (length %d), skip to the next variant",
			r, pos, len(target))
	}
	return fmt.Sprintf("%s: wild-type residue does not match the new sequence: %c vs %c at %d, skip to the next variant",
		r, r.WildType, target[pos-1], pos)
}
