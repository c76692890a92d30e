package mapping

import (
	"fmt"
	"sort"

	"resmap-core/align"
	"resmap-core/residue"
)

// Build walks aln column by column and maps every residue of row A,
// numbered from start, to its partner in row B numbered from 1.
//
// Keys are exactly start .. start+n-1 where n is the residue count of row
// A, and mapped targets strictly increase with the key.
func Build(aln align.Alignment, start int) *Table {
	t := NewTable()
	posA, posB := start-1, 0
	for k := range aln.A {
		x, y := aln.A[k], aln.B[k]
		if x != residue.Gap {
			posA++
		}
		if y != residue.Gap {
			posB++
		}
		if x != residue.Gap {
			t.Set(posA, Target{Pos: posB, Mapped: y != residue.Gap})
		}
	}
	return t
}

// CheckMonotonic verifies that mapped targets strictly increase with their
// keys. Loaded tables are not guaranteed to satisfy it.
func CheckMonotonic(t *Table) error {
	keys := t.Keys()
	sort.Ints(keys)
	prevKey, prevPos, seen := 0, 0, false
	for _, k := range keys {
		to, _ := t.Lookup(k)
		if !to.Mapped {
			continue
		}
		if seen && to.Pos <= prevPos {
			return fmt.Errorf("position %d maps to %d, not after %d→%d", k, to.Pos, prevKey, prevPos)
		}
		prevKey, prevPos, seen = k, to.Pos, true
	}
	return nil
}
