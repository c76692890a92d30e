// Package mapping translates residue positions between two numbering
// schemes.
//
// A Table is usually derived from a pairwise alignment (Build), or loaded
// from a two-column text file (Load). Positions of the first sequence whose
// residue faces a gap in the second are present in the table but unmapped.
package mapping

import (
	"fmt"
	"strings"
)

// Target is the position a source position maps to. Mapped is false when
// the source residue has no counterpart; Pos then holds the last
// position consumed in the target numbering.
type Target struct {
	Pos    int
	Mapped bool
}

func (t Target) String() string {
	if !t.Mapped {
		return "-"
	}
	return fmt.Sprint(t.Pos)
}

// Table is an insertion-ordered position correspondence.
type Table struct {
	entries map[int]Target
	order   []int
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{entries: make(map[int]Target)}
}

// Set records from → to. Setting an existing key overwrites its target
// and keeps its original position in Keys.
func (t *Table) Set(from int, to Target) {
	if _, ok := t.entries[from]; !ok {
		t.order = append(t.order, from)
	}
	t.entries[from] = to
}

// Lookup returns the target for from and whether from is in the table.
func (t *Table) Lookup(from int) (Target, bool) {
	to, ok := t.entries[from]
	return to, ok
}

// Keys returns source positions in insertion order.
func (t *Table) Keys() []int {
	return append([]int(nil), t.order...)
}

// Len returns the number of source positions.
func (t *Table) Len() int { return len(t.order) }

// Mapped returns the number of source positions with a counterpart.
func (t *Table) Mapped() int {
	n := 0
	for _, to := range t.entries {
		if to.Mapped {
			n++
		}
	}
	return n
}

// String renders the table as "{1→1, 2→2, 3→-}".
func (t *Table) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range t.order {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d→%s", k, t.entries[k])
	}
	sb.WriteByte('}')
	return sb.String()
}
