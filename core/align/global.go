package align

import (
	"errors"
	"fmt"
	"math"

	"resmap-core/residue"
)

// ErrEmptySequence is returned when either input sequence is empty.
var ErrEmptySequence = errors.New("empty sequence")

// Traceback states. The order is also the tie-break precedence.
const (
	nwDiag = iota // A[i] aligned with B[j]
	nwUp          // A[i] against a gap in B
	nwLeft        // B[j] against a gap in A
	nwStates
)

// grid holds one score layer and one traceback layer per state. The
// traceback entry of a cell names the state of the cell it was reached from.
type grid struct {
	cols  int
	score [nwStates][]float64
	from  [nwStates][]uint8
}

func newGrid(rows, cols int) *grid {
	g := &grid{cols: cols}
	neg := math.Inf(-1)
	for s := 0; s < nwStates; s++ {
		g.score[s] = make([]float64, rows*cols)
		g.from[s] = make([]uint8, rows*cols)
		for k := range g.score[s] {
			g.score[s][k] = neg
		}
	}
	return g
}

func (g *grid) at(i, j int) int { return i*g.cols + j }

// best picks the highest of three per-state candidates. Ties resolve to the
// lowest state index: diagonal, then up, then left.
func best(c [nwStates]float64) (float64, uint8) {
	v, s := c[nwDiag], uint8(nwDiag)
	for k := 1; k < nwStates; k++ {
		if c[k] > v {
			v, s = c[k], uint8(k)
		}
	}
	return v, s
}

// Global returns one optimal end-to-end alignment of a and b under sc.
// Leading and trailing gaps are charged like internal ones. Equal-scoring
// paths are resolved with fixed diagonal > up > left precedence, so the
// result is deterministic.
func Global(a, b []byte, sc Scoring) (Alignment, error) {
	if len(a) == 0 || len(b) == 0 {
		return Alignment{}, fmt.Errorf("%w: cannot align sequences of length %d and %d", ErrEmptySequence, len(a), len(b))
	}
	rows, cols := len(a)+1, len(b)+1
	g := newGrid(rows, cols)

	g.score[nwDiag][0] = 0
	for i := 1; i < rows; i++ {
		k := g.at(i, 0)
		if i == 1 {
			g.score[nwUp][k] = sc.Gap(false)
			g.from[nwUp][k] = nwDiag
		} else {
			g.score[nwUp][k] = g.score[nwUp][g.at(i-1, 0)] + sc.Gap(true)
			g.from[nwUp][k] = nwUp
		}
	}
	for j := 1; j < cols; j++ {
		k := g.at(0, j)
		if j == 1 {
			g.score[nwLeft][k] = sc.Gap(false)
			g.from[nwLeft][k] = nwDiag
		} else {
			g.score[nwLeft][k] = g.score[nwLeft][g.at(0, j-1)] + sc.Gap(true)
			g.from[nwLeft][k] = nwLeft
		}
	}

	open, extend := sc.Gap(false), sc.Gap(true)
	for i := 1; i < rows; i++ {
		for j := 1; j < cols; j++ {
			k := g.at(i, j)

			p := g.at(i-1, j-1)
			v, s := best([nwStates]float64{g.score[nwDiag][p], g.score[nwUp][p], g.score[nwLeft][p]})
			g.score[nwDiag][k] = v + sc.Pair(a[i-1], b[j-1])
			g.from[nwDiag][k] = s

			p = g.at(i-1, j)
			v, s = best([nwStates]float64{g.score[nwDiag][p] + open, g.score[nwUp][p] + extend, g.score[nwLeft][p] + open})
			g.score[nwUp][k] = v
			g.from[nwUp][k] = s

			p = g.at(i, j-1)
			v, s = best([nwStates]float64{g.score[nwDiag][p] + open, g.score[nwUp][p] + open, g.score[nwLeft][p] + extend})
			g.score[nwLeft][k] = v
			g.from[nwLeft][k] = s
		}
	}

	end := g.at(rows-1, cols-1)
	score, state := best([nwStates]float64{g.score[nwDiag][end], g.score[nwUp][end], g.score[nwLeft][end]})

	rowA := make([]byte, 0, len(a)+len(b))
	rowB := make([]byte, 0, len(a)+len(b))
	i, j := rows-1, cols-1
	for i > 0 || j > 0 {
		prev := g.from[state][g.at(i, j)]
		switch state {
		case nwDiag:
			i--
			j--
			rowA = append(rowA, a[i])
			rowB = append(rowB, b[j])
		case nwUp:
			i--
			rowA = append(rowA, a[i])
			rowB = append(rowB, residue.Gap)
		default:
			j--
			rowA = append(rowA, residue.Gap)
			rowB = append(rowB, b[j])
		}
		state = prev
	}
	reverse(rowA)
	reverse(rowB)

	return Alignment{A: rowA, B: rowB, Score: score}, nil
}

func reverse(s []byte) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// ScoreOf re-scores an existing alignment under sc, using the same
// open/extend rule as Global. Adjacent gaps in opposite rows each open
// their own run.
func ScoreOf(aln Alignment, sc Scoring) float64 {
	var total float64
	last := -1
	for k := range aln.A {
		x, y := aln.A[k], aln.B[k]
		switch {
		case x != residue.Gap && y != residue.Gap:
			total += sc.Pair(x, y)
			last = nwDiag
		case y == residue.Gap && x != residue.Gap:
			total += sc.Gap(last == nwUp)
			last = nwUp
		case x == residue.Gap && y != residue.Gap:
			total += sc.Gap(last == nwLeft)
			last = nwLeft
		}
	}
	return total
}
