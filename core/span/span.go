// Package span turns transmembrane segments predicted by the PPM server
// into Rosetta membrane span files.
package span

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"resmap-core/textio"
)

var ErrBadSegment = errors.New("bad transmembrane segment")

// Segment is an inclusive residue range.
type Segment struct {
	Start, End int
}

// ParsePPM reads PPM segment lists such as "1( 12- 35), 2( 50- 70)".
// Segments may span several lines; the label before '(' is ignored and a
// bare "12-35" is accepted too.
func ParsePPM(r io.Reader, name string) ([]Segment, error) {
	var out []Segment
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		for _, field := range strings.Split(sc.Text(), ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			s, err := parseSegment(field)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", name, ln, err)
			}
			out = append(out, s)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func parseSegment(field string) (Segment, error) {
	rng := field
	if i := strings.IndexByte(field, '('); i >= 0 {
		j := strings.IndexByte(field, ')')
		if j < i {
			return Segment{}, fmt.Errorf("%w: unbalanced parentheses in %q", ErrBadSegment, field)
		}
		rng = field[i+1 : j]
	}
	lo, hi, ok := strings.Cut(rng, "-")
	if !ok {
		return Segment{}, fmt.Errorf("%w: no range in %q", ErrBadSegment, field)
	}
	start, err1 := strconv.Atoi(strings.TrimSpace(lo))
	end, err2 := strconv.Atoi(strings.TrimSpace(hi))
	if err1 != nil || err2 != nil {
		return Segment{}, fmt.Errorf("%w: non-integer bounds in %q", ErrBadSegment, field)
	}
	if start < 1 || end < start {
		return Segment{}, fmt.Errorf("%w: %d-%d", ErrBadSegment, start, end)
	}
	return Segment{Start: start, End: end}, nil
}

// ParsePPMFile is ParsePPM over a named file.
func ParsePPMFile(path string) ([]Segment, error) {
	fh, err := textio.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return ParsePPM(fh, path)
}

// File is a Rosetta span file for a protein of Residues residues.
type File struct {
	Name     string
	Residues int
	Segments []Segment
}

// Check verifies that segments are ordered, disjoint and inside the
// protein.
func (f File) Check() error {
	if f.Residues < 1 {
		return fmt.Errorf("residue count must be positive, got %d", f.Residues)
	}
	prev := 0
	for _, s := range f.Segments {
		if s.End > f.Residues {
			return fmt.Errorf("%w: %d-%d ends past residue %d", ErrBadSegment, s.Start, s.End, f.Residues)
		}
		if s.Start <= prev {
			return fmt.Errorf("%w: %d-%d overlaps or precedes the segment ending at %d", ErrBadSegment, s.Start, s.End, prev)
		}
		prev = s.End
	}
	return nil
}

// Write emits f in span file layout: a title, the segment and residue
// counts, the topology lines and one "start end start end" row per
// segment.
func (f File) Write(w io.Writer) error {
	if err := f.Check(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "TM region definitions for %s using PPM\n", f.Name)
	fmt.Fprintf(bw, "%d %d\n", len(f.Segments), f.Residues)
	fmt.Fprint(bw, "antiparallel\nn2c\n")
	for _, s := range f.Segments {
		fmt.Fprintf(bw, "%d\t%d\t%d\t%d\n", s.Start, s.End, s.Start, s.End)
	}
	return bw.Flush()
}
