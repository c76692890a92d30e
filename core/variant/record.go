// Package variant parses single-residue variant lists and moves their
// positions into a target sequence's numbering.
package variant

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"resmap-core/residue"
	"resmap-core/textio"
)

// ErrInvalidRecord is returned for variant lines that cannot be parsed or
// whose values are out of range.
var ErrInvalidRecord = errors.New("invalid variant record")

// Record is a single-point amino-acid substitution, e.g. P12345 5 W L.
type Record struct {
	Source   string
	Position int
	WildType byte
	Variant  byte
}

// New validates and returns a Record.
func New(source string, pos int, wildType, variant byte) (Record, error) {
	if source == "" {
		return Record{}, fmt.Errorf("%w: empty sequence id", ErrInvalidRecord)
	}
	if pos < 1 {
		return Record{}, fmt.Errorf("%w: position %d, expected a positive int", ErrInvalidRecord, pos)
	}
	if !residue.IsStandard(wildType) {
		return Record{}, fmt.Errorf("%w: wild-type residue %q", ErrInvalidRecord, wildType)
	}
	if !residue.IsStandard(variant) {
		return Record{}, fmt.Errorf("%w: variant residue %q", ErrInvalidRecord, variant)
	}
	return Record{Source: source, Position: pos, WildType: wildType, Variant: variant}, nil
}

// WithPosition returns a copy of r at pos.
func (r Record) WithPosition(pos int) (Record, error) {
	return New(r.Source, pos, r.WildType, r.Variant)
}

func (r Record) String() string {
	return fmt.Sprintf("%s %d %c %c", r.Source, r.Position, r.WildType, r.Variant)
}

var separators = strings.NewReplacer(",", " ", ":", " ")

// Parse reads "id pos wt var". ',' and ':' count as whitespace, and the
// "id wt pos var" order is accepted when the second field is not a number.
func Parse(line string) (Record, error) {
	f := strings.Fields(separators.Replace(line))
	if len(f) != 4 {
		return Record{}, fmt.Errorf("%w: %d fields in %q, expected 4", ErrInvalidRecord, len(f), strings.TrimSpace(line))
	}
	posField, wtField := f[1], f[2]
	if _, err := strconv.Atoi(posField); err != nil {
		posField, wtField = f[2], f[1]
	}
	pos, err := strconv.Atoi(posField)
	if err != nil {
		return Record{}, fmt.Errorf("%w: no position in %q", ErrInvalidRecord, strings.TrimSpace(line))
	}
	if len(wtField) != 1 || len(f[3]) != 1 {
		return Record{}, fmt.Errorf("%w: residues must be single letters in %q", ErrInvalidRecord, strings.TrimSpace(line))
	}
	wt, mut := strings.ToUpper(wtField), strings.ToUpper(f[3])
	return New(f[0], pos, wt[0], mut[0])
}

// Load parses one record per line, skipping blank lines and '#' comments.
func Load(r io.Reader, name string) ([]Record, error) {
	var out []Record
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		rec, err := Parse(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, ln, err)
		}
		out = append(out, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadFile is Load over a named file.
func LoadFile(path string) ([]Record, error) {
	fh, err := textio.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return Load(fh, path)
}

// Write emits one record per line.
func Write(w io.Writer, recs []Record) error {
	bw := bufio.NewWriter(w)
	for _, r := range recs {
		if _, err := fmt.Fprintln(bw, r.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}
