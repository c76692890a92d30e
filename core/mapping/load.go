package mapping

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"resmap-core/textio"
)

// ErrBadLine is returned for mapping lines without exactly two fields.
var ErrBadLine = errors.New("bad mapping line")

// Load reads "old new" residue number pairs, one per line. Lines holding a
// non-integer field are skipped and reported in warns.
func Load(r io.Reader, name string) (*Table, []string, error) {
	t := NewTable()
	var warns []string
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		if len(f) != 2 {
			return nil, warns, fmt.Errorf("%s:%d: %w: want 2 fields, got %d", name, ln, ErrBadLine, len(f))
		}
		from, errFrom := strconv.Atoi(f[0])
		to, errTo := strconv.Atoi(f[1])
		if errFrom != nil || errTo != nil {
			warns = append(warns, fmt.Sprintf("%s:%d: %s or %s is not a valid residue sequence number, skipped", name, ln, f[0], f[1]))
			continue
		}
		t.Set(from, Target{Pos: to, Mapped: true})
	}
	if err := sc.Err(); err != nil {
		return nil, warns, err
	}
	return t, warns, nil
}

// LoadFile is Load over a named file.
func LoadFile(path string) (*Table, []string, error) {
	fh, err := textio.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = fh.Close() }()
	return Load(fh, path)
}

// Write emits t in the format read by Load. Unmapped positions are written
// as comments so that a reloaded table holds only mapped entries.
func Write(w io.Writer, t *Table) error {
	bw := bufio.NewWriter(w)
	for _, k := range t.order {
		to := t.entries[k]
		if to.Mapped {
			fmt.Fprintf(bw, "%d %d\n", k, to.Pos)
		} else {
			fmt.Fprintf(bw, "# %d -\n", k)
		}
	}
	return bw.Flush()
}
