// Package pdb reads and rewrites fixed-column PDB coordinate records.
//
// Only the columns this package needs are interpreted: the record name
// (columns 1-6), residue name (18-20), chain identifier (22), residue
// sequence number (23-26) and insertion code (27). Every other byte of a
// line is carried through untouched.
package pdb

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"resmap-core/mapping"
)

// 0-based byte offsets.
const (
	recordEnd  = 6
	resNameCol = 17
	chainCol   = 21
	resSeqCol  = 22
	resSeqEnd  = 26
	iCodeCol   = 26
)

var (
	// ErrIncompleteMapping means a residue number of the target chain has
	// no mapped entry. The whole file is rejected.
	ErrIncompleteMapping = errors.New("incomplete residue mapping")
	// ErrBadRecord means a coordinate record cannot be read or rewritten.
	ErrBadRecord = errors.New("malformed coordinate record")
)

// DefaultRecords are the record names renumbered when none are given.
var DefaultRecords = []string{"ATOM"}

// RenumberOptions select which lines are rewritten and how.
type RenumberOptions struct {
	Chain   byte
	Table   *mapping.Table
	Records []string
}

// Stats counts processed lines.
type Stats struct {
	Lines      int
	Renumbered int
}

// Renumber copies r to w, replacing the residue sequence number of every
// selected record of opts.Chain with its mapped value, right-justified in
// the same four columns. Nothing is written to w unless every selected
// record could be renumbered.
func Renumber(r io.Reader, w io.Writer, opts RenumberOptions) (Stats, error) {
	var st Stats
	if opts.Table == nil {
		return st, fmt.Errorf("%w: no residue mapping given", ErrIncompleteMapping)
	}
	records := opts.Records
	if len(records) == 0 {
		records = DefaultRecords
	}

	var out bytes.Buffer
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			st.Lines++
			if selected(line, records, opts.Chain) {
				if e := rewrite(line, opts.Table); e != nil {
					return st, fmt.Errorf("line %d: %w", st.Lines, e)
				}
				st.Renumbered++
			}
			out.Write(line)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return st, err
		}
	}
	if _, err := out.WriteTo(w); err != nil {
		return st, err
	}
	return st, nil
}

func recordName(line []byte) string {
	end := recordEnd
	if len(line) < end {
		end = len(line)
	}
	return strings.TrimSpace(string(line[:end]))
}

func selected(line []byte, records []string, chain byte) bool {
	name := recordName(line)
	for _, rec := range records {
		if name == rec {
			return len(line) > chainCol && line[chainCol] == chain
		}
	}
	return false
}

func residueNumber(line []byte) (int, error) {
	if len(line) < resSeqEnd {
		return 0, fmt.Errorf("%w: too short for a residue number (%d bytes)", ErrBadRecord, len(line))
	}
	field := strings.TrimSpace(string(line[resSeqCol:resSeqEnd]))
	n, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("%w: residue number %q", ErrBadRecord, field)
	}
	return n, nil
}

// rewrite replaces the residue number of line in place.
func rewrite(line []byte, table *mapping.Table) error {
	old, err := residueNumber(line)
	if err != nil {
		return err
	}
	to, ok := table.Lookup(old)
	if !ok {
		return fmt.Errorf("%w: residue %d not in mapping", ErrIncompleteMapping, old)
	}
	if !to.Mapped {
		return fmt.Errorf("%w: residue %d has no counterpart in the target sequence", ErrIncompleteMapping, old)
	}
	field := fmt.Sprintf("%4d", to.Pos)
	if len(field) != resSeqEnd-resSeqCol {
		return fmt.Errorf("%w: new residue number %d does not fit in 4 columns", ErrBadRecord, to.Pos)
	}
	copy(line[resSeqCol:resSeqEnd], field)
	return nil
}
