package pdb

import (
	"bufio"
	"fmt"
	"io"

	"resmap-core/residue"
	"resmap-core/textio"
)

// Chain is the residue sequence of one chain as observed in ATOM records.
type Chain struct {
	ID      byte
	Seq     []byte
	Numbers []int // residue sequence number of each entry of Seq
	Skipped []string
}

// First and Last return the residue numbers of the chain ends.
func (c Chain) First() int { return c.Numbers[0] }
func (c Chain) Last() int  { return c.Numbers[len(c.Numbers)-1] }

// Break is a discontinuity in a chain's residue numbering: Next does not
// follow Prev by one.
type Break struct {
	Prev, Next int
}

// Breaks lists the places where the residue numbers of c are not
// consecutive, such as unresolved loops, skipped residues or insertion
// codes.
func (c Chain) Breaks() []Break {
	var out []Break
	for i := 1; i < len(c.Numbers); i++ {
		if c.Numbers[i] != c.Numbers[i-1]+1 {
			out = append(out, Break{Prev: c.Numbers[i-1], Next: c.Numbers[i]})
		}
	}
	return out
}

type residueKey struct {
	num  int
	icod byte
}

// ChainSequence collects the residues of chain from the ATOM records of the
// first model. Residue names without a one-letter code are skipped and
// listed in Chain.Skipped.
func ChainSequence(r io.Reader, chain byte) (Chain, error) {
	c := Chain{ID: chain}
	sc := bufio.NewScanner(r)
	var (
		last residueKey
		seen bool
	)
	for sc.Scan() {
		line := sc.Bytes()
		name := recordName(line)
		if name == "ENDMDL" {
			break
		}
		if name != "ATOM" || len(line) <= iCodeCol || line[chainCol] != chain {
			continue
		}
		num, err := residueNumber(line)
		if err != nil {
			return c, err
		}
		key := residueKey{num: num, icod: line[iCodeCol]}
		if seen && key == last {
			continue
		}
		last, seen = key, true
		resName := string(line[resNameCol : resNameCol+3])
		code, ok := residue.FromThree(resName)
		if !ok {
			c.Skipped = append(c.Skipped, fmt.Sprintf("%s%d", resName, num))
			continue
		}
		c.Seq = append(c.Seq, code)
		c.Numbers = append(c.Numbers, num)
	}
	if err := sc.Err(); err != nil {
		return c, err
	}
	if len(c.Seq) == 0 {
		return c, fmt.Errorf("no chain %c was found", chain)
	}
	return c, nil
}

// ChainSequenceFile is ChainSequence over a named file.
func ChainSequenceFile(path string, chain byte) (Chain, error) {
	fh, err := textio.Open(path)
	if err != nil {
		return Chain{}, err
	}
	defer func() { _ = fh.Close() }()
	c, err := ChainSequence(fh, chain)
	if err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
