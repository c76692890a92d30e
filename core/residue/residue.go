// Package residue holds the amino-acid alphabet used across resmap.
package residue

import (
	"fmt"
	"strings"
)

// Gap is the alignment gap symbol.
const Gap = '-'

// Standard is the 20-letter amino-acid alphabet.
const Standard = "ACDEFGHIKLMNPQRSTVWY"

// extended codes accepted in sequences but not as variant residues.
const extended = "XBZJUO"

// three-letter residue names → one-letter codes.
var threeToOne = map[string]byte{
	"ALA": 'A', "ARG": 'R', "ASN": 'N', "ASP": 'D', "CYS": 'C',
	"GLN": 'Q', "GLU": 'E', "GLY": 'G', "HIS": 'H', "ILE": 'I',
	"LEU": 'L', "LYS": 'K', "MET": 'M', "PHE": 'F', "PRO": 'P',
	"SER": 'S', "THR": 'T', "TRP": 'W', "TYR": 'Y', "VAL": 'V',
	// common modified residues
	"MSE": 'M', "SEC": 'U', "PYL": 'O',
}

// IsStandard reports whether c is one of the 20 standard residues.
func IsStandard(c byte) bool {
	return strings.IndexByte(Standard, c) >= 0
}

// IsValid reports whether c is a standard or extended residue code.
func IsValid(c byte) bool {
	return IsStandard(c) || strings.IndexByte(extended, c) >= 0
}

// FromThree converts a PDB residue name to its one-letter code.
func FromThree(name string) (byte, bool) {
	c, ok := threeToOne[strings.ToUpper(strings.TrimSpace(name))]
	return c, ok
}

// Normalize drops whitespace, upper-cases residue letters and removes one
// trailing stop symbol '*'.
func Normalize(s []byte) []byte {
	out := make([]byte, 0, len(s))
	for _, c := range s {
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' {
			continue
		}
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		out = append(out, c)
	}
	if n := len(out); n > 0 && out[n-1] == '*' {
		out = out[:n-1]
	}
	return out
}

// Validate returns a normalized sequence or an error if any code is unknown.
func Validate(raw []byte) ([]byte, error) {
	s := Normalize(raw)
	if len(s) == 0 {
		return s, fmt.Errorf("empty sequence")
	}
	for i, c := range s {
		if !IsValid(c) {
			return nil, fmt.Errorf("invalid residue %q at %d", c, i+1)
		}
	}
	return s, nil
}

// Degap returns row with gap symbols removed.
func Degap(row []byte) []byte {
	out := make([]byte, 0, len(row))
	for _, c := range row {
		if c != Gap {
			out = append(out, c)
		}
	}
	return out
}
