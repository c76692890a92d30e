// internal/clibase/common.go
package clibase

import (
	"flag"

	"resmap-core/align"
)

// Common holds CLI fields shared by every resmap tool.
type Common struct {
	Quiet   bool
	Version bool
}

// Register wires the shared misc flags onto fs.
func Register(fs *flag.FlagSet, c *Common) {
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
}

// RegisterScoring wires the alignment scoring flags onto fs, defaulting
// to align.DefaultScoring.
func RegisterScoring(fs *flag.FlagSet, sc *align.Scoring) {
	d := align.DefaultScoring
	fs.Float64Var(&sc.Match, "match", d.Match, "score of identical residues [1]")
	fs.Float64Var(&sc.Mismatch, "mismatch", d.Mismatch, "score of differing residues [-0.5]")
	fs.Float64Var(&sc.GapOpen, "gap-open", d.GapOpen, "score of opening a gap [-10]")
	fs.Float64Var(&sc.GapExtend, "gap-extend", d.GapExtend, "score of extending a gap [0]")
}
