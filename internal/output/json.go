// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"resmap-core/align"
	"resmap-core/mapping"
	"resmap/pkg/api"
)

// Pair is a computed alignment with everything a report needs.
type Pair struct {
	IDA, IDB string
	Aln      align.Alignment
	Scoring  align.Scoring
	Report   align.Report
	Start    int            // first row A position of Table
	Table    *mapping.Table // nil when no correspondence was built
}

// ToAPIAlignment converts a Pair to the stable wire schema (v1).
func ToAPIAlignment(p Pair) api.AlignmentV1 {
	v := api.AlignmentV1{
		IDA:   p.IDA,
		IDB:   p.IDB,
		RowA:  string(p.Aln.A),
		RowB:  string(p.Aln.B),
		Score: p.Aln.Score,
		Scoring: api.ScoringV1{
			Match:     p.Scoring.Match,
			Mismatch:  p.Scoring.Mismatch,
			GapOpen:   p.Scoring.GapOpen,
			GapExtend: p.Scoring.GapExtend,
		},
		Mismatches: p.Report.Mismatches,
		Compared:   p.Report.Compared,
		Residues:   p.Report.Residues,
		Identity:   p.Report.Identity(),
		Suspicious: p.Report.Suspicious,
	}
	if p.Table != nil {
		v.Start = p.Start
		v.Mapping = toAPIMapping(p.Table)
	}
	return v
}

func toAPIMapping(t *mapping.Table) []api.MappingV1 {
	out := make([]api.MappingV1, 0, t.Len())
	for _, k := range t.Keys() {
		to, _ := t.Lookup(k)
		m := api.MappingV1{From: k}
		if to.Mapped {
			pos := to.Pos
			m.To = &pos
		}
		out = append(out, m)
	}
	return out
}

// WriteJSON writes a single v1 alignment report (pretty-indented).
func WriteJSON(w io.Writer, p Pair) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToAPIAlignment(p))
}
