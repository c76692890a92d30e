// pkg/api/alignment_v1.go
package api

// AlignmentV1 is the stable JSON schema for a pairwise alignment report.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type AlignmentV1 struct {
	IDA        string    `json:"id_a"`
	IDB        string    `json:"id_b"`
	RowA       string    `json:"row_a"`
	RowB       string    `json:"row_b"`
	Score      float64   `json:"score"`
	Scoring    ScoringV1 `json:"scoring"`
	Mismatches int       `json:"mismatches"`
	Compared   int       `json:"compared"`
	Residues   int       `json:"residues"`
	Identity   float64   `json:"identity"`
	Suspicious bool      `json:"suspicious"`

	// Correspondence of row A positions to row B positions.
	Start   int         `json:"start,omitempty"`
	Mapping []MappingV1 `json:"mapping,omitempty"`
}

// ScoringV1 records the parameters the alignment was computed with.
type ScoringV1 struct {
	Match     float64 `json:"match"`
	Mismatch  float64 `json:"mismatch"`
	GapOpen   float64 `json:"gap_open"`
	GapExtend float64 `json:"gap_extend"`
}

// MappingV1 is one correspondence entry. To is null when the residue faces a gap.
type MappingV1 struct {
	From int  `json:"from"`
	To   *int `json:"to"`
}
