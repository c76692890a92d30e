package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"resmap-core/align"
	"resmap-core/mapping"
	"resmap/pkg/api"
)

func pair(t *testing.T) Pair {
	t.Helper()
	aln, err := align.Global([]byte("ACDE"), []byte("ACE"), align.DefaultScoring)
	if err != nil {
		t.Fatal(err)
	}
	return Pair{
		IDA: "pdb", IDB: "target",
		Aln: aln, Scoring: align.DefaultScoring,
		Report: align.Validate(aln),
		Start:  5, Table: mapping.Build(aln, 5),
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FormatJSON, pair(t)); err != nil {
		t.Fatal(err)
	}
	var v api.AlignmentV1
	if err := json.Unmarshal(buf.Bytes(), &v); err != nil {
		t.Fatalf("decode: %v\n%s", err, buf.String())
	}
	if v.RowA != "ACDE" || v.RowB != "AC-E" || v.Score != -7 || v.Scoring.GapOpen != -10 {
		t.Fatalf("report %+v", v)
	}
	if len(v.Mapping) != 4 || v.Mapping[2].From != 7 || v.Mapping[2].To != nil || *v.Mapping[3].To != 3 {
		t.Fatalf("mapping %+v", v.Mapping)
	}
	if !strings.Contains(buf.String(), `"to": null`) {
		t.Fatalf("unmapped entry must be null:\n%s", buf.String())
	}
}

func TestWriteJSONWithoutTable(t *testing.T) {
	p := pair(t)
	p.Table = nil
	var buf bytes.Buffer
	if err := WriteJSON(&buf, p); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "mapping") || strings.Contains(buf.String(), `"start"`) {
		t.Fatalf("mapping must be omitted:\n%s", buf.String())
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FormatText, pair(t)); err != nil {
		t.Fatal(err)
	}
	want := "ACDE\n|| |\nAC-E\n  Score=-7\nMismatches: 0/3  Identity: 100.0%\n"
	if buf.String() != want {
		t.Fatalf("got %q want %q", buf.String(), want)
	}
	if err := Write(&buf, "xml", pair(t)); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
