// internal/integration/renumber_test.go
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"resmap-core/fasta"
	"resmap/internal/renumberapp"
	"resmap/pkg/api"
)

func structure() string {
	return pdbFile(
		"HEADER    TEST STRUCTURE",
		atom(1, "N", "MET", 'A', 5),
		atom(2, "CA", "MET", 'A', 5),
		atom(3, "N", "LYS", 'A', 6),
		atom(4, "N", "VAL", 'A', 7),
		atom(5, "N", "GLY", 'B', 5),
		"TER",
		"END",
	)
}

func TestRenumberFromMapping(t *testing.T) {
	dir := t.TempDir()
	in := write(t, dir, "in.pdb", structure())
	m := write(t, dir, "map.txt", "# old new\n5 105\n6 106\nseven 107\n7 107\n")
	outPath := filepath.Join(dir, "out.pdb")

	var out, errB bytes.Buffer
	code := renumberapp.Run([]string{"-i", in, "-c", "A", "-m", m, "-o", outPath}, &out, &errB)
	if code != 0 {
		t.Fatalf("exit %d err=%s", code, errB.String())
	}
	if !strings.Contains(errB.String(), "WARN: ") || !strings.Contains(errB.String(), "seven or 107") {
		t.Fatalf("expected warning for the non-integer line: %q", errB.String())
	}
	got := read(t, outPath)
	if strings.Join(residueNumbers(got, 'A'), ",") != " 105, 105, 106, 107" {
		t.Fatalf("chain A numbers %q", residueNumbers(got, 'A'))
	}
	if strings.Join(residueNumbers(got, 'B'), ",") != "   5" {
		t.Fatalf("chain B must be untouched: %q", residueNumbers(got, 'B'))
	}
	if len(got) != len(structure()) || !strings.HasPrefix(got, "HEADER") {
		t.Fatalf("layout changed:\n%s", got)
	}
	if !strings.Contains(out.String(), "Done!") {
		t.Fatalf("stdout: %s", out.String())
	}
}

func TestRenumberFromSequence(t *testing.T) {
	dir := t.TempDir()
	in := write(t, dir, "in.pdb", structure())
	target := write(t, dir, "target.fa", ">P1 canonical\nGGMKV\n")
	outPath := filepath.Join(dir, "out.pdb")
	alnPath := filepath.Join(dir, "alignment.fasta")
	mapPath := filepath.Join(dir, "map.txt")

	var out, errB bytes.Buffer
	code := renumberapp.Run([]string{
		"-i", in, "-c", "A", "-s", target, "-o", outPath,
		"--start-seqres", "5", "--save-alignment", alnPath, "--mapping-out", mapPath,
	}, &out, &errB)
	if code != 0 {
		t.Fatalf("exit %d err=%s", code, errB.String())
	}
	if strings.Contains(errB.String(), "WARN") {
		t.Fatalf("unexpected warning: %s", errB.String())
	}
	if got := strings.Join(residueNumbers(read(t, outPath), 'A'), ","); got != "   3,   3,   4,   5" {
		t.Fatalf("chain A numbers %q", got)
	}
	a, b, err := fasta.ReadPair(alnPath)
	if err != nil || string(a.Seq) != "--MKV" || string(b.Seq) != "GGMKV" || a.ID != "PDB_A" {
		t.Fatalf("saved alignment: %+v %+v %v", a, b, err)
	}
	if got := read(t, mapPath); got != "5 3\n6 4\n7 5\n" {
		t.Fatalf("mapping file %q", got)
	}
	if !strings.Contains(out.String(), "--MKV\n") {
		t.Fatalf("alignment block missing:\n%s", out.String())
	}
}

func TestRenumberFromSequenceNumberingGap(t *testing.T) {
	dir := t.TempDir()
	in := write(t, dir, "in.pdb", pdbFile(
		atom(1, "N", "MET", 'A', 5),
		atom(2, "N", "LYS", 'A', 6),
		atom(3, "N", "VAL", 'A', 9),
		"END",
	))
	target := write(t, dir, "target.fa", ">P1\nGGMKV\n")

	var out, errB bytes.Buffer
	renumberapp.Run([]string{
		"-i", in, "-c", "A", "-s", target, "-o", filepath.Join(dir, "out.pdb"),
		"--start-seqres", "5", "--save-alignment", filepath.Join(dir, "aln.fasta"),
	}, &out, &errB)
	if !strings.Contains(errB.String(), "WARN: chain A numbering jumps from 6 to 9") {
		t.Fatalf("missing numbering warning: %q", errB.String())
	}
}

func TestRenumberFromAlignmentJSON(t *testing.T) {
	dir := t.TempDir()
	in := write(t, dir, "in.pdb", structure())
	aln := write(t, dir, "aln.fasta", ">pdb\nMK-V\n>target\nMKAV\n")
	outPath := filepath.Join(dir, "out.pdb")

	var out, errB bytes.Buffer
	code := renumberapp.Run([]string{
		"-i", in, "-c", "A", "-a", aln, "-o", outPath, "--start-seqres", "5", "--report", "json",
	}, &out, &errB)
	if code != 0 {
		t.Fatalf("exit %d err=%s", code, errB.String())
	}
	var v api.AlignmentV1
	if err := json.Unmarshal(out.Bytes(), &v); err != nil {
		t.Fatalf("stdout must hold only JSON: %v\n%s", err, out.String())
	}
	if v.Start != 5 || len(v.Mapping) != 3 || *v.Mapping[2].To != 4 {
		t.Fatalf("report %+v", v)
	}
	if got := strings.Join(residueNumbers(read(t, outPath), 'A'), ","); got != "   1,   1,   2,   4" {
		t.Fatalf("chain A numbers %q", got)
	}
}

func TestRenumberIncompleteMappingWritesNothing(t *testing.T) {
	dir := t.TempDir()
	in := write(t, dir, "in.pdb", structure())
	m := write(t, dir, "map.txt", "5 105\n")
	outPath := filepath.Join(dir, "out.pdb")

	var out, errB bytes.Buffer
	code := renumberapp.Run([]string{"-i", in, "-c", "A", "-m", m, "-o", outPath}, &out, &errB)
	if code != 1 {
		t.Fatalf("exit %d, want 1 (err=%s)", code, errB.String())
	}
	if _, err := os.Stat(outPath); !os.IsNotExist(err) {
		t.Fatalf("output must not exist after a failed run: %v", err)
	}
}

func TestRenumberToStdout(t *testing.T) {
	dir := t.TempDir()
	in := write(t, dir, "in.pdb", structure())
	m := write(t, dir, "map.txt", "5 1\n6 2\n7 3\n")

	var out, errB bytes.Buffer
	if code := renumberapp.Run([]string{"-i", in, "-c", "A", "-m", m, "-o", "-"}, &out, &errB); code != 0 {
		t.Fatalf("exit %d err=%s", code, errB.String())
	}
	if !strings.HasPrefix(out.String(), "HEADER") || strings.Contains(out.String(), "Done!") {
		t.Fatalf("stdout must hold only the PDB:\n%s", out.String())
	}
	if got := strings.Join(residueNumbers(out.String(), 'A'), ","); got != "   1,   1,   2,   3" {
		t.Fatalf("chain A numbers %q", got)
	}
}
