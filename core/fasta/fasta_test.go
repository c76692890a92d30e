package fasta

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const pair = `>pdb chain A
mkv-WE
>target
MKVAWE
`

func TestRead(t *testing.T) {
	recs, err := Read(strings.NewReader(pair))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(recs) != 2 || recs[0].ID != "pdb" || recs[1].ID != "target" {
		t.Fatalf("records %+v", recs)
	}
	if string(recs[0].Seq) != "MKV-WE" {
		t.Fatalf("seq = %q", recs[0].Seq)
	}
}

func TestReadMultiLine(t *testing.T) {
	recs, err := Read(strings.NewReader(">s\nMKV\nLLE\n\n"))
	if err != nil || len(recs) != 1 || string(recs[0].Seq) != "MKVLLE" {
		t.Fatalf("Read: %+v %v", recs, err)
	}
}

func TestReadPair(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "aln.fasta")
	_ = os.WriteFile(good, []byte(pair), 0o644)
	a, b, err := ReadPair(good)
	if err != nil || a.ID != "pdb" || string(b.Seq) != "MKVAWE" {
		t.Fatalf("ReadPair: %+v %+v %v", a, b, err)
	}

	three := filepath.Join(dir, "three.fasta")
	_ = os.WriteFile(three, []byte(pair+">x\nM\n"), 0o644)
	if _, _, err := ReadPair(three); err == nil {
		t.Fatalf("expected error for three records")
	}
}

func TestReadFirst(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "seq.fa")
	_ = os.WriteFile(p, []byte(pair), 0o644)
	r, err := ReadFirst(p)
	if err != nil || r.ID != "pdb" {
		t.Fatalf("ReadFirst: %+v %v", r, err)
	}
	empty := filepath.Join(dir, "empty.fa")
	_ = os.WriteFile(empty, nil, 0o644)
	if _, err := ReadFirst(empty); err == nil {
		t.Fatalf("expected error for empty file")
	}
}

func TestWriteThenRead(t *testing.T) {
	var buf bytes.Buffer
	long := strings.Repeat("MKV-", 40)
	if err := Write(&buf, Record{ID: "a", Seq: []byte(long)}, Record{ID: "b", Seq: []byte("MKV")}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if len(line) > LineWidth {
			t.Fatalf("line longer than %d: %q", LineWidth, line)
		}
	}
	recs, err := Read(&buf)
	if err != nil || len(recs) != 2 || string(recs[0].Seq) != long || recs[1].ID != "b" {
		t.Fatalf("re-read: %+v %v", recs, err)
	}
}
