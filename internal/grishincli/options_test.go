package grishincli

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func TestInputsAndGlobs(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"a.aln", "b.aln"} {
		_ = os.WriteFile(filepath.Join(dir, n), []byte("CLUSTAL\n"), 0o644)
	}
	o, err := ParseArgs(newFS(), []string{"-n", "3", "-i", "x.aln", filepath.Join(dir, "*.aln")})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(o.Inputs) != 3 || o.Inputs[0] != "x.aln" || o.NSeqs != 3 || o.OutDir != "." {
		t.Fatalf("bad parse: %+v", o)
	}
}

func TestErrors(t *testing.T) {
	for _, args := range [][]string{
		{"-n", "3"},
		{"-i", "x.aln"},
		{"-i", "x.aln", "-n", "1"},
		{"-i", "x.aln", "-n", "2", "--outdir", ""},
		{"-n", "2", filepath.Join(t.TempDir(), "*.none")},
	} {
		if _, err := ParseArgs(newFS(), args); err == nil {
			t.Fatalf("%v: expected error", args)
		}
	}
}
