// internal/integration/span_test.go
package integration

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"resmap/internal/spanapp"
)

func TestPPMToSpan(t *testing.T) {
	dir := t.TempDir()
	in := write(t, dir, "ppm.txt", "1( 12- 35), 2( 50- 70)\n")
	outPath := filepath.Join(dir, "1abc.span")

	var out, errB bytes.Buffer
	if code := spanapp.Run([]string{"-i", in, "-n", "120", "-o", outPath}, &out, &errB); code != 0 {
		t.Fatalf("exit %d err=%s", code, errB.String())
	}
	want := "TM region definitions for 1abc using PPM\n2 120\nantiparallel\nn2c\n12\t35\t12\t35\n50\t70\t50\t70\n"
	if got := read(t, outPath); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if !strings.Contains(out.String(), "detected 2 transmembrane segments") {
		t.Fatalf("stdout: %s", out.String())
	}
}

func TestPPMToSpanStdout(t *testing.T) {
	dir := t.TempDir()
	in := write(t, dir, "ppm.txt", "1(3-9)\n")

	var out, errB bytes.Buffer
	if code := spanapp.Run([]string{"-i", in, "-n", "20", "-o", "-", "--name", "tm1"}, &out, &errB); code != 0 {
		t.Fatalf("exit %d err=%s", code, errB.String())
	}
	if out.String() != "TM region definitions for tm1 using PPM\n1 20\nantiparallel\nn2c\n3\t9\t3\t9\n" {
		t.Fatalf("stdout must hold only the span file: %q", out.String())
	}
	if !strings.Contains(errB.String(), "Span file written to -") {
		t.Fatalf("stderr: %q", errB.String())
	}
}

func TestPPMToSpanSegmentPastEnd(t *testing.T) {
	dir := t.TempDir()
	in := write(t, dir, "ppm.txt", "1( 12- 35)\n")
	outPath := filepath.Join(dir, "x.span")

	var out, errB bytes.Buffer
	if code := spanapp.Run([]string{"-i", in, "-n", "30", "-o", outPath}, &out, &errB); code != 2 {
		t.Fatalf("exit %d, want 2 (err=%s)", code, errB.String())
	}
	if !strings.Contains(errB.String(), "ends past residue 30") {
		t.Fatalf("stderr: %q", errB.String())
	}
}
