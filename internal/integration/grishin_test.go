// internal/integration/grishin_test.go
package integration

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"resmap/internal/grishinapp"
)

const clustalInput = `CLUSTAL O(1.2.4) multiple sequence alignment


1abcA      MKV-LLE
2xyzB      MKVALL-
3defC      MRV-LLE
           *:* **

1abcA      WYK
2xyzB      WY-
3defC      WYK
           **
`

func TestClustalToGrishin(t *testing.T) {
	dir := t.TempDir()
	in := write(t, dir, "family.aln", clustalInput)
	outDir := filepath.Join(dir, "grishin")

	var out, errB bytes.Buffer
	code := grishinapp.Run([]string{"-i", in, "-n", "3", "--outdir", outDir}, &out, &errB)
	if code != 0 {
		t.Fatalf("exit %d err=%s", code, errB.String())
	}
	got := read(t, filepath.Join(outDir, "1abcA_3defC.grishin"))
	want := "## 1abcA 3defC.pdb\n#\nscore from program: 0\n0 MKV-LLEWYK\n0 MRV-LLEWYK"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	read(t, filepath.Join(outDir, "1abcA_2xyzB.grishin"))
	if strings.Count(out.String(), "Wrote a pairwise alignment") != 2 {
		t.Fatalf("stdout: %s", out.String())
	}
}

func TestClustalToGrishinWrongCount(t *testing.T) {
	dir := t.TempDir()
	in := write(t, dir, "family.aln", clustalInput)

	var out, errB bytes.Buffer
	if code := grishinapp.Run([]string{"-n", "4", in, "--outdir", dir}, &out, &errB); code != 2 {
		t.Fatalf("exit %d, want 2 (err=%s)", code, errB.String())
	}
}
