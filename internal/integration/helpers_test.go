// internal/integration/helpers_test.go
package integration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func write(t *testing.T, dir, name, data string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func read(t *testing.T, fn string) string {
	t.Helper()
	b, err := os.ReadFile(fn)
	if err != nil {
		t.Fatalf("read %s: %v", fn, err)
	}
	return string(b)
}

// atom formats an 80-column ATOM record.
func atom(serial int, name, resName string, chain byte, resSeq int) string {
	return fmt.Sprintf("%-6s%5d %-4s %3s %c%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s  ",
		"ATOM", serial, name, resName, chain, resSeq, 1.5, -2.25, 30.0, 1.0, 15.5, "C")
}

func pdbFile(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

// residueNumbers returns columns 23-26 of every ATOM line of chain.
func residueNumbers(pdb string, chain byte) []string {
	var out []string
	for _, l := range strings.Split(pdb, "\n") {
		if strings.HasPrefix(l, "ATOM") && len(l) > 26 && l[21] == chain {
			out = append(out, l[22:26])
		}
	}
	return out
}
