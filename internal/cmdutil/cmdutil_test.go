package cmdutil

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"syscall"
	"testing"
)

func TestWarnf(t *testing.T) {
	var buf bytes.Buffer
	Warnf(&buf, false, "suspicious alignment, please check %s", "aln.fasta")
	if buf.String() != "WARN: suspicious alignment, please check aln.fasta\n" {
		t.Fatalf("got %q", buf.String())
	}
	buf.Reset()
	Warnf(&buf, true, "hidden")
	Warnings(&buf, true, []string{"a", "b"})
	if buf.Len() != 0 {
		t.Fatalf("quiet mode printed %q", buf.String())
	}
	Warnings(&buf, false, []string{"a", "100%"})
	if buf.String() != "WARN: a\nWARN: 100%\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestIsBrokenPipe(t *testing.T) {
	if !IsBrokenPipe(fmt.Errorf("write: %w", syscall.EPIPE)) || !IsBrokenPipe(io.ErrClosedPipe) {
		t.Fatalf("pipe errors not recognized")
	}
	if IsBrokenPipe(nil) || IsBrokenPipe(errors.New("disk full")) {
		t.Fatalf("false positive")
	}
}

type failWriter struct{ err error }

func (f failWriter) Write([]byte) (int, error) { return 0, f.err }

func TestFinish(t *testing.T) {
	var errBuf bytes.Buffer
	out := bufio.NewWriter(failWriter{errors.New("disk full")})
	out.WriteString("x")
	if code := Finish(out, &errBuf, 0); code != 3 || errBuf.Len() == 0 {
		t.Fatalf("code %d, stderr %q", code, errBuf.String())
	}
	out = bufio.NewWriter(failWriter{syscall.EPIPE})
	out.WriteString("x")
	if code := Finish(out, &errBuf, 1); code != 1 {
		t.Fatalf("broken pipe must keep code, got %d", code)
	}
}
