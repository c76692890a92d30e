package span

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestParsePPM(t *testing.T) {
	in := "1( 12- 35), 2( 50- 70),\n3(88-101)\n\n"
	segs, err := ParsePPM(strings.NewReader(in), "ppm.txt")
	if err != nil {
		t.Fatalf("ParsePPM: %v", err)
	}
	want := []Segment{{12, 35}, {50, 70}, {88, 101}}
	if len(segs) != len(want) {
		t.Fatalf("got %v", segs)
	}
	for i := range want {
		if segs[i] != want[i] {
			t.Fatalf("segment %d: got %v want %v", i, segs[i], want[i])
		}
	}
	bare, err := ParsePPM(strings.NewReader("4-20"), "ppm.txt")
	if err != nil || len(bare) != 1 || bare[0] != (Segment{4, 20}) {
		t.Fatalf("bare range: %v %v", bare, err)
	}
}

func TestParsePPMInvalid(t *testing.T) {
	for _, in := range []string{
		"1( 12 35)",
		"1( a- 35)",
		"1( 35- 12)",
		"1( 0- 12)",
		"1) 12- 35(",
	} {
		_, err := ParsePPM(strings.NewReader("2(1-3)\n"+in), "ppm.txt")
		if !errors.Is(err, ErrBadSegment) {
			t.Errorf("%q: want ErrBadSegment, got %v", in, err)
			continue
		}
		if !strings.Contains(err.Error(), "ppm.txt:2") {
			t.Errorf("%q: error not located: %v", in, err)
		}
	}
}

func TestWrite(t *testing.T) {
	f := File{Name: "1abc", Residues: 120, Segments: []Segment{{12, 35}, {50, 70}}}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := "TM region definitions for 1abc using PPM\n" +
		"2 120\n" +
		"antiparallel\n" +
		"n2c\n" +
		"12\t35\t12\t35\n" +
		"50\t70\t50\t70\n"
	if buf.String() != want {
		t.Fatalf("got %q want %q", buf.String(), want)
	}
}

func TestCheck(t *testing.T) {
	cases := []File{
		{Name: "x", Residues: 0},
		{Name: "x", Residues: 30, Segments: []Segment{{12, 35}}},
		{Name: "x", Residues: 99, Segments: []Segment{{12, 35}, {30, 50}}},
		{Name: "x", Residues: 99, Segments: []Segment{{50, 70}, {12, 35}}},
	}
	for _, f := range cases {
		if err := f.Check(); err == nil {
			t.Errorf("%+v: expected error", f)
		}
	}
	if err := (File{Name: "x", Residues: 10}).Check(); err != nil {
		t.Fatalf("no segments is valid: %v", err)
	}
}
