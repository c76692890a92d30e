package residue

import "testing"

func TestValidate(t *testing.T) {
	got, err := Validate([]byte(" acd\nEx "))
	if err != nil || string(got) != "ACDEX" {
		t.Fatalf("Validate: got %q err=%v", got, err)
	}
	if _, err := Validate([]byte("AC1")); err == nil {
		t.Fatalf("expected error for digit")
	}
	if _, err := Validate(nil); err == nil {
		t.Fatalf("expected error for empty sequence")
	}
}

func TestValidateTrailingStop(t *testing.T) {
	got, err := Validate([]byte("MKV*\n"))
	if err != nil || string(got) != "MKV" {
		t.Fatalf("Validate: got %q err=%v", got, err)
	}
	if _, err := Validate([]byte("MK*V")); err == nil {
		t.Fatalf("expected error for an internal stop")
	}
	if _, err := Validate([]byte("MKV**")); err == nil {
		t.Fatalf("only one trailing stop is dropped")
	}
	if _, err := Validate([]byte("*")); err == nil {
		t.Fatalf("expected error for a lone stop")
	}
}

func TestIsStandard(t *testing.T) {
	for _, c := range []byte(Standard) {
		if !IsStandard(c) {
			t.Errorf("%c should be standard", c)
		}
	}
	for _, c := range []byte("XBZ-*1") {
		if IsStandard(c) {
			t.Errorf("%c should not be standard", c)
		}
	}
	if !IsValid('X') || IsValid('-') {
		t.Fatalf("IsValid: X must be valid, gap must not")
	}
}

func TestFromThree(t *testing.T) {
	cases := map[string]byte{"ALA": 'A', "trp": 'W', " MSE": 'M', "SEC": 'U'}
	for name, want := range cases {
		if got, ok := FromThree(name); !ok || got != want {
			t.Errorf("FromThree(%q) = %c,%v want %c", name, got, ok, want)
		}
	}
	if _, ok := FromThree("HOH"); ok {
		t.Fatalf("HOH must not convert")
	}
}

func TestDegap(t *testing.T) {
	if got := string(Degap([]byte("-AC--D-"))); got != "ACD" {
		t.Fatalf("Degap = %q", got)
	}
}
