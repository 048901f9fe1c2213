package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"json", JSONFormat},
		{"JSON", JSONFormat},
		{"j", JSONFormat},
		{"yaml", YAMLFormat},
		{"yml", YAMLFormat},
		{"YML", YAMLFormat},
		{"y", YAMLFormat},
		{"toml", TOMLFormat},
		{"TOML", TOMLFormat},
		{"toon", TOONFormat},
		{"Toon", TOONFormat},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFormatBad(t *testing.T) {
	for _, in := range []string{"", "xml", "jsonl"} {
		_, err := ParseFormat(in)
		if !errors.Is(err, ErrBadFormat) {
			t.Errorf("ParseFormat(%q) = %v, want ErrBadFormat", in, err)
		}
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d): %v", f, err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", d, err)
		}
		if g != f {
			t.Errorf("round trip %s: got %s", f, g)
		}
	}
}

func TestSuffix(t *testing.T) {
	if got := TOONFormat.Suffix(); got != ".toon" {
		t.Errorf("Suffix() = %q", got)
	}
	if got := TOMLFormat.Suffix(); got != ".toml" {
		t.Errorf("Suffix() = %q", got)
	}
}
