package decode

import (
	"errors"
	"testing"

	"github.com/oq-format/go-oq/encode"
	"github.com/oq-format/go-oq/format"
	"github.com/oq-format/go-oq/ir"
)

func mustDecode(t *testing.T, data string, f format.Format) *ir.Node {
	t.Helper()
	node, err := Decode([]byte(data), f)
	if err != nil {
		t.Fatalf("decode %q: %v", data, err)
	}
	return node
}

func TestDecodeJSONOrder(t *testing.T) {
	node := mustDecode(t, `{"z":1,"a":2,"m":3}`, format.JSONFormat)
	if got := encode.MustString(node); got != `{"z":1,"a":2,"m":3}` {
		t.Errorf("got %s", got)
	}
}

func TestDecodeJSONDupKeys(t *testing.T) {
	// last occurrence wins, key keeps its first position
	node := mustDecode(t, `{"a":1,"b":2,"a":3}`, format.JSONFormat)
	if got := encode.MustString(node); got != `{"a":3,"b":2}` {
		t.Errorf("got %s", got)
	}
}

func TestDecodeJSONNumbers(t *testing.T) {
	node := mustDecode(t, `{"i":7,"f":7.5,"big":9007199254740993}`, format.JSONFormat)
	i := ir.Get(node, "i")
	if i.Int64 == nil || *i.Int64 != 7 {
		t.Errorf("i: %v", i)
	}
	f := ir.Get(node, "f")
	if f.Float64 == nil || *f.Float64 != 7.5 {
		t.Errorf("f: %v", f)
	}
	big := ir.Get(node, "big")
	if big.Int64 == nil || *big.Int64 != 9007199254740993 {
		t.Errorf("big: %v", big)
	}
}

func TestDecodeJSONTrailing(t *testing.T) {
	if _, err := Decode([]byte(`{"a":1} {"b":2}`), format.JSONFormat); err == nil {
		t.Error("expected error")
	}
}

func TestDecodeYAMLOrder(t *testing.T) {
	in := "z: 1\na:\n  nested: true\nm:\n- x\n- 2\n"
	node := mustDecode(t, in, format.YAMLFormat)
	if got := encode.MustString(node); got != `{"z":1,"a":{"nested":true},"m":["x",2]}` {
		t.Errorf("got %s", got)
	}
}

func TestDecodeTOML(t *testing.T) {
	in := "title = \"demo\"\n\n[server]\nport = 8080\nhosts = [\"a\", \"b\"]\n"
	node := mustDecode(t, in, format.TOMLFormat)
	// table keys come out sorted
	if got := encode.MustString(node); got != `{"server":{"hosts":["a","b"],"port":8080},"title":"demo"}` {
		t.Errorf("got %s", got)
	}
}

func TestDecodeTOMLDates(t *testing.T) {
	in := "date = 2023-01-15\nts = 2023-01-15T10:00:00Z\n"
	node := mustDecode(t, in, format.TOMLFormat)
	if got := ir.Get(node, "date"); got.Type != ir.StringType || got.String != "2023-01-15" {
		t.Errorf("date: %v", got)
	}
	if got := ir.Get(node, "ts"); got.Type != ir.StringType || got.String != "2023-01-15T10:00:00Z" {
		t.Errorf("ts: %v", got)
	}
}

func TestDecodeErrorFormat(t *testing.T) {
	for _, tc := range []struct {
		data string
		f    format.Format
	}{
		{`{"a":`, format.JSONFormat},
		{"a: [\n", format.YAMLFormat},
		{"= nope\n", format.TOMLFormat},
		{"rows[2]{x}:\n  1\n", format.TOONFormat},
	} {
		_, err := Decode([]byte(tc.data), tc.f)
		if err == nil {
			t.Errorf("%s: expected error", tc.f)
			continue
		}
		var dErr *Error
		if !errors.As(err, &dErr) {
			t.Errorf("%s: error %v not tagged", tc.f, err)
			continue
		}
		if dErr.Format != tc.f {
			t.Errorf("tagged %s, want %s", dErr.Format, tc.f)
		}
	}
}

func TestAuto(t *testing.T) {
	for _, tc := range []struct {
		data string
		f    format.Format
		want string
	}{
		{`{"a":1}`, format.JSONFormat, `{"a":1}`},
		{"a:\n  b: 1\n", format.YAMLFormat, `{"a":{"b":1}}`},
		{"a: 1\n", format.TOONFormat, `{"a":1}`},
		{"a = 1\n", format.TOMLFormat, `{"a":1}`},
		{"", format.JSONFormat, ""},
	} {
		node, f, err := Auto([]byte(tc.data))
		if f != tc.f {
			t.Errorf("%q: detected %s, want %s", tc.data, f, tc.f)
		}
		if tc.want == "" {
			if err == nil {
				t.Errorf("%q: expected error", tc.data)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", tc.data, err)
			continue
		}
		if got := encode.MustString(node); got != tc.want {
			t.Errorf("%q: got %s want %s", tc.data, got, tc.want)
		}
	}
}
