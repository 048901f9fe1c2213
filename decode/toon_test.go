package decode

import (
	"strings"
	"testing"

	"github.com/oq-format/go-oq/encode"
	"github.com/oq-format/go-oq/format"
	"github.com/oq-format/go-oq/ir"
)

func TestDecodeTOON(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		want string // compact JSON
	}{
		{
			"flat",
			"name: Ada\nage: 36\nok: true\n",
			`{"name":"Ada","age":36,"ok":true}`,
		},
		{
			"nested",
			"user:\n  name: Ada\n  langs[2]: go,rust\n",
			`{"user":{"name":"Ada","langs":["go","rust"]}}`,
		},
		{
			"tabular",
			"rows[2]{x,y}:\n  1,2\n  3,4\n",
			`{"rows":[{"x":1,"y":2},{"x":3,"y":4}]}`,
		},
		{
			"tabular null cell",
			"rows[1]{x,y}:\n  1,\n",
			`{"rows":[{"x":1,"y":null}]}`,
		},
		{
			"list items",
			"items[2]:\n  - one\n  -\n    a: 1\n",
			`{"items":["one",{"a":1}]}`,
		},
		{
			"root array",
			"[3]: 1,2,3\n",
			`[1,2,3]`,
		},
		{
			"root list",
			"[2]:\n  - a\n  - b\n",
			`["a","b"]`,
		},
		{
			"lone scalar",
			"42\n",
			`42`,
		},
		{
			"quoted",
			"\"a:b\": \"x, y\"\n",
			`{"a:b":"x, y"}`,
		},
		{
			"empty containers",
			"a: {}\nb[0]:\nc:\n",
			`{"a":{},"b":[],"c":null}`,
		},
		{
			"comments and blanks",
			"# header\n\na: 1\n# trailing\n",
			`{"a":1}`,
		},
		{
			"float keeps point",
			"f: 2.0\n",
			`{"f":2.0}`,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			node, err := Decode([]byte(tc.in), format.TOONFormat)
			if err != nil {
				t.Fatal(err)
			}
			if got := encode.MustString(node); got != tc.want {
				t.Errorf("got %s want %s", got, tc.want)
			}
		})
	}
}

func TestDecodeTOONEmpty(t *testing.T) {
	node, err := Decode(nil, format.TOONFormat)
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ir.NullType {
		t.Errorf("got %v", node.Type)
	}
}

func TestDecodeTOONErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		msg  string
	}{
		{"count short", "a[3]: 1,2\n", "3 items, found 2"},
		{"rows short", "r[2]{x}:\n  1\n", "2 rows, found 1"},
		{"cells wide", "r[1]{x}:\n  1,2\n", "2 cells"},
		{"bad indent", "  a: 1\n", "indentation"},
		{"no separator", "a\nb\n", "key: value"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.in), format.TOONFormat)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.msg) {
				t.Errorf("error %q does not mention %q", err, tc.msg)
			}
		})
	}
}
