package tabular

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/oq-format/go-oq/ir"
)

func obj(kvs ...ir.KeyVal) *ir.Node {
	return ir.FromKeyVals(kvs)
}

func TestEncodeTableSingleRow(t *testing.T) {
	items := []*ir.Node{
		obj(
			ir.KeyVal{Key: "path", Val: ir.FromString("a.md")},
			ir.KeyVal{Key: "line", Val: ir.FromInt(42)},
			ir.KeyVal{Key: "sim", Val: ir.FromFloat(0.95)},
		),
	}
	got := EncodeTable("notes", items, []string{"path", "line", "sim"})
	want := "notes[1]{path,line,sim}:\n  a.md,42,0.95"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeTableMultipleRows(t *testing.T) {
	items := []*ir.Node{
		obj(ir.KeyVal{Key: "path", Val: ir.FromString("a.md")}, ir.KeyVal{Key: "line", Val: ir.FromInt(10)}, ir.KeyVal{Key: "sim", Val: ir.FromFloat(0.95)}),
		obj(ir.KeyVal{Key: "path", Val: ir.FromString("b.md")}, ir.KeyVal{Key: "line", Val: ir.FromInt(20)}, ir.KeyVal{Key: "sim", Val: ir.FromFloat(0.87)}),
		obj(ir.KeyVal{Key: "path", Val: ir.FromString("c.md")}, ir.KeyVal{Key: "line", Val: ir.FromInt(30)}, ir.KeyVal{Key: "sim", Val: ir.FromFloat(0.72)}),
	}
	got := EncodeTable("notes", items, []string{"path", "line", "sim"})
	want := "notes[3]{path,line,sim}:\n  a.md,10,0.95\n  b.md,20,0.87\n  c.md,30,0.72"
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("table mismatch (-want +got):\n%s", d)
	}
}

func TestEncodeTableEmpty(t *testing.T) {
	got := EncodeTable("notes", nil, []string{"path", "line", "sim"})
	if got != "" {
		t.Errorf("empty items: got %q, want empty string", got)
	}
}

func TestEncodeTableQuotesCommas(t *testing.T) {
	items := []*ir.Node{
		obj(
			ir.KeyVal{Key: "name", Val: ir.FromString("Hello, World")},
			ir.KeyVal{Key: "id", Val: ir.FromInt(1)},
		),
	}
	got := EncodeTable("items", items, []string{"name", "id"})
	want := "items[1]{name,id}:\n  \"Hello, World\",1"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeTableFloatPrecision(t *testing.T) {
	items := []*ir.Node{
		obj(ir.KeyVal{Key: "score", Val: ir.FromFloat(0.95)}),
	}
	got := EncodeTable("scores", items, []string{"score"})
	want := "scores[1]{score}:\n  0.95"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeTableIntegralFloat(t *testing.T) {
	items := []*ir.Node{
		obj(ir.KeyVal{Key: "n", Val: ir.FromFloat(3.0)}),
	}
	got := EncodeTable("t", items, []string{"n"})
	want := "t[1]{n}:\n  3"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeTableMissingAndNull(t *testing.T) {
	items := []*ir.Node{
		obj(
			ir.KeyVal{Key: "a", Val: ir.FromInt(1)},
			ir.KeyVal{Key: "b", Val: ir.Null()},
		),
	}
	got := EncodeTable("t", items, []string{"a", "b", "c"})
	want := "t[1]{a,b,c}:\n  1,,"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeTableBools(t *testing.T) {
	items := []*ir.Node{
		obj(ir.KeyVal{Key: "ok", Val: ir.FromBool(true)}),
		obj(ir.KeyVal{Key: "ok", Val: ir.FromBool(false)}),
	}
	got := EncodeTable("t", items, []string{"ok"})
	want := "t[2]{ok}:\n  true\n  false"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeTableNestedShape(t *testing.T) {
	items := []*ir.Node{
		obj(ir.KeyVal{Key: "v", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})}),
	}
	got := EncodeTable("t", items, []string{"v"})
	want := "t[1]{v}:\n  [1,2]"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
