package query

import (
	"errors"
	"testing"

	"github.com/oq-format/go-oq/ir"
)

func doc() *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "name", Val: ir.FromString("Ada")},
		{Key: "age", Val: ir.FromInt(30)},
		{Key: "items", Val: ir.FromSlice([]*ir.Node{
			ir.FromString("a"), ir.FromString("b"), ir.FromString("c"),
		})},
	})
}

func TestIdentity(t *testing.T) {
	for _, src := range []string{"", ".", "doc"} {
		f, err := Compile(src)
		if err != nil {
			t.Fatalf("Compile(%q): %v", src, err)
		}
		res, err := f.Run(doc())
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		if len(res) != 1 || !ir.Equal(res[0], doc()) {
			t.Errorf("identity %q changed the document", src)
		}
	}
}

func TestFieldAccess(t *testing.T) {
	f, err := Compile("name")
	if err != nil {
		t.Fatal(err)
	}
	res, err := f.Run(doc())
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 1 || res[0].Type != ir.StringType || res[0].String != "Ada" {
		t.Errorf("got %v", res)
	}
}

func TestJQStyleDot(t *testing.T) {
	f, err := Compile(".name")
	if err != nil {
		t.Fatal(err)
	}
	res, err := f.Run(doc())
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 1 || res[0].String != "Ada" {
		t.Errorf("got %v", res)
	}
}

func TestIndexing(t *testing.T) {
	f, err := Compile("items[1]")
	if err != nil {
		t.Fatal(err)
	}
	res, err := f.Run(doc())
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 1 || res[0].String != "b" {
		t.Errorf("got %v", res)
	}
}

func TestBuiltins(t *testing.T) {
	f, err := Compile("len(items)")
	if err != nil {
		t.Fatal(err)
	}
	res, err := f.Run(doc())
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 1 || res[0].Type != ir.NumberType || *res[0].Int64 != 3 {
		t.Errorf("got %v", res)
	}
}

func TestNilYieldsZeroResults(t *testing.T) {
	f, err := Compile("age > 100 ? name : nil")
	if err != nil {
		t.Fatal(err)
	}
	res, err := f.Run(doc())
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 0 {
		t.Errorf("got %d results, want 0", len(res))
	}
}

func TestCompileError(t *testing.T) {
	_, err := Compile("name ++++")
	if !errors.Is(err, ErrCompile) {
		t.Errorf("err = %v, want ErrCompile", err)
	}
}

func TestFilterError(t *testing.T) {
	f, err := Compile("name + age")
	if err != nil {
		t.Fatal(err)
	}
	_, err = f.Run(doc())
	if !errors.Is(err, ErrFilter) {
		t.Errorf("err = %v, want ErrFilter", err)
	}
}
