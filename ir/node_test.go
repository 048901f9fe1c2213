package ir

import (
	"testing"
)

func TestSetLastWriteWins(t *testing.T) {
	obj := &Node{Type: ObjectType}
	Set(obj, "a", FromInt(1))
	Set(obj, "b", FromInt(2))
	Set(obj, "a", FromInt(3))
	if len(obj.Fields) != 2 {
		t.Fatalf("have %d fields", len(obj.Fields))
	}
	// key keeps its first position
	if obj.Fields[0].String != "a" || obj.Fields[1].String != "b" {
		t.Errorf("field order %q, %q", obj.Fields[0].String, obj.Fields[1].String)
	}
	if got := Get(obj, "a"); *got.Int64 != 3 {
		t.Errorf("a = %d", *got.Int64)
	}
}

func TestGetMissing(t *testing.T) {
	obj := FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}})
	if got := Get(obj, "nope"); got != nil {
		t.Errorf("got %v", got)
	}
}

func TestFromKeyValsOrder(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: "z", Val: FromInt(1)},
		{Key: "a", Val: FromInt(2)},
	})
	if obj.Fields[0].String != "z" || obj.Fields[1].String != "a" {
		t.Errorf("order not preserved: %q, %q", obj.Fields[0].String, obj.Fields[1].String)
	}
}

func TestFromMapSorted(t *testing.T) {
	obj := FromMap(map[string]*Node{
		"z": FromInt(1),
		"a": FromInt(2),
		"m": FromInt(3),
	})
	want := []string{"a", "m", "z"}
	for i, k := range want {
		if obj.Fields[i].String != k {
			t.Errorf("field %d is %q, want %q", i, obj.Fields[i].String, k)
		}
	}
}

func TestCloneDeep(t *testing.T) {
	orig := FromKeyVals([]KeyVal{
		{Key: "list", Val: FromSlice([]*Node{FromString("x")})},
	})
	cp := orig.Clone()
	if !Equal(orig, cp) {
		t.Fatal("clone differs")
	}
	cp.Values[0].Values[0].String = "changed"
	if Equal(orig, cp) {
		t.Error("clone shares children with original")
	}
}

func TestParentLinks(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: "list", Val: FromSlice([]*Node{FromInt(1), FromInt(2)})},
	})
	list := Get(obj, "list")
	if list.Parent != obj || list.ParentField != "list" {
		t.Errorf("list parent %v field %q", list.Parent, list.ParentField)
	}
	second := list.Values[1]
	if second.ParentIndex != 1 {
		t.Errorf("index %d", second.ParentIndex)
	}
	if second.Root() != obj {
		t.Error("Root did not reach the top")
	}
}

func TestVisit(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromInt(1)},
		{Key: "b", Val: FromSlice([]*Node{FromInt(2), FromInt(3)})},
	})
	var pre, post int
	err := obj.Visit(func(y *Node, isPost bool) (bool, error) {
		if isPost {
			post++
		} else {
			pre++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	// obj, 1, the array, 2, 3
	if pre != 5 || post != 5 {
		t.Errorf("pre %d post %d", pre, post)
	}
}
