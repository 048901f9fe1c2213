package ir

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// FromAny converts a plain Go value into a node. It accepts the value
// shapes the query stage and the generic codecs produce: nil, bool,
// string, all int/uint widths, float32/64, json.Number, []any, and
// map[string]any (keys sorted, since Go maps carry no order). Nodes
// pass through as clones.
func FromAny(v any) (*Node, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return t.Clone(), nil
	case []*Node:
		return FromSlice(t), nil
	case map[string]*Node:
		return FromMap(t), nil
	case bool:
		return FromBool(t), nil
	case string:
		return FromString(t), nil
	case int:
		return FromInt(int64(t)), nil
	case int8:
		return FromInt(int64(t)), nil
	case int16:
		return FromInt(int64(t)), nil
	case int32:
		return FromInt(int64(t)), nil
	case int64:
		return FromInt(t), nil
	case uint:
		return fromUint(uint64(t))
	case uint8:
		return FromInt(int64(t)), nil
	case uint16:
		return FromInt(int64(t)), nil
	case uint32:
		return FromInt(int64(t)), nil
	case uint64:
		return fromUint(t)
	case float32:
		return FromFloat(float64(t)), nil
	case float64:
		return FromFloat(t), nil
	case json.Number:
		return fromNumberLit(t.String())
	case []any:
		vals := make([]*Node, len(t))
		for i, elt := range t {
			y, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			vals[i] = y
		}
		return FromSlice(vals), nil
	case map[string]any:
		yMap := make(map[string]*Node, len(t))
		for k, elt := range t {
			y, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			yMap[k] = y
		}
		return FromMap(yMap), nil
	default:
		return nil, fmt.Errorf("cannot represent %T as a value node", v)
	}
}

func fromUint(u uint64) (*Node, error) {
	if u > math.MaxInt64 {
		return nil, fmt.Errorf("integer %d overflows int64", u)
	}
	return FromInt(int64(u)), nil
}

func fromNumberLit(s string) (*Node, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return FromInt(i), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("bad number literal %q: %w", s, err)
	}
	return FromFloat(f), nil
}

// ToAny converts a node into plain Go values: nil, bool, string,
// int64, float64, []any, and map[string]any. Object key order is lost;
// callers that need order keep the node.
func ToAny(node *Node) any {
	switch node.Type {
	case ObjectType:
		n := len(node.Fields)
		res := make(map[string]any, n)
		for i := range n {
			res[node.Fields[i].String] = ToAny(node.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return node.String
	case NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return nil
	case BoolType:
		return node.Bool
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}
