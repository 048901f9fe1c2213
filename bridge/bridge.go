// Package bridge translates between the canonical value model and the
// value shapes TOML can represent. TOML is the one format here whose
// grammar is stricter than the model: it has no null, its root must be
// a table, and it carries datetime types the model does not.
//
// The gaps are reconciled deliberately rather than silently:
//
//   - Null encodes to the literal TOML string "null". Decoding that
//     string back yields a String, never Null; TOML documents cannot
//     contain null.
//   - TOML datetimes decode to Strings holding their canonical text
//     form. Re-encoding such a string does not restore a datetime.
//
// Both are documented one-way losses, not failures.
package bridge

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/oq-format/go-oq/ir"

	toml "github.com/pelletier/go-toml/v2"
)

// ErrNonFinite reports an attempt to carry NaN or an infinity across
// the TOML boundary.
var ErrNonFinite = errors.New("non-finite number")

// ToCanonical converts a decoded TOML value into the canonical model.
// It is total over structurally valid TOML: every value pelletier's
// decoder produces for an `any` target has a mapping. Table keys come
// out in sorted order, since Go maps carry no document order.
func ToCanonical(v any) *ir.Node {
	switch t := v.(type) {
	case nil:
		// Unreachable from TOML input; kept for totality.
		return ir.Null()
	case bool:
		return ir.FromBool(t)
	case int64:
		return ir.FromInt(t)
	case int:
		return ir.FromInt(int64(t))
	case uint64:
		if t > math.MaxInt64 {
			f := float64(t)
			return ir.FromFloat(f)
		}
		return ir.FromInt(int64(t))
	case float64:
		return ir.FromFloat(t)
	case string:
		return ir.FromString(t)
	case time.Time:
		return ir.FromString(t.Format(time.RFC3339Nano))
	case toml.LocalDate:
		return ir.FromString(t.String())
	case toml.LocalDateTime:
		return ir.FromString(t.String())
	case toml.LocalTime:
		return ir.FromString(t.String())
	case []any:
		vals := make([]*ir.Node, len(t))
		for i, elt := range t {
			vals[i] = ToCanonical(elt)
		}
		return ir.FromSlice(vals)
	case map[string]any:
		yMap := make(map[string]*ir.Node, len(t))
		for k, elt := range t {
			yMap[k] = ToCanonical(elt)
		}
		return ir.FromMap(yMap)
	default:
		// The TOML decoder produces no other shapes; render a stable
		// textual form rather than dropping the value.
		return ir.FromString(fmt.Sprintf("%v", t))
	}
}

// FromCanonical converts a canonical value into a value the TOML
// encoder accepts. It fails only on non-finite numbers; Null maps to
// the string "null".
func FromCanonical(node *ir.Node) (any, error) {
	switch node.Type {
	case ir.NullType:
		return "null", nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64, nil
		}
		f := *node.Float64
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return nil, fmt.Errorf("%w: %v", ErrNonFinite, f)
		}
		return f, nil
	case ir.StringType:
		return node.String, nil
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			v, err := FromCanonical(elt)
			if err != nil {
				return nil, err
			}
			res[i] = v
		}
		return res, nil
	case ir.ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i := range node.Fields {
			v, err := FromCanonical(node.Values[i])
			if err != nil {
				return nil, err
			}
			res[node.Fields[i].String] = v
		}
		return res, nil
	default:
		return nil, fmt.Errorf("cannot bridge %s to toml", node.Type)
	}
}
