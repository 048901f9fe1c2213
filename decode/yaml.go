package decode

import (
	"fmt"
	"time"

	"github.com/oq-format/go-oq/ir"

	"github.com/goccy/go-yaml"
)

// decodeYAML uses goccy's ordered-map mode so mapping key order
// survives the trip into the value model.
func decodeYAML(data []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return fromYAML(v)
}

func fromYAML(v any) (*ir.Node, error) {
	switch t := v.(type) {
	case yaml.MapSlice:
		res := &ir.Node{Type: ir.ObjectType}
		for _, item := range t {
			val, err := fromYAML(item.Value)
			if err != nil {
				return nil, err
			}
			// YAML keys may be non-strings; the model's mapping keys
			// are text, so they are rendered to their canonical form.
			ir.Set(res, yamlKey(item.Key), val)
		}
		return res, nil
	case map[string]any:
		yMap := make(map[string]*ir.Node, len(t))
		for k, elt := range t {
			y, err := fromYAML(elt)
			if err != nil {
				return nil, err
			}
			yMap[k] = y
		}
		return ir.FromMap(yMap), nil
	case []any:
		vals := make([]*ir.Node, len(t))
		for i, elt := range t {
			y, err := fromYAML(elt)
			if err != nil {
				return nil, err
			}
			vals[i] = y
		}
		return ir.FromSlice(vals), nil
	case time.Time:
		return ir.FromString(t.Format(time.RFC3339Nano)), nil
	default:
		return ir.FromAny(v)
	}
}

func yamlKey(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", k)
}
