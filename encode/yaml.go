package encode

import (
	"fmt"
	"io"

	"github.com/oq-format/go-oq/ir"

	"github.com/goccy/go-yaml"
)

// encodeYAML marshals through goccy, building yaml.MapSlice trees so
// object key order is preserved in the output.
func encodeYAML(node *ir.Node, w io.Writer) error {
	v, err := toYAML(node)
	if err != nil {
		return err
	}
	d, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func toYAML(node *ir.Node) (any, error) {
	switch node.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64, nil
		}
		return *node.Float64, nil
	case ir.StringType:
		return node.String, nil
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			v, err := toYAML(elt)
			if err != nil {
				return nil, err
			}
			res[i] = v
		}
		return res, nil
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i := range node.Fields {
			v, err := toYAML(node.Values[i])
			if err != nil {
				return nil, err
			}
			res[i] = yaml.MapItem{Key: node.Fields[i].String, Value: v}
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: %s in yaml", ErrUnrepresentable, node.Type)
	}
}
