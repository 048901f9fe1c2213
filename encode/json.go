package encode

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/oq-format/go-oq/ir"
)

// encodeJSON is hand-rolled over the node tree rather than delegated
// to json.Marshal so object key order survives. Pretty output uses
// two-space indentation; compact output is the single-line wire form.
func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	var sb strings.Builder
	if err := jsonNode(node, &sb, es, 0); err != nil {
		return err
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}

func jsonNode(node *ir.Node, sb *strings.Builder, es *EncState, depth int) error {
	switch node.Type {
	case ir.NullType:
		sb.WriteString(es.color(ir.NullType, ValueColor, "null"))
	case ir.BoolType:
		if node.Bool {
			sb.WriteString(es.color(ir.BoolType, ValueColor, "true"))
		} else {
			sb.WriteString(es.color(ir.BoolType, ValueColor, "false"))
		}
	case ir.NumberType:
		s, err := formatNumber(node.Int64, node.Float64)
		if err != nil {
			return err
		}
		sb.WriteString(es.color(ir.NumberType, ValueColor, s))
	case ir.StringType:
		sb.WriteString(es.color(ir.StringType, ValueColor, jsonQuote(node.String)))
	case ir.ArrayType:
		if len(node.Values) == 0 {
			sb.WriteString("[]")
			return nil
		}
		sb.WriteByte('[')
		for i, elt := range node.Values {
			if i > 0 {
				sb.WriteByte(',')
			}
			es.newline(sb, depth+1)
			if err := jsonNode(elt, sb, es, depth+1); err != nil {
				return err
			}
		}
		es.newline(sb, depth)
		sb.WriteByte(']')
	case ir.ObjectType:
		if len(node.Fields) == 0 {
			sb.WriteString("{}")
			return nil
		}
		sb.WriteByte('{')
		for i := range node.Fields {
			if i > 0 {
				sb.WriteByte(',')
			}
			es.newline(sb, depth+1)
			sb.WriteString(es.color(ir.StringType, FieldColor, jsonQuote(node.Fields[i].String)))
			sb.WriteByte(':')
			if !es.compact {
				sb.WriteByte(' ')
			}
			if err := jsonNode(node.Values[i], sb, es, depth+1); err != nil {
				return err
			}
		}
		es.newline(sb, depth)
		sb.WriteByte('}')
	}
	return nil
}

func (es *EncState) newline(sb *strings.Builder, depth int) {
	if es.compact {
		return
	}
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat(" ", es.indent*depth))
}

func jsonQuote(s string) string {
	d, err := json.Marshal(s)
	if err != nil {
		// strings always marshal
		return `""`
	}
	return string(d)
}
