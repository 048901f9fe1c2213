// Package tabular renders an array of uniform keyed records as a
// compact delimited table:
//
//	notes[3]{path,line,similarity}:
//	  Projects/MyProject.md,42,0.95
//	  Ideas/Feature.md,18,0.87
//	  Research/Topic.md,7,0.82
//
// This is a fifth, specialized encoding mode layered above the
// generic encoders. It is opt-in: the caller names the collection and
// supplies the column order explicitly, because it already knows its
// data is tabular. It is never reached via format detection.
package tabular

import (
	"math"
	"strconv"
	"strings"

	"github.com/oq-format/go-oq/ir"
)

// EncodeTable renders items — object nodes — as a table with the given
// name and columns. Empty items yield the empty string, not a
// header-only stub. There is no trailing newline after the final row.
//
// Cells render as:
//   - missing key, null: empty cell
//   - string: verbatim; wrapped in double quotes when it contains a
//     comma (no internal-quote escaping; full CSV escaping is out of
//     scope here)
//   - number: plain integer when the value has no fractional part,
//     otherwise fixed precision with trailing zeros stripped, so
//     binary-float noise digits never appear
//   - bool: true/false
//   - nested array/object: its compact JSON form (a degenerate case
//     the format is not designed for)
func EncodeTable(name string, items []*ir.Node, columns []string) string {
	if len(items) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteString("[")
	sb.WriteString(strconv.Itoa(len(items)))
	sb.WriteString("]{")
	sb.WriteString(strings.Join(columns, ","))
	sb.WriteString("}:\n")

	for _, item := range items {
		sb.WriteString("  ")
		cells := make([]string, len(columns))
		for i, col := range columns {
			cells[i] = formatCell(ir.Get(item, col))
		}
		sb.WriteString(strings.Join(cells, ","))
		sb.WriteByte('\n')
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

func formatCell(v *ir.Node) string {
	if v == nil {
		return ""
	}
	switch v.Type {
	case ir.StringType:
		if strings.Contains(v.String, ",") {
			return `"` + v.String + `"`
		}
		return v.String
	case ir.NumberType:
		return formatCellNumber(v)
	case ir.BoolType:
		if v.Bool {
			return "true"
		}
		return "false"
	case ir.NullType:
		return ""
	default:
		return jsonish(v)
	}
}

func formatCellNumber(v *ir.Node) string {
	if v.Int64 != nil {
		return strconv.FormatInt(*v.Int64, 10)
	}
	f := *v.Float64
	if math.Trunc(f) == f && math.Abs(f) < float64(math.MaxInt64) {
		return strconv.FormatInt(int64(f), 10)
	}
	s := strconv.FormatFloat(f, 'f', 10, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}

// jsonish is a stable stringification for the nested shapes a table
// cell is not designed for.
func jsonish(v *ir.Node) string {
	var sb strings.Builder
	writeJSONish(v, &sb)
	return sb.String()
}

func writeJSONish(v *ir.Node, sb *strings.Builder) {
	switch v.Type {
	case ir.NullType:
		sb.WriteString("null")
	case ir.BoolType:
		sb.WriteString(strconv.FormatBool(v.Bool))
	case ir.NumberType:
		sb.WriteString(formatCellNumber(v))
	case ir.StringType:
		sb.WriteString(strconv.Quote(v.String))
	case ir.ArrayType:
		sb.WriteByte('[')
		for i, elt := range v.Values {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeJSONish(elt, sb)
		}
		sb.WriteByte(']')
	case ir.ObjectType:
		sb.WriteByte('{')
		for i := range v.Fields {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Quote(v.Fields[i].String))
			sb.WriteByte(':')
			writeJSONish(v.Values[i], sb)
		}
		sb.WriteByte('}')
	}
}
