package encode

import (
	"io"
	"strconv"
	"strings"

	"github.com/oq-format/go-oq/ir"
)

// encodeTOON writes the dialect the decode package reads: key: value
// lines with two-space indentation, inline arrays of scalars as
// key[N]: a,b,c, tabular blocks for arrays of uniform flat records,
// and "- " items for everything else.
func encodeTOON(node *ir.Node, w io.Writer) error {
	var sb strings.Builder
	var err error
	switch node.Type {
	case ir.ObjectType:
		if len(node.Fields) == 0 {
			sb.WriteString("{}\n")
		} else {
			err = toonObject(node, &sb, 0)
		}
	case ir.ArrayType:
		err = toonArray("", node, &sb, 0)
	default:
		var s string
		s, err = toonScalar(node)
		sb.WriteString(s)
		sb.WriteByte('\n')
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, sb.String())
	return err
}

func toonObject(node *ir.Node, sb *strings.Builder, depth int) error {
	for i := range node.Fields {
		key := toonKey(node.Fields[i].String)
		val := node.Values[i]
		switch val.Type {
		case ir.ObjectType:
			if len(val.Fields) == 0 {
				writeLine(sb, depth, key+": {}")
				continue
			}
			writeLine(sb, depth, key+":")
			if err := toonObject(val, sb, depth+1); err != nil {
				return err
			}
		case ir.ArrayType:
			if err := toonArray(key, val, sb, depth); err != nil {
				return err
			}
		default:
			s, err := toonScalar(val)
			if err != nil {
				return err
			}
			writeLine(sb, depth, key+": "+s)
		}
	}
	return nil
}

func toonArray(key string, node *ir.Node, sb *strings.Builder, depth int) error {
	n := len(node.Values)
	head := key + "[" + strconv.Itoa(n) + "]"
	if n == 0 {
		writeLine(sb, depth, head+":")
		return nil
	}
	if allLeaves(node) {
		cells := make([]string, n)
		for i, elt := range node.Values {
			s, err := toonScalar(elt)
			if err != nil {
				return err
			}
			cells[i] = s
		}
		writeLine(sb, depth, head+": "+strings.Join(cells, ","))
		return nil
	}
	if cols := tabularColumns(node); cols != nil {
		writeLine(sb, depth, head+"{"+strings.Join(cols, ",")+"}:")
		for _, item := range node.Values {
			cells := make([]string, len(cols))
			for i := range item.Values {
				s, err := toonScalar(item.Values[i])
				if err != nil {
					return err
				}
				cells[i] = s
			}
			writeLine(sb, depth+1, strings.Join(cells, ","))
		}
		return nil
	}
	writeLine(sb, depth, head+":")
	for _, elt := range node.Values {
		if elt.Type.IsLeaf() {
			s, err := toonScalar(elt)
			if err != nil {
				return err
			}
			writeLine(sb, depth+1, "- "+s)
			continue
		}
		// empty containers have inline literals
		if len(elt.Values) == 0 {
			if elt.Type == ir.ObjectType {
				writeLine(sb, depth+1, "- {}")
			} else {
				writeLine(sb, depth+1, "- []")
			}
			continue
		}
		writeLine(sb, depth+1, "-")
		switch elt.Type {
		case ir.ObjectType:
			if err := toonObject(elt, sb, depth+2); err != nil {
				return err
			}
		case ir.ArrayType:
			if err := toonArray("", elt, sb, depth+2); err != nil {
				return err
			}
		}
	}
	return nil
}

func allLeaves(node *ir.Node) bool {
	for _, elt := range node.Values {
		if !elt.Type.IsLeaf() {
			return false
		}
	}
	return true
}

// tabularColumns reports the shared column list when every element is
// an object with the same keys in the same order and only flat values,
// and nil otherwise.
func tabularColumns(node *ir.Node) []string {
	first := node.Values[0]
	if first.Type != ir.ObjectType || len(first.Fields) == 0 {
		return nil
	}
	cols := make([]string, len(first.Fields))
	for i, f := range first.Fields {
		if needsQuote(f.String) || strings.Contains(f.String, ",") {
			return nil
		}
		cols[i] = f.String
	}
	for _, item := range node.Values {
		if item.Type != ir.ObjectType || len(item.Fields) != len(cols) {
			return nil
		}
		for i, f := range item.Fields {
			if f.String != cols[i] {
				return nil
			}
			if !item.Values[i].Type.IsLeaf() {
				return nil
			}
		}
	}
	return cols
}

func writeLine(sb *strings.Builder, depth int, s string) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(s)
	sb.WriteByte('\n')
}

func toonScalar(node *ir.Node) (string, error) {
	switch node.Type {
	case ir.NullType:
		return "null", nil
	case ir.BoolType:
		if node.Bool {
			return "true", nil
		}
		return "false", nil
	case ir.NumberType:
		return formatNumber(node.Int64, node.Float64)
	case ir.StringType:
		s := node.String
		if needsQuote(s) {
			return strconv.Quote(s), nil
		}
		return s, nil
	default:
		return "", nil
	}
}

// needsQuote reports whether a bare string would decode back as
// something else: a literal, a number, structure syntax, or would be
// split or trimmed.
func needsQuote(s string) bool {
	switch s {
	case "", "null", "true", "false", "{}", "[]", "-":
		return true
	}
	if strings.ContainsAny(s, ",:#\"\n[]{}") {
		return true
	}
	if strings.HasPrefix(s, "- ") {
		return true
	}
	if s != strings.TrimSpace(s) {
		return true
	}
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return true
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		// only numeric-looking strings collide with number parsing
		c := s[0]
		if c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9') {
			return true
		}
	}
	return false
}

func toonKey(s string) string {
	if needsQuote(s) {
		return strconv.Quote(s)
	}
	return s
}
