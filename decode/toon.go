package decode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/oq-format/go-oq/ir"
)

// The TOON reader handles the dialect the encode package produces:
//
//	name: Ada
//	empty: {}
//	nested:
//	  a: 1
//	tags[3]: a,b,c
//	rows[2]{x,y}:
//	  1,2
//	  3,4
//	mixed[2]:
//	  - scalar
//	  -
//	    a: 1
//
// Indentation is two spaces per level. Full-line comments start with
// '#'. A root array uses the same headers with an empty name, e.g.
// "[3]: 1,2,3". A document holding a single scalar line is that
// scalar.

type toonLine struct {
	indent int
	text   string
	num    int // 1-based source line, for errors
}

type toonParser struct {
	lines []toonLine
	pos   int
}

func decodeTOON(data []byte) (*ir.Node, error) {
	p := &toonParser{}
	for i, raw := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		indent := len(raw) - len(strings.TrimLeft(raw, " "))
		p.lines = append(p.lines, toonLine{indent: indent, text: trimmed, num: i + 1})
	}
	if len(p.lines) == 0 {
		return ir.Null(), nil
	}
	first := p.lines[0]
	if first.indent != 0 {
		return nil, fmt.Errorf("line %d: unexpected indentation", first.num)
	}
	node, err := p.parseBlock(0)
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.lines) {
		left := p.lines[p.pos]
		return nil, fmt.Errorf("line %d: unexpected content %q", left.num, left.text)
	}
	return node, nil
}

func (p *toonParser) parseBlock(indent int) (*ir.Node, error) {
	ln := p.lines[p.pos]
	if ln.text == "-" || strings.HasPrefix(ln.text, "- ") {
		return p.parseListItems(indent)
	}
	if strings.HasPrefix(ln.text, "[") {
		// root-style array header with empty name
		p.pos++
		_, node, err := p.parseHead("", ln.text, indent, ln.num)
		return node, err
	}
	if !hasFieldSep(ln.text) {
		// a lone scalar document
		if len(p.lines) != 1 {
			return nil, fmt.Errorf("line %d: expected key: value", ln.num)
		}
		p.pos++
		return parseToonScalar(ln.text)
	}
	return p.parseObject(indent)
}

func (p *toonParser) parseObject(indent int) (*ir.Node, error) {
	res := &ir.Node{Type: ir.ObjectType}
	for p.pos < len(p.lines) && p.lines[p.pos].indent == indent {
		ln := p.lines[p.pos]
		if ln.text == "-" || strings.HasPrefix(ln.text, "- ") {
			break
		}
		key, rest, err := parseToonKey(ln.text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", ln.num, err)
		}
		p.pos++
		val, err := p.parseFieldValue(key, rest, indent, ln.num)
		if err != nil {
			return nil, err
		}
		ir.Set(res, key, val)
	}
	return res, nil
}

// parseFieldValue handles everything after a field's key: an inline
// scalar, an array header, or a nested block on the following lines.
func (p *toonParser) parseFieldValue(key, rest string, indent, num int) (*ir.Node, error) {
	if strings.HasPrefix(rest, "[") {
		_, node, err := p.parseHead(key, rest, indent, num)
		return node, err
	}
	if !strings.HasPrefix(rest, ":") {
		return nil, fmt.Errorf("line %d: missing ':' after key %q", num, key)
	}
	rest = strings.TrimSpace(rest[1:])
	switch rest {
	case "":
		if p.pos < len(p.lines) && p.lines[p.pos].indent > indent {
			return p.parseBlock(p.lines[p.pos].indent)
		}
		return ir.Null(), nil
	case "{}":
		return &ir.Node{Type: ir.ObjectType}, nil
	case "[]":
		return ir.FromSlice(nil), nil
	}
	return parseToonScalar(rest)
}

// parseHead parses an array header: [N]: inline cells, [N]{cols}:
// tabular rows, or [N]: with list items on the following lines.
func (p *toonParser) parseHead(key, head string, indent, num int) (string, *ir.Node, error) {
	close := strings.Index(head, "]")
	if close < 0 {
		return "", nil, fmt.Errorf("line %d: unterminated array header", num)
	}
	count, err := strconv.Atoi(head[1:close])
	if err != nil {
		return "", nil, fmt.Errorf("line %d: bad array length %q", num, head[1:close])
	}
	rest := head[close+1:]
	var cols []string
	if strings.HasPrefix(rest, "{") {
		end := strings.Index(rest, "}")
		if end < 0 {
			return "", nil, fmt.Errorf("line %d: unterminated column list", num)
		}
		cols = strings.Split(rest[1:end], ",")
		rest = rest[end+1:]
	}
	if !strings.HasPrefix(rest, ":") {
		return "", nil, fmt.Errorf("line %d: missing ':' in array header", num)
	}
	rest = strings.TrimSpace(rest[1:])

	if cols != nil {
		if rest != "" {
			return "", nil, fmt.Errorf("line %d: unexpected content after tabular header", num)
		}
		node, err := p.parseTabular(cols, count, indent, num)
		return key, node, err
	}
	if rest != "" {
		cells, err := splitCells(rest)
		if err != nil {
			return "", nil, fmt.Errorf("line %d: %w", num, err)
		}
		vals := make([]*ir.Node, len(cells))
		for i, c := range cells {
			v, err := parseToonScalar(c)
			if err != nil {
				return "", nil, fmt.Errorf("line %d: %w", num, err)
			}
			vals[i] = v
		}
		if len(vals) != count {
			return "", nil, fmt.Errorf("line %d: array header says %d items, found %d", num, count, len(vals))
		}
		return key, ir.FromSlice(vals), nil
	}
	if p.pos >= len(p.lines) || p.lines[p.pos].indent <= indent {
		if count != 0 {
			return "", nil, fmt.Errorf("line %d: array header says %d items, found none", num, count)
		}
		return key, ir.FromSlice(nil), nil
	}
	node, err := p.parseListItems(p.lines[p.pos].indent)
	if err != nil {
		return "", nil, err
	}
	if len(node.Values) != count {
		return "", nil, fmt.Errorf("line %d: array header says %d items, found %d", num, count, len(node.Values))
	}
	return key, node, nil
}

func (p *toonParser) parseTabular(cols []string, count, indent, num int) (*ir.Node, error) {
	var items []*ir.Node
	for p.pos < len(p.lines) && p.lines[p.pos].indent > indent {
		ln := p.lines[p.pos]
		p.pos++
		cells, err := splitCells(ln.text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", ln.num, err)
		}
		if len(cells) != len(cols) {
			return nil, fmt.Errorf("line %d: row has %d cells, header has %d columns", ln.num, len(cells), len(cols))
		}
		kvs := make([]ir.KeyVal, len(cols))
		for i, c := range cells {
			var v *ir.Node
			if c == "" {
				v = ir.Null()
			} else {
				v, err = parseToonScalar(c)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", ln.num, err)
				}
			}
			kvs[i] = ir.KeyVal{Key: cols[i], Val: v}
		}
		items = append(items, ir.FromKeyVals(kvs))
	}
	if len(items) != count {
		return nil, fmt.Errorf("line %d: table header says %d rows, found %d", num, count, len(items))
	}
	return ir.FromSlice(items), nil
}

func (p *toonParser) parseListItems(indent int) (*ir.Node, error) {
	var vals []*ir.Node
	for p.pos < len(p.lines) && p.lines[p.pos].indent == indent {
		ln := p.lines[p.pos]
		switch {
		case ln.text == "-":
			p.pos++
			if p.pos < len(p.lines) && p.lines[p.pos].indent > indent {
				v, err := p.parseBlock(p.lines[p.pos].indent)
				if err != nil {
					return nil, err
				}
				vals = append(vals, v)
			} else {
				vals = append(vals, ir.Null())
			}
		case strings.HasPrefix(ln.text, "- "):
			p.pos++
			v, err := parseToonScalar(strings.TrimSpace(ln.text[2:]))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", ln.num, err)
			}
			vals = append(vals, v)
		default:
			return ir.FromSlice(vals), nil
		}
	}
	return ir.FromSlice(vals), nil
}

// parseToonKey splits a field line into its (possibly quoted) key and
// the remainder starting at ':' or the array header '['.
func parseToonKey(s string) (string, string, error) {
	if strings.HasPrefix(s, `"`) {
		key, rest, err := readQuoted(s)
		if err != nil {
			return "", "", err
		}
		return key, rest, nil
	}
	for i, c := range s {
		if c == ':' || c == '[' {
			return strings.TrimSpace(s[:i]), s[i:], nil
		}
	}
	return "", "", fmt.Errorf("no field separator in %q", s)
}

// hasFieldSep reports whether a line has a key/value separator outside
// quotes: a ':' followed by a space or end of line, or an array
// header bracket.
func hasFieldSep(s string) bool {
	inQuote := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inQuote && c == '\\':
			i++
		case c == '"':
			inQuote = !inQuote
		case !inQuote && c == ':':
			if i == len(s)-1 || s[i+1] == ' ' {
				return true
			}
		case !inQuote && c == '[':
			return true
		}
	}
	return false
}

// readQuoted reads a leading double-quoted Go string literal and
// returns its value and the remainder of the line.
func readQuoted(s string) (string, string, error) {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			val, err := strconv.Unquote(s[:i+1])
			if err != nil {
				return "", "", err
			}
			return val, s[i+1:], nil
		}
	}
	return "", "", errors.New("unterminated quoted string")
}

// splitCells splits a comma-delimited row, honoring double quotes.
func splitCells(s string) ([]string, error) {
	var cells []string
	var cur strings.Builder
	inQuote := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inQuote && c == '\\':
			cur.WriteByte(c)
			if i+1 < len(s) {
				i++
				cur.WriteByte(s[i])
			}
		case c == '"':
			inQuote = !inQuote
			cur.WriteByte(c)
		case !inQuote && c == ',':
			cells = append(cells, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	if inQuote {
		return nil, errors.New("unterminated quoted cell")
	}
	cells = append(cells, strings.TrimSpace(cur.String()))
	return cells, nil
}

func parseToonScalar(s string) (*ir.Node, error) {
	switch s {
	case "null":
		return ir.Null(), nil
	case "true":
		return ir.FromBool(true), nil
	case "false":
		return ir.FromBool(false), nil
	case "{}":
		return &ir.Node{Type: ir.ObjectType}, nil
	case "[]":
		return ir.FromSlice(nil), nil
	}
	if strings.HasPrefix(s, `"`) {
		val, rest, err := readQuoted(s)
		if err != nil {
			return nil, err
		}
		if rest != "" {
			return nil, fmt.Errorf("trailing content %q after quoted string", rest)
		}
		return ir.FromString(val), nil
	}
	if looksNumeric(s) {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return ir.FromInt(i), nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return ir.FromFloat(f), nil
		}
	}
	return ir.FromString(s), nil
}

func looksNumeric(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9')
}
