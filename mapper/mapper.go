// Package mapper provides pluggable value transforms applied between
// the query stage and encoding. Mappers pre-shape documents — select
// fields, truncate long strings, cap array lengths, or run a filter
// expression — before a compact encoding such as TOON or the tabular
// form.
package mapper

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/oq-format/go-oq/ir"
	"github.com/oq-format/go-oq/query"
)

// Mapper transforms a value tree into a new one. Implementations do
// not mutate their input.
type Mapper interface {
	Transform(node *ir.Node) (*ir.Node, error)
	Description() string
}

// Identity passes values through unchanged.
type Identity struct{}

func (Identity) Transform(node *ir.Node) (*ir.Node, error) {
	return node, nil
}

func (Identity) Description() string { return "identity" }

// FieldSelect keeps only the named fields of objects, recursing into
// arrays so arrays of records can be narrowed in one pass.
type FieldSelect struct {
	fields map[string]bool
	desc   string
}

func NewFieldSelect(fields ...string) *FieldSelect {
	m := make(map[string]bool, len(fields))
	for _, f := range fields {
		m[f] = true
	}
	return &FieldSelect{fields: m, desc: "select " + strings.Join(fields, ",")}
}

func (fs *FieldSelect) Transform(node *ir.Node) (*ir.Node, error) {
	switch node.Type {
	case ir.ObjectType:
		var kvs []ir.KeyVal
		for i := range node.Fields {
			if !fs.fields[node.Fields[i].String] {
				continue
			}
			kvs = append(kvs, ir.KeyVal{Key: node.Fields[i].String, Val: node.Values[i].Clone()})
		}
		return ir.FromKeyVals(kvs), nil
	case ir.ArrayType:
		vals := make([]*ir.Node, len(node.Values))
		for i, elt := range node.Values {
			v, err := fs.Transform(elt)
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		return ir.FromSlice(vals), nil
	default:
		return node, nil
	}
}

func (fs *FieldSelect) Description() string { return fs.desc }

// Truncate shortens every string longer than max runes, appending a
// suffix. Cuts land on rune boundaries so the output stays valid
// UTF-8.
type Truncate struct {
	max    int
	suffix string
}

func NewTruncate(max int) *Truncate {
	return &Truncate{max: max, suffix: "..."}
}

func (tr *Truncate) WithSuffix(suffix string) *Truncate {
	tr.suffix = suffix
	return tr
}

func (tr *Truncate) Transform(node *ir.Node) (*ir.Node, error) {
	switch node.Type {
	case ir.StringType:
		runes := []rune(node.String)
		if len(runes) <= tr.max {
			return node, nil
		}
		keep := tr.max - utf8.RuneCountInString(tr.suffix)
		if keep < 0 {
			keep = 0
		}
		return ir.FromString(string(runes[:keep]) + tr.suffix), nil
	case ir.ObjectType:
		kvs := make([]ir.KeyVal, len(node.Fields))
		for i := range node.Fields {
			v, err := tr.Transform(node.Values[i])
			if err != nil {
				return nil, err
			}
			kvs[i] = ir.KeyVal{Key: node.Fields[i].String, Val: v.Clone()}
		}
		return ir.FromKeyVals(kvs), nil
	case ir.ArrayType:
		vals := make([]*ir.Node, len(node.Values))
		for i, elt := range node.Values {
			v, err := tr.Transform(elt)
			if err != nil {
				return nil, err
			}
			vals[i] = v.Clone()
		}
		return ir.FromSlice(vals), nil
	default:
		return node, nil
	}
}

func (tr *Truncate) Description() string {
	return fmt.Sprintf("truncate strings to %d", tr.max)
}

// Limit caps every array at n elements, recursing through object
// values and nested arrays.
type Limit struct {
	n int
}

func NewLimit(n int) *Limit {
	return &Limit{n: n}
}

func (l *Limit) Transform(node *ir.Node) (*ir.Node, error) {
	switch node.Type {
	case ir.ArrayType:
		keep := len(node.Values)
		if keep > l.n {
			keep = l.n
		}
		vals := make([]*ir.Node, keep)
		for i := range vals {
			v, err := l.Transform(node.Values[i])
			if err != nil {
				return nil, err
			}
			vals[i] = v.Clone()
		}
		return ir.FromSlice(vals), nil
	case ir.ObjectType:
		kvs := make([]ir.KeyVal, len(node.Fields))
		for i := range node.Fields {
			v, err := l.Transform(node.Values[i])
			if err != nil {
				return nil, err
			}
			kvs[i] = ir.KeyVal{Key: node.Fields[i].String, Val: v.Clone()}
		}
		return ir.FromKeyVals(kvs), nil
	default:
		return node, nil
	}
}

func (l *Limit) Description() string {
	return fmt.Sprintf("limit to %d items", l.n)
}

// Query wraps a filter expression as a mapper. Zero filter results
// become Null, a single result passes through.
type Query struct {
	filter *query.Filter
}

func NewQuery(src string) (*Query, error) {
	f, err := query.Compile(src)
	if err != nil {
		return nil, err
	}
	return &Query{filter: f}, nil
}

func (q *Query) Transform(node *ir.Node) (*ir.Node, error) {
	res, err := q.filter.Run(node)
	if err != nil {
		return nil, err
	}
	switch len(res) {
	case 0:
		return ir.Null(), nil
	case 1:
		return res[0], nil
	default:
		return ir.FromSlice(res), nil
	}
}

func (q *Query) Description() string { return q.filter.String() }

// Chain applies mappers in order.
type Chain struct {
	mappers []Mapper
}

func NewChain(mappers ...Mapper) *Chain {
	return &Chain{mappers: mappers}
}

func (c *Chain) Transform(node *ir.Node) (*ir.Node, error) {
	var err error
	for _, m := range c.mappers {
		node, err = m.Transform(node)
		if err != nil {
			return nil, fmt.Errorf("mapper %q: %w", m.Description(), err)
		}
	}
	return node, nil
}

func (c *Chain) Description() string {
	descs := make([]string, len(c.mappers))
	for i, m := range c.mappers {
		descs[i] = m.Description()
	}
	return strings.Join(descs, " | ")
}
