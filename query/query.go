// Package query is the expression stage fed by the conversion core.
// The core treats it as opaque: it hands in exactly one document and
// receives an ordered, finite list of zero or more result values, or
// a filter error.
//
// Expressions are compiled and evaluated with expr-lang. The document
// is bound as `doc`, and, when the document is an object, each
// top-level field is bound as an identifier as well:
//
//	oq query 'name'        // field access
//	oq query 'doc.name'    // same, explicit
//	oq query '.name'       // jq-style sugar for doc.name
//	oq query 'len(items)'  // builtins over fields
//
// A nil outcome yields zero results; anything else yields one.
package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/oq-format/go-oq/debug"
	"github.com/oq-format/go-oq/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var (
	ErrCompile = errors.New("filter compile error")
	ErrFilter  = errors.New("filter error")
)

// Filter is a compiled expression.
type Filter struct {
	src     string
	program *vm.Program
}

// Compile compiles a filter expression. The empty filter and "." are
// the identity.
func Compile(src string) (*Filter, error) {
	src = strings.TrimSpace(src)
	if src == "" || src == "." || src == "doc" {
		return &Filter{src: "."}, nil
	}
	// jq-style leading dot: .name means doc.name
	code := src
	if strings.HasPrefix(code, ".") {
		code = "doc" + code
	}
	program, err := expr.Compile(code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompile, err)
	}
	return &Filter{src: src, program: program}, nil
}

// String returns the source expression.
func (f *Filter) String() string {
	return f.src
}

// IsIdentity reports whether the filter passes its input through.
func (f *Filter) IsIdentity() bool {
	return f.program == nil
}

// Run applies the filter to one document and returns its results in
// order.
func (f *Filter) Run(doc *ir.Node) ([]*ir.Node, error) {
	if f.IsIdentity() {
		return []*ir.Node{doc.Clone()}, nil
	}
	env := map[string]any{}
	if doc.Type == ir.ObjectType {
		for i := range doc.Fields {
			env[doc.Fields[i].String] = ir.ToAny(doc.Values[i])
		}
	}
	env["doc"] = ir.ToAny(doc)
	if debug.Query() {
		debug.Logf("query: running %q\n", f.src)
	}
	out, err := vm.Run(f.program, env)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFilter, err)
	}
	if out == nil {
		return nil, nil
	}
	node, err := ir.FromAny(out)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFilter, err)
	}
	return []*ir.Node{node}, nil
}
