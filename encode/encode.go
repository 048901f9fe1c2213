// Package encode renders the canonical value model back out as text
// in any supported format. Encoding fails, never silently
// substitutes, when a value cannot be represented in the destination
// format: non-finite numbers in JSON, TOML and TOON (YAML has .inf
// and .nan), and non-table roots for TOML. Recovery policy (such as
// falling back to JSON) belongs to the orchestration layer, not here.
package encode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/oq-format/go-oq/debug"
	"github.com/oq-format/go-oq/format"
	"github.com/oq-format/go-oq/ir"
)

// ErrUnrepresentable reports a value the destination format has no
// encoding for.
var ErrUnrepresentable = errors.New("value not representable")

// Error is an encode failure tagged with the destination format.
type Error struct {
	Format format.Format
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s encode error: %v", e.Format, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func errAt(f format.Format, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Format: f, Err: err}
}

type EncState struct {
	format  format.Format
	compact bool
	indent  int
	colors  *Colors
}

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// EncodeCompact switches JSON output to its single-line wire form.
func EncodeCompact(v bool) EncodeOption {
	return func(es *EncState) { es.compact = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}

// Encode writes node to w in the format selected by opts (JSON when
// none is given), followed by a trailing newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	if debug.Encode() {
		debug.Logf("encode: %s as %s\n", node.Type, es.format)
	}
	var err error
	switch es.format {
	case format.JSONFormat:
		err = encodeJSON(node, w, es)
	case format.YAMLFormat:
		err = encodeYAML(node, w)
	case format.TOMLFormat:
		err = encodeTOML(node, w)
	case format.TOONFormat:
		err = encodeTOON(node, w)
	default:
		err = fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
	}
	return errAt(es.format, err)
}

// MarshalString renders node to a string.
func MarshalString(node *ir.Node, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// MustString renders node as compact JSON for diagnostics, swallowing
// errors.
func MustString(node *ir.Node) string {
	s, err := MarshalString(node, EncodeCompact(true))
	if err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", node)
	}
	return strings.TrimRight(s, "\n")
}
