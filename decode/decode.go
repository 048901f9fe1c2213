// Package decode turns raw text in any supported format into the
// canonical value model. Each format delegates to its codec: stdlib
// encoding/json driven token-by-token to keep object order, goccy's
// YAML decoder in ordered-map mode, pelletier's TOML decoder behind
// the bridge package, and the in-repo TOON reader.
//
// A decode failure is always tagged with the format that was being
// decoded; it is never silently retried as another format. Picking a
// format is the classifier's job, upstream.
package decode

import (
	"fmt"

	"github.com/oq-format/go-oq/classify"
	"github.com/oq-format/go-oq/debug"
	"github.com/oq-format/go-oq/format"
	"github.com/oq-format/go-oq/ir"
)

// Error is a decode failure tagged with the offending format.
type Error struct {
	Format format.Format
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s decode error: %v", e.Format, e.Err)
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

// Decode parses data according to f.
func Decode(data []byte, f format.Format) (*ir.Node, error) {
	if debug.Decode() {
		debug.Logf("decode: %d bytes as %s\n", len(data), f)
	}
	switch f {
	case format.JSONFormat:
		node, err := decodeJSON(data)
		return node, errAt(f, err)
	case format.YAMLFormat:
		node, err := decodeYAML(data)
		return node, errAt(f, err)
	case format.TOMLFormat:
		node, err := decodeTOML(data)
		return node, errAt(f, err)
	case format.TOONFormat:
		node, err := decodeTOON(data)
		return node, errAt(f, err)
	default:
		return nil, errAt(f, fmt.Errorf("%w: %d", format.ErrBadFormat, f))
	}
}

// Auto classifies data and decodes it, returning the detected format
// alongside the value.
func Auto(data []byte) (*ir.Node, format.Format, error) {
	f := classify.Classify(string(data))
	node, err := Decode(data, f)
	return node, f, err
}
