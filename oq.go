// Package oq ties the conversion core together: classify an input
// blob, decode it, run an optional filter, and encode each result.
//
//	node, f, err := oq.ParseAuto(data)
//	out, err := oq.Convert(data, format.TOONFormat)
//
// The package also carries the documented caller-side recovery
// policy: TOML can only represent keyed tables at its root, so when a
// result value is not an object and the selected output is TOML, the
// Tool re-encodes that value as JSON instead. The encoder itself
// never does this.
package oq

import (
	"bytes"
	"io"

	"github.com/oq-format/go-oq/classify"
	"github.com/oq-format/go-oq/decode"
	"github.com/oq-format/go-oq/encode"
	"github.com/oq-format/go-oq/format"
	"github.com/oq-format/go-oq/ir"
	"github.com/oq-format/go-oq/query"
)

// Tool is one configured classify/decode/filter/encode pipeline. The
// zero value auto-detects the input format, echoes it on output, and
// applies the identity filter.
type Tool struct {
	// In pins the input format; nil means auto-detect.
	In *format.Format
	// Out pins the output format; nil means same as input.
	Out *format.Format
	// Filter is applied to each document; nil means identity.
	Filter *query.Filter
	// Compact selects single-line JSON output.
	Compact bool
	// Colors colorizes JSON output.
	Colors *encode.Colors
	// Raw writes string results bare instead of encoded.
	Raw bool
}

// Run processes one document: decode input, filter, and write every
// result to w in order.
func (t *Tool) Run(input []byte, w io.Writer) error {
	inFmt := t.inputFormat(input)
	node, err := decode.Decode(input, inFmt)
	if err != nil {
		return err
	}
	results, err := t.results(node)
	if err != nil {
		return err
	}
	outFmt := inFmt
	if t.Out != nil {
		outFmt = *t.Out
	}
	for _, res := range results {
		if err := t.encodeResult(res, outFmt, w); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tool) inputFormat(input []byte) format.Format {
	if t.In != nil {
		return *t.In
	}
	return classify.Classify(string(input))
}

func (t *Tool) results(node *ir.Node) ([]*ir.Node, error) {
	if t.Filter == nil {
		return []*ir.Node{node}, nil
	}
	return t.Filter.Run(node)
}

func (t *Tool) encodeResult(res *ir.Node, outFmt format.Format, w io.Writer) error {
	if t.Raw && res.Type == ir.StringType {
		_, err := io.WriteString(w, res.String+"\n")
		return err
	}
	// TOML has no encoding for a bare scalar or array; fall back to
	// JSON here rather than wrapping under a synthesized key.
	if outFmt == format.TOMLFormat && res.Type != ir.ObjectType {
		outFmt = format.JSONFormat
	}
	opts := []encode.EncodeOption{
		encode.EncodeFormat(outFmt),
		encode.EncodeCompact(t.Compact),
	}
	if t.Colors != nil {
		opts = append(opts, encode.EncodeColors(t.Colors))
	}
	return encode.Encode(res, w, opts...)
}

// ParseAuto classifies and decodes data, returning the detected
// format alongside the value.
func ParseAuto(data []byte) (*ir.Node, format.Format, error) {
	return decode.Auto(data)
}

// Convert decodes data in its detected format and re-encodes it as
// out.
func Convert(data []byte, out format.Format) ([]byte, error) {
	node, _, err := ParseAuto(data)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, encode.EncodeFormat(out)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
