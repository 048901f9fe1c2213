package decode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/oq-format/go-oq/ir"
)

// decodeJSON walks the token stream directly instead of unmarshalling
// into map[string]any, which would lose object key order. UseNumber
// keeps integers exact up to 64 bits.
func decodeJSON(data []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err == io.EOF {
		return nil, errors.New("empty document")
	}
	if err != nil {
		return nil, err
	}
	node, err := jsonValue(dec, tok)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("trailing data after top-level value")
	}
	return node, nil
}

func jsonValue(dec *json.Decoder, tok json.Token) (*ir.Node, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return jsonObject(dec)
		case '[':
			return jsonArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t)
	case string:
		return ir.FromString(t), nil
	case bool:
		return ir.FromBool(t), nil
	case json.Number:
		return jsonNumber(t)
	case nil:
		return ir.Null(), nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func jsonObject(dec *json.Decoder) (*ir.Node, error) {
	res := &ir.Node{Type: ir.ObjectType}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(json.Delim); ok && d == '}' {
			return res, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is %v, not a string", tok)
		}
		vTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		v, err := jsonValue(dec, vTok)
		if err != nil {
			return nil, err
		}
		// last occurrence wins on duplicate keys
		ir.Set(res, key, v)
	}
}

func jsonArray(dec *json.Decoder) (*ir.Node, error) {
	var vals []*ir.Node
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(json.Delim); ok && d == ']' {
			return ir.FromSlice(vals), nil
		}
		v, err := jsonValue(dec, tok)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
}

func jsonNumber(n json.Number) (*ir.Node, error) {
	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		return ir.FromInt(i), nil
	}
	f, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("bad number %q: %w", n.String(), err)
	}
	return ir.FromFloat(f), nil
}
