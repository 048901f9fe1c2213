package decode

import (
	"github.com/oq-format/go-oq/bridge"
	"github.com/oq-format/go-oq/ir"

	toml "github.com/pelletier/go-toml/v2"
)

// decodeTOML delegates syntax to pelletier and shape translation to
// the bridge. The root of a TOML document is always a table.
func decodeTOML(data []byte) (*ir.Node, error) {
	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return bridge.ToCanonical(m), nil
}
