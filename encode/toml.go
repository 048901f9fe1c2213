package encode

import (
	"fmt"
	"io"

	"github.com/oq-format/go-oq/bridge"
	"github.com/oq-format/go-oq/ir"

	toml "github.com/pelletier/go-toml/v2"
)

// encodeTOML crosses the bridge and marshals with pelletier. The TOML
// root must be a table: a bare scalar or array is rejected here, not
// wrapped under a synthesized key. Callers wanting a fallback apply
// it at the orchestration layer.
func encodeTOML(node *ir.Node, w io.Writer) error {
	if node.Type != ir.ObjectType {
		return fmt.Errorf("%w: toml document root must be a table, got %s",
			ErrUnrepresentable, node.Type)
	}
	v, err := bridge.FromCanonical(node)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnrepresentable, err)
	}
	d, err := toml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}
