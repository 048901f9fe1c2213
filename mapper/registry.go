package mapper

import (
	"path"

	"github.com/oq-format/go-oq/debug"
	"github.com/oq-format/go-oq/ir"
)

// Registry maps glob-style name patterns to mappers. Lookup order is
// registration order; the first matching pattern wins, and names with
// no match fall back to the identity.
type Registry struct {
	entries []entry
}

type entry struct {
	pattern string
	mapper  Mapper
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Register binds a pattern (path.Match syntax, e.g. "search_*") to a
// mapper.
func (r *Registry) Register(pattern string, m Mapper) {
	r.entries = append(r.entries, entry{pattern: pattern, mapper: m})
}

// Lookup returns the mapper for name, or the identity.
func (r *Registry) Lookup(name string) Mapper {
	for _, e := range r.entries {
		ok, err := path.Match(e.pattern, name)
		if err == nil && ok {
			if debug.Mapper() {
				debug.Logf("mapper: %q matched %q (%s)\n", name, e.pattern, e.mapper.Description())
			}
			return e.mapper
		}
	}
	return Identity{}
}

// Transform applies the mapper registered for name.
func (r *Registry) Transform(name string, node *ir.Node) (*ir.Node, error) {
	return r.Lookup(name).Transform(node)
}

// DefaultRegistry caps pathological payloads before compact encoding.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("*", NewChain(NewTruncate(2000), NewLimit(500)))
	return r
}
