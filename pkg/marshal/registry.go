package marshal

import (
	"sort"

	"github.com/aretw0/args/pkg/schema"
)

// Registry maps flag identifiers to their marshallers.
// It is built once per parse and is not safe for concurrent use.
type Registry struct {
	marshallers map[rune]Marshaller
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		marshallers: make(map[rune]Marshaller),
	}
}

// FromSchema builds a registry with one fresh marshaller per schema element.
// Elements are registered in declaration order, so a redeclared identifier
// ends up with the marshaller of its last declaration.
func FromSchema(s *schema.Schema) (*Registry, error) {
	r := NewRegistry()
	for _, el := range s.Elements() {
		m, err := New(el.Kind)
		if err != nil {
			return nil, err
		}
		r.Register(el.ID, m)
	}
	return r, nil
}

// Register adds a marshaller to the registry.
// If the identifier is already registered, it is overwritten.
func (r *Registry) Register(id rune, m Marshaller) {
	r.marshallers[id] = m
}

// Lookup returns the marshaller registered for id.
func (r *Registry) Lookup(id rune) (Marshaller, bool) {
	m, ok := r.marshallers[id]
	return m, ok
}

// Len returns the number of registered identifiers.
func (r *Registry) Len() int { return len(r.marshallers) }

// IDs returns the registered identifiers in ascending order.
func (r *Registry) IDs() []rune {
	ids := make([]rune, 0, len(r.marshallers))
	for id := range r.marshallers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
