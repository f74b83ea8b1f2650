// Package registry maps ontology type IRIs to generated schema types.
package registry

import (
	"sort"

	"github.com/c360studio/ontogen/schema"
)

// Registry is an immutable IRI to type index. It is safe for concurrent use.
type Registry struct {
	types map[string]*schema.Type
	order []string
}

// New indexes every type in sets. Types without an IRI are skipped. When two
// types declare the same IRI the first one registered is kept.
func New(sets ...[]*schema.Type) *Registry {
	r := &Registry{types: make(map[string]*schema.Type)}
	for _, set := range sets {
		for _, t := range set {
			if t == nil || t.IRI == "" || t.New == nil {
				continue
			}
			if _, exists := r.types[t.IRI]; exists {
				continue
			}
			r.types[t.IRI] = t
			r.order = append(r.order, t.IRI)
		}
	}
	return r
}

// Lookup returns the type registered for iri.
func (r *Registry) Lookup(iri string) (*schema.Type, bool) {
	t, ok := r.types[iri]
	return t, ok
}

// Resolve returns the first registered type among candidates, in the order
// given. The second result is the IRI that matched.
func (r *Registry) Resolve(candidates []string) (*schema.Type, string, bool) {
	for _, iri := range candidates {
		if t, ok := r.types[iri]; ok {
			return t, iri, true
		}
	}
	return nil, "", false
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	return len(r.types)
}

// IRIs returns the registered IRIs in sorted order.
func (r *Registry) IRIs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	sort.Strings(out)
	return out
}

// Types returns the registered types in registration order.
func (r *Registry) Types() []*schema.Type {
	out := make([]*schema.Type, 0, len(r.order))
	for _, iri := range r.order {
		out = append(out, r.types[iri])
	}
	return out
}
