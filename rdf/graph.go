// Package rdf provides an in-memory triple graph over cayleygraph/quad values.
//
// The graph keeps insertion order for every query so that callers observe
// the same ordering the source files declared.
package rdf

import (
	"sync"

	"github.com/cayleygraph/quad"

	"github.com/c360studio/ontogen/vocabulary/ucmis"
)

// Triple is a subject/predicate/object statement.
type Triple struct {
	Subject   quad.Value
	Predicate quad.Value
	Object    quad.Value
}

// Graph is an append-only set of triples indexed by subject and predicate.
// Duplicate triples are ignored. A Graph is safe for concurrent readers once
// loading has finished; Add takes a lock so loaders may run concurrently.
type Graph struct {
	mu          sync.RWMutex
	triples     []Triple
	seen        map[[3]string]struct{}
	bySubject   map[string][]int
	byPredicate map[string][]int
	byObject    map[string][]int
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		seen:        make(map[[3]string]struct{}),
		bySubject:   make(map[string][]int),
		byPredicate: make(map[string][]int),
		byObject:    make(map[string][]int),
	}
}

// Add inserts a triple. It reports whether the triple was new.
func (g *Graph) Add(s, p, o quad.Value) bool {
	if s == nil || p == nil || o == nil {
		return false
	}
	key := [3]string{s.String(), p.String(), o.String()}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, dup := g.seen[key]; dup {
		return false
	}
	g.seen[key] = struct{}{}

	idx := len(g.triples)
	g.triples = append(g.triples, Triple{Subject: s, Predicate: p, Object: o})
	g.bySubject[key[0]] = append(g.bySubject[key[0]], idx)
	g.byPredicate[key[1]] = append(g.byPredicate[key[1]], idx)
	g.byObject[key[2]] = append(g.byObject[key[2]], idx)
	return true
}

// AddQuad inserts the triple part of q. The graph label is ignored.
func (g *Graph) AddQuad(q quad.Quad) bool {
	return g.Add(q.Subject, q.Predicate, q.Object)
}

// Len returns the number of distinct triples.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.triples)
}

// Triples returns every triple matching the pattern in insertion order.
// A nil position is a wildcard.
func (g *Graph) Triples(s, p, o quad.Value) []Triple {
	g.mu.RLock()
	defer g.mu.RUnlock()

	candidates := g.candidates(s, p, o)
	var out []Triple
	for _, idx := range candidates {
		t := g.triples[idx]
		if matches(t.Subject, s) && matches(t.Predicate, p) && matches(t.Object, o) {
			out = append(out, t)
		}
	}
	return out
}

// candidates picks the smallest index list for the bound positions.
func (g *Graph) candidates(s, p, o quad.Value) []int {
	var best []int
	bound := false
	pick := func(index map[string][]int, v quad.Value) {
		if v == nil {
			return
		}
		list := index[v.String()]
		if !bound || len(list) < len(best) {
			best = list
			bound = true
		}
	}
	pick(g.bySubject, s)
	pick(g.byPredicate, p)
	pick(g.byObject, o)
	if bound {
		return best
	}
	all := make([]int, len(g.triples))
	for i := range all {
		all[i] = i
	}
	return all
}

func matches(v, pattern quad.Value) bool {
	return pattern == nil || v.String() == pattern.String()
}

// Objects returns the objects of s p ?o in insertion order.
func (g *Graph) Objects(s, p quad.Value) []quad.Value {
	var out []quad.Value
	for _, t := range g.Triples(s, p, nil) {
		out = append(out, t.Object)
	}
	return out
}

// Object returns the first object of s p ?o.
func (g *Graph) Object(s, p quad.Value) (quad.Value, bool) {
	objs := g.Objects(s, p)
	if len(objs) == 0 {
		return nil, false
	}
	return objs[0], true
}

// Subjects returns the distinct subjects of ?s p o in insertion order.
func (g *Graph) Subjects(p, o quad.Value) []quad.Value {
	var out []quad.Value
	seen := make(map[string]bool)
	for _, t := range g.Triples(nil, p, o) {
		key := t.Subject.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t.Subject)
	}
	return out
}

// Types returns the rdf:type objects of s as IRI strings in insertion order.
// Non-IRI type values are skipped.
func (g *Graph) Types(s quad.Value) []string {
	var out []string
	for _, o := range g.Objects(s, quad.IRI(ucmis.Type)) {
		if iri, ok := o.(quad.IRI); ok {
			out = append(out, string(iri))
		}
	}
	return out
}

// HasType reports whether s carries at least one rdf:type.
func (g *Graph) HasType(s quad.Value) bool {
	return len(g.Types(s)) > 0
}

// IsA reports whether s is typed with the given IRI.
func (g *Graph) IsA(s quad.Value, typeIRI string) bool {
	return len(g.Triples(s, quad.IRI(ucmis.Type), quad.IRI(typeIRI))) > 0
}

// Merge copies every triple of other into g.
func (g *Graph) Merge(other *Graph) {
	for _, t := range other.Triples(nil, nil, nil) {
		g.Add(t.Subject, t.Predicate, t.Object)
	}
}
