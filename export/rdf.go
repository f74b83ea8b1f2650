// Package export writes ontology objects and triple graphs as RDF.
//
// A Serializer turns generated objects into triples by walking their field
// descriptors. An RDFExporter collects objects and graphs and renders them
// as N-Triples, Turtle, or JSON-LD.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/nquads"

	"github.com/c360studio/ontogen/rdf"
	"github.com/c360studio/ontogen/schema"
	"github.com/c360studio/ontogen/vocabulary/ucmis"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatTurtle produces Turtle (.ttl) output.
	FormatTurtle Format = "turtle"

	// FormatNTriples produces N-Triples (.nt) output.
	FormatNTriples Format = "ntriples"

	// FormatJSONLD produces JSON-LD (.jsonld) output.
	FormatJSONLD Format = "jsonld"
)

// RDFExporter accumulates triples and serializes them.
type RDFExporter struct {
	graph      *rdf.Graph
	serializer *Serializer
	prefixes   map[string]string
}

// NewRDFExporter creates an exporter with the default prefixes.
func NewRDFExporter() *RDFExporter {
	return &RDFExporter{
		graph:      rdf.NewGraph(),
		serializer: NewSerializer(),
		prefixes:   defaultPrefixes(),
	}
}

// defaultPrefixes returns the standard namespace prefixes for RDF export.
func defaultPrefixes() map[string]string {
	prefixes := make(map[string]string, len(ucmis.Prefixes))
	for k, v := range ucmis.Prefixes {
		prefixes[k] = v
	}
	return prefixes
}

// SetPrefix sets a namespace prefix used by Turtle and JSON-LD output.
func (e *RDFExporter) SetPrefix(prefix, iri string) {
	e.prefixes[prefix] = iri
}

// AddObject serializes obj under subject. An empty subject yields a blank
// node.
func (e *RDFExporter) AddObject(subject string, obj schema.Object) error {
	if subject != "" {
		e.serializer.Name(obj, quad.IRI(subject))
	}
	_, err := e.serializer.Write(e.graph, obj)
	return err
}

// AddGraph copies every triple of g.
func (e *RDFExporter) AddGraph(g *rdf.Graph) {
	e.graph.Merge(g)
}

// Graph returns the accumulated triples.
func (e *RDFExporter) Graph() *rdf.Graph {
	return e.graph
}

// Export serializes all triples to the specified format.
func (e *RDFExporter) Export(format Format) (string, error) {
	var sb strings.Builder
	if err := e.Write(&sb, format); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Write serializes all triples to w.
func (e *RDFExporter) Write(w io.Writer, format Format) error {
	switch format {
	case FormatTurtle:
		tw := NewTurtleWriter(e.prefixes)
		tw.WriteGraph(e.graph)
		_, err := io.WriteString(w, tw.String())
		return err
	case FormatNTriples:
		return writeNTriples(w, e.graph)
	case FormatJSONLD:
		jw := NewJSONLDWriter()
		jw.SetContext(e.prefixes)
		jw.AddGraph(e.graph, e.compact)
		_, err := io.WriteString(w, jw.String())
		return err
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// writeNTriples streams the graph through the N-Quads writer. Triples
// carry no graph label, so every line is valid N-Triples.
func writeNTriples(w io.Writer, g *rdf.Graph) error {
	nw := nquads.NewWriter(w)
	for _, t := range g.Triples(nil, nil, nil) {
		if err := nw.WriteQuad(quad.Quad{Subject: t.Subject, Predicate: t.Predicate, Object: t.Object}); err != nil {
			return fmt.Errorf("write n-triples: %w", err)
		}
	}
	return nil
}

// compact rewrites iri as prefix:local using the exporter's prefixes. The
// longest matching namespace wins; local names Turtle cannot express are
// left as full IRIs.
func (e *RDFExporter) compact(iri string) (string, bool) {
	return compactIRI(e.prefixes, iri)
}

func compactIRI(prefixes map[string]string, iri string) (string, bool) {
	best, bestNS := "", ""
	for prefix, ns := range prefixes {
		if strings.HasPrefix(iri, ns) && len(ns) > len(bestNS) {
			best, bestNS = prefix, ns
		}
	}
	if bestNS == "" {
		return iri, false
	}
	local := strings.TrimPrefix(iri, bestNS)
	if !validLocal(local) {
		return iri, false
	}
	return best + ":" + local, true
}

// validLocal accepts the conservative subset of Turtle local names made of
// letters, digits, '-' and '_'.
func validLocal(local string) bool {
	if local == "" || local[0] == '-' {
		return false
	}
	for _, r := range local {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}
