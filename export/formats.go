package export

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/cayleygraph/quad"

	"github.com/c360studio/ontogen/rdf"
	"github.com/c360studio/ontogen/vocabulary/ucmis"
)

// FormatInfo describes an export format.
type FormatInfo struct {
	Name        Format
	MIMEType    string
	Extension   string // with leading dot
	Description string
}

// FormatRegistry lists the supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatTurtle: {
		Name:        FormatTurtle,
		MIMEType:    "text/turtle",
		Extension:   ".ttl",
		Description: "Turtle with compact IRIs, one block per subject",
	},
	FormatNTriples: {
		Name:        FormatNTriples,
		MIMEType:    "application/n-triples",
		Extension:   ".nt",
		Description: "N-Triples, one triple per line with full IRIs",
	},
	FormatJSONLD: {
		Name:        FormatJSONLD,
		MIMEType:    "application/ld+json",
		Extension:   ".jsonld",
		Description: "JSON-LD document with a prefix context and one node per subject",
	},
}

// GetFormatInfo returns metadata for a format.
func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, ok := FormatRegistry[format]
	return info, ok
}

// ParseFormat resolves a format name or file extension.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for format, info := range FormatRegistry {
		if name == string(format) || name == info.Extension || "."+name == info.Extension {
			return format, nil
		}
	}
	return "", fmt.Errorf("unsupported format: %s", name)
}

// TurtleWriter renders a graph as Turtle, one block per subject.
type TurtleWriter struct {
	prefixes map[string]string
	used     map[string]bool
	body     strings.Builder
}

// NewTurtleWriter creates a Turtle writer. A nil prefix map selects the
// default prefixes.
func NewTurtleWriter(prefixes map[string]string) *TurtleWriter {
	if prefixes == nil {
		prefixes = defaultPrefixes()
	}
	return &TurtleWriter{prefixes: prefixes, used: make(map[string]bool)}
}

// SetPrefix sets a namespace prefix.
func (w *TurtleWriter) SetPrefix(prefix, iri string) {
	w.prefixes[prefix] = iri
}

// WriteGraph adds one block per subject of g, in the order subjects first
// appear.
func (w *TurtleWriter) WriteGraph(g *rdf.Graph) {
	var order []string
	bySubject := make(map[string][]rdf.Triple)
	for _, t := range g.Triples(nil, nil, nil) {
		key := t.Subject.String()
		if _, ok := bySubject[key]; !ok {
			order = append(order, key)
		}
		bySubject[key] = append(bySubject[key], t)
	}

	for _, key := range order {
		triples := bySubject[key]
		w.WriteSubject(triples[0].Subject)
		for j, t := range triples {
			w.WritePredicate(t.Predicate, t.Object, j == len(triples)-1)
		}
	}
}

// WriteSubject starts a new subject block.
func (w *TurtleWriter) WriteSubject(subject quad.Value) {
	if w.body.Len() > 0 {
		w.body.WriteString("\n")
	}
	w.body.WriteString(w.term(subject) + "\n")
}

// WritePredicate writes a predicate-object pair. The last pair of a block
// ends the statement.
func (w *TurtleWriter) WritePredicate(predicate, object quad.Value, last bool) {
	terminator := " ;"
	if last {
		terminator = " ."
	}
	p := "a"
	if iri, ok := predicate.(quad.IRI); !ok || string(iri) != ucmis.Type {
		p = w.term(predicate)
	}
	fmt.Fprintf(&w.body, "    %s %s%s\n", p, w.term(object), terminator)
}

// String returns the prefix declarations used by the written blocks
// followed by the blocks.
func (w *TurtleWriter) String() string {
	prefixes := make([]string, 0, len(w.used))
	for prefix := range w.used {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)

	var sb strings.Builder
	for _, prefix := range prefixes {
		fmt.Fprintf(&sb, "@prefix %s: <%s> .\n", prefix, w.prefixes[prefix])
	}
	if len(prefixes) > 0 {
		sb.WriteString("\n")
	}
	sb.WriteString(w.body.String())
	return sb.String()
}

func (w *TurtleWriter) term(v quad.Value) string {
	switch v := v.(type) {
	case quad.IRI:
		if c, ok := w.compact(string(v)); ok {
			return c
		}
	case quad.TypedString:
		if c, ok := w.compact(string(v.Type)); ok {
			return quad.String(v.Value).String() + "^^" + c
		}
	}
	return v.String()
}

func (w *TurtleWriter) compact(iri string) (string, bool) {
	c, ok := compactIRI(w.prefixes, iri)
	if ok {
		prefix, _, _ := strings.Cut(c, ":")
		w.used[prefix] = true
	}
	return c, ok
}

// JSONLDDocument represents a JSON-LD document structure.
type JSONLDDocument struct {
	Context map[string]any `json:"@context"`
	Graph   []JSONLDNode   `json:"@graph"`
}

// JSONLDNode represents a node in a JSON-LD graph.
type JSONLDNode struct {
	ID         string         `json:"@id"`
	Type       []string       `json:"@type,omitempty"`
	Properties map[string]any `json:"-"`
}

// MarshalJSON flattens Properties next to the keywords.
func (n JSONLDNode) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(n.Properties)+2)
	for k, v := range n.Properties {
		m[k] = v
	}
	m["@id"] = n.ID
	if len(n.Type) > 0 {
		m["@type"] = n.Type
	}
	return json.Marshal(m)
}

// JSONLDWriter writes RDF in JSON-LD format.
type JSONLDWriter struct {
	doc JSONLDDocument
}

// NewJSONLDWriter creates a new JSON-LD writer.
func NewJSONLDWriter() *JSONLDWriter {
	return &JSONLDWriter{
		doc: JSONLDDocument{
			Context: make(map[string]any),
			Graph:   make([]JSONLDNode, 0),
		},
	}
}

// SetContext sets the @context with prefixes.
func (w *JSONLDWriter) SetContext(prefixes map[string]string) {
	for k, v := range prefixes {
		w.doc.Context[k] = v
	}
}

// AddNode adds a node to the graph.
func (w *JSONLDWriter) AddNode(id string, types []string, properties map[string]any) {
	node := JSONLDNode{
		ID:         id,
		Type:       types,
		Properties: properties,
	}
	w.doc.Graph = append(w.doc.Graph, node)
}

// AddGraph adds one node per subject of g. compact shortens IRIs used as
// types and property keys.
func (w *JSONLDWriter) AddGraph(g *rdf.Graph, compact func(string) (string, bool)) {
	short := func(iri string) string {
		if c, ok := compact(iri); ok {
			return c
		}
		return iri
	}

	var order []string
	nodes := make(map[string]*JSONLDNode)
	for _, t := range g.Triples(nil, nil, nil) {
		key := t.Subject.String()
		node, ok := nodes[key]
		if !ok {
			node = &JSONLDNode{ID: nodeID(t.Subject), Properties: make(map[string]any)}
			nodes[key] = node
			order = append(order, key)
		}
		if iri, ok := t.Predicate.(quad.IRI); ok && string(iri) == ucmis.Type {
			node.Type = append(node.Type, short(rdf.Lexical(t.Object)))
			continue
		}
		prop := short(rdf.Lexical(t.Predicate))
		values, _ := node.Properties[prop].([]any)
		node.Properties[prop] = append(values, jsonldValue(t.Object))
	}

	for _, key := range order {
		w.doc.Graph = append(w.doc.Graph, *nodes[key])
	}
}

// String returns the JSON-LD output.
func (w *JSONLDWriter) String() string {
	data, err := json.MarshalIndent(w.doc, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}

func nodeID(v quad.Value) string {
	if b, ok := v.(quad.BNode); ok {
		return "_:" + string(b)
	}
	return rdf.Lexical(v)
}

func jsonldValue(v quad.Value) any {
	switch v := v.(type) {
	case quad.IRI, quad.BNode:
		return map[string]any{"@id": nodeID(v)}
	case quad.LangString:
		return map[string]any{"@value": string(v.Value), "@language": v.Lang}
	case quad.TypedString:
		return map[string]any{"@value": string(v.Value), "@type": string(v.Type)}
	}
	return rdf.Lexical(v)
}
