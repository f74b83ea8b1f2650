// Package ontology answers structural questions about a UML-derived
// ontology graph: which classes, datatypes, enumerations, attributes, and
// associations it declares, how they specialize each other, and what
// cardinality each property carries.
package ontology

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/cayleygraph/quad"

	"github.com/c360studio/ontogen/rdf"
	"github.com/c360studio/ontogen/vocabulary/ucmis"
)

// Kind is the metamodel kind of a resource.
type Kind string

const (
	KindUnknown     Kind = ""
	KindClass       Kind = "class"
	KindDatatype    Kind = "datatype"
	KindEnumeration Kind = "enumeration"
	KindAttribute   Kind = "attribute"
	KindAssociation Kind = "association"
	KindPrimitive   Kind = "primitive"
)

var kindByType = map[string]Kind{
	ucmis.Class:              KindClass,
	ucmis.StructuredDataType: KindDatatype,
	ucmis.Enumeration:        KindEnumeration,
	ucmis.Attribute:          KindAttribute,
	ucmis.Association:        KindAssociation,
	ucmis.PrimitiveType:      KindPrimitive,
}

// Resource describes one ontology resource.
type Resource struct {
	IRI         string
	Kind        Kind
	Label       string
	Description string
	Domain      []string
	Range       []string
	// Parent is the direct supertype, empty for roots.
	Parent string
}

// Attribute is a literal- or datatype-valued property of a type.
type Attribute struct {
	IRI         string
	Label       string
	Description string
	Range       []string
	Cardinality Cardinality
	// InheritedFrom names the declaring supertype when the attribute was
	// collected from an ancestor.
	InheritedFrom string
}

// Association is an object-valued property between classes.
type Association struct {
	IRI         string
	Label       string
	AltLabel    string
	Description string
	Domain      []string
	Range       []string
	// From is the number of targets each source may reference.
	From Cardinality
	// To is the cardinality of the target end.
	To            Cardinality
	ValidTypes    []string
	InheritedFrom string
}

// Enumeration is an enumeration resource with its members.
type Enumeration struct {
	Resource
	Members []Member
}

// Member is one enumeration member.
type Member struct {
	IRI         string
	Label       string
	Description string
}

// Model wraps an ontology graph and an optional cardinality source.
type Model struct {
	graph  *rdf.Graph
	cards  *CardinalitySource
	logger *slog.Logger
}

// New creates a model over g. cards may be nil, in which case every
// cardinality is unknown.
func New(g *rdf.Graph, cards *CardinalitySource, logger *slog.Logger) *Model {
	if logger == nil {
		logger = slog.Default()
	}
	return &Model{graph: g, cards: cards, logger: logger}
}

// Graph returns the underlying graph.
func (m *Model) Graph() *rdf.Graph {
	return m.graph
}

var (
	typeIRI       = quad.IRI(ucmis.Type)
	subClassOfIRI = quad.IRI(ucmis.SubClassOf)
	labelIRI      = quad.IRI(ucmis.Label)
	commentIRI    = quad.IRI(ucmis.Comment)
	domainIRI     = quad.IRI(ucmis.Domain)
	rangeIRI      = quad.IRI(ucmis.Range)
	altLabelIRI   = quad.IRI(ucmis.AltLabel)
)

func (m *Model) ofType(typ string) []string {
	var out []string
	for _, s := range m.graph.Subjects(typeIRI, quad.IRI(typ)) {
		if iri, ok := s.(quad.IRI); ok {
			out = append(out, string(iri))
		}
	}
	return out
}

// Classes returns the class IRIs in graph order.
func (m *Model) Classes() []string { return m.ofType(ucmis.Class) }

// Datatypes returns the structured datatype IRIs in graph order.
func (m *Model) Datatypes() []string { return m.ofType(ucmis.StructuredDataType) }

// Enumerations returns the enumeration IRIs in graph order.
func (m *Model) Enumerations() []string { return m.ofType(ucmis.Enumeration) }

// Attributes returns the attribute IRIs in graph order.
func (m *Model) Attributes() []string { return m.ofType(ucmis.Attribute) }

// Associations returns the association IRIs in graph order.
func (m *Model) Associations() []string { return m.ofType(ucmis.Association) }

// Kind returns the metamodel kind of iri.
func (m *Model) Kind(iri string) Kind {
	for _, t := range m.graph.Types(quad.IRI(iri)) {
		if k, ok := kindByType[t]; ok {
			return k
		}
	}
	return KindUnknown
}

// Resource describes iri. When the graph says nothing about it the result
// carries only the IRI and ok is false.
func (m *Model) Resource(iri string) (r *Resource, ok bool) {
	subject := quad.IRI(iri)
	if len(m.graph.Triples(subject, nil, nil)) == 0 {
		return &Resource{IRI: iri, Kind: KindUnknown}, false
	}
	r = &Resource{
		IRI:         iri,
		Kind:        m.Kind(iri),
		Label:       m.label(subject),
		Description: m.description(subject),
		Domain:      m.iris(subject, domainIRI),
		Range:       m.iris(subject, rangeIRI),
	}
	if parents := m.iris(subject, subClassOfIRI); len(parents) > 0 {
		r.Parent = parents[0]
	}
	return r, true
}

func (m *Model) label(s quad.Value) string {
	if v, ok := m.graph.Object(s, labelIRI); ok {
		return rdf.Lexical(v)
	}
	return ucmis.LocalName(rdf.Lexical(s))
}

func (m *Model) description(s quad.Value) string {
	var parts []string
	for _, v := range m.graph.Objects(s, commentIRI) {
		parts = append(parts, rdf.Lexical(v))
	}
	return strings.Join(parts, "\n\n")
}

func (m *Model) iris(s, p quad.Value) []string {
	var out []string
	for _, v := range m.graph.Objects(s, p) {
		if iri, ok := v.(quad.IRI); ok {
			out = append(out, string(iri))
		}
	}
	return out
}

func (m *Model) propertiesOf(iri, kind string, via quad.Value) []string {
	var out []string
	for _, s := range m.graph.Subjects(via, quad.IRI(iri)) {
		p, ok := s.(quad.IRI)
		if !ok || !m.graph.IsA(p, kind) {
			continue
		}
		out = append(out, string(p))
	}
	return out
}

// DomainAttributes returns the attributes whose domain is iri. When
// inherited is true the attributes of every supertype follow, nearest
// supertype first. An attribute declared both on iri and on a supertype is
// reported once, as the own attribute.
func (m *Model) DomainAttributes(iri string, inherited bool) []Attribute {
	var out []Attribute
	seen := make(map[string]bool)
	add := func(owner, from string) {
		for _, a := range m.propertiesOf(owner, ucmis.Attribute, domainIRI) {
			if seen[a] {
				continue
			}
			seen[a] = true
			attr := m.attribute(owner, a)
			attr.InheritedFrom = from
			out = append(out, attr)
		}
	}
	add(iri, "")
	if inherited {
		for _, super := range m.Superclasses(iri) {
			add(super, super)
		}
	}
	return out
}

// RangeAttributes returns the attributes whose range is iri.
func (m *Model) RangeAttributes(iri string) []Attribute {
	var out []Attribute
	for _, a := range m.propertiesOf(iri, ucmis.Attribute, rangeIRI) {
		owner := ""
		if domains := m.iris(quad.IRI(a), domainIRI); len(domains) > 0 {
			owner = domains[0]
		}
		out = append(out, m.attribute(owner, a))
	}
	return out
}

func (m *Model) attribute(owner, iri string) Attribute {
	s := quad.IRI(iri)
	return Attribute{
		IRI:         iri,
		Label:       m.label(s),
		Description: m.description(s),
		Range:       m.iris(s, rangeIRI),
		Cardinality: m.Cardinality(owner, iri),
	}
}

// AssociationsFrom returns the associations whose source is iri, followed
// by those of its supertypes when inherited is true.
func (m *Model) AssociationsFrom(iri string, inherited bool) []Association {
	var out []Association
	seen := make(map[string]bool)
	add := func(owner, from string) {
		for _, a := range m.propertiesOf(owner, ucmis.Association, domainIRI) {
			if seen[a] {
				continue
			}
			seen[a] = true
			assoc := m.association(owner, a)
			assoc.InheritedFrom = from
			out = append(out, assoc)
		}
	}
	add(iri, "")
	if inherited {
		for _, super := range m.Superclasses(iri) {
			add(super, super)
		}
	}
	return out
}

// AssociationsTo returns the associations whose target is iri.
func (m *Model) AssociationsTo(iri string) []Association {
	var out []Association
	for _, a := range m.propertiesOf(iri, ucmis.Association, rangeIRI) {
		owner := ""
		if domains := m.iris(quad.IRI(a), domainIRI); len(domains) > 0 {
			owner = domains[0]
		}
		out = append(out, m.association(owner, a))
	}
	return out
}

func (m *Model) association(owner, iri string) Association {
	s := quad.IRI(iri)
	a := Association{
		IRI:         iri,
		Label:       m.label(s),
		Description: m.description(s),
		Domain:      m.iris(s, domainIRI),
		Range:       m.iris(s, rangeIRI),
	}
	if v, ok := m.graph.Object(s, altLabelIRI); ok {
		a.AltLabel = rdf.Lexical(v)
	}
	a.From, a.To, a.ValidTypes = m.AssociationCardinality(owner, iri)
	return a
}

// Superclasses returns the transitive supertypes of iri, nearest first.
func (m *Model) Superclasses(iri string) []string {
	var out []string
	seen := map[string]bool{iri: true}
	queue := []string{iri}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, p := range m.iris(quad.IRI(cur), subClassOfIRI) {
			if seen[p] {
				continue
			}
			seen[p] = true
			out = append(out, p)
			queue = append(queue, p)
		}
	}
	return out
}

// Subclasses returns the transitive subtypes of iri, breadth first.
func (m *Model) Subclasses(iri string) []string {
	var out []string
	seen := map[string]bool{iri: true}
	queue := []string{iri}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, s := range m.graph.Subjects(subClassOfIRI, quad.IRI(cur)) {
			child, ok := s.(quad.IRI)
			if !ok || seen[string(child)] {
				continue
			}
			seen[string(child)] = true
			out = append(out, string(child))
			queue = append(queue, string(child))
		}
	}
	return out
}

// SubclassOf maps every resource with a supertype to its first declared
// direct supertype.
func (m *Model) SubclassOf() map[string]string {
	out := make(map[string]string)
	for _, t := range m.graph.Triples(nil, subClassOfIRI, nil) {
		child, ok1 := t.Subject.(quad.IRI)
		parent, ok2 := t.Object.(quad.IRI)
		if !ok1 || !ok2 {
			continue
		}
		if prev, exists := out[string(child)]; exists {
			if prev != string(parent) {
				m.logger.Debug("Ignoring additional supertype",
					slog.String("resource", string(child)),
					slog.String("kept", prev),
					slog.String("ignored", string(parent)))
			}
			continue
		}
		out[string(child)] = string(parent)
	}
	return out
}

// Cardinality returns the cardinality of attribute on resource. The XSD is
// consulted under the resource name first and then under the owner name
// embedded in the attribute name (<Owner>-<property>).
func (m *Model) Cardinality(resource, attribute string) Cardinality {
	element := ucmis.LocalName(attribute)
	for _, owner := range owners(resource, element, "-") {
		if c, ok := m.cards.Lookup(owner, element); ok {
			return c
		}
	}
	return Cardinality{}
}

// AssociationCardinality returns the source and target cardinalities of an
// association together with the allowed target type names.
func (m *Model) AssociationCardinality(resource, association string) (from, to Cardinality, validTypes []string) {
	element := ucmis.LocalName(association)
	for _, owner := range owners(resource, element, "_") {
		c, ok := m.cards.Lookup(owner, element)
		if !ok {
			continue
		}
		from = c
		to, _ = m.cards.Lookup(owner, element+"-validType")
		validTypes = m.cards.ValidTypes(owner, element+"-validType")
		return from, to, validTypes
	}
	return Cardinality{}, Cardinality{}, nil
}

func owners(resource, element, sep string) []string {
	var out []string
	if resource != "" {
		out = append(out, ucmis.LocalName(resource))
	}
	if owner, _, ok := strings.Cut(element, sep); ok && owner != "" {
		if len(out) == 0 || out[0] != owner {
			out = append(out, owner)
		}
	}
	return out
}

// Enumeration returns iri with its members in graph order. An IRI the graph
// does not know yields an enumeration without members.
func (m *Model) Enumeration(iri string) (*Enumeration, error) {
	r, ok := m.Resource(iri)
	if !ok {
		return &Enumeration{Resource: *r}, nil
	}
	if r.Kind != KindEnumeration {
		return nil, fmt.Errorf("resource %s is a %s: %w", iri, r.Kind, ErrNotEnumeration)
	}
	e := &Enumeration{Resource: *r}
	for _, s := range m.graph.Subjects(typeIRI, quad.IRI(iri)) {
		member, ok := s.(quad.IRI)
		if !ok {
			continue
		}
		e.Members = append(e.Members, Member{
			IRI:         string(member),
			Label:       m.label(member),
			Description: m.description(member),
		})
	}
	return e, nil
}

// SearchClasses returns the classes whose IRI matches pattern,
// case-insensitively.
func (m *Model) SearchClasses(pattern string) ([]string, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("search pattern: %w", err)
	}
	var out []string
	for _, c := range m.Classes() {
		if re.MatchString(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

// ClassFrequency returns how many subjects are typed with iri.
func (m *Model) ClassFrequency(iri string) int {
	return len(m.graph.Subjects(typeIRI, quad.IRI(iri)))
}
