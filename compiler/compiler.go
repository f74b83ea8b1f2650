// Package compiler turns an ontology model into a schema of Go types.
//
// Compilation walks enumerations, structured datatypes, and classes. Each
// group is sorted by IRI and then ordered so that supertypes precede their
// subtypes. Every attribute and outgoing association of a type becomes a
// field whose Go type, multiplicity, and optionality follow from the
// declared range and the XSD cardinality.
package compiler

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/c360studio/ontogen/ontology"
	"github.com/c360studio/ontogen/vocabulary/ucmis"
)

// Options configures a Compiler.
type Options struct {
	// Package is the Go package name of the rendered source.
	Package string
	// Namespace is the ontology namespace. Ranges in this namespace refer
	// to ontology types and predicates are minted under it.
	Namespace string
	// Prefix is the conventional prefix label for Namespace.
	Prefix string
	// ReservedWords are field names renamed with a trailing underscore.
	ReservedWords []string
	// Source describes where the ontology came from.
	Source string
}

// DefaultOptions returns options for the DDI-CDI namespace.
func DefaultOptions() Options {
	return Options{
		Package:       "cdi",
		Namespace:     ucmis.CDI,
		Prefix:        "cdi",
		ReservedWords: DefaultReservedWords,
	}
}

// Compiler compiles one ontology model.
type Compiler struct {
	model    *ontology.Model
	opts     Options
	reserved nameSet
	describe *describer
	logger   *slog.Logger

	refs map[string]TypeRef
}

// New creates a compiler for model.
func New(model *ontology.Model, opts Options, logger *slog.Logger) *Compiler {
	if logger == nil {
		logger = slog.Default()
	}
	defaults := DefaultOptions()
	if opts.Package == "" {
		opts.Package = defaults.Package
	}
	if opts.Namespace == "" {
		opts.Namespace = defaults.Namespace
	}
	if opts.Prefix == "" {
		opts.Prefix = defaults.Prefix
	}
	if opts.ReservedWords == nil {
		opts.ReservedWords = defaults.ReservedWords
	}
	return &Compiler{
		model:    model,
		opts:     opts,
		reserved: newReserved(opts.ReservedWords),
		describe: newDescriber(),
		logger:   logger,
	}
}

// Compile builds the schema. It fails on the first property whose range
// cannot be mapped.
func (c *Compiler) Compile() (*Schema, error) {
	s := &Schema{
		Package:   c.opts.Package,
		Namespace: c.opts.Namespace,
		Prefix:    c.opts.Prefix,
		Source:    c.opts.Source,
	}

	enums := sorted(c.model.Enumerations())
	datatypes := sorted(c.model.Datatypes())
	classes := sorted(c.model.Classes())

	c.refs = make(map[string]TypeRef, len(enums)+len(datatypes)+len(classes))
	if err := c.index(RefEnum, enums); err != nil {
		return nil, err
	}
	if err := c.index(RefDatatype, datatypes); err != nil {
		return nil, err
	}
	if err := c.index(RefClass, classes); err != nil {
		return nil, err
	}

	for _, iri := range enums {
		e, err := c.compileEnum(iri)
		if err != nil {
			return nil, err
		}
		s.Enums = append(s.Enums, e)
	}

	subclassOf := c.model.SubclassOf()
	emitted := make(map[string]*TypeDefinition)

	s.DatatypeOrdering = TopologicalSort(datatypes, subclassOf)
	c.logOrdering("datatypes", s.DatatypeOrdering)
	for _, iri := range s.DatatypeOrdering.Order {
		def, err := c.compileType(iri, ontology.KindDatatype, subclassOf, emitted)
		if err != nil {
			return nil, err
		}
		s.Datatypes = append(s.Datatypes, def)
	}

	s.ClassOrdering = TopologicalSort(classes, subclassOf)
	c.logOrdering("classes", s.ClassOrdering)
	for _, iri := range s.ClassOrdering.Order {
		def, err := c.compileType(iri, ontology.KindClass, subclassOf, emitted)
		if err != nil {
			return nil, err
		}
		s.Classes = append(s.Classes, def)
	}

	c.logger.Info("Compiled ontology",
		slog.Int("enumerations", len(s.Enums)),
		slog.Int("datatypes", len(s.Datatypes)),
		slog.Int("classes", len(s.Classes)))
	return s, nil
}

func sorted(iris []string) []string {
	out := make([]string, len(iris))
	copy(out, iris)
	sort.Strings(out)
	return out
}

// index records the generated name of every type so ranges can refer to
// them, and rejects generated identifiers that clash.
func (c *Compiler) index(kind RefKind, iris []string) error {
	for _, iri := range iris {
		r, ok := c.model.Resource(iri)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownType, iri)
		}
		goName := exportName(r.Label)
		for other, ref := range c.refs {
			if exportName(ref.Name) == goName {
				return fmt.Errorf("%w: %s and %s both generate %s", ErrNameCollision, other, iri, goName)
			}
		}
		c.refs[iri] = TypeRef{Kind: kind, Name: r.Label, IRI: iri}
	}
	return nil
}

func (c *Compiler) logOrdering(group string, o Ordering) {
	if o.Cyclic {
		c.logger.Warn("Supertype cycle detected, appending remaining types in input order",
			slog.String("group", group))
	}
	for _, e := range o.Reordered {
		c.logger.Debug("Moved supertype ahead of subtype",
			slog.String("group", group),
			slog.String("child", e.Child),
			slog.String("parent", e.Parent))
	}
	for _, e := range o.Incorrect {
		c.logger.Warn("Supertype still follows subtype",
			slog.String("group", group),
			slog.String("child", e.Child),
			slog.String("parent", e.Parent))
	}
	c.logger.Info("Type ordering verified",
		slog.String("group", group),
		slog.Int("correct", o.Correct),
		slog.Int("total", o.Total()),
		slog.Int("reordered", len(o.Reordered)))
}

func (c *Compiler) compileEnum(iri string) (*EnumDefinition, error) {
	e, err := c.model.Enumeration(iri)
	if err != nil {
		return nil, err
	}
	def := &EnumDefinition{
		Name:        e.Label,
		GoName:      exportName(e.Label),
		IRI:         iri,
		Description: c.describe.clean(e.Description),
	}
	seen := make(nameSet)
	for _, m := range e.Members {
		goName := def.GoName + exportName(m.Label)
		for seen[goName] {
			goName += "_"
		}
		seen[goName] = true
		def.Members = append(def.Members, EnumMemberDefinition{
			Name:        m.Label,
			GoName:      goName,
			Value:       m.IRI,
			Description: c.describe.clean(m.Description),
		})
	}
	return def, nil
}

func (c *Compiler) compileType(iri string, kind ontology.Kind, subclassOf map[string]string, emitted map[string]*TypeDefinition) (*TypeDefinition, error) {
	r, ok := c.model.Resource(iri)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, iri)
	}
	def := &TypeDefinition{
		Name:        r.Label,
		GoName:      exportName(r.Label),
		IRI:         iri,
		Kind:        kind,
		Description: c.describe.clean(r.Description),
	}

	if parent, ok := subclassOf[iri]; ok {
		switch super, done := emitted[parent]; {
		case done:
			def.Super = super
		case c.refs[parent].Name == "":
			c.logger.Debug("Ignoring supertype outside the ontology",
				slog.String("resource", iri),
				slog.String("parent", parent))
		default:
			c.logger.Warn("Supertype not emitted before subtype, dropping inheritance",
				slog.String("resource", iri),
				slog.String("parent", parent))
		}
	}

	used := nameSet{"OntologyType": true, "Base": true}
	for _, sup := range def.Lineage()[1:] {
		used[sup.GoName] = true
		for _, f := range sup.Fields {
			used[f.GoName] = true
		}
	}

	for _, a := range c.model.DomainAttributes(iri, false) {
		f, err := c.compileField(def, a.IRI, a.Label, a.Range, a.Cardinality, a.Description, used)
		if err != nil {
			return nil, err
		}
		def.Fields = append(def.Fields, f)
	}
	for _, a := range c.model.AssociationsFrom(iri, false) {
		f, err := c.compileField(def, a.IRI, a.Label, a.Range, a.From, a.Description, used)
		if err != nil {
			return nil, err
		}
		f.Association = true
		def.Fields = append(def.Fields, f)
	}

	emitted[iri] = def
	return def, nil
}

func (c *Compiler) compileField(owner *TypeDefinition, property, label string, ranges []string, card ontology.Cardinality, description string, used nameSet) (*FieldDefinition, error) {
	ref, err := c.mapRanges(ranges)
	if err != nil {
		var re *RangeError
		if errors.As(err, &re) {
			re.Resource = owner.IRI
			re.Property = property
		}
		return nil, err
	}

	name := label
	if c.reserved.reserved(name) {
		name += "_"
	}
	for used[exportName(name)] {
		c.logger.Debug("Renaming colliding field",
			slog.String("type", owner.Name),
			slog.String("field", name))
		name += "_"
	}
	goName := exportName(name)
	used[goName] = true

	return &FieldDefinition{
		Name:        name,
		Label:       label,
		GoName:      goName,
		Property:    property,
		Predicate:   c.opts.Namespace + ucmis.LocalName(property),
		Ranges:      ranges,
		Type:        ref,
		Cardinality: card,
		List:        card.Many(),
		Optional:    card.Optional(),
		Description: c.describe.clean(description),
	}, nil
}

func (c *Compiler) mapRanges(ranges []string) (TypeRef, error) {
	if len(ranges) == 0 {
		return TypeRef{}, &RangeError{Reason: "no declared range"}
	}
	refs := make([]TypeRef, 0, len(ranges))
	for _, r := range ranges {
		ref, err := c.mapRange(r)
		if err != nil {
			return TypeRef{}, err
		}
		refs = append(refs, ref)
	}
	if len(refs) == 1 {
		return refs[0], nil
	}
	return TypeRef{Kind: RefUnion, Members: refs}, nil
}

func prim(name string) TypeRef {
	return TypeRef{Kind: RefPrimitive, Name: name, IRI: ucmis.XSD + name}
}

func (c *Compiler) mapRange(iri string) (TypeRef, error) {
	switch {
	case strings.HasPrefix(iri, ucmis.XSD):
		switch strings.TrimPrefix(iri, ucmis.XSD) {
		case "string", "language", "anyURI":
			return TypeRef{Kind: RefUnion, Members: []TypeRef{
				prim(PrimString),
				{Kind: RefPrimitive, Name: PrimLangString, IRI: ucmis.RDFLangString},
			}}, nil
		case "integer":
			return prim(PrimInteger), nil
		case "boolean":
			return prim(PrimBoolean), nil
		case "date", "dateTime":
			return TypeRef{Kind: RefUnion, Members: []TypeRef{prim(PrimDate), prim(PrimDateTime)}}, nil
		case "decimal":
			return prim(PrimDecimal), nil
		case "double":
			return prim(PrimDouble), nil
		}
		return TypeRef{}, &RangeError{Range: iri, Reason: "unsupported primitive type"}
	case strings.HasPrefix(iri, c.opts.Namespace):
		if ref, ok := c.refs[iri]; ok {
			return ref, nil
		}
		return TypeRef{}, &RangeError{Range: iri, Reason: "not declared as a class, datatype, or enumeration"}
	default:
		return TypeRef{}, &RangeError{Range: iri, Reason: "unrecognized namespace"}
	}
}
