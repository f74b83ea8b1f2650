package compiler_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/ontogen/compiler"
	"github.com/c360studio/ontogen/ontology"
	"github.com/c360studio/ontogen/rdf"
	"github.com/c360studio/ontogen/vocabulary/ucmis"
)

const cdi = ucmis.CDI

func fixtureModel(t *testing.T) *ontology.Model {
	t.Helper()
	g := rdf.NewGraph()
	_, err := g.LoadFile(filepath.Join("..", "ontology", "testdata", "cdi-subset.nt"))
	require.NoError(t, err)
	cards, err := ontology.LoadXSD(filepath.Join("..", "ontology", "testdata", "cdi-subset.xsd"))
	require.NoError(t, err)
	return ontology.New(g, cards, nil)
}

func compileFixture(t *testing.T, opts compiler.Options) *compiler.Schema {
	t.Helper()
	s, err := compiler.New(fixtureModel(t), opts, nil).Compile()
	require.NoError(t, err)
	return s
}

// builder assembles small ontologies under a test namespace.
type builder struct {
	g *rdf.Graph
}

const ns = "http://example.org/onto/"

func newBuilder() *builder {
	return &builder{g: rdf.NewGraph()}
}

func (b *builder) resource(name, kind string) {
	b.g.Add(quad.IRI(ns+name), quad.IRI(ucmis.Type), quad.IRI(kind))
	b.g.Add(quad.IRI(ns+name), quad.IRI(ucmis.Label), quad.String(name))
}

func (b *builder) class(name, parent string) {
	b.resource(name, ucmis.Class)
	if parent != "" {
		b.g.Add(quad.IRI(ns+name), quad.IRI(ucmis.SubClassOf), quad.IRI(ns+parent))
	}
}

func (b *builder) attr(domain, label string, ranges ...string) {
	iri := quad.IRI(ns + domain + "-" + label)
	b.g.Add(iri, quad.IRI(ucmis.Type), quad.IRI(ucmis.Attribute))
	b.g.Add(iri, quad.IRI(ucmis.Label), quad.String(label))
	b.g.Add(iri, quad.IRI(ucmis.Domain), quad.IRI(ns+domain))
	for _, r := range ranges {
		b.g.Add(iri, quad.IRI(ucmis.Range), quad.IRI(r))
	}
}

func (b *builder) compile() (*compiler.Schema, error) {
	m := ontology.New(b.g, nil, nil)
	return compiler.New(m, compiler.Options{Namespace: ns, Package: "onto", Prefix: "onto"}, nil).Compile()
}

func fieldNames(def *compiler.TypeDefinition) []string {
	var out []string
	for _, f := range def.Fields {
		out = append(out, f.Name)
	}
	return out
}

func field(t *testing.T, def *compiler.TypeDefinition, name string) *compiler.FieldDefinition {
	t.Helper()
	for _, f := range def.Fields {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("type %s has no field %s", def.Name, name)
	return nil
}

func TestCompileFixtureGroups(t *testing.T) {
	s := compileFixture(t, compiler.DefaultOptions())

	require.Len(t, s.Enums, 1)
	assert.Equal(t, "CategoryRelationCode", s.Enums[0].GoName)

	var datatypes []string
	for _, d := range s.Datatypes {
		datatypes = append(datatypes, d.Name)
		assert.Equal(t, ontology.KindDatatype, d.Kind)
	}
	assert.Equal(t, []string{
		"ControlledVocabularyEntry",
		"Identifier",
		"InternationalRegistrationDataIdentifier",
		"ObjectName",
	}, datatypes)

	var classes []string
	for _, c := range s.Classes {
		classes = append(classes, c.Name)
	}
	assert.Equal(t, []string{
		"Concept",
		"ValueAndConceptDescription",
		"ValueMapping",
		"ConceptualVariable",
		"RepresentedVariable",
		"InstanceVariable",
	}, classes)
	assert.Equal(t, 3, s.ClassOrdering.Correct)
	assert.Empty(t, s.ClassOrdering.Incorrect)
	assert.False(t, s.ClassOrdering.Cyclic)
	assert.Equal(t, []compiler.Edge{
		{Child: cdi + "InstanceVariable", Parent: cdi + "RepresentedVariable"},
	}, s.ClassOrdering.Reordered)
}

func TestCompileFixtureInheritance(t *testing.T) {
	s := compileFixture(t, compiler.DefaultOptions())

	iv, ok := s.Type("InstanceVariable")
	require.True(t, ok)
	require.NotNil(t, iv.Super)

	var lineage []string
	for _, d := range iv.Lineage() {
		lineage = append(lineage, d.GoName)
	}
	assert.Equal(t, []string{"InstanceVariable", "RepresentedVariable", "ConceptualVariable", "Concept"}, lineage)

	// Own fields only; inherited fields stay on the supertype.
	assert.Equal(t, []string{"physicalDataType", "platformType", "variableFunction"}, fieldNames(iv))

	concept, ok := s.Type("Concept")
	require.True(t, ok)
	assert.Nil(t, concept.Super)
	assert.Equal(t, []string{"identifier", "name", "definition", "uses"}, fieldNames(concept))
}

func TestCompileFixtureFields(t *testing.T) {
	s := compileFixture(t, compiler.DefaultOptions())

	concept, _ := s.Type("Concept")
	name := field(t, concept, "name")
	assert.True(t, name.List)
	assert.True(t, name.Optional)
	assert.Equal(t, compiler.RefDatatype, name.Type.Kind)
	assert.Equal(t, "ObjectName", name.Type.Name)
	assert.Equal(t, cdi+"Concept-name", name.Predicate)
	assert.Equal(t, cdi+"Concept-name", name.Property)
	assert.Equal(t, "0..*", name.Cardinality.Display())

	definition := field(t, concept, "definition")
	assert.False(t, definition.List)
	assert.True(t, definition.Optional)
	assert.Equal(t, "Union[string, langString]", definition.Type.String())

	uses := field(t, concept, "uses")
	assert.True(t, uses.Association)
	assert.True(t, uses.List)
	assert.Equal(t, compiler.RefClass, uses.Type.Kind)
	assert.Equal(t, cdi+"Concept_uses_Concept", uses.Predicate)

	irdi, _ := s.Type("InternationalRegistrationDataIdentifier")
	for _, f := range irdi.Fields {
		assert.False(t, f.Optional, f.Name)
		assert.False(t, f.List, f.Name)
	}

	vm, _ := s.Type("ValueMapping")
	assert.Equal(t, compiler.PrimInteger, field(t, vm, "length").Type.Name)
	assert.Equal(t, compiler.PrimBoolean, field(t, vm, "isRequired").Type.Name)
	formats := field(t, vm, "formats")
	assert.False(t, formats.List)
	assert.True(t, formats.Association)
	assert.Equal(t, "InstanceVariable", formats.Type.Name)

	vacd, _ := s.Type("ValueAndConceptDescription")
	level := field(t, vacd, "classificationLevel")
	e, ok := level.Type.Enum()
	require.True(t, ok)
	assert.Equal(t, cdi+"CategoryRelationCode", e.IRI)
}

func TestCompileFixtureEnumeration(t *testing.T) {
	s := compileFixture(t, compiler.DefaultOptions())

	e, ok := s.Enum("CategoryRelationCode")
	require.True(t, ok)
	assert.Contains(t, e.Description, "nominal, ordinal")

	var names, values []string
	for _, m := range e.Members {
		names = append(names, m.GoName)
		values = append(values, m.Value)
	}
	assert.Equal(t, []string{
		"CategoryRelationCodeContinuous",
		"CategoryRelationCodeInterval",
		"CategoryRelationCodeNominal",
		"CategoryRelationCodeOrdinal",
	}, names)
	assert.Equal(t, cdi+"CategoryRelationCode-Nominal", values[2])
}

func TestCompileCleansDescriptions(t *testing.T) {
	s := compileFixture(t, compiler.DefaultOptions())

	concept, _ := s.Type("Concept")
	assert.Contains(t, concept.Description, "(from ISO 1087-1)")
	assert.NotContains(t, concept.Description, "<i>")
}

func TestCompileReservedWords(t *testing.T) {
	opts := compiler.DefaultOptions()
	opts.ReservedWords = []string{"name", "Length"}
	s := compileFixture(t, opts)

	concept, _ := s.Type("Concept")
	name := field(t, concept, "name_")
	assert.Equal(t, "Name_", name.GoName)
	assert.Equal(t, "name", name.Label)
	assert.Equal(t, cdi+"Concept-name", name.Predicate, "renaming does not change the predicate")

	vm, _ := s.Type("ValueMapping")
	assert.Equal(t, "Length_", field(t, vm, "length_").GoName)
}

func TestCompileRenamesInheritedCollisions(t *testing.T) {
	b := newBuilder()
	b.class("Parent", "")
	b.class("Child", "Parent")
	b.attr("Parent", "code", ucmis.XSDString)
	b.attr("Child", "code", ucmis.XSDInteger)
	b.attr("Child", "Parent", ucmis.XSDString)
	b.attr("Child", "base", ucmis.XSDString)

	s, err := b.compile()
	require.NoError(t, err)

	child, ok := s.Type("Child")
	require.True(t, ok)
	assert.Equal(t, []string{"code_", "Parent_", "base_"}, fieldNames(child))
}

func TestCompileSiblingCollisions(t *testing.T) {
	b := newBuilder()
	b.class("Thing", "")
	b.attr("Thing", "value", ucmis.XSDString)
	b.attr("Thing", "Value", ucmis.XSDString)

	s, err := b.compile()
	require.NoError(t, err)

	thing, _ := s.Type("Thing")
	require.Len(t, thing.Fields, 2)
	assert.Equal(t, "Value", thing.Fields[0].GoName)
	assert.Equal(t, "Value_", thing.Fields[1].GoName)
}

func TestCompileUnknownCardinalityIsOptionalSingle(t *testing.T) {
	b := newBuilder()
	b.class("Thing", "")
	b.attr("Thing", "value", ucmis.XSDString)

	s, err := b.compile()
	require.NoError(t, err)

	thing, _ := s.Type("Thing")
	f := field(t, thing, "value")
	assert.True(t, f.Optional)
	assert.False(t, f.List)
	assert.False(t, f.Cardinality.Known)
}

func TestCompileUnionRange(t *testing.T) {
	b := newBuilder()
	b.class("A", "")
	b.class("B", "")
	b.class("Holder", "")
	b.attr("Holder", "target", ns+"A", ns+"B")

	s, err := b.compile()
	require.NoError(t, err)

	holder, _ := s.Type("Holder")
	f := field(t, holder, "target")
	assert.Equal(t, compiler.RefUnion, f.Type.Kind)
	assert.True(t, f.Type.IsObject())
	assert.Equal(t, "Union[A, B]", f.Type.String())
}

func TestCompileRangeErrors(t *testing.T) {
	tests := []struct {
		name   string
		ranges []string
		reason string
	}{
		{"unsupported primitive", []string{ucmis.XSD + "gYear"}, "unsupported primitive type"},
		{"undeclared type", []string{ns + "Missing"}, "not declared"},
		{"foreign namespace", []string{"http://other.example/Thing"}, "unrecognized namespace"},
		{"no range", nil, "no declared range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBuilder()
			b.class("Thing", "")
			b.attr("Thing", "broken", tt.ranges...)

			_, err := b.compile()
			require.Error(t, err)
			assert.True(t, errors.Is(err, compiler.ErrUnmappableRange))

			var re *compiler.RangeError
			require.True(t, errors.As(err, &re))
			assert.Equal(t, ns+"Thing", re.Resource)
			assert.Equal(t, ns+"Thing-broken", re.Property)
			assert.Contains(t, re.Reason, tt.reason)
		})
	}
}

func TestCompileNameCollision(t *testing.T) {
	b := newBuilder()
	b.class("thing", "")
	b.class("Thing", "")

	_, err := b.compile()
	assert.ErrorIs(t, err, compiler.ErrNameCollision)
}

func TestCompileDropsCyclicInheritance(t *testing.T) {
	b := newBuilder()
	b.class("A", "B")
	b.class("B", "A")

	s, err := b.compile()
	require.NoError(t, err)

	assert.True(t, s.ClassOrdering.Cyclic)
	a, _ := s.Type("A")
	bdef, _ := s.Type("B")
	assert.Nil(t, a.Super)
	assert.Same(t, a, bdef.Super)
}
