package ontology_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/ontogen/ontology"
	"github.com/c360studio/ontogen/rdf"
	"github.com/c360studio/ontogen/vocabulary/ucmis"
)

const cdi = ucmis.CDI

func loadModel(t *testing.T) *ontology.Model {
	t.Helper()
	g := rdf.NewGraph()
	_, err := g.LoadFile(filepath.Join("testdata", "cdi-subset.nt"))
	require.NoError(t, err)
	cards, err := ontology.LoadXSD(filepath.Join("testdata", "cdi-subset.xsd"))
	require.NoError(t, err)
	return ontology.New(g, cards, nil)
}

func TestResourceListsFollowGraphOrder(t *testing.T) {
	m := loadModel(t)

	assert.Equal(t, []string{
		cdi + "Concept",
		cdi + "ConceptualVariable",
		cdi + "RepresentedVariable",
		cdi + "InstanceVariable",
		cdi + "ValueAndConceptDescription",
		cdi + "ValueMapping",
	}, m.Classes())
	assert.Equal(t, []string{
		cdi + "ControlledVocabularyEntry",
		cdi + "Identifier",
		cdi + "InternationalRegistrationDataIdentifier",
		cdi + "ObjectName",
	}, m.Datatypes())
	assert.Equal(t, []string{cdi + "CategoryRelationCode"}, m.Enumerations())
	assert.Len(t, m.Attributes(), 25)
	assert.Len(t, m.Associations(), 2)
}

func TestResource(t *testing.T) {
	m := loadModel(t)

	r, ok := m.Resource(cdi + "InstanceVariable")
	require.True(t, ok)
	assert.Equal(t, ontology.KindClass, r.Kind)
	assert.Equal(t, "InstanceVariable", r.Label)
	assert.Equal(t, cdi+"RepresentedVariable", r.Parent)
	assert.Equal(t, "Use of a represented variable within a data set.", r.Description)

	attr, ok := m.Resource(cdi + "ValueMapping-length")
	require.True(t, ok)
	assert.Equal(t, ontology.KindAttribute, attr.Kind)
	assert.Equal(t, []string{cdi + "ValueMapping"}, attr.Domain)
	assert.Equal(t, []string{ucmis.XSDInteger}, attr.Range)

}

func TestUnknownIRIYieldsEmptyResults(t *testing.T) {
	m := loadModel(t)
	nope := cdi + "Nope"

	r, ok := m.Resource(nope)
	assert.False(t, ok)
	assert.Equal(t, &ontology.Resource{IRI: nope, Kind: ontology.KindUnknown}, r)

	e, err := m.Enumeration(nope)
	require.NoError(t, err)
	assert.Equal(t, nope, e.IRI)
	assert.Empty(t, e.Members)

	assert.Equal(t, ontology.KindUnknown, m.Kind(nope))
	assert.Empty(t, m.DomainAttributes(nope, true))
}

func TestDomainAttributes(t *testing.T) {
	m := loadModel(t)

	own := m.DomainAttributes(cdi+"InstanceVariable", false)
	require.Len(t, own, 3)
	assert.Equal(t, "physicalDataType", own[0].Label)
	assert.Equal(t, "platformType", own[1].Label)
	assert.Equal(t, "variableFunction", own[2].Label)
	assert.Empty(t, own[0].InheritedFrom)
	assert.Equal(t, "0..*", own[0].Cardinality.Display())
	assert.Equal(t, []string{cdi + "ControlledVocabularyEntry"}, own[0].Range)

	all := m.DomainAttributes(cdi+"InstanceVariable", true)
	require.Len(t, all, 9)
	var labels []string
	for _, a := range all {
		labels = append(labels, a.Label)
	}
	assert.Equal(t, []string{
		"physicalDataType", "platformType", "variableFunction",
		"hasIntendedDataType", "simpleUnitOfMeasure",
		"descriptiveText",
		"identifier", "name", "definition",
	}, labels)
	assert.Equal(t, cdi+"RepresentedVariable", all[3].InheritedFrom)
	assert.Equal(t, cdi+"Concept", all[8].InheritedFrom)
}

func TestRangeAttributes(t *testing.T) {
	m := loadModel(t)

	attrs := m.RangeAttributes(cdi + "ControlledVocabularyEntry")
	var iris []string
	for _, a := range attrs {
		iris = append(iris, a.IRI)
	}
	assert.Equal(t, []string{
		cdi + "ObjectName-context",
		cdi + "RepresentedVariable-hasIntendedDataType",
		cdi + "InstanceVariable-physicalDataType",
		cdi + "InstanceVariable-platformType",
		cdi + "InstanceVariable-variableFunction",
	}, iris)
}

func TestAssociations(t *testing.T) {
	m := loadModel(t)

	from := m.AssociationsFrom(cdi+"ValueMapping", false)
	require.Len(t, from, 1)
	a := from[0]
	assert.Equal(t, "formats", a.Label)
	assert.Equal(t, "ValueMapping formats InstanceVariable", a.AltLabel)
	assert.Equal(t, "0..1", a.From.Display())
	assert.Equal(t, "1..1", a.To.Display())
	assert.Equal(t, []string{"InstanceVariable"}, a.ValidTypes)

	to := m.AssociationsTo(cdi + "InstanceVariable")
	require.Len(t, to, 1)
	assert.Equal(t, cdi+"ValueMapping_formats_InstanceVariable", to[0].IRI)

	inherited := m.AssociationsFrom(cdi+"InstanceVariable", true)
	require.Len(t, inherited, 1)
	assert.Equal(t, "uses", inherited[0].Label)
	assert.Equal(t, cdi+"Concept", inherited[0].InheritedFrom)
	assert.True(t, inherited[0].From.Many())
}

func TestHierarchy(t *testing.T) {
	m := loadModel(t)

	assert.Equal(t, []string{
		cdi + "RepresentedVariable",
		cdi + "ConceptualVariable",
		cdi + "Concept",
	}, m.Superclasses(cdi+"InstanceVariable"))
	assert.Equal(t, []string{
		cdi + "ConceptualVariable",
		cdi + "RepresentedVariable",
		cdi + "InstanceVariable",
	}, m.Subclasses(cdi+"Concept"))
	assert.Empty(t, m.Superclasses(cdi+"Concept"))

	sub := m.SubclassOf()
	assert.Len(t, sub, 3)
	assert.Equal(t, cdi+"Concept", sub[cdi+"ConceptualVariable"])
}

func TestSubclassOfKeepsFirstSupertype(t *testing.T) {
	g := rdf.NewGraph()
	sub := quad.IRI(ucmis.SubClassOf)
	g.Add(quad.IRI("urn:Child"), sub, quad.IRI("urn:First"))
	g.Add(quad.IRI("urn:Child"), sub, quad.IRI("urn:Second"))
	m := ontology.New(g, nil, nil)

	assert.Equal(t, map[string]string{"urn:Child": "urn:First"}, m.SubclassOf())
}

func TestCardinalityOwnerFallback(t *testing.T) {
	m := loadModel(t)

	// Inherited attributes are declared on the owner's complex type.
	c := m.Cardinality(cdi+"InstanceVariable", cdi+"Concept-name")
	assert.True(t, c.Known)
	assert.True(t, c.Many())
	assert.True(t, c.Optional())

	c = m.Cardinality(cdi+"InternationalRegistrationDataIdentifier", cdi+"InternationalRegistrationDataIdentifier-dataIdentifier")
	assert.Equal(t, "1..1", c.Display())
	assert.False(t, c.Optional())

	c = m.Cardinality(cdi+"Concept", cdi+"Concept-unknown")
	assert.False(t, c.Known)
	assert.True(t, c.Optional())
	assert.False(t, c.Many())
}

func TestEnumeration(t *testing.T) {
	m := loadModel(t)

	e, err := m.Enumeration(cdi + "CategoryRelationCode")
	require.NoError(t, err)
	require.Len(t, e.Members, 4)
	assert.Equal(t, cdi+"CategoryRelationCode-Continuous", e.Members[0].IRI)
	assert.Equal(t, "Ordinal", e.Members[3].Label)

	_, err = m.Enumeration(cdi + "Concept")
	assert.True(t, errors.Is(err, ontology.ErrNotEnumeration))
}

func TestSearchAndFrequency(t *testing.T) {
	m := loadModel(t)

	found, err := m.SearchClasses("VARIABLE")
	require.NoError(t, err)
	assert.Len(t, found, 3)

	_, err = m.SearchClasses("(")
	assert.Error(t, err)

	assert.Equal(t, 4, m.ClassFrequency(cdi+"CategoryRelationCode"))
	assert.Equal(t, 0, m.ClassFrequency(cdi+"Concept"))
}

func TestModelWithoutCardinalitySource(t *testing.T) {
	g := rdf.NewGraph()
	_, err := g.LoadFile(filepath.Join("testdata", "cdi-subset.nt"))
	require.NoError(t, err)
	m := ontology.New(g, nil, nil)

	attrs := m.DomainAttributes(cdi+"ValueMapping", false)
	require.Len(t, attrs, 4)
	for _, a := range attrs {
		assert.False(t, a.Cardinality.Known, a.Label)
	}
}
