package graph_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/c360studio/semstreams/message"
	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/ontogen/cdi"
	"github.com/c360studio/ontogen/graph"
	"github.com/c360studio/ontogen/mapper"
	"github.com/c360studio/ontogen/rdf"
	"github.com/c360studio/ontogen/registry"
	"github.com/c360studio/ontogen/schema"
	"github.com/c360studio/ontogen/vocabulary/ucmis"
)

const ex = "http://example.org/data/"

func text(value string) *schema.Text {
	return &schema.Text{Value: value}
}

func find(triples []message.Triple, predicate string) []message.Triple {
	var out []message.Triple
	for _, t := range triples {
		if t.Predicate == predicate {
			out = append(out, t)
		}
	}
	return out
}

func TestEntityID(t *testing.T) {
	tests := []struct {
		name    string
		typ     *schema.Type
		subject string
		want    string
	}{
		{name: "iri", typ: cdi.ConceptType, subject: ex + "age", want: "ontogen.local.cdi.concept.age"},
		{name: "fragment", typ: cdi.InstanceVariableType, subject: ex + "vars#v1", want: "ontogen.local.cdi.instancevariable.v1"},
		{name: "dots replaced", typ: cdi.ConceptType, subject: ex + "a.b", want: "ontogen.local.cdi.concept.a-b"},
		{name: "blank label", typ: cdi.ConceptType, subject: "b0", want: "ontogen.local.cdi.concept.b0"},
		{
			name:    "unknown namespace",
			typ:     &schema.Type{Name: "Thing", IRI: "http://other.example/Thing"},
			subject: ex + "t",
			want:    "ontogen.local.ontology.thing.t",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, graph.EntityID(tt.typ, tt.subject))
		})
	}
}

func TestBuilderEntities(t *testing.T) {
	base := &cdi.Concept{Definition: text("Time since birth")}
	age := &cdi.Concept{
		Definition: text("Age in completed years"),
		Name:       []*cdi.ObjectName{{Name: text("Age")}},
		Uses:       []*cdi.Concept{base},
	}

	b := graph.NewBuilder("")
	ageID, err := b.Add(ex+"age", age)
	require.NoError(t, err)
	baseID, err := b.Add(ex+"base", base)
	require.NoError(t, err)

	entities, err := b.Entities()
	require.NoError(t, err)
	require.Len(t, entities, 3)
	assert.Equal(t, ageID, entities[0].EntityID())
	assert.Equal(t, baseID, entities[1].EntityID())
	assert.Equal(t, "ontogen.local.cdi.objectname.age-name-0", entities[2].EntityID())
	for _, e := range entities {
		assert.NoError(t, e.Validate())
	}
	assert.Equal(t, ex+"age", entities[0].Subject)
	assert.Equal(t, cdi.ConceptType.IRI, entities[0].TypeIRI)
	assert.Empty(t, entities[2].Subject)
	assert.Equal(t, cdi.ObjectNameType.IRI, entities[2].TypeIRI)

	triples := entities[0].Triples()
	types := find(triples, ucmis.PredicateType)
	require.Len(t, types, 1)
	assert.Equal(t, cdi.ConceptType.IRI, types[0].Object)
	assert.Equal(t, graph.DefaultSource, types[0].Source)
	assert.Equal(t, 1.0, types[0].Confidence)

	defs := find(triples, "cdi.concept.definition")
	require.Len(t, defs, 1)
	assert.Equal(t, "Age in completed years", defs[0].Object)
	assert.Equal(t, "xsd:string", defs[0].Datatype)

	uses := find(triples, "cdi.concept.uses")
	require.Len(t, uses, 1)
	assert.Equal(t, baseID, uses[0].Object)

	names := find(triples, "cdi.concept.name")
	require.Len(t, names, 1)
	assert.Equal(t, entities[2].EntityID(), names[0].Object)
}

func TestBuilderLiteralValues(t *testing.T) {
	persistent := true
	ordinal := cdi.CategoryRelationCodeOrdinal

	b := graph.NewBuilder("test")
	_, err := b.Add(ex+"id", &cdi.Identifier{IsPersistent: &persistent})
	require.NoError(t, err)
	_, err = b.Add(ex+"desc", &cdi.ValueAndConceptDescription{ClassificationLevel: &ordinal})
	require.NoError(t, err)

	entities, err := b.Entities()
	require.NoError(t, err)
	require.Len(t, entities, 2)

	flags := find(entities[0].Triples(), "cdi.identifier.isPersistent")
	require.Len(t, flags, 1)
	assert.Equal(t, true, flags[0].Object)
	assert.Equal(t, "xsd:boolean", flags[0].Datatype)
	assert.Equal(t, "test", flags[0].Source)

	levels := find(entities[1].Triples(), "cdi.valueandconceptdescription.classificationLevel")
	require.Len(t, levels, 1)
	assert.Equal(t, string(cdi.CategoryRelationCodeOrdinal), levels[0].Object)
	assert.Empty(t, levels[0].Datatype)
}

func TestBuilderSubtypeReferenceSharesEntity(t *testing.T) {
	rv := &cdi.RepresentedVariable{}
	iv := &cdi.InstanceVariable{}

	b := graph.NewBuilder("")
	rvID, err := b.Add(ex+"rv", rv)
	require.NoError(t, err)

	// The embedded supertype value resolves to the outer entity.
	again, err := b.Add(ex+"other", &rv.ConceptualVariable)
	require.NoError(t, err)
	assert.Equal(t, rvID, again)

	ivID, err := b.Add(ex+"iv", iv)
	require.NoError(t, err)
	assert.Equal(t, "ontogen.local.cdi.instancevariable.iv", ivID)
}

func TestBuilderAddResult(t *testing.T) {
	g := rdf.NewGraph()
	g.Add(quad.IRI(ex+"c1"), quad.IRI(ucmis.Type), quad.IRI(cdi.ConceptType.IRI))
	g.Add(quad.IRI(ex+"c2"), quad.IRI(ucmis.Type), quad.IRI(cdi.ConceptType.IRI))
	uses, _ := cdi.ConceptType.Field("uses")
	g.Add(quad.IRI(ex+"c1"), quad.IRI(uses.Predicate), quad.IRI(ex+"c2"))

	result := mapper.New(registry.New(cdi.Types())).DecodeAll(g)
	require.Len(t, result.Entries, 2)

	b := graph.NewBuilder("")
	require.NoError(t, b.AddResult(result))
	entities, err := b.Entities()
	require.NoError(t, err)
	require.Len(t, entities, 2)

	refs := find(entities[0].Triples(), "cdi.concept.uses")
	require.Len(t, refs, 1)
	assert.Equal(t, "ontogen.local.cdi.concept.c2", refs[0].Object)
}

func TestEntityPayload(t *testing.T) {
	const id = "ontogen.local.cdi.concept.age"
	e := &graph.EntityPayload{}
	assert.Error(t, e.Validate())

	e.ID = id
	assert.ErrorContains(t, e.Validate(), "type")

	e.TypeIRI = cdi.ConceptType.IRI
	assert.ErrorContains(t, e.Validate(), "no triples")

	e.Facts = []message.Triple{{Subject: "ontogen.local.cdi.concept.other", Predicate: ucmis.PredicateType, Object: cdi.ConceptType.IRI}}
	assert.ErrorContains(t, e.Validate(), "does not match")

	e.Facts[0].Subject = id
	require.NoError(t, e.Validate())
	assert.Equal(t, graph.EntityType, e.Schema())

	data, err := json.Marshal(e)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"`+cdi.ConceptType.IRI+`"`)
	assert.NotContains(t, string(data), `"subject"`)

	var decoded graph.EntityPayload
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, id, decoded.EntityID())
	require.Len(t, decoded.Triples(), 1)
	assert.Equal(t, ucmis.PredicateType, decoded.Triples()[0].Predicate)
}

func TestPublishWithoutClient(t *testing.T) {
	err := graph.Publish(context.Background(), nil, "", []*graph.EntityPayload{{}})
	assert.NoError(t, err)
}
