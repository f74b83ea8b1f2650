package schema_test

import (
	"errors"
	"testing"

	"github.com/c360studio/semstreams/vocabulary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/ontogen/schema"
	"github.com/c360studio/ontogen/vocabulary/ucmis"
)

type color string

type animal struct {
	Name   schema.Text
	Nick   *schema.Text
	Tags   []schema.Text
	Weight *float64
	Color  *color
	Friend *animal
	Any    schema.Object
}

type dog struct {
	animal
	Colors []color
}

var animalType = &schema.Type{
	Name: "Animal",
	IRI:  "http://example.org/Animal",
	Fields: []*schema.Field{
		{Name: "name", Predicate: "http://example.org/Animal-name", Range: []string{ucmis.XSDString}},
	},
}

var dogType = &schema.Type{
	Name:  "Dog",
	IRI:   "http://example.org/Dog",
	Super: animalType,
	Fields: []*schema.Field{
		{Name: "colors", Predicate: "http://example.org/Dog-colors", Kind: schema.KindEnum, List: true, Optional: true},
	},
}

func (a *animal) OntologyType() *schema.Type { return animalType }
func (d *dog) OntologyType() *schema.Type    { return dogType }
func (d *dog) Base() schema.Object           { return &d.animal }

func TestAssignConversions(t *testing.T) {
	var a animal

	require.NoError(t, schema.Assign(&a.Name, "Rex"))
	assert.Equal(t, schema.Text{Value: "Rex"}, a.Name)

	require.NoError(t, schema.AssignPtr(&a.Nick, schema.Text{Value: "R", Lang: "en"}))
	assert.Equal(t, "R@en", a.Nick.String())

	require.NoError(t, schema.Append(&a.Tags, "a"))
	require.NoError(t, schema.Append(&a.Tags, "b"))
	assert.Len(t, a.Tags, 2)

	require.NoError(t, schema.AssignPtr(&a.Weight, int64(12)))
	assert.Equal(t, 12.0, *a.Weight)

	require.NoError(t, schema.AssignEnumPtr(&a.Color, "http://example.org/Red"))
	assert.Equal(t, color("http://example.org/Red"), *a.Color)

	err := schema.AssignPtr(&a.Weight, true)
	assert.True(t, errors.Is(err, schema.ErrShape))

	err = schema.AssignEnum(new(color), 3)
	assert.True(t, errors.Is(err, schema.ErrShape))
}

func TestAssignNarrowsSubtypeToBase(t *testing.T) {
	var a animal
	d := &dog{}

	require.NoError(t, schema.Assign(&a.Friend, d))
	assert.Same(t, &d.animal, a.Friend)

	require.NoError(t, schema.Assign(&a.Any, d))
	assert.Same(t, d, a.Any)
}

func TestGetters(t *testing.T) {
	assert.Nil(t, schema.Value[float64](nil))
	assert.Equal(t, []any{2.5}, schema.Value(ptr(2.5)))
	assert.Nil(t, schema.Values([]color{}))
	assert.Equal(t, []any{color("x"), color("y")}, schema.Values([]color{"x", "y"}))
	assert.Equal(t, []any{"a"}, schema.One("a"))

	var obj schema.Object
	assert.Nil(t, schema.Iface(obj))
	a := &animal{}
	assert.Equal(t, []any{a}, schema.Ref(a))
	assert.Nil(t, schema.Ref[animal](nil))
}

func ptr[T any](v T) *T { return &v }

func TestTypeLineage(t *testing.T) {
	assert.Equal(t, []*schema.Type{dogType, animalType}, dogType.Lineage())
	assert.True(t, dogType.IsA(animalType))
	assert.False(t, animalType.IsA(dogType))

	all := dogType.AllFields()
	require.Len(t, all, 2)
	assert.Equal(t, "name", all[0].Name)
	assert.Equal(t, "colors", all[1].Name)

	f, ok := dogType.Field("name")
	require.True(t, ok)
	assert.Equal(t, "1..1", f.Cardinality())

	f, ok = dogType.Field("colors")
	require.True(t, ok)
	assert.Equal(t, "0..*", f.Cardinality())

	_, ok = dogType.Field("missing")
	assert.False(t, ok)
}

func TestLevels(t *testing.T) {
	d := &dog{}
	types, objs, err := schema.Levels(d)
	require.NoError(t, err)
	assert.Equal(t, []*schema.Type{dogType, animalType}, types)
	require.Len(t, objs, 2)
	assert.Same(t, d, objs[0])
	assert.Same(t, &d.animal, objs[1])
}

func TestEnumMatch(t *testing.T) {
	e := &schema.Enum{
		Name: "Color",
		Members: []schema.EnumMember{
			{Name: "Red", Value: "http://example.org/Red"},
			{Name: "Blue", Value: "http://example.org/Blue"},
		},
	}
	m, ok := e.Match("http://example.org/Blue")
	require.True(t, ok)
	assert.Equal(t, "Blue", m.Name)

	_, ok = e.Match("Blue")
	assert.False(t, ok)
}

func TestRegisterVocabulary(t *testing.T) {
	schema.RegisterVocabulary("ex", []*schema.Type{animalType, dogType})

	meta := vocabulary.GetPredicateMetadata("ex.animal.name")
	require.NotNil(t, meta)
	assert.Equal(t, "http://example.org/Animal-name", meta.StandardIRI)
	assert.Equal(t, "string", meta.DataType)
	assert.Equal(t, "Animal name", meta.Description)

	name, ok := ucmis.PredicateName("http://example.org/Dog-colors")
	require.True(t, ok)
	assert.Equal(t, "ex.dog.colors", name)
}
