package cdi_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/ontogen/cdi"
	"github.com/c360studio/ontogen/compiler"
	"github.com/c360studio/ontogen/ontology"
	"github.com/c360studio/ontogen/rdf"
	"github.com/c360studio/ontogen/schema"
)

// TestGeneratedMatchesCompiler guards against the checked-in source
// drifting from what the compiler produces for the same ontology.
func TestGeneratedMatchesCompiler(t *testing.T) {
	g := rdf.NewGraph()
	_, err := g.LoadFile(filepath.Join("..", "ontology", "testdata", "cdi-subset.nt"))
	require.NoError(t, err)
	cards, err := ontology.LoadXSD(filepath.Join("..", "ontology", "testdata", "cdi-subset.xsd"))
	require.NoError(t, err)

	s, err := compiler.New(ontology.New(g, cards, nil), compiler.DefaultOptions(), nil).Compile()
	require.NoError(t, err)

	generated := cdi.Types()
	defs := s.Types()
	require.Len(t, generated, len(defs))

	for i, def := range defs {
		typ := generated[i]
		assert.Equal(t, def.Name, typ.Name)
		assert.Equal(t, def.IRI, typ.IRI)
		if def.Super == nil {
			assert.Nil(t, typ.Super, typ.Name)
		} else if assert.NotNil(t, typ.Super, typ.Name) {
			assert.Equal(t, def.Super.IRI, typ.Super.IRI)
		}

		require.Len(t, typ.Fields, len(def.Fields), typ.Name)
		for j, f := range def.Fields {
			got := typ.Fields[j]
			assert.Equal(t, f.Name, got.Name)
			assert.Equal(t, f.Predicate, got.Predicate, f.Name)
			assert.Equal(t, f.Ranges, got.Range, f.Name)
			assert.Equal(t, f.List, got.List, f.Name)
			assert.Equal(t, f.Optional, got.Optional, f.Name)
		}
	}

	require.Len(t, cdi.Enums(), len(s.Enums))
	for i, e := range s.Enums {
		got := cdi.Enums()[i]
		assert.Equal(t, e.IRI, got.IRI)
		require.Len(t, got.Members, len(e.Members))
		for j, m := range e.Members {
			assert.Equal(t, m.Value, got.Members[j].Value)
		}
	}
}

func TestSupertypeLevels(t *testing.T) {
	iv := &cdi.InstanceVariable{}
	iv.Definition = &schema.Text{Value: "Age at last birthday"}

	types, objs, err := schema.Levels(iv)
	require.NoError(t, err)
	require.Len(t, types, 4)
	assert.Same(t, cdi.ConceptType, types[3])

	concept, ok := objs[3].(*cdi.Concept)
	require.True(t, ok)
	assert.Same(t, &iv.Concept, concept)
	assert.Equal(t, "Age at last birthday", concept.Definition.Value)
}

func TestFieldAccessors(t *testing.T) {
	vm := &cdi.ValueMapping{}
	length, ok := cdi.ValueMappingType.Field("length")
	require.True(t, ok)

	require.NoError(t, length.Set(vm, int64(12)))
	require.NotNil(t, vm.Length)
	assert.Equal(t, int64(12), *vm.Length)
	assert.Equal(t, []any{int64(12)}, length.Get(vm))
	assert.ErrorIs(t, length.Set(vm, "twelve"), schema.ErrShape)

	formats, _ := cdi.ValueMappingType.Field("formats")
	iv := &cdi.InstanceVariable{}
	require.NoError(t, formats.Set(vm, iv))
	assert.Same(t, iv, vm.Formats)
	assert.Equal(t, []any{iv}, formats.Get(vm))

	uses, _ := cdi.ConceptType.Field("uses")
	c := &cdi.Concept{}
	require.NoError(t, uses.Set(c, &cdi.Concept{}))
	// A subtype instance is stored through its embedded Concept.
	require.NoError(t, uses.Set(c, iv))
	require.Len(t, c.Uses, 2)
	assert.Same(t, &iv.Concept, c.Uses[1])

	vacd := &cdi.ValueAndConceptDescription{}
	level, _ := cdi.ValueAndConceptDescriptionType.Field("classificationLevel")
	assert.Equal(t, schema.KindEnum, level.Kind)
	assert.Same(t, cdi.CategoryRelationCodeEnum, level.Enum)
	require.NoError(t, level.Set(vacd, cdi.CategoryRelationCodeOrdinal))
	assert.Equal(t, cdi.CategoryRelationCodeOrdinal, *vacd.ClassificationLevel)
	assert.Nil(t, (&cdi.ValueAndConceptDescription{}).ClassificationLevel)
}

func TestInheritedFields(t *testing.T) {
	var names []string
	for _, f := range cdi.InstanceVariableType.AllFields() {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{
		"identifier", "name", "definition", "uses",
		"descriptiveText",
		"hasIntendedDataType", "simpleUnitOfMeasure",
		"physicalDataType", "platformType", "variableFunction",
	}, names)
	assert.True(t, cdi.InstanceVariableType.IsA(cdi.ConceptType))
	assert.False(t, cdi.ConceptType.IsA(cdi.InstanceVariableType))
}
