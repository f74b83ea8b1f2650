package rdf_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/ontogen/rdf"
)

func TestReadNTriples(t *testing.T) {
	src := `<http://example.org/s> <http://example.org/p> "v" .
<http://example.org/s> <http://example.org/p> "v" .
<http://example.org/s> <http://example.org/q> _:b0 .
`
	g := rdf.NewGraph()
	n, err := g.Read(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	obj, ok := g.Object(quad.IRI("http://example.org/s"), quad.IRI("http://example.org/q"))
	require.True(t, ok)
	assert.True(t, rdf.IsNode(obj))
}

func TestReadRejectsMalformedInput(t *testing.T) {
	g := rdf.NewGraph()
	_, err := g.Read(strings.NewReader("<http://example.org/s> <http://example.org/p>\n"))
	assert.Error(t, err)
}

func TestLoadDir(t *testing.T) {
	g := rdf.NewGraph()
	files, err := g.LoadDir("testdata")
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join("testdata", "a.nt"),
		filepath.Join("testdata", "nested", "b.nt"),
	}, files)
	assert.Equal(t, 5, g.Len())

	count, ok := g.Object(quad.IRI("http://example.org/b"), quad.IRI("http://example.org/count"))
	require.True(t, ok)
	v, err := rdf.Native(count)
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)
}

func TestLoadMixedPaths(t *testing.T) {
	g, err := rdf.Load(filepath.Join("testdata", "a.nt"), filepath.Join("testdata", "nested"))
	require.NoError(t, err)
	assert.Equal(t, 5, g.Len())

	_, err = rdf.Load(filepath.Join("testdata", "missing.nt"))
	assert.Error(t, err)
}
