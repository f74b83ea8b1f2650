package compiler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/c360studio/ontogen/compiler"
)

func TestTopologicalSort(t *testing.T) {
	tests := []struct {
		name       string
		resources  []string
		subclassOf map[string]string
		wantOrder  []string
		wantCyclic bool
		correct    int
		incorrect  int
		reordered  []compiler.Edge
	}{
		{
			name:       "linear chain given backwards",
			resources:  []string{"C", "B", "A"},
			subclassOf: map[string]string{"C": "B", "B": "A"},
			wantOrder:  []string{"A", "B", "C"},
			correct:    2,
			reordered:  []compiler.Edge{{Child: "C", Parent: "B"}, {Child: "B", Parent: "A"}},
		},
		{
			name:       "independent resources keep input order",
			resources:  []string{"X", "A", "M"},
			subclassOf: map[string]string{},
			wantOrder:  []string{"X", "A", "M"},
		},
		{
			name:       "parents outside the set are ignored",
			resources:  []string{"B", "A"},
			subclassOf: map[string]string{"B": "Outside", "A": "B"},
			wantOrder:  []string{"B", "A"},
			correct:    1,
		},
		{
			name:       "siblings follow parent in input order",
			resources:  []string{"Root", "Left", "Right"},
			subclassOf: map[string]string{"Left": "Root", "Right": "Root"},
			wantOrder:  []string{"Root", "Left", "Right"},
			correct:    2,
		},
		{
			name:       "two cycle appended in input order",
			resources:  []string{"A", "B", "C"},
			subclassOf: map[string]string{"A": "B", "B": "A"},
			wantOrder:  []string{"C", "A", "B"},
			wantCyclic: true,
			correct:    1,
			incorrect:  1,
		},
		{
			name:       "self loop",
			resources:  []string{"A"},
			subclassOf: map[string]string{"A": "A"},
			wantOrder:  []string{"A"},
			wantCyclic: true,
			incorrect:  1,
		},
		{
			name:       "duplicates collapse",
			resources:  []string{"B", "A", "B"},
			subclassOf: map[string]string{"B": "A"},
			wantOrder:  []string{"A", "B"},
			correct:    1,
			reordered:  []compiler.Edge{{Child: "B", Parent: "A"}},
		},
		{
			name:      "empty input",
			resources: nil,
			wantOrder: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := compiler.TopologicalSort(tt.resources, tt.subclassOf)
			assert.Equal(t, tt.wantOrder, got.Order)
			assert.Equal(t, tt.wantCyclic, got.Cyclic)
			assert.Equal(t, tt.correct, got.Correct)
			assert.Len(t, got.Incorrect, tt.incorrect)
			assert.Equal(t, tt.reordered, got.Reordered)
			assert.Equal(t, tt.correct+tt.incorrect, got.Total())
		})
	}
}

func TestTopologicalSortReportsBrokenLinks(t *testing.T) {
	got := compiler.TopologicalSort(
		[]string{"A", "B", "C", "D"},
		map[string]string{"A": "C", "B": "A", "C": "B", "D": "A"},
	)

	assert.True(t, got.Cyclic)
	assert.ElementsMatch(t, []string{"A", "B", "C", "D"}, got.Order)
	assert.Equal(t, 4, got.Total())

	pos := got.Positions()
	for _, e := range got.Incorrect {
		assert.GreaterOrEqual(t, pos[e.Parent], pos[e.Child], "%s -> %s", e.Child, e.Parent)
	}
	assert.NotEmpty(t, got.Incorrect)
}

func TestTopologicalSortReordered(t *testing.T) {
	got := compiler.TopologicalSort(
		[]string{"Leaf", "Other", "Mid", "Root"},
		map[string]string{"Leaf": "Mid", "Mid": "Root", "Other": "Root"},
	)

	assert.Equal(t, []string{"Root", "Other", "Mid", "Leaf"}, got.Order)
	assert.Equal(t, 3, got.Correct)
	assert.Empty(t, got.Incorrect)
	assert.Equal(t, []compiler.Edge{
		{Child: "Leaf", Parent: "Mid"},
		{Child: "Other", Parent: "Root"},
		{Child: "Mid", Parent: "Root"},
	}, got.Reordered)
}
