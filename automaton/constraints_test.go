package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairConstraint(t *testing.T) {
	tests := []struct {
		name     string
		word     []int
		adjacent bool
		want     bool
	}{
		{"adjacent empty", nil, true, false},
		{"adjacent single", []int{4}, true, true},
		{"adjacent alternating", []int{4, 7, 4, 7}, true, true},
		{"adjacent starting with second", []int{7, 4, 7}, true, true},
		{"adjacent repeat", []int{4, 7, 7, 4}, true, false},
		{"non-adjacent empty", nil, false, false},
		{"non-adjacent alternating", []int{4, 7, 4}, false, false},
		{"non-adjacent repeat", []int{4, 4}, false, true},
		{"non-adjacent late repeat", []int{7, 4, 7, 7, 4}, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := mustPair(t, 4, 7, tt.adjacent)
			assert.Equal(t, tt.want, Accepts(d, tt.word))
		})
	}

	t.Run("shape", func(t *testing.T) {
		d := mustPair(t, 4, 7, true)
		assert.Equal(t, []int{4, 7}, d.Alphabet())
		assert.Equal(t, 4, d.NumStates())
		assert.Equal(t, []int{1, 2}, d.AcceptStates())
		assert.Equal(t, 3, FindSink(d))

		d = mustPair(t, 4, 7, false)
		assert.Equal(t, []int{3}, d.AcceptStates())
	})

	t.Run("same node", func(t *testing.T) {
		_, err := PairConstraint(2, 2, true)
		assert.Error(t, err)
	})
}

func TestEdgeConstraint(t *testing.T) {
	p, err := EdgeConstraint(1, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, p.Alphabet())
	assert.Equal(t, 2, p.NumStates())
	assert.Equal(t, 2, p.NumTransitions())
	assert.Equal(t, 0, Walk(p, 0, []int{1, 3, 1, 3}))
	assert.Equal(t, 1, Walk(p, 0, []int{1, 3, 1}))
	assert.Equal(t, -1, Walk(p, 0, []int{3}))
	assert.Equal(t, -1, Walk(p, 0, []int{1, 1}))

	_, err = EdgeConstraint(0, 0)
	assert.Error(t, err)
}

func TestIsolatedConstraint(t *testing.T) {
	p := IsolatedConstraint(5)
	assert.Equal(t, []int{5}, p.Alphabet())
	assert.Equal(t, 1, p.NumStates())
	assert.Equal(t, 0, p.Step(0, 5))
	assert.Empty(t, p.Sources())
}
