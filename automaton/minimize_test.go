package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimize(t *testing.T) {
	t.Run("merges equivalent states", func(t *testing.T) {
		// Accepts every non-empty word; states 1, 2 and 3 are interchangeable.
		d := NewDFA([]int{0}, 4)
		require.NoError(t, d.SetTransition(0, 0, 1))
		require.NoError(t, d.SetTransition(1, 0, 2))
		require.NoError(t, d.SetTransition(2, 0, 3))
		for _, s := range []int{1, 2, 3} {
			require.NoError(t, d.SetAccept(s, true))
		}

		m, err := Minimize(d)
		require.NoError(t, err)
		assert.Equal(t, 2, m.NumStates())
		assert.Equal(t, 0, m.Start())
		assert.Equal(t, []int{1}, m.AcceptStates())
		assert.Equal(t, 1, m.Step(0, 0))
		assert.Equal(t, 1, m.Step(1, 0))
		requireSameLanguage(t, d, m, 6)
		assert.Equal(t, 4, d.NumStates())
	})

	tests := []struct {
		name string
		dfa  func(t *testing.T) *DFA
		want int
	}{
		{
			name: "pair constraint is minimal",
			dfa:  func(t *testing.T) *DFA { return mustPair(t, 0, 1, true) },
			want: 4,
		},
		{
			name: "non-adjacent pair constraint is minimal",
			dfa:  func(t *testing.T) *DFA { return mustPair(t, 0, 1, false) },
			want: 4,
		},
		{
			name: "trimmed product",
			dfa: func(t *testing.T) *DFA {
				d := mustProduct(t, mustPair(t, 0, 1, true), mustPair(t, 0, 2, true))
				require.NoError(t, Trim(d))
				Rename(d)
				return d
			},
			want: 8,
		},
		{
			name: "untrimmed product",
			dfa: func(t *testing.T) *DFA {
				return mustProduct(t, mustPair(t, 0, 1, true), mustPair(t, 1, 2, false))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tt.dfa(t)
			m, err := Minimize(d)
			require.NoError(t, err)
			if tt.want > 0 {
				assert.Equal(t, tt.want, m.NumStates())
			}
			assert.LessOrEqual(t, m.NumStates(), d.NumStates())
			requireSameLanguage(t, d, m, 6)

			again, err := Minimize(m)
			require.NoError(t, err)
			assert.Equal(t, exportString(t, m), exportString(t, again))
		})
	}

	t.Run("no accept states", func(t *testing.T) {
		d := NewDFA([]int{0, 1}, 3)
		require.NoError(t, d.SetTransition(0, 0, 1))
		require.NoError(t, d.SetTransition(1, 1, 2))
		m, err := Minimize(d)
		require.NoError(t, err)
		assert.Equal(t, 1, m.NumStates())
		assert.Equal(t, 0, m.NumAccept())
	})

	t.Run("not compact", func(t *testing.T) {
		d := NewDFA([]int{0}, 3)
		RemoveUnreachable(d)
		_, err := Minimize(d)
		assert.ErrorIs(t, err, ErrNotCompact)
	})
}
