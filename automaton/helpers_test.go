package automaton

import (
	"bytes"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// words returns every word over alphabet of length at most maxLen, the empty word included.
func words(alphabet []int, maxLen int) [][]int {
	all := [][]int{{}}
	frontier := [][]int{{}}
	for l := 0; l < maxLen; l++ {
		var next [][]int
		for _, w := range frontier {
			for _, s := range alphabet {
				word := append(slices.Clone(w), s)
				next = append(next, word)
			}
		}
		all = append(all, next...)
		frontier = next
	}
	return all
}

func project(word, alphabet []int) []int {
	var projected []int
	for _, s := range word {
		if slices.Contains(alphabet, s) {
			projected = append(projected, s)
		}
	}
	return projected
}

func mustPair(t *testing.T, n1, n2 int, adjacent bool) *DFA {
	t.Helper()
	d, err := PairConstraint(n1, n2, adjacent)
	require.NoError(t, err)
	return d
}

func mustProduct(t *testing.T, a, b *DFA) *DFA {
	t.Helper()
	d, err := Product(a, b)
	require.NoError(t, err)
	return d
}

func exportString(t *testing.T, d *DFA) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, d, nil))
	return buf.String()
}

func requireSameLanguage(t *testing.T, want, got *DFA, maxLen int) {
	t.Helper()
	for _, w := range words(want.Alphabet(), maxLen) {
		require.Equal(t, Accepts(want, w), Accepts(got, w), "word %v", w)
	}
}
