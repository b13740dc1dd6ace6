package automaton

import (
	"cmp"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Decompose
// Splits p into forward-reachability clusters. States are scanned in ascending order; each state not yet
// claimed seeds a breadth-first walk over outgoing transitions that claims every unclaimed state it
// meets. Each cluster is extracted into its own automaton with the seed as state 0. Clusters are
// disjoint but need not be strongly connected.
func Decompose(p *Partial) []*Partial {
	var clusters []*Partial
	claimed := bitset.New(uint(p.numStates))
	for seed := 0; seed < p.numStates; seed++ {
		if claimed.Test(uint(seed)) {
			continue
		}
		claimed.Set(uint(seed))
		states := []int{seed}
		for i := 0; i < len(states); i++ {
			for _, dest := range p.Successors(states[i]) {
				if !claimed.Test(uint(dest)) {
					claimed.Set(uint(dest))
					states = append(states, dest)
				}
			}
		}
		clusters = append(clusters, Extract(p, states))
	}
	return clusters
}

// Pair is an unordered pair of symbols, stored with Lo < Hi.
type Pair struct {
	Lo, Hi int
}

// NewPair orders a and b.
func NewPair(a, b int) Pair {
	if a > b {
		a, b = b, a
	}
	return Pair{Lo: a, Hi: b}
}

// PairSet is a set of unordered symbol pairs.
type PairSet map[Pair]struct{}

// Add inserts the pair {a, b}.
func (s PairSet) Add(a, b int) {
	s[NewPair(a, b)] = struct{}{}
}

// Has reports whether {a, b} is in the set.
func (s PairSet) Has(a, b int) bool {
	_, ok := s[NewPair(a, b)]
	return ok
}

// Equal reports whether both sets hold exactly the same pairs.
func (s PairSet) Equal(other PairSet) bool {
	if len(s) != len(other) {
		return false
	}
	for pair := range s {
		if _, ok := other[pair]; !ok {
			return false
		}
	}
	return true
}

// Sorted returns the pairs ordered by Lo, then Hi.
func (s PairSet) Sorted() []Pair {
	pairs := make([]Pair, 0, len(s))
	for pair := range s {
		pairs = append(pairs, pair)
	}
	slices.SortFunc(pairs, func(a, b Pair) int {
		if c := cmp.Compare(a.Lo, b.Lo); c != 0 {
			return c
		}
		return cmp.Compare(a.Hi, b.Hi)
	})
	return pairs
}

// ImpliedNonAdjacency
// Returns every pair of distinct symbols that label two transitions leaving the same state of p. Each
// such pair is read as a pair of nodes that must not be adjacent.
func ImpliedNonAdjacency(p *Partial) PairSet {
	pairs := make(PairSet)
	for s := 0; s < p.numStates; s++ {
		labels := p.Labels(s)
		for i := 0; i < len(labels); i++ {
			for j := i + 1; j < len(labels); j++ {
				pairs.Add(labels[i], labels[j])
			}
		}
	}
	return pairs
}
