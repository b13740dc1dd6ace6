package automaton

import (
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Minimize
// Returns the minimal automaton equivalent to d using Hopcroft's partition refinement. d must be compact
// and is not modified. States of the result are numbered by the smallest original state of their class.
func Minimize(d *DFA) (*DFA, error) {
	if !d.IsCompact() {
		return nil, fmt.Errorf("minimize: %w", ErrNotCompact)
	}
	if d.size == 0 {
		return d.Clone(), nil
	}

	n := uint(d.size)
	reverse := d.Reverse()
	accepting := d.accept.Intersection(d.live)
	rejecting := d.live.Difference(accepting)

	var partition, workList []*bitset.BitSet
	for _, block := range []*bitset.BitSet{accepting, rejecting} {
		if block.Any() {
			partition = append(partition, block)
			workList = append(workList, block)
		}
	}

	for len(workList) > 0 {
		splitter := workList[0]
		workList = workList[1:]

		for c := range d.alphabet {
			x := bitset.New(n)
			for s, ok := splitter.NextSet(0); ok; s, ok = splitter.NextSet(s + 1) {
				preds, err := reverse.at(int(s), c)
				if err != nil {
					return nil, fmt.Errorf("minimize: %w", err)
				}
				for _, pred := range preds {
					x.Set(uint(pred))
				}
			}
			if x.None() {
				continue
			}

			refined := make([]*bitset.BitSet, 0, len(partition))
			for _, y := range partition {
				inter := y.Intersection(x)
				diff := y.Difference(x)
				if inter.None() || diff.None() {
					refined = append(refined, y)
					continue
				}
				refined = append(refined, inter, diff)

				if i := slices.Index(workList, y); i >= 0 {
					workList = slices.Delete(workList, i, i+1)
					workList = append(workList, inter, diff)
				} else if inter.Count() <= diff.Count() {
					workList = append(workList, inter)
				} else {
					workList = append(workList, diff)
				}
			}
			partition = refined
		}
	}

	return collapse(d, partition), nil
}

// collapse builds the quotient automaton of d under partition.
func collapse(d *DFA, partition []*bitset.BitSet) *DFA {
	slices.SortFunc(partition, func(a, b *bitset.BitSet) int {
		first, _ := a.NextSet(0)
		second, _ := b.NextSet(0)
		return int(first) - int(second)
	})

	class := make([]int, d.size)
	representative := make([]int, len(partition))
	for i, block := range partition {
		first, _ := block.NextSet(0)
		representative[i] = int(first)
		for s, ok := block.NextSet(0); ok; s, ok = block.NextSet(s + 1) {
			class[s] = i
		}
	}

	w := d.width()
	result := NewDFA(d.alphabet, len(partition))
	for i, rep := range representative {
		for c := 0; c < w; c++ {
			result.transitions[i*w+c] = class[d.transitions[rep*w+c]]
		}
		if d.accept.Test(uint(rep)) {
			result.accept.Set(uint(i))
		}
	}
	result.start = class[d.start]
	result.touch()
	return result
}
