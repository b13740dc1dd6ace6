package wordrep

import (
	"fmt"
	"time"

	"github.com/geange/wordrep/automaton"
)

// fastConstraints returns one edge cycle per edge followed by one self-loop per isolated node.
func fastConstraints(m Matrix) ([]*automaton.Partial, error) {
	n := m.Size()
	var constraints []*automaton.Partial
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !m.Adjacent(i, j) {
				continue
			}
			p, err := automaton.EdgeConstraint(i, j)
			if err != nil {
				return nil, err
			}
			constraints = append(constraints, p)
		}
	}
	for i := 0; i < n; i++ {
		if m.Isolated(i) {
			constraints = append(constraints, automaton.IsolatedConstraint(i))
		}
	}
	return constraints, nil
}

// Fast decides m with partial automata. The constraints are combined in shuffled order and the
// accumulator is trimmed after every product; the final automaton is decomposed into clusters and m is
// representable iff some cluster implies exactly the non-edges of m.
func Fast(m Matrix, opts ...Option) (*Result, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	o := newOptions(opts...)
	started := time.Now()
	result := &Result{Strategy: StrategyFast, Matching: -1}

	constraints, err := fastConstraints(m)
	if err != nil {
		return nil, err
	}
	if len(constraints) == 0 {
		return nil, fmt.Errorf("%w: no constraints", ErrInvalidMatrix)
	}
	o.rand.Shuffle(len(constraints), func(i, j int) {
		constraints[i], constraints[j] = constraints[j], constraints[i]
	})

	var combined *automaton.Partial
	for i, constraint := range constraints {
		if i == 0 {
			combined = automaton.TrimPartial(constraint)
		} else {
			combined = automaton.TrimPartial(automaton.ProductPartial(combined, constraint))
		}
		o.step(result, Step{
			Strategy:  StrategyFast,
			Combined:  i + 1,
			Total:     len(constraints),
			States:    combined.NumStates(),
			Accepting: -1,
		})
	}

	clusters := automaton.Decompose(combined)
	want := m.NonAdjacentPairs()
	for i, cluster := range clusters {
		if automaton.ImpliedNonAdjacency(cluster).Equal(want) {
			result.Representable = true
			result.Matching = i
			break
		}
	}
	result.Residual = combined
	result.Clusters = len(clusters)
	o.finish(result, started)
	return result, nil
}
