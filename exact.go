package wordrep

import (
	"fmt"
	"time"

	"github.com/geange/wordrep/automaton"
)

// exactConstraints returns one pair automaton per unordered pair of nodes, in row-major order.
func exactConstraints(m Matrix) ([]*automaton.DFA, error) {
	n := m.Size()
	constraints := make([]*automaton.DFA, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d, err := automaton.PairConstraint(i, j, m.Adjacent(i, j))
			if err != nil {
				return nil, err
			}
			constraints = append(constraints, d)
		}
	}
	return constraints, nil
}

// Exact decides m by intersecting all pairwise constraint automata. After every product the
// accumulator is trimmed and renamed (and minimized with WithMinimize); the run stops as soon as no
// accept state is left.
func Exact(m Matrix, opts ...Option) (*Result, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	o := newOptions(opts...)
	started := time.Now()
	result := &Result{Strategy: StrategyExact, Matching: -1}

	constraints, err := exactConstraints(m)
	if err != nil {
		return nil, err
	}

	var combined *automaton.DFA
	for i, constraint := range constraints {
		if i == 0 {
			combined = constraint
		} else if combined, err = automaton.Product(combined, constraint); err != nil {
			return nil, fmt.Errorf("combine constraint %d: %w", i+1, err)
		}
		if err := automaton.Trim(combined); err != nil {
			return nil, fmt.Errorf("trim after constraint %d: %w", i+1, err)
		}
		automaton.Rename(combined)
		if o.minimize {
			if combined, err = automaton.Minimize(combined); err != nil {
				return nil, fmt.Errorf("minimize after constraint %d: %w", i+1, err)
			}
		}

		o.step(result, Step{
			Strategy:  StrategyExact,
			Combined:  i + 1,
			Total:     len(constraints),
			States:    combined.NumStates(),
			Accepting: combined.NumAccept(),
		})

		if combined.NumAccept() == 0 {
			o.finish(result, started)
			return result, nil
		}
	}

	result.Representable = true
	result.Final = combined
	o.finish(result, started)
	return result, nil
}
