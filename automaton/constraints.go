package automaton

import "fmt"

// States of the pairwise constraint automaton.
const (
	pairStart       = 0 // nothing read yet
	pairSawFirst    = 1 // last label read was n1 and no label repeated
	pairSawSecond   = 2 // last label read was n2 and no label repeated
	pairConsecutive = 3 // some label was read twice in a row; trap
)

// PairConstraint
// Returns a 4-state automaton over {n1, n2} that reads the projection of a word onto those two labels.
// When adjacent is true it accepts iff the projection alternates and is non-empty; otherwise it accepts
// iff one of the labels occurs twice in a row. State 3 is the sink.
func PairConstraint(n1, n2 int, adjacent bool) (*DFA, error) {
	if n1 == n2 {
		return nil, fmt.Errorf("pair constraint needs two distinct nodes, got %d twice", n1)
	}
	d := NewDFA([]int{n1, n2}, 4)
	table := [4][2]int{
		pairStart:       {pairSawFirst, pairSawSecond},
		pairSawFirst:    {pairConsecutive, pairSawSecond},
		pairSawSecond:   {pairSawFirst, pairConsecutive},
		pairConsecutive: {pairConsecutive, pairConsecutive},
	}
	for state, row := range table {
		if err := d.SetTransition(state, n1, row[0]); err != nil {
			return nil, err
		}
		if err := d.SetTransition(state, n2, row[1]); err != nil {
			return nil, err
		}
	}
	if adjacent {
		_ = d.SetAccept(pairSawFirst, true)
		_ = d.SetAccept(pairSawSecond, true)
	} else {
		_ = d.SetAccept(pairConsecutive, true)
	}
	return d, nil
}

// EdgeConstraint
// Returns the 2-state cycle 0 --n1--> 1 --n2--> 0 recording that n1 and n2 must alternate.
func EdgeConstraint(n1, n2 int) (*Partial, error) {
	if n1 == n2 {
		return nil, fmt.Errorf("edge constraint needs two distinct nodes, got %d twice", n1)
	}
	p := NewPartial([]int{n1, n2}, 2)
	if err := p.SetTransition(0, n1, 1); err != nil {
		return nil, err
	}
	if err := p.SetTransition(1, n2, 0); err != nil {
		return nil, err
	}
	return p, nil
}

// IsolatedConstraint
// Returns a single state looping on node. It puts a node without neighbours into the alphabet.
func IsolatedConstraint(node int) *Partial {
	p := NewPartial([]int{node}, 1)
	_ = p.SetTransition(0, node, 0)
	return p
}
