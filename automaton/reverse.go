package automaton

import "fmt"

// Reverse is the predecessor relation of a DFA at the moment it was computed. It is never updated:
// any mutation of the DFA makes every read fail with ErrStaleReverse until a new view is computed.
type Reverse struct {
	owner   *DFA
	version uint64
	width   int

	// preds[state*width+column] lists the states reaching state on that column.
	preds [][]int
}

// Reverse Computes the predecessor view of the current transitions.
func (d *DFA) Reverse() *Reverse {
	w := d.width()
	r := &Reverse{
		owner:   d,
		version: d.version,
		width:   w,
		preds:   make([][]int, d.size*w),
	}
	for s, ok := d.live.NextSet(0); ok; s, ok = d.live.NextSet(s + 1) {
		row := int(s) * w
		for c := 0; c < w; c++ {
			dest := d.transitions[row+c]
			r.preds[dest*w+c] = append(r.preds[dest*w+c], int(s))
		}
	}
	return r
}

// Valid Returns true if the automaton has not changed since this view was computed.
func (r *Reverse) Valid() bool {
	return r.version == r.owner.version
}

// Predecessors Returns the states that move to state on symbol.
func (r *Reverse) Predecessors(state, symbol int) ([]int, error) {
	column := columnOf(r.owner.alphabet, symbol)
	if column < 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSymbol, symbol)
	}
	return r.at(state, column)
}

// All Returns every state with a transition into state, on any symbol. A predecessor with several
// such transitions is listed once per transition.
func (r *Reverse) All(state int) ([]int, error) {
	var all []int
	for c := 0; c < r.width; c++ {
		preds, err := r.at(state, c)
		if err != nil {
			return nil, err
		}
		all = append(all, preds...)
	}
	return all, nil
}

func (r *Reverse) at(state, column int) ([]int, error) {
	if !r.Valid() {
		return nil, ErrStaleReverse
	}
	if state < 0 || state*r.width+column >= len(r.preds) {
		return nil, fmt.Errorf("%w: %d", ErrStateOutOfRange, state)
	}
	return r.preds[state*r.width+column], nil
}
