package automaton

import (
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Partial is a deterministic automaton whose transition function may be undefined. It has no start or
// accept states: it only records which label sequences are consistent with a set of constraints.
type Partial struct {
	alphabet  []int
	numStates int

	// Row-major table as in DFA; -1 marks an absent transition.
	transitions []int
}

// NewPartial Creates an automaton with numStates states and no transitions.
func NewPartial(alphabet []int, numStates int) *Partial {
	p := &Partial{alphabet: normalizeAlphabet(alphabet)}
	for i := 0; i < numStates; i++ {
		p.CreateState()
	}
	return p
}

// CreateState Create a new state without transitions.
func (p *Partial) CreateState() int {
	state := p.numStates
	for range p.alphabet {
		p.transitions = append(p.transitions, -1)
	}
	p.numStates++
	return state
}

// SetTransition Add or replace the transition of source on symbol.
func (p *Partial) SetTransition(source, symbol, dest int) error {
	if source < 0 || source >= p.numStates {
		return fmt.Errorf("%w: %d", ErrStateOutOfRange, source)
	}
	if dest < 0 || dest >= p.numStates {
		return fmt.Errorf("%w: %d", ErrStateOutOfRange, dest)
	}
	column := columnOf(p.alphabet, symbol)
	if column < 0 {
		return fmt.Errorf("%w: %d", ErrUnknownSymbol, symbol)
	}
	p.transitions[source*len(p.alphabet)+column] = dest
	return nil
}

// Alphabet Returns the sorted alphabet.
func (p *Partial) Alphabet() []int {
	return slices.Clone(p.alphabet)
}

// NumStates How many states this automaton has.
func (p *Partial) NumStates() int {
	return p.numStates
}

// NumTransitions How many transitions are defined.
func (p *Partial) NumTransitions() int {
	count := 0
	for _, dest := range p.transitions {
		if dest >= 0 {
			count++
		}
	}
	return count
}

// Step Returns the destination of state on symbol, or -1 if there is none.
func (p *Partial) Step(state, symbol int) int {
	if state < 0 || state >= p.numStates {
		return -1
	}
	column := columnOf(p.alphabet, symbol)
	if column < 0 {
		return -1
	}
	return p.transitions[state*len(p.alphabet)+column]
}

// Labels Returns the symbols that have a transition leaving state, in ascending order.
func (p *Partial) Labels(state int) []int {
	w := len(p.alphabet)
	var labels []int
	for c := 0; c < w; c++ {
		if p.transitions[state*w+c] >= 0 {
			labels = append(labels, p.alphabet[c])
		}
	}
	return labels
}

// Successors Returns the destinations of the transitions leaving state, in symbol order.
func (p *Partial) Successors(state int) []int {
	w := len(p.alphabet)
	var dests []int
	for c := 0; c < w; c++ {
		if dest := p.transitions[state*w+c]; dest >= 0 {
			dests = append(dests, dest)
		}
	}
	return dests
}

// Sources Returns the states without any incoming transition, in ascending order.
func (p *Partial) Sources() []int {
	reached := bitset.New(uint(p.numStates))
	for _, dest := range p.transitions {
		if dest >= 0 {
			reached.Set(uint(dest))
		}
	}
	var sources []int
	for s := 0; s < p.numStates; s++ {
		if !reached.Test(uint(s)) {
			sources = append(sources, s)
		}
	}
	return sources
}

// Clone Returns a deep copy.
func (p *Partial) Clone() *Partial {
	return &Partial{
		alphabet:    slices.Clone(p.alphabet),
		numStates:   p.numStates,
		transitions: slices.Clone(p.transitions),
	}
}

// Extract Copies the given states into a new automaton, numbering them by their position in states.
// Transitions into states outside the list are dropped. The alphabet is kept unchanged.
func Extract(p *Partial, states []int) *Partial {
	w := len(p.alphabet)
	mapping := make(map[int]int, len(states))
	for i, s := range states {
		mapping[s] = i
	}
	result := NewPartial(p.alphabet, len(states))
	for i, s := range states {
		for c := 0; c < w; c++ {
			dest := p.transitions[s*w+c]
			if dest < 0 {
				continue
			}
			if mapped, ok := mapping[dest]; ok {
				result.transitions[i*w+c] = mapped
			}
		}
	}
	return result
}
