package automaton

import (
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// DFA Represents a total deterministic automaton over integer symbols. Every state has exactly one
// transition for every alphabet symbol; a freshly created state loops back to itself on all of them.
// States are ids in 0..Size()-1. Trimming removes ids without renumbering, after which Rename must be
// called before the automaton is handed to Product or Minimize.
type DFA struct {
	alphabet []int

	// Number of allocated ids; removed ids keep their slot until Rename.
	size int

	// Ids that are still part of the automaton.
	live *bitset.BitSet

	start int

	accept *bitset.BitSet

	// Row-major table, transitions[state*len(alphabet)+column] = dest. Rows of removed states hold -1.
	transitions []int

	// Bumped on every mutation so that reverse views can detect staleness.
	version uint64
}

// NewDFA Creates an automaton over the given alphabet with numStates states, each looping back to
// itself on every symbol. The start state is 0 and no state accepts.
func NewDFA(alphabet []int, numStates int) *DFA {
	d := &DFA{
		alphabet:    normalizeAlphabet(alphabet),
		live:        bitset.New(uint(numStates)),
		accept:      bitset.New(uint(numStates)),
		transitions: make([]int, 0, numStates*len(alphabet)),
	}
	for i := 0; i < numStates; i++ {
		d.CreateState()
	}
	return d
}

// CreateState Create a new state with a self-loop on every symbol.
func (d *DFA) CreateState() int {
	state := d.size
	for range d.alphabet {
		d.transitions = append(d.transitions, state)
	}
	d.live.Set(uint(state))
	d.size++
	d.touch()
	return state
}

func (d *DFA) touch() {
	d.version++
}

func (d *DFA) width() int {
	return len(d.alphabet)
}

func (d *DFA) checkState(state int) error {
	if !d.HasState(state) {
		return fmt.Errorf("%w: %d", ErrStateOutOfRange, state)
	}
	return nil
}

// SetStart Set the start state.
func (d *DFA) SetStart(state int) error {
	if err := d.checkState(state); err != nil {
		return err
	}
	d.start = state
	d.touch()
	return nil
}

// SetAccept Set or clear this state as an accept state.
func (d *DFA) SetAccept(state int, accept bool) error {
	if err := d.checkState(state); err != nil {
		return err
	}
	d.accept.SetTo(uint(state), accept)
	d.touch()
	return nil
}

// SetTransition Point the transition of source on symbol at dest, replacing the previous target.
func (d *DFA) SetTransition(source, symbol, dest int) error {
	if err := d.checkState(source); err != nil {
		return err
	}
	if err := d.checkState(dest); err != nil {
		return err
	}
	column := columnOf(d.alphabet, symbol)
	if column < 0 {
		return fmt.Errorf("%w: %d", ErrUnknownSymbol, symbol)
	}
	d.transitions[source*d.width()+column] = dest
	d.touch()
	return nil
}

// Alphabet Returns the sorted alphabet.
func (d *DFA) Alphabet() []int {
	return slices.Clone(d.alphabet)
}

// Size How many ids are allocated, including removed ones.
func (d *DFA) Size() int {
	return d.size
}

// NumStates How many states this automaton has.
func (d *DFA) NumStates() int {
	return int(d.live.Count())
}

// IsCompact Returns true if the state ids are exactly 0..NumStates()-1.
func (d *DFA) IsCompact() bool {
	return d.NumStates() == d.size
}

// HasState Returns true if state is a live id of this automaton.
func (d *DFA) HasState(state int) bool {
	return state >= 0 && state < d.size && d.live.Test(uint(state))
}

// States Returns the live state ids in ascending order.
func (d *DFA) States() []int {
	return setMembers(d.live)
}

// Start Returns the start state.
func (d *DFA) Start() int {
	return d.start
}

// IsAccept Returns true if this state is an accept state.
func (d *DFA) IsAccept(state int) bool {
	return d.HasState(state) && d.accept.Test(uint(state))
}

// AcceptStates Returns the accept states in ascending order.
func (d *DFA) AcceptStates() []int {
	return setMembers(d.accept)
}

// NumAccept How many accept states this automaton has.
func (d *DFA) NumAccept() int {
	return int(d.accept.Count())
}

// Step Returns the destination of state on symbol, or -1 if the state does not exist or the symbol is
// not in the alphabet.
func (d *DFA) Step(state, symbol int) int {
	if !d.HasState(state) {
		return -1
	}
	column := columnOf(d.alphabet, symbol)
	if column < 0 {
		return -1
	}
	return d.transitions[state*d.width()+column]
}

// Clone Returns a deep copy.
func (d *DFA) Clone() *DFA {
	return &DFA{
		alphabet:    slices.Clone(d.alphabet),
		size:        d.size,
		live:        d.live.Clone(),
		start:       d.start,
		accept:      d.accept.Clone(),
		transitions: slices.Clone(d.transitions),
	}
}

// removeStates drops every id in gone. Nothing may still point at them.
func (d *DFA) removeStates(gone *bitset.BitSet) {
	w := d.width()
	for s, ok := gone.NextSet(0); ok; s, ok = gone.NextSet(s + 1) {
		if int(s) >= d.size {
			break
		}
		row := int(s) * w
		for c := 0; c < w; c++ {
			d.transitions[row+c] = -1
		}
	}
	d.live.InPlaceDifference(gone)
	d.accept.InPlaceDifference(gone)
	d.touch()
}

func setMembers(b *bitset.BitSet) []int {
	members := make([]int, 0, b.Count())
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		members = append(members, int(i))
	}
	return members
}
