package automaton

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Trim
// Removes unreachable states and then dead states from d, in place. State ids are left sparse; call
// Rename before combining d again. An automaton whose language is empty ends up as a lone sink with no
// accept states.
func Trim(d *DFA) error {
	RemoveUnreachable(d)
	return RemoveDead(d)
}

// RemoveUnreachable Removes every state that the start state cannot reach.
func RemoveUnreachable(d *DFA) {
	reachable := liveStatesFromStart(d)
	unreachable := d.live.Difference(reachable)
	if unreachable.None() {
		return
	}
	d.removeStates(unreachable)
}

// FindSink Returns the lowest state whose every transition targets itself, or -1 if there is none.
func FindSink(d *DFA) int {
	w := d.width()
	for s, ok := d.live.NextSet(0); ok; s, ok = d.live.NextSet(s + 1) {
		state := int(s)
		row := state * w
		sink := true
		for c := 0; c < w; c++ {
			if d.transitions[row+c] != state {
				sink = false
				break
			}
		}
		if sink {
			return state
		}
	}
	return -1
}

// RemoveDead
// Removes every state that cannot reach an accept state, except the sink. Transitions into removed
// states, and the start state if it was removed, are redirected to the sink so d stays total.
// Returns ErrNoSink if d has no sink.
func RemoveDead(d *DFA) error {
	sink := FindSink(d)
	if sink < 0 {
		return fmt.Errorf("remove dead states: %w", ErrNoSink)
	}

	alive, err := liveStatesToAccept(d)
	if err != nil {
		return fmt.Errorf("remove dead states: %w", err)
	}
	alive.Set(uint(sink))
	dead := d.live.Difference(alive)
	if dead.None() {
		return nil
	}

	w := d.width()
	for s, ok := alive.NextSet(0); ok; s, ok = alive.NextSet(s + 1) {
		row := int(s) * w
		for c := 0; c < w; c++ {
			if dead.Test(uint(d.transitions[row+c])) {
				d.transitions[row+c] = sink
			}
		}
	}
	if dead.Test(uint(d.start)) {
		d.start = sink
	}
	d.removeStates(dead)
	return nil
}

func liveStatesFromStart(d *DFA) *bitset.BitSet {
	seen := bitset.New(uint(d.size))
	if !d.HasState(d.start) {
		return seen
	}
	w := d.width()
	workList := []int{d.start}
	seen.Set(uint(d.start))
	for len(workList) > 0 {
		state := workList[0]
		workList = workList[1:]
		row := state * w
		for c := 0; c < w; c++ {
			dest := d.transitions[row+c]
			if !seen.Test(uint(dest)) {
				seen.Set(uint(dest))
				workList = append(workList, dest)
			}
		}
	}
	return seen
}

// liveStatesToAccept walks the reverse transitions backwards from the accept states.
func liveStatesToAccept(d *DFA) (*bitset.BitSet, error) {
	seen := d.accept.Intersection(d.live)
	workList := setMembers(seen)
	reverse := d.Reverse()
	for len(workList) > 0 {
		state := workList[0]
		workList = workList[1:]
		preds, err := reverse.All(state)
		if err != nil {
			return nil, err
		}
		for _, pred := range preds {
			if !seen.Test(uint(pred)) {
				seen.Set(uint(pred))
				workList = append(workList, pred)
			}
		}
	}
	return seen, nil
}

// Rename Renumbers the states of d to 0..n-1, keeping their relative order. Compact automata are left
// untouched.
func Rename(d *DFA) {
	if d.IsCompact() {
		return
	}
	w := d.width()
	mapping := make([]int, d.size)
	n := 0
	for s := 0; s < d.size; s++ {
		if d.live.Test(uint(s)) {
			mapping[s] = n
			n++
		} else {
			mapping[s] = -1
		}
	}

	transitions := make([]int, n*w)
	accept := bitset.New(uint(n))
	for s := 0; s < d.size; s++ {
		to := mapping[s]
		if to < 0 {
			continue
		}
		for c := 0; c < w; c++ {
			transitions[to*w+c] = mapping[d.transitions[s*w+c]]
		}
		if d.accept.Test(uint(s)) {
			accept.Set(uint(to))
		}
	}
	live := bitset.New(uint(n))
	live.FlipRange(0, uint(n))

	d.start = mapping[d.start]
	d.size = n
	d.live = live
	d.accept = accept
	d.transitions = transitions
	d.touch()
}

// TrimPartial
// Returns the states of p that are not reachable from any source state (a state without incoming
// transitions), extracted into a new automaton. What remains are the states that can only be entered
// from a cycle.
func TrimPartial(p *Partial) *Partial {
	sources := p.Sources()
	seen := bitset.New(uint(p.numStates))
	workList := make([]int, 0, len(sources))
	for _, s := range sources {
		seen.Set(uint(s))
		workList = append(workList, s)
	}
	for len(workList) > 0 {
		state := workList[0]
		workList = workList[1:]
		for _, dest := range p.Successors(state) {
			if !seen.Test(uint(dest)) {
				seen.Set(uint(dest))
				workList = append(workList, dest)
			}
		}
	}

	retained := make([]int, 0, p.numStates-int(seen.Count()))
	for s := 0; s < p.numStates; s++ {
		if !seen.Test(uint(s)) {
			retained = append(retained, s)
		}
	}
	return Extract(p, retained)
}
