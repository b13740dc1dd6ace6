package automaton

// Accepts Returns true if d accepts word. A symbol outside the alphabet rejects the word.
func Accepts(d *DFA, word []int) bool {
	state := d.Start()
	for _, symbol := range word {
		next := d.Step(state, symbol)
		if next == -1 {
			return false
		}
		state = next
	}
	return d.IsAccept(state)
}

// Walk Follows word through p from state and returns the state reached, or -1 if some transition on the
// way is absent.
func Walk(p *Partial, state int, word []int) int {
	for _, symbol := range word {
		state = p.Step(state, symbol)
		if state == -1 {
			return -1
		}
	}
	return state
}
