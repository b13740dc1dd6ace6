package automaton

import "fmt"

// Product
// Returns the product of a and b over the union of their alphabets. State (i, j) is encoded as
// i*b.Size()+j. A symbol foreign to one operand leaves that operand where it is, so the product accepts a
// word iff a accepts its projection onto a's alphabet and b accepts its projection onto b's. Neither
// operand is modified; both must be compact.
func Product(a, b *DFA) (*DFA, error) {
	if !a.IsCompact() {
		return nil, fmt.Errorf("product left operand: %w", ErrNotCompact)
	}
	if !b.IsCompact() {
		return nil, fmt.Errorf("product right operand: %w", ErrNotCompact)
	}

	alphabet := mergeAlphabets(a.alphabet, b.alphabet)
	w := len(alphabet)
	wa, wb := a.width(), b.width()
	colA := columnsIn(alphabet, a.alphabet)
	colB := columnsIn(alphabet, b.alphabet)
	nb := b.size

	result := NewDFA(alphabet, a.size*nb)
	result.start = a.start*nb + b.start

	for s1 := 0; s1 < a.size; s1++ {
		for s2 := 0; s2 < nb; s2++ {
			row := (s1*nb + s2) * w
			for k := 0; k < w; k++ {
				t1, t2 := s1, s2
				if colA[k] >= 0 {
					t1 = a.transitions[s1*wa+colA[k]]
				}
				if colB[k] >= 0 {
					t2 = b.transitions[s2*wb+colB[k]]
				}
				result.transitions[row+k] = t1*nb + t2
			}
		}
	}

	for s1, ok := a.accept.NextSet(0); ok; s1, ok = a.accept.NextSet(s1 + 1) {
		for s2, ok2 := b.accept.NextSet(0); ok2; s2, ok2 = b.accept.NextSet(s2 + 1) {
			result.accept.Set(s1*uint(nb) + s2)
		}
	}
	result.touch()
	return result, nil
}

// ProductPartial
// Returns the product of two partial automata. For each symbol an operand whose alphabet lacks it stays
// where it is; an operand whose alphabet has it but whose state has no transition on it blocks the
// symbol, and the composed transition is omitted.
func ProductPartial(a, b *Partial) *Partial {
	alphabet := mergeAlphabets(a.alphabet, b.alphabet)
	w := len(alphabet)
	wa, wb := len(a.alphabet), len(b.alphabet)
	colA := columnsIn(alphabet, a.alphabet)
	colB := columnsIn(alphabet, b.alphabet)
	nb := b.numStates

	result := NewPartial(alphabet, a.numStates*nb)
	for s1 := 0; s1 < a.numStates; s1++ {
		for s2 := 0; s2 < nb; s2++ {
			row := (s1*nb + s2) * w
			for k := 0; k < w; k++ {
				t1, t2 := s1, s2
				if colA[k] >= 0 {
					if t1 = a.transitions[s1*wa+colA[k]]; t1 < 0 {
						continue
					}
				}
				if colB[k] >= 0 {
					if t2 = b.transitions[s2*wb+colB[k]]; t2 < 0 {
						continue
					}
				}
				result.transitions[row+k] = t1*nb + t2
			}
		}
	}
	return result
}
