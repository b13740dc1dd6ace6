package automaton

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"
)

// LabelFunc maps a symbol to the text written for it in an export.
type LabelFunc func(symbol int) string

// DefaultLabel Returns the single character 'a'+symbol.
func DefaultLabel(symbol int) string {
	return string(rune('a' + symbol))
}

// DefaultSymbol Inverse of DefaultLabel.
func DefaultSymbol(label string) (int, error) {
	r, size := utf8.DecodeRuneInString(label)
	if r == utf8.RuneError || size != len(label) || r < 'a' {
		return 0, fmt.Errorf("label %q is not a single character from 'a' on", label)
	}
	return int(r - 'a'), nil
}

// Export
// Writes d in the plain-text format read by FSM simulators: the sections #states, #initial,
// #accepting, #alphabet and #transitions, one item per line, with edges written as from:label>to.
// The output has no trailing newline.
func Export(w io.Writer, d *DFA, label LabelFunc) error {
	if label == nil {
		label = DefaultLabel
	}
	states := d.States()
	edges := func(yield func(from, column, to int)) {
		for _, s := range states {
			for c := range d.alphabet {
				yield(s, c, d.transitions[s*d.width()+c])
			}
		}
	}
	return writeExport(w, states, d.start, d.AcceptStates(), d.alphabet, edges, label)
}

// ExportPartial
// Writes p in the same format as Export. A partial automaton has no start or accept states, so state 0
// is written as initial and every state as accepting.
func ExportPartial(w io.Writer, p *Partial, label LabelFunc) error {
	if label == nil {
		label = DefaultLabel
	}
	states := make([]int, p.numStates)
	for i := range states {
		states[i] = i
	}
	width := len(p.alphabet)
	edges := func(yield func(from, column, to int)) {
		for s := 0; s < p.numStates; s++ {
			for c := 0; c < width; c++ {
				if dest := p.transitions[s*width+c]; dest >= 0 {
					yield(s, c, dest)
				}
			}
		}
	}
	return writeExport(w, states, 0, states, p.alphabet, edges, label)
}

func writeExport(
	w io.Writer,
	states []int,
	initial int,
	accepting []int,
	alphabet []int,
	edges func(yield func(from, column, to int)),
	label LabelFunc,
) error {
	bw := bufio.NewWriter(w)

	bw.WriteString("#states\n")
	for _, s := range states {
		bw.WriteString(strconv.Itoa(s))
		bw.WriteByte('\n')
	}

	bw.WriteString("#initial\n")
	bw.WriteString(strconv.Itoa(initial))
	bw.WriteByte('\n')

	bw.WriteString("#accepting\n")
	for _, s := range accepting {
		bw.WriteString(strconv.Itoa(s))
		bw.WriteByte('\n')
	}

	labels := make([]string, len(alphabet))
	bw.WriteString("#alphabet\n")
	for i, symbol := range alphabet {
		labels[i] = label(symbol)
		bw.WriteString(labels[i])
		bw.WriteByte('\n')
	}

	bw.WriteString("#transitions")
	edges(func(from, column, to int) {
		bw.WriteByte('\n')
		bw.WriteString(strconv.Itoa(from))
		bw.WriteByte(':')
		bw.WriteString(labels[column])
		bw.WriteByte('>')
		bw.WriteString(strconv.Itoa(to))
	})

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}
