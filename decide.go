package wordrep

import (
	"fmt"
	"io"
	"time"

	"github.com/geange/wordrep/automaton"
)

// Result is the outcome of a decision run.
type Result struct {
	Representable bool
	Strategy      Strategy

	// Steps is the number of combination steps performed.
	Steps int
	// MaxStates is the largest accumulator seen after trimming.
	MaxStates int
	Elapsed   time.Duration

	// Final is the exact strategy's last accumulator, kept only when the graph is representable and
	// at least one constraint existed.
	Final *automaton.DFA

	// Residual is the fast strategy's last accumulator; Clusters is the number of clusters it split
	// into and Matching the index of the first cluster whose constraints matched, or -1.
	Residual *automaton.Partial
	Clusters int
	Matching int
}

// Export writes the kept automaton in the simulator text format.
func (r *Result) Export(w io.Writer, label automaton.LabelFunc) error {
	switch {
	case r.Final != nil:
		return automaton.Export(w, r.Final, label)
	case r.Residual != nil:
		return automaton.ExportPartial(w, r.Residual, label)
	default:
		return ErrNothingToExport
	}
}

// Decide runs the given strategy on m.
func Decide(m Matrix, strategy Strategy, opts ...Option) (*Result, error) {
	switch strategy {
	case StrategyExact:
		return Exact(m, opts...)
	case StrategyFast:
		return Fast(m, opts...)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, strategy)
	}
}

// IsRepresentable runs the exact strategy and returns only the decision.
func IsRepresentable(m Matrix) (bool, error) {
	result, err := Exact(m)
	if err != nil {
		return false, err
	}
	return result.Representable, nil
}

func (o *options) step(result *Result, step Step) {
	result.Steps++
	result.MaxStates = max(result.MaxStates, step.States)
	o.observer.ObserveStep(step)
	o.logger.Debug("combined constraint automata",
		"strategy", step.Strategy.String(),
		"step", step.Combined,
		"total", step.Total,
		"states", step.States,
		"accepting", step.Accepting)
}

func (o *options) finish(result *Result, started time.Time) {
	result.Elapsed = time.Since(started)
	o.observer.ObserveDecision(result.Strategy, result.Representable, result.Elapsed)
	o.logger.Info("decision",
		"strategy", result.Strategy.String(),
		"representable", result.Representable,
		"steps", result.Steps,
		"max_states", result.MaxStates,
		"elapsed", result.Elapsed)
}
