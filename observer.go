package wordrep

import "time"

// Step describes the accumulator after one combination step.
type Step struct {
	Strategy Strategy
	// Combined is the number of constraint automata folded in so far.
	Combined int
	Total    int
	States   int
	// Accepting is the number of accept states, or -1 for the fast strategy.
	Accepting int
}

// Observer receives progress of a decision run.
type Observer interface {
	ObserveStep(step Step)
	ObserveDecision(strategy Strategy, representable bool, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObserveStep(Step) {}

func (nopObserver) ObserveDecision(Strategy, bool, time.Duration) {}

type multiObserver []Observer

// Observers fans every event out to all of observers, in order.
func Observers(observers ...Observer) Observer {
	return multiObserver(observers)
}

func (m multiObserver) ObserveStep(step Step) {
	for _, o := range m {
		o.ObserveStep(step)
	}
}

func (m multiObserver) ObserveDecision(strategy Strategy, representable bool, elapsed time.Duration) {
	for _, o := range m {
		o.ObserveDecision(strategy, representable, elapsed)
	}
}
