package wordrep

import (
	"fmt"
	"strings"
)

// Strategy selects how constraint automata are combined and how the decision is read off.
type Strategy int

const (
	// StrategyExact combines total DFAs and decides by accept-state survival.
	StrategyExact Strategy = iota
	// StrategyFast combines partial automata and decides by cluster decomposition.
	StrategyFast
)

func (s Strategy) String() string {
	switch s {
	case StrategyExact:
		return "exact"
	case StrategyFast:
		return "fast"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "exact" or "fast" (any case) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "exact":
		return StrategyExact, nil
	case "fast":
		return StrategyFast, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}
