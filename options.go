package wordrep

import (
	"log/slog"
	"math/rand/v2"
)

type options struct {
	logger   *slog.Logger
	rand     *rand.Rand
	minimize bool
	observer Observer
}

// Option configures a decision run.
type Option func(*options)

func newOptions(opts ...Option) *options {
	o := &options{
		logger:   slog.New(slog.DiscardHandler),
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.rand == nil {
		o.rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return o
}

// WithLogger sends progress records to logger. Nil keeps the default, which discards them.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithRand sets the source used to shuffle the combination order of the fast strategy.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rand = r
	}
}

// WithSeed makes the fast strategy's combination order reproducible.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rand = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithMinimize runs Hopcroft minimization after every combination step of the exact strategy.
func WithMinimize(enabled bool) Option {
	return func(o *options) {
		o.minimize = enabled
	}
}

// WithObserver reports every combination step and the final decision to observer.
func WithObserver(observer Observer) Option {
	return func(o *options) {
		if observer != nil {
			o.observer = observer
		}
	}
}
