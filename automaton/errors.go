package automaton

import "errors"

var (
	// ErrNoSink is returned when dead-state removal cannot find a state whose
	// every transition loops back to itself. It means an earlier construction
	// step produced a malformed automaton.
	ErrNoSink = errors.New("automaton: no sink state found")
	// ErrNotCompact is returned by operations that need state ids 0..n-1 when
	// states have been removed without a Rename.
	ErrNotCompact = errors.New("automaton: state ids are not a dense range")
	// ErrStaleReverse is returned when a reverse view is read after the
	// automaton it was computed from has been mutated.
	ErrStaleReverse = errors.New("automaton: reverse transitions are stale")
	// ErrUnknownSymbol indicates a symbol outside the automaton alphabet.
	ErrUnknownSymbol = errors.New("automaton: symbol not in alphabet")
	// ErrStateOutOfRange indicates a state id that does not exist.
	ErrStateOutOfRange = errors.New("automaton: state out of range")
	// ErrMalformedExport indicates text that is not a valid export.
	ErrMalformedExport = errors.New("automaton: malformed export")
)
