package wordrep

import "errors"

var (
	// ErrInvalidMatrix indicates an adjacency matrix that is empty, not square or not symmetric.
	ErrInvalidMatrix = errors.New("wordrep: invalid adjacency matrix")
	// ErrUnknownStrategy indicates a strategy name other than "exact" or "fast".
	ErrUnknownStrategy = errors.New("wordrep: unknown strategy")
	// ErrNothingToExport is returned by Result.Export when no final automaton was kept.
	ErrNothingToExport = errors.New("wordrep: no automaton to export")
)
