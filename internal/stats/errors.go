package stats

import "errors"

// Domain errors. Malformed records are never errors here: the engine
// treats the empty/absent case as a valid zero-value case. Only the
// request contract itself can be invalid.
var (
	// ErrInvalidPeriod - trend period must be "week" or "month"
	ErrInvalidPeriod = errors.New("stats: invalid trend period")
)
