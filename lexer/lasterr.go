package lexer

import "sync"

// lastErr is the process-wide last-error slot behind LastError. Each
// Parse overwrites it, so concurrent parses race for its contents exactly as
// the C ABI documents; the mutex only keeps the write itself well-defined.
// The error returned by Parse is the primary, race-free channel.
var (
	lastErrMu sync.Mutex
	lastErr   *Error
)
