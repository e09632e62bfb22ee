package linereader

import "errors"

// Sentinel errors
var (
	// ErrOverrun indicates the line held more bytes than the buffer allowed.
	// The buffer holds the first len(buf) bytes; the rest of the line was discarded.
	ErrOverrun = errors.New("linereader: input exceeds buffer size")

	// ErrInvalidCapacity indicates ReadLine was called with an empty buffer.
	ErrInvalidCapacity = errors.New("linereader: capacity must be at least 1")
)

// OverrunMessage is the diagnostic reported on every overrun.
const OverrunMessage = "Input exceeding buffer size. Try again."
