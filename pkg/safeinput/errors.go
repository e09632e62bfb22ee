package safeinput

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrInvalidInput indicates a line that failed validation.
	// Accessors retry on it; it only surfaces through InputError.
	ErrInvalidInput = errors.New("safeinput: invalid input")

	// ErrEmptyAllowSet indicates CharFiltered was given no allowed characters.
	ErrEmptyAllowSet = errors.New("safeinput: no allowed characters specified")

	// ErrNilAllowSet is the panic value of CharFiltered when allowed is nil.
	ErrNilAllowSet = errors.New("safeinput: nil allow-set passed to CharFiltered")
)

// Diagnostics reported while retrying.
const (
	MsgInvalid    = "Invalid input. Try again."
	MsgNegative   = "Value can not be negative."
	MsgSingleChar = "Invalid input. Please enter a single character."
	MsgAllowedFmt = "Invalid input. Allowed: %s"
	MsgNoAllowed  = "No allowed characters specified."
	MsgNilAllowed = "ERROR: nil passed to 'allowed'."
	MsgYesNo      = "Invalid input. Enter 'y' or 'n'."
	MsgBoolEOF    = "EOF detected. Returning false by default."
)

// InputError describes why a line was rejected.
type InputError struct {
	Kind   string // Target type, e.g. "int32"
	Input  string // The rejected line
	Reason string // Diagnostic shown to the user
}

func (e *InputError) Error() string {
	return fmt.Sprintf("safeinput: invalid %s %q: %s", e.Kind, e.Input, e.Reason)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

func invalid(kind string, line []byte, reason string) error {
	return &InputError{Kind: kind, Input: string(line), Reason: reason}
}
