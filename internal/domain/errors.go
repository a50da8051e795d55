package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a unique-key conflict on insert.
	ErrAlreadyExists = errors.New("already exists")
	// ErrGatewayNotConfigured is returned when checkout is attempted
	// without payment gateway credentials. Fatal at deployment level.
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
)

// ValidationError marks input problems the client can correct. Handlers
// translate it to a 400 response carrying the message verbatim.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Invalid builds a ValidationError.
func Invalid(msg string) error { return &ValidationError{Msg: msg} }
