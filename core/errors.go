package core

import "github.com/pkg/errors"

// FieldError pins a validation failure to a single request field; the API
// layer renders these as the `details` map of an error body.
type FieldError struct {
	Field string
	Error string
}

// ValidationError is a user-facing bad-input error. With Fields set it
// becomes a per-field 400; without, a plain one.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{Err: err, Fields: flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// shutdown marks a failure the process cannot recover from, such as a dead
// database connection. The API server stops gracefully when one surfaces.
type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

// IsShutdown reports whether the error chain contains a shutdown error.
func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
