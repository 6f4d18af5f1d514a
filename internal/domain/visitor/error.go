package visitor

import "errors"

var (
	ErrInvalidFormat     = errors.New("scan payload is not a JSON object")
	ErrIncompleteData    = errors.New("scan payload is incomplete or invalid")
	ErrNoMatchingCheckIn = errors.New("no matching check-in")
	ErrIndexOutOfRange   = errors.New("visitor index out of range")
)

// FieldError указывает поле, не прошедшее проверку.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Err.Error() + ": " + e.Field
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
