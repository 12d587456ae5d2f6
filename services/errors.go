package services

import "errors"

// ErrNotFound reports a record that is absent or owned by another user. The
// two cases are deliberately indistinguishable so callers cannot probe for
// other users' data.
var ErrNotFound = errors.New("not found")

// ValidationError carries a message safe to surface to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErr(message string) error {
	return &ValidationError{Message: message}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
