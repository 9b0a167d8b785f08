package letter

import "errors"

var (
	ErrNoRemote    = errors.New("remote generator is not configured")
	ErrEmptyLetter = errors.New("remote returned an empty cover letter")
)

// ValidationError reports unusable form input. It is the only error the
// orchestrator returns to callers.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation reports whether err is or wraps a *ValidationError.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
