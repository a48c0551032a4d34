package services

import "errors"

var (
	// ErrNotFound indicates that no photo with the requested id exists.
	ErrNotFound = errors.New("photo not found")
	// ErrInvalidCredentials is returned for any failed login, regardless of
	// which field was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates a missing or unregistered bearer token.
	ErrInvalidToken = errors.New("invalid authentication token")
)

// ValidationError reports bad or missing client input. Its message is safe
// to return to the client.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErr(message string) error {
	return &ValidationError{Message: message}
}
