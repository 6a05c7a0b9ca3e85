package repository

import "errors"

var (
	// ErrNotFound is returned when a document does not exist.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidID is returned when an id is not a valid ObjectID hex string.
	ErrInvalidID = errors.New("invalid document id")
)

// IsClientError reports errors caused by the caller rather than the database.
// Circuit breakers treat them as successful calls.
func IsClientError(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidID)
}
