package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredential is returned by Authenticate when the credential
	// string is unusable (empty or containing whitespace).
	ErrInvalidCredential = errors.New("invalid credential")
	// ErrUnauthorized matches (via errors.Is) a *StatusError carrying
	// HTTP 401: the service rejected the credential.
	ErrUnauthorized = errors.New("client unauthorized")
	// ErrNotFound matches a *StatusError carrying HTTP 404: the channel or
	// post does not exist.
	ErrNotFound = errors.New("channel post not found")
	// ErrTooManyRequests matches a *StatusError carrying HTTP 429.
	ErrTooManyRequests = errors.New("rate limited by service")
)

// StatusError is a service-level send failure carrying the HTTP status code
// supplied by the service alongside the human-readable message.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Code, e.Message)
}

// Is maps well-known status codes to the package sentinels so callers can
// use errors.Is without losing the code.
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Code == 401
	case ErrNotFound:
		return e.Code == 404
	case ErrTooManyRequests:
		return e.Code == 429
	default:
		return false
	}
}
