package domain

import "errors"

var (
	// ErrValidation marks empty or otherwise unusable input.
	ErrValidation = errors.New("validation rejected")
	// ErrNotFound marks a post or comment id absent from the store.
	ErrNotFound = errors.New("not found")
	// ErrForbidden marks a mutation attempted by someone other than the owner.
	ErrForbidden = errors.New("not the owner")
)

// Rejection names the reason an operation left state unchanged.
type Rejection string

const (
	RejectionNone          Rejection = ""
	RejectionValidation    Rejection = "validation"
	RejectionNotFound      Rejection = "not_found"
	RejectionAuthorization Rejection = "authorization"
	RejectionUnknown       Rejection = "unknown"
)

// RejectionOf classifies err into one of the rejection kinds.
func RejectionOf(err error) Rejection {
	switch {
	case err == nil:
		return RejectionNone
	case errors.Is(err, ErrValidation):
		return RejectionValidation
	case errors.Is(err, ErrNotFound):
		return RejectionNotFound
	case errors.Is(err, ErrForbidden):
		return RejectionAuthorization
	default:
		return RejectionUnknown
	}
}
