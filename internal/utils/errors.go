package utils

import "errors"

// Common application errors used across services. Repositories translate
// driver errors into these and handlers map them to HTTP statuses, so no
// layer above the repository ever inspects a database error directly.
var (
	ErrNotFound           = errors.New("NOT_FOUND")
	ErrConflict           = errors.New("CONFLICT")
	ErrInvalidReference   = errors.New("INVALID_REFERENCE")
	ErrInvalidStatus      = errors.New("INVALID_STATUS")
	ErrInvalidCredentials = errors.New("INVALID_CREDENTIALS")
	ErrMissingImage       = errors.New("MISSING_IMAGE")
	ErrMissingDaerah      = errors.New("MISSING_DAERAH")
	ErrInvalidRating      = errors.New("INVALID_RATING")
	ErrInvalidRole        = errors.New("INVALID_ROLE")
	ErrForbidden          = errors.New("FORBIDDEN")
)
