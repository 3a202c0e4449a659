package errors

import (
	"errors"
	"strings"
)

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrDuplicateUser        = errors.New("username or email already in use")
	ErrUserNotFound         = errors.New("user not found")
	ErrTokenExpired         = errors.New("token expired")
	ErrTokenInvalid         = errors.New("token invalid")
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrRefreshTokenRevoked  = errors.New("refresh token revoked")
	ErrRefreshTokenExpired  = errors.New("refresh token expired")
	ErrTravelNotFound       = errors.New("travel not found")
	ErrPlaceNotFound        = errors.New("place not found")
	ErrNotOwner             = errors.New("not the owner of this resource")
)

// ValidationError carries the field-level messages collected while
// validating a request body.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation error"
	}
	return "validation error: " + strings.Join(e.Fields, "; ")
}

// NewValidation builds a ValidationError from one or more field messages.
func NewValidation(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
