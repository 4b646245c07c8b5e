package errors

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalid      = errors.New("invalid")
	ErrInternal     = errors.New("internal")
	ErrCodeInvalid  = errors.New("reset code invalid")
	ErrCodeExpired  = errors.New("reset code expired")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
