package user

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrForbidden     = errors.New("access denied")
	ErrInvalidStatus = errors.New("invalid status")
)
