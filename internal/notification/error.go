package notification

import "errors"

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrForbidden            = errors.New("access denied")
	ErrValidation           = errors.New("validation failed")
)
