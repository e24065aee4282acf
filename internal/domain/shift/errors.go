package shift

import "errors"

var (
	ErrNotFound      = errors.New("shift not found")
	ErrNotOwner      = errors.New("shift owned by another user")
	ErrInvalidStatus = errors.New("invalid shift status")
)
