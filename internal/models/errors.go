package models

import "errors"

// Domain error taxonomy. Handlers map these to HTTP statuses; the
// storage layer is the sole authority for the duplicate errors.
var (
	ErrNotFound          = errors.New("employee not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrDuplicateMobile   = errors.New("mobile number already exists")
	ErrValidation        = errors.New("validation failed")
	ErrInvalidCredential = errors.New("incorrect password")
	ErrUploadFailed      = errors.New("image upload failed")
)
