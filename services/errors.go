package services

import "errors"

var (
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials is returned for unknown usernames and wrong
	// passwords alike.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type UploadError struct {
	Err error
}

func (e *UploadError) Error() string {
	return "image upload failed: " + e.Err.Error()
}

func (e *UploadError) Unwrap() error {
	return e.Err
}
