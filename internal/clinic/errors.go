package clinic

import "errors"

var (
	ErrDuplicateUser      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDoctorNotFound     = errors.New("doctor not found")
	// wrapped with the offending field
	ErrInvalidInput = errors.New("invalid input")
)
