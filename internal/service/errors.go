package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("all fields are required")
	ErrPasswordMismatch    = errors.New("password mismatch")

	// ErrWrongCredentials is returned for every credential failure during
	// login: unknown email, wrong password, empty input. A single message
	// keeps the response from revealing which check failed.
	ErrWrongCredentials = errors.New("invalid email or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")

	// ErrSessionUnlockFailed is returned by the client when the saved
	// session cannot be decrypted: wrong password or a corrupted file.
	ErrSessionUnlockFailed = errors.New("wrong password or corrupted session")
)
