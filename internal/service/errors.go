package service

import "errors"

var (
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrVersionIsNotSpecified   = errors.New("application version is not specified")

	ErrUnknownLibraryKind = errors.New("unknown library kind")
	ErrRevisionRetries    = errors.New("could not allocate a revision code")
	ErrRenderingReport    = errors.New("error rendering report")
)
