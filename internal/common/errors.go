// Package common defines shared sentinel errors and small helpers used across
// weighttrack layers. Callers should match these values with errors.Is.
package common

import "errors"

var (

	// common errors
	ErrorNotFound      = errors.New("not found")
	ErrorValidation    = errors.New("validation error")
	ErrorAlreadyExists = errors.New("already exists")
	ErrorInternal      = errors.New("internal error")

	// credential-specific errors; the service layer wraps them around
	// ErrorValidation so both the broad and the narrow match work
	ErrorInvalidUsernameFormat = errors.New("invalid username format")
	ErrorInvalidPasswordFormat = errors.New("password does not meet security requirements")
)
