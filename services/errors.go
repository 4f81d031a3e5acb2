package services

import (
	"errors"
	"fmt"
)

// Domain error taxonomy. Controllers map these onto HTTP; nothing below a
// controller ever writes a response.
var (
	// ErrValidation is missing or malformed input.
	ErrValidation = errors.New("validation failed")
	// ErrUnauthenticated is no session, an expired session or bad credentials.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden is an authenticated caller lacking the required scope.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound covers both absent resources and resources outside the
	// caller's tenant scope, so foreign ids are never confirmed to exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is a duplicate unique key.
	ErrConflict = errors.New("conflict")
	// ErrAmbiguousCredential is an email present in both credential tables;
	// login refuses to guess which principal was meant.
	ErrAmbiguousCredential = errors.New("ambiguous credential")
)

func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
