package auth

import "errors"

// Error taxonomy for authentication operations. The HTTP boundary maps
// these to status codes; no other error from this package may reach a
// client.
var (
	// ErrMissingField indicates a required input was empty after
	// normalization (client input error).
	ErrMissingField = errors.New("missing required field")

	// ErrEmailTaken indicates an account with the normalized email already
	// exists, whether caught by the advisory pre-check or by the store's
	// unique index at insert time. Callers cannot distinguish the two.
	ErrEmailTaken = errors.New("email already in use")

	// ErrInvalidCredentials indicates authentication failed. It is
	// deliberately identical for an unknown email, an account without a
	// password hash, and a wrong password, to resist account enumeration.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
