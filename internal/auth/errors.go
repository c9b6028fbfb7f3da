package auth

import (
	"errors"
)

var (
	// ErrInvalidCredentials covers both unknown identifier and wrong
	// password so the login page never reveals which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrDuplicateUser is returned when the username or email unique
	// constraint rejects a signup.
	ErrDuplicateUser = errors.New("username or email already taken")

	// ErrHashFormat means the stored password hash is malformed. Callers
	// must surface it as a generic invalid-credentials message.
	ErrHashFormat = errors.New("malformed password hash")
)
