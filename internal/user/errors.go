package user

import "errors"

var (
	// ErrEmailTaken signals a signup against an email that already has an account.
	ErrEmailTaken = errors.New("account already exists")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// callers cannot tell registered addresses apart from unregistered ones.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNotFound signals a lookup for a user id that no longer exists.
	ErrNotFound = errors.New("user not found")
)
