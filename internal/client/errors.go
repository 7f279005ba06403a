package client

import "errors"

var (
	// ErrNotSignedIn is returned when no session is stored locally.
	ErrNotSignedIn = errors.New("not signed in, run the login command first")

	// ErrSessionExpired is returned when the guard ended the session.
	ErrSessionExpired = errors.New("session expired after inactivity")
)
