package session

import "errors"

var (
	// ErrReauthRequired indicates the session cannot be repaired by a
	// refresh; the operator has to run `lahella login` again.
	ErrReauthRequired = errors.New("session expired, run `lahella login` to sign in again")

	// ErrNoSession indicates an auth file without any captured cookies.
	ErrNoSession = errors.New("no session captured, run `lahella login` first")
)
