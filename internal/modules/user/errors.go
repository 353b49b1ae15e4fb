package user

import "errors"

var (
	ErrUnknownUser = errors.New("no user record for this email")
	ErrNotFound    = errors.New("user not found")
)
