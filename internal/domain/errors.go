package domain

import "errors"

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrEmailTaken      = errors.New("email already registered")
	ErrMalformedToken  = errors.New("malformed session token")
)
