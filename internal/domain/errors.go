package domain

import "errors"

// Repository level sentinels. Usecases translate them into apperr values.
var (
	ErrNotFound   = errors.New("record not found")
	ErrEmailTaken = errors.New("email already registered")
)
