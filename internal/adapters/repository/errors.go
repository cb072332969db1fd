package repository

import "errors"

// Sentinel kinds for history store errors.
var (
	ErrNotFound    = errors.New("shoot not found")
	ErrDuplicateID = errors.New("duplicate shoot id")
)
