package achievements

import "errors"

// Sentinel kinds for evaluation errors.
var (
	ErrUnknownFamily = errors.New("no evaluator for family")
	ErrMissingSpec   = errors.New("definition missing family spec")
)
