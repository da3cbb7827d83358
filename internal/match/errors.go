// Package match scores a structured profile against a job requirement
// across five weighted categories and explains the result.
package match

import "fmt"

// ErrInvalidJob indicates the caller-supplied job requirement is missing
// mandatory fields and was rejected before scoring began.
type ErrInvalidJob struct {
	Reason string
	Err    error
}

func (e *ErrInvalidJob) Error() string {
	return fmt.Sprintf("invalid job requirement: %s", e.Reason)
}

func (e *ErrInvalidJob) Unwrap() error {
	return e.Err
}

// ErrInvalidWeights indicates a scoring configuration whose category weights
// do not sum to 100.
type ErrInvalidWeights struct {
	Sum int
}

func (e *ErrInvalidWeights) Error() string {
	return fmt.Sprintf("category weights must sum to 100, got %d", e.Sum)
}
