package model

import "errors"

var (
	// ErrSubmissionInFlight: a submit was rejected because the previous
	// one has not completed. Rapid repeated activation must never fire
	// the request twice.
	ErrSubmissionInFlight = errors.New("an add-to-cart request is already in progress")
)
