package model

import "errors"

var (
	// ErrBookNotFound: fetch-by-id came back empty. Callers navigate to
	// the catalog root.
	ErrBookNotFound = errors.New("book not found")

	// ErrBusy: a mutating call was rejected because a prior one from the
	// same controller is still in flight.
	ErrBusy = errors.New("an operation is already in progress")

	// ErrNotEditing: save or cancel was called outside edit mode.
	ErrNotEditing = errors.New("not in edit mode")

	// ErrControllerClosed: the view was torn down; the controller accepts
	// no further actions.
	ErrControllerClosed = errors.New("controller is closed")
)
