package errs

import "errors"

// Sentinel errors shared by the usecase and handler layers
var (
	// Cart errors
	ErrInvalidCartData = errors.New("invalid cart data")
	ErrCartNotFound    = errors.New("cart not found")

	// Collaborator errors
	ErrCollaboratorFailure = errors.New("commerce platform request failed")
)
