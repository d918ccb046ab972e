package catalog

import "errors"

var (
	// ErrNotFound is returned when the requested record does not exist or is inactive.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyExists is returned on unique constraint conflicts, e.g. duplicate barcodes.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrInvalidInput is returned when a request fails domain validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidReference is returned when a product references a missing category or distributor.
	ErrInvalidReference = errors.New("referenced record does not exist")
)
