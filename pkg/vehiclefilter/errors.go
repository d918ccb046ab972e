package vehiclefilter

import "errors"

var (
	// ErrEmptyInput is returned when a dimension or value is empty after sanitization.
	ErrEmptyInput = errors.New("empty filter input")

	// ErrUnknownDimension is returned when the dimension key is not one of the four recognized dimensions.
	ErrUnknownDimension = errors.New("unknown filter dimension")

	// ErrValueNotInVocabulary is returned when a value is not a member of its dimension's vocabulary.
	ErrValueNotInVocabulary = errors.New("value not in filter vocabulary")

	// ErrIncompatibleCombination is returned when a selection of individually
	// valid values violates a compatibility rule. The message is deliberately
	// generic: which rule fired is internal policy and is only logged.
	ErrIncompatibleCombination = errors.New("incompatible filter combination")

	// ErrInternal is the catch-all for unexpected validator faults. Detail is
	// logged internally; callers only ever see this generic error.
	ErrInternal = errors.New("internal filter validation error")
)
