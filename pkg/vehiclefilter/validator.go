package vehiclefilter

import (
	"fmt"
	"log/slog"
	"sort"
)

// Validator checks filter values and combinations against the vocabulary and
// compatibility rules. It holds no mutable state; the logger only receives
// internal fault detail that must never surface to callers.
type Validator struct {
	log *slog.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger supplies the logger for internal fault and rule-hit reporting.
// Nil loggers are ignored.
func WithLogger(log *slog.Logger) Option {
	return func(v *Validator) {
		if log != nil {
			v.log = log
		}
	}
}

// NewValidator returns a Validator. Without options it logs nowhere.
func NewValidator(opts ...Option) *Validator {
	v := &Validator{log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ValidateValue checks a single raw dimension/value pair. Both inputs are
// sanitized first; a pair that sanitizes to nothing is rejected with
// ErrEmptyInput (unlike ValidateCombination, which treats such pairs as not
// provided). All failure paths are typed errors; unexpected faults are
// converted to ErrInternal with detail logged internally.
func (v *Validator) ValidateValue(dimRaw, valueRaw string) (err error) {
	defer v.recoverInternal("validate_value", &err)

	dim := Sanitize(dimRaw)
	value := Sanitize(valueRaw)

	if dim == "" || value == "" {
		return ErrEmptyInput
	}

	d, ok := ParseDimension(dim)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDimension, dim)
	}

	if !IsValidValue(d, value) {
		return fmt.Errorf("%w: %q is not a valid %s", ErrValueNotInVocabulary, value, d)
	}

	return nil
}

// ValidateCombination sanitizes and validates a whole set of simultaneous
// filter values. Pairs whose key or value sanitizes to nothing are silently
// dropped as "not provided". Every surviving pair must pass value validation;
// the first failure aborts the call. When two or more dimensions remain, the
// ordered compatibility rule set runs over the result. Validation is
// all-or-nothing: on error the returned Selection is nil.
//
// Keys are processed in lexical order so the reported error is deterministic
// for any given input map.
func (v *Validator) ValidateCombination(raw map[string]string) (sel Selection, err error) {
	defer func() {
		v.recoverInternal("validate_combination", &err)
		if err != nil {
			sel = nil
		}
	}()

	sel = make(Selection, len(raw))

	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		dim := Sanitize(key)
		value := Sanitize(raw[key])

		// Blank after sanitization means "not provided", not malformed.
		if dim == "" || value == "" {
			continue
		}

		d, ok := ParseDimension(dim)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDimension, dim)
		}

		if !IsValidValue(d, value) {
			return nil, fmt.Errorf("%w: %q is not a valid %s", ErrValueNotInVocabulary, value, d)
		}

		sel[d] = value
	}

	if len(sel) >= 2 {
		if rule, bad := checkCompatibility(sel); bad {
			v.log.Debug("filter combination rejected", "rule", rule)
			return nil, ErrIncompatibleCombination
		}
	}

	return sel, nil
}

// recoverInternal converts validator panics into ErrInternal. The fault
// detail stays in the logs; the caller gets the generic error only.
func (v *Validator) recoverInternal(op string, err *error) {
	if r := recover(); r != nil {
		v.log.Error("validator fault", "operation", op, "panic", fmt.Sprint(r))
		*err = ErrInternal
	}
}
