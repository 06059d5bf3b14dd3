/*
 * Copyright (c) 2024-present The sdmx-go authors.
 */

package model

import (
	"errors"
	"fmt"
)

func EnrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

// Construction-invariant violations: URN/field mismatch, bad identifier.
// Non-recoverable by the model; the caller must fix its inputs.
var ErrInvalidError = errors.New("not valid")

func ErrInvalid(msg string, args ...any) error {
	return EnrichError(ErrInvalidError, msg, args...)
}

var ErrMissedError = errors.New("missed")

func ErrMissed(msg string, args ...any) error {
	return EnrichError(ErrMissedError, msg, args...)
}

// Lookup failures: always recoverable, e.g. by falling back to creation.
var ErrNotFoundError = errors.New("not found")

func ErrNotFound(msg string, args ...any) error {
	return EnrichError(ErrNotFoundError, msg, args...)
}

func ErrItemNotFound(id string) error {
	return ErrNotFound("item «%v»", id)
}

func ErrComponentNotFound(id string) error {
	return ErrNotFound("component «%v»", id)
}

func ErrDimensionNotFound(id string) error {
	return ErrNotFound("dimension «%v»", id)
}

// Duplicate insertion: distinct from lookup failure so callers can choose
// dedup-and-reuse semantics.
var ErrAlreadyExistsError = errors.New("already exists")

func ErrAlreadyExists(msg string, args ...any) error {
	return EnrichError(ErrAlreadyExistsError, msg, args...)
}

// Consistency guards: the model is being driven wrongly (observation rebound
// to another series, constraint queried without content). Fatal for the
// operation; committed state stays intact.
var ErrConsistencyError = errors.New("consistency violation")

func ErrConsistency(msg string, args ...any) error {
	return EnrichError(ErrConsistencyError, msg, args...)
}

// Operations not defined for the shape of the target, e.g. a membership test
// on a non-enumerated representation.
var ErrUnsupportedError = errors.ErrUnsupported

func ErrUnsupported(msg string, args ...any) error {
	return EnrichError(ErrUnsupportedError, msg, args...)
}
