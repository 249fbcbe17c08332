// Package common defines sentinel errors and constants shared by the store,
// the transports and the terminal client. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Lookup errors.
	ErrorNotFound = errors.New("not found")

	// Input errors: unknown must-have key, non-finite or negative budget,
	// malformed catalog records.
	ErrorInvalidArgument = errors.New("invalid argument")

	// Decision errors: a like or nope on a vehicle that already has one.
	ErrorAlreadyDecided = errors.New("vehicle already decided")

	// Generic failures.
	ErrorInternal    = errors.New("internal error")
	ErrorUnavailable = errors.New("service unavailable")
)
