package domain

import "errors"

// Common errors returned by the planning engine. "No profile match" and
// zero-denominator business outcomes are values, not errors, and do not
// appear here.
var (
	ErrInvalidDate  = errors.New("invalid date")
	ErrInvalidInput = errors.New("invalid input")
)
