package domain

import "errors"

var (
	// ErrInvalidInput marks caller input that violates a precondition (e.g. shares <= 0)
	ErrInvalidInput = errors.New("invalid input")

	// ErrDomain marks a computation whose mathematical domain is violated
	// (e.g. a logarithm of a non-positive ratio)
	ErrDomain = errors.New("domain error")
)
