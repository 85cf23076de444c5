package seqdist

import "errors"

var (
	// ErrLengthMismatch indicates the two lists cannot be paired by rank.
	ErrLengthMismatch = errors.New("seqdist: lists must have equal length")
	// ErrBadLine indicates an input line is not exactly two integers.
	ErrBadLine = errors.New("seqdist: line must hold two integers")
)
