package main

import "errors"

var (
	// ErrUnknownOp is returned by eval for an operation name it does not know.
	ErrUnknownOp = errors.New("unknown operation")

	// ErrArgs is returned by eval when the operation arguments do not match.
	ErrArgs = errors.New("invalid operation arguments")
)
