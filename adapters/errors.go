package adapters

import "errors"

var (
	// ErrParse is returned for malformed regex, CFG text, or DOT input.
	ErrParse = errors.New("adapters: parse error")
	// ErrUnsupportedOperation is returned by contract-only stubs (spec §1
	// lists DOT graph/RSM I/O as an explicit non-goal).
	ErrUnsupportedOperation = errors.New("adapters: unsupported operation")
)
