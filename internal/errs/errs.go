// Package errs defines the error categories shared by the mosaic packages.
//
// Callers test for a category with errors.Is; the packages wrap these values
// with context using fmt.Errorf("...: %w", ...).
package errs

import "errors"

var (
	// ErrInvalidArgument reports bad dimensions, unknown option names,
	// out-of-range palette entries or mismatched mask geometry.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrBusy reports an operation refused because a canvas is managed.
	ErrBusy = errors.New("canvas is busy")
	// ErrOutOfMemory reports a canvas size that cannot be allocated.
	ErrOutOfMemory = errors.New("out of memory")
	// ErrNotDisabled reports an enable call without a matching disable.
	ErrNotDisabled = errors.New("dirty tracking is not disabled")
)
