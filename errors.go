package mosaic

import "pkt.systems/mosaic/internal/errs"

// Error categories returned by the engine. Test for them with errors.Is.
var (
	ErrInvalidArgument = errs.ErrInvalidArgument
	ErrBusy            = errs.ErrBusy
	ErrOutOfMemory     = errs.ErrOutOfMemory
	ErrNotDisabled     = errs.ErrNotDisabled
)
