package raster

import "errors"

var (
	// ErrOutsideWindow reports a provider returning a validity window
	// that does not contain the requested instant.
	ErrOutsideWindow = errors.New("raster: validity window does not contain requested instant")

	// ErrTimeOrder reports statistic accumulation called with a time
	// earlier than the last accumulation.
	ErrTimeOrder = errors.New("raster: accumulation time precedes last update")

	// ErrShape reports an array whose length does not match the domain.
	ErrShape = errors.New("raster: array shape mismatch")
)
