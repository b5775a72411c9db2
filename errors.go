package canvas

import "errors"

// Sentinel errors reported by renderer state operations. Draw operations
// report through Status instead; Status.Err maps back onto these.
var (
	// ErrIllegalState is returned when an operation is invoked outside
	// an active frame or inside an interrupt/resume bracket.
	ErrIllegalState = errors.New("canvas: operation not permitted in current state")

	// ErrInvalidSaveCount is returned by RestoreToCount when the target
	// exceeds the current save count.
	ErrInvalidSaveCount = errors.New("canvas: save count out of range")

	// ErrStateUnderflow is returned by Restore at the baseline state
	// when the renderer was built with WithStrictRestore.
	ErrStateUnderflow = errors.New("canvas: restore with no matching save")

	// ErrNoViewport is returned by Prepare when no viewport is set.
	ErrNoViewport = errors.New("canvas: viewport not set")

	// ErrDrawFailed is the error form of StatusFailed.
	ErrDrawFailed = errors.New("canvas: draw command failed")
)
