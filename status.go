package canvas

// Status is the outcome of a draw operation. Draw calls never return Go
// errors and never panic across the dispatch boundary; every failure is
// communicated through the status result.
type Status uint8

const (
	// StatusDone means the operation was emitted.
	StatusDone Status = iota

	// StatusSkipped means the operation was conservatively rejected
	// against the clip and emitted nothing. This is a success.
	StatusSkipped

	// StatusFailed means the backend rejected the operation. The
	// renderer's state stacks are unaffected.
	StatusFailed

	// StatusIllegalState means the operation was invoked outside an
	// active frame or inside an interrupt/resume bracket.
	StatusIllegalState
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusDone:
		return "Done"
	case StatusSkipped:
		return "Skipped"
	case StatusFailed:
		return "Failed"
	case StatusIllegalState:
		return "IllegalState"
	default:
		return "Unknown"
	}
}

// OK reports whether the draw succeeded, counting a conservative clip
// rejection as success.
func (s Status) OK() bool {
	return s == StatusDone || s == StatusSkipped
}

// Err maps the status onto the package's sentinel errors so callers can
// use errors.Is. Done and Skipped map to nil.
func (s Status) Err() error {
	switch s {
	case StatusDone, StatusSkipped:
		return nil
	case StatusFailed:
		return ErrDrawFailed
	case StatusIllegalState:
		return ErrIllegalState
	default:
		return ErrDrawFailed
	}
}
