package canvas

// SaveFlags control which state partitions a Save captures and which
// extras a SaveLayer allocates. The matrix is always captured; only
// clip capture is optional.
type SaveFlags uint32

const (
	// SaveMatrix requests matrix capture. It is implied by every save
	// and exists for call-site symmetry.
	SaveMatrix SaveFlags = 1 << iota

	// SaveClip requests clip capture: the matching restore reinstates
	// the clip as it was at save time. Without it, clip mutations made
	// inside the save survive the restore.
	SaveClip

	// ClipToLayer clips the canvas to the layer bounds for the
	// duration of a SaveLayer.
	ClipToLayer

	// LayerOpaque promises the layer content covers its bounds,
	// letting the device skip the initial clear.
	LayerOpaque
)

// SaveMatrixClip is the common full capture.
const SaveMatrixClip = SaveMatrix | SaveClip

// DrawOpMode controls when a draw operation is emitted.
type DrawOpMode uint8

const (
	// ModeImmediate emits the operation now.
	ModeImmediate DrawOpMode = iota

	// ModeDefer queues the operation into the current batch. Batched
	// operations are emitted in submission order by the next flush.
	ModeDefer

	// ModeFlush emits any batched operations, then this one.
	ModeFlush
)

// String returns a human-readable name for the mode.
func (m DrawOpMode) String() string {
	switch m {
	case ModeImmediate:
		return "Immediate"
	case ModeDefer:
		return "Defer"
	case ModeFlush:
		return "Flush"
	default:
		return "Unknown"
	}
}

// ReplayFlags control DrawDisplayList playback.
type ReplayFlags uint32

const (
	// ReplayClipChildren clips playback to the recorded list's bounds.
	ReplayClipChildren ReplayFlags = 1 << iota

	// ReplayLeakState lets transform and clip mutations inside the
	// list survive the call. By default playback is bracketed and the
	// entry state is restored even when a command fails mid-replay.
	ReplayLeakState
)
