package canvas

import "github.com/gogpu/canvas/region"

// ClipOp selects how a clip shape combines with the current clip.
// The zero value is Intersect, the only operator that can never expand
// the visible area.
type ClipOp uint8

const (
	ClipIntersect ClipOp = iota
	ClipUnion
	ClipDifference
	ClipReverseDifference

	// ClipReplace discards the accumulated clip and installs the shape
	// as the new clip. It intentionally breaks clip monotonicity.
	ClipReplace
)

// String returns a human-readable name for the clip operator.
func (op ClipOp) String() string {
	switch op {
	case ClipIntersect:
		return "Intersect"
	case ClipUnion:
		return "Union"
	case ClipDifference:
		return "Difference"
	case ClipReverseDifference:
		return "ReverseDifference"
	case ClipReplace:
		return "Replace"
	default:
		return "Unknown"
	}
}

// regionOp maps the clip operator onto the region algebra. ClipReplace
// has no region counterpart; the clip stack handles it before combining.
func (op ClipOp) regionOp() region.Op {
	switch op {
	case ClipUnion:
		return region.OpUnion
	case ClipDifference:
		return region.OpDifference
	case ClipReverseDifference:
		return region.OpReverseDifference
	default:
		return region.OpIntersect
	}
}
