package pix

// Mode identifies a compositing operator.
type Mode uint8

const (
	SrcOver Mode = iota
	Clear
	Src
	Dst
	DstOver
	SrcIn
	DstIn
	SrcOut
	DstOut
	SrcAtop
	DstAtop
	Xor
	Plus
	Modulate
	Screen
)

// Func blends one premultiplied source pixel with one premultiplied
// destination pixel.
type Func func(sr, sg, sb, sa, dr, dg, db, da uint8) (r, g, b, a uint8)

// Get returns the blend function for mode. Unknown modes fall back to
// source-over.
func Get(mode Mode) Func {
	switch mode {
	case Clear:
		return blendClear
	case Src:
		return blendSrc
	case Dst:
		return blendDst
	case SrcOver:
		return blendSrcOver
	case DstOver:
		return blendDstOver
	case SrcIn:
		return blendSrcIn
	case DstIn:
		return blendDstIn
	case SrcOut:
		return blendSrcOut
	case DstOut:
		return blendDstOut
	case SrcAtop:
		return blendSrcAtop
	case DstAtop:
		return blendDstAtop
	case Xor:
		return blendXor
	case Plus:
		return blendPlus
	case Modulate:
		return blendModulate
	case Screen:
		return blendScreen
	default:
		return blendSrcOver
	}
}

func blendClear(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return 0, 0, 0, 0
}

func blendSrc(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return sr, sg, sb, sa
}

func blendDst(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return dr, dg, db, da
}

// blendSrcOver is the default operator: S + D*(1-Sa).
func blendSrcOver(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	inv := 255 - sa
	return clampAdd(sr, MulDiv255(dr, inv)),
		clampAdd(sg, MulDiv255(dg, inv)),
		clampAdd(sb, MulDiv255(db, inv)),
		clampAdd(sa, MulDiv255(da, inv))
}

// blendDstOver: S*(1-Da) + D.
func blendDstOver(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	inv := 255 - da
	return clampAdd(MulDiv255(sr, inv), dr),
		clampAdd(MulDiv255(sg, inv), dg),
		clampAdd(MulDiv255(sb, inv), db),
		clampAdd(MulDiv255(sa, inv), da)
}

// blendSrcIn: S*Da.
func blendSrcIn(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return MulDiv255(sr, da), MulDiv255(sg, da), MulDiv255(sb, da), MulDiv255(sa, da)
}

// blendDstIn: D*Sa.
func blendDstIn(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return MulDiv255(dr, sa), MulDiv255(dg, sa), MulDiv255(db, sa), MulDiv255(da, sa)
}

// blendSrcOut: S*(1-Da).
func blendSrcOut(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	inv := 255 - da
	return MulDiv255(sr, inv), MulDiv255(sg, inv), MulDiv255(sb, inv), MulDiv255(sa, inv)
}

// blendDstOut: D*(1-Sa).
func blendDstOut(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	inv := 255 - sa
	return MulDiv255(dr, inv), MulDiv255(dg, inv), MulDiv255(db, inv), MulDiv255(da, inv)
}

// blendSrcAtop: S*Da + D*(1-Sa); destination alpha preserved.
func blendSrcAtop(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	inv := 255 - sa
	return clampAdd(MulDiv255(sr, da), MulDiv255(dr, inv)),
		clampAdd(MulDiv255(sg, da), MulDiv255(dg, inv)),
		clampAdd(MulDiv255(sb, da), MulDiv255(db, inv)),
		da
}

// blendDstAtop: S*(1-Da) + D*Sa; source alpha preserved.
func blendDstAtop(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	inv := 255 - da
	return clampAdd(MulDiv255(sr, inv), MulDiv255(dr, sa)),
		clampAdd(MulDiv255(sg, inv), MulDiv255(dg, sa)),
		clampAdd(MulDiv255(sb, inv), MulDiv255(db, sa)),
		sa
}

// blendXor: S*(1-Da) + D*(1-Sa).
func blendXor(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	invD := 255 - da
	invS := 255 - sa
	return clampAdd(MulDiv255(sr, invD), MulDiv255(dr, invS)),
		clampAdd(MulDiv255(sg, invD), MulDiv255(dg, invS)),
		clampAdd(MulDiv255(sb, invD), MulDiv255(db, invS)),
		clampAdd(MulDiv255(sa, invD), MulDiv255(da, invS))
}

// blendPlus: min(S+D, 255).
func blendPlus(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return clampAdd(sr, dr), clampAdd(sg, dg), clampAdd(sb, db), clampAdd(sa, da)
}

// blendModulate: S*D.
func blendModulate(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return MulDiv255(sr, dr), MulDiv255(sg, dg), MulDiv255(sb, db), MulDiv255(sa, da)
}

// blendScreen: S + D - S*D.
func blendScreen(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return screen1(sr, dr), screen1(sg, dg), screen1(sb, db), screen1(sa, da)
}

// screen1 computes s + d - s*d per channel. The subtraction cannot
// underflow because s*d/255 never exceeds d.
func screen1(s, d uint8) uint8 {
	return clampAdd(s, d-MulDiv255(s, d))
}

// MulDiv255 multiplies two byte values and divides by 255 with
// rounding.
func MulDiv255(a, b uint8) uint8 {
	return uint8((uint16(a)*uint16(b) + 127) / 255)
}

func clampAdd(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}
