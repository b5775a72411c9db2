package canvas

// Color is a 32-bit color packed as ARGB:
// bits 24-31 alpha, 16-23 red, 8-15 green, 0-7 blue.
// Components are not premultiplied.
type Color uint32

// ARGB creates a color from individual components.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b uint8) Color {
	return ARGB(255, r, g, b)
}

// Alpha returns the alpha component.
func (c Color) Alpha() uint8 { return uint8(c >> 24) }

// Red returns the red component.
func (c Color) Red() uint8 { return uint8(c >> 16) }

// Green returns the green component.
func (c Color) Green() uint8 { return uint8(c >> 8) }

// Blue returns the blue component.
func (c Color) Blue() uint8 { return uint8(c) }

// WithAlpha returns the color with its alpha component replaced.
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(c)&0x00ffffff | uint32(a)<<24)
}

// Premul returns the color as premultiplied RGBA bytes, the layout the
// software device composites in.
func (c Color) Premul() [4]uint8 {
	a := uint32(c.Alpha())
	return [4]uint8{
		uint8((uint32(c.Red())*a + 127) / 255),
		uint8((uint32(c.Green())*a + 127) / 255),
		uint8((uint32(c.Blue())*a + 127) / 255),
		uint8(a),
	}
}

// ModulateAlpha scales the color's alpha by a/255.
func (c Color) ModulateAlpha(a uint8) Color {
	if a == 255 {
		return c
	}
	return c.WithAlpha(uint8((uint32(c.Alpha())*uint32(a) + 127) / 255))
}

// Common colors.
const (
	Transparent Color = 0x00000000
	Black       Color = 0xff000000
	White       Color = 0xffffffff
	ColorRed    Color = 0xffff0000
	ColorGreen  Color = 0xff00ff00
	ColorBlue   Color = 0xff0000ff
)
