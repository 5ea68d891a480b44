package video

import "image/color"

// Color16 is a 15-bit RGB color packed into 16 bits:
//
//	Bit:  15  14-10  9-5  4-0
//	      T   R      G    B
//
// Each channel is 5 bits (0-31). Bit 15 (T) is only meaningful in 16-bit
// direct-color tile data, where a set bit marks the pixel as transparent.
// Indexed (4/8-bit) data uses palette index 0 for transparency instead.
type Color16 uint16

const (
	channelMax      = 0x1f
	redShift        = 10
	greenShift      = 5
	TransparentFlag = Color16(0x8000)
)

// RGB15 packs three 5-bit channels into a Color16. Channels are masked to 5 bits.
func RGB15(r, g, b uint16) Color16 {
	return Color16(((r & channelMax) << redShift) | ((g & channelMax) << greenShift) | (b & channelMax))
}

// Channels unpacks the 5-bit channels.
func (c Color16) Channels() (r, g, b uint16) {
	return (uint16(c) >> redShift) & channelMax, (uint16(c) >> greenShift) & channelMax, uint16(c) & channelMax
}

func (c Color16) Transparent() bool {
	return c&TransparentFlag != 0
}

// RGBA8 expands the 5-bit channels to 8 bits, replicating the top bits into
// the low bits so that 31 maps to 255.
func (c Color16) RGBA8() (r, g, b, a uint8) {
	r5, g5, b5 := c.Channels()
	return expand5(r5), expand5(g5), expand5(b5), 0xff
}

// RGBA implements color.Color.
func (c Color16) RGBA() (r, g, b, a uint32) {
	r8, g8, b8, _ := c.RGBA8()
	r = uint32(r8) * 0x101
	g = uint32(g8) * 0x101
	b = uint32(b8) * 0x101
	return r, g, b, 0xffff
}

func expand5(v uint16) uint8 {
	return uint8((v << 3) | (v >> 2))
}

// Color16Model converts arbitrary colors to Color16 by truncating each
// channel to its top 5 bits.
var Color16Model = color.ModelFunc(func(c color.Color) color.Color {
	if c16, ok := c.(Color16); ok {
		return c16
	}
	r, g, b, _ := c.RGBA()
	return RGB15(uint16(r>>11), uint16(g>>11), uint16(b>>11))
})
