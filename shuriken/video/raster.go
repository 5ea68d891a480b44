package video

import (
	"encoding/binary"
	"fmt"
)

// RowRasterizer draws the run [left, left+width) of one packed source row
// into dst, which must hold exactly width pixels. Transparent pixels leave
// dst untouched; every other pixel goes through blend.
type RowRasterizer func(dst []Color16, src []byte, left, width int, palette *PaletteWithOffset, blend BlendFunc)

// RowPitch returns the number of bytes in one packed row of pixel data.
func RowPitch(width, depth int) int {
	return (width*depth + 7) / 8
}

// RasterizerForDepth selects the row rasterizer for a bit depth. Any depth
// other than 4, 8 or 16 means the asset data is corrupt and panics.
func RasterizerForDepth(depth int) RowRasterizer {
	r, ok := LookupRasterizer(depth)
	if !ok {
		panic(fmt.Sprintf("invalid tile bit depth %d", depth))
	}
	return r
}

// LookupRasterizer is RasterizerForDepth without the panic.
func LookupRasterizer(depth int) (RowRasterizer, bool) {
	switch depth {
	case 4:
		return RenderRow4Bit, true
	case 8:
		return RenderRow8Bit, true
	case 16:
		return RenderRow16Bit, true
	default:
		return nil, false
	}
}

// ValidDepth reports whether depth is a supported pixel depth.
func ValidDepth(depth int) bool {
	_, ok := LookupRasterizer(depth)
	return ok
}

// RenderRow4Bit draws 4-bit indexed pixels. Each byte holds two pixels:
// the low nibble is the even x, the high nibble the odd x.
//
//	Byte:   HHHH LLLL
//	Pixel:  x+1  x      (x even)
func RenderRow4Bit(dst []Color16, src []byte, left, width int, palette *PaletteWithOffset, blend BlendFunc) {
	entries := palette.Window()
	if entries == nil {
		return
	}
	for i := 0; i < width; i++ {
		x := left + i
		index := (src[x/2] >> (4 * (x & 1))) & 0xf
		if index != 0 {
			blend(&dst[i], entries[index])
		}
	}
}

// RenderRow8Bit draws 8-bit indexed pixels, one byte per pixel.
func RenderRow8Bit(dst []Color16, src []byte, left, width int, palette *PaletteWithOffset, blend BlendFunc) {
	entries := palette.Window()
	if entries == nil {
		return
	}
	for i := 0; i < width; i++ {
		index := src[left+i]
		if index != 0 {
			blend(&dst[i], entries[index])
		}
	}
}

// RenderRow16Bit draws direct-color pixels stored as little-endian words.
// A set top bit marks the pixel transparent. The palette is ignored.
func RenderRow16Bit(dst []Color16, src []byte, left, width int, _ *PaletteWithOffset, blend BlendFunc) {
	for i := 0; i < width; i++ {
		x := left + i
		color := Color16(binary.LittleEndian.Uint16(src[x*2 : x*2+2]))
		if !color.Transparent() {
			blend(&dst[i], color)
		}
	}
}
