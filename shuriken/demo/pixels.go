package demo

import (
	"encoding/binary"

	"github.com/chubbymaggie/shuriken16/shuriken/video"
)

// pixelFunc returns the raw value of one pixel: a palette index for 4- and
// 8-bit data, a Color16 for 16-bit data.
type pixelFunc func(x, y int) uint16

// pack encodes a w x h image at the given depth in the layout the row
// rasterizers read.
func pack(depth, w, h int, pixel pixelFunc) []byte {
	pitch := video.RowPitch(w, depth)
	data := make([]byte, pitch*h)
	for y := 0; y < h; y++ {
		row := data[y*pitch : (y+1)*pitch]
		for x := 0; x < w; x++ {
			v := pixel(x, y)
			switch depth {
			case 4:
				row[x/2] |= byte(v&0xf) << (4 * (x & 1))
			case 8:
				row[x] = byte(v)
			case 16:
				binary.LittleEndian.PutUint16(row[x*2:], v)
			}
		}
	}
	return data
}

// noise is a cheap deterministic texture in 0..n-1.
func noise(x, y, n int) int {
	h := uint32(x)*374761393 + uint32(y)*668265263
	h = (h ^ h>>13) * 1274126177
	return int((h ^ h>>16) % uint32(n))
}

func lerp(a, b uint16, k, n int) uint16 {
	return uint16((int(a)*(n-k) + int(b)*k) / n)
}

// ramp blends two colors channel by channel, k of n steps toward to.
func ramp(from, to video.Color16, k, n int) video.Color16 {
	r0, g0, b0 := from.Channels()
	r1, g1, b1 := to.Channels()
	return video.RGB15(lerp(r0, r1, k, n), lerp(g0, g1, k, n), lerp(b0, b1, k, n))
}
