// Package render composites map layers, overlay layers and actor sprites
// into a 16-bit frame buffer.
package render

import (
	"github.com/chubbymaggie/shuriken16/shuriken/tilemap"
	"github.com/chubbymaggie/shuriken16/shuriken/video"
)

// scrollBias is a large multiple of the layer's pixel extent. Adding it keeps
// scroll positions non-negative without changing where the wrapped layer
// lands.
func scrollBias(extent int) int {
	const base = 0x40000000
	return base - base%extent
}

// RenderLayer composites l onto fb at the given camera scroll, picking the
// rasterizer from the layer depth and the blend function from its mode and
// alpha. It panics on an unsupported depth.
func RenderLayer(fb *video.FrameBuffer, l *tilemap.Layer, scrollX, scrollY, frame int) {
	rasterize := video.RasterizerForDepth(l.TileDepth)
	RenderLayerWithBlending(fb, l, scrollX, scrollY, frame, rasterize, l.BlendMode.Func(l.Alpha))
}

// RenderLayerWithBlending composites l with an explicit rasterizer and blend
// function. The layer wraps in both directions.
func RenderLayerWithBlending(fb *video.FrameBuffer, l *tilemap.Layer, scrollX, scrollY, frame int,
	rasterize video.RowRasterizer, blend video.BlendFunc) {
	if fb.Width() <= 0 || fb.Height() <= 0 || l.Width <= 0 || l.Height <= 0 {
		return
	}

	tw, th := l.TileWidth, l.TileHeight

	sx := (scrollX*l.ParallaxX+l.AutoScrollX*frame)/0x100 + scrollBias(tw*l.Width)
	sy := (scrollY*l.ParallaxY+l.AutoScrollY*frame)/0x100 + scrollBias(th*l.Height)

	leftTile, leftPixel := sx/tw, sx%tw
	rightTile, rightPixel := (sx+fb.Width()-1)/tw, (sx+fb.Width()-1)%tw
	topTile, topPixel := sy/th, sy%th
	bottomTile, bottomPixel := (sy+fb.Height()-1)/th, (sy+fb.Height()-1)%th

	pitch := video.RowPitch(tw, l.TileDepth)

	targetY := 0
	for tileY := topTile; tileY <= bottomTile; tileY++ {
		row := l.Row(tileY % l.Height)

		top, bottom := 0, th-1
		if tileY == topTile {
			top = topPixel
		}
		if tileY == bottomTile {
			bottom = bottomPixel
		}

		targetX := 0
		for tileX := leftTile; tileX <= rightTile; tileX++ {
			if ref := row[tileX%l.Width]; ref != nil {
				data := ref.TileSet.DataForTime(ref.TileIndex, frame)
				palette := ref.TileSet.PaletteFor(ref.TileIndex)

				left, right := 0, tw-1
				if tileX == leftTile {
					left = leftPixel
				}
				if tileX == rightTile {
					right = rightPixel
				}
				width := right - left + 1

				for py := top; py <= bottom; py++ {
					dst := fb.Row(targetY + py - top)[targetX : targetX+width]
					rasterize(dst, data[py*pitch:(py+1)*pitch], left, width, palette, blend)
				}
			}

			if tileX == leftTile {
				targetX += tw - leftPixel
			} else {
				targetX += tw
			}
		}

		if tileY == topTile {
			targetY += th - topPixel
		} else {
			targetY += th
		}
	}
}
