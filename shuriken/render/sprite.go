package render

import (
	"fmt"

	"github.com/chubbymaggie/shuriken16/shuriken/sprite"
	"github.com/chubbymaggie/shuriken16/shuriken/video"
)

// RenderSprite draws the frame of animation a selected by the frame cursor
// with its top left corner at (x, y), clipped to fb. Sprites always use
// Normal blending. It panics on an unsupported depth.
func RenderSprite(fb *video.FrameBuffer, x, y int, a *sprite.Animation, frame int) {
	rasterize, ok := video.LookupRasterizer(a.Depth)
	if !ok {
		panic(fmt.Sprintf("invalid sprite bit depth %d", a.Depth))
	}

	if x >= fb.Width() || y >= fb.Height() || x <= -a.Width || y <= -a.Height {
		return
	}

	xOffset, yOffset := 0, 0
	xStart, yStart := x, y
	width, height := a.Width, a.Height

	if x < 0 {
		xOffset = -x
		width -= xOffset
		xStart = 0
	}
	if y < 0 {
		yOffset = -y
		height -= yOffset
		yStart = 0
	}
	if xStart+width > fb.Width() {
		width = fb.Width() - xStart
	}
	if yStart+height > fb.Height() {
		height = fb.Height() - yStart
	}

	data := a.DataForTime(frame)
	pitch := a.Pitch()

	for py := 0; py < height; py++ {
		src := data[(yOffset+py)*pitch : (yOffset+py+1)*pitch]
		dst := fb.Row(yStart + py)[xStart : xStart+width]
		rasterize(dst, src, xOffset, width, a.Palette, video.NormalBlend)
	}
}
