package display

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/chubbymaggie/shuriken16/shuriken/video"
)

// Scale converts frame to RGBA at the destination blit size using
// nearest-neighbour sampling, keeping pixel edges hard. An empty dest
// returns the frame at its native size.
func Scale(frame *video.FrameBuffer, dest video.RenderSize) *image.RGBA {
	src := frame.ToRGBA()
	if dest.Empty() || (dest.Width == frame.Width() && dest.Height == frame.Height()) {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, dest.Width, dest.Height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
