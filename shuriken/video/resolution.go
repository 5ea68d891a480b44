package video

import "image"

// ResolutionMode selects how the logical render height is chosen from the
// window height.
type ResolutionMode int

const (
	// FixedVerticalResolution always renders at MaxHeight lines and scales
	// freely to the window.
	FixedVerticalResolution ResolutionMode = iota
	// PixelPerfect picks the largest integer scale whose render height still
	// falls within [MinHeight, MaxHeight].
	PixelPerfect
)

const (
	DefaultMinAspectRatio float32 = 4.0 / 3.0
	DefaultMaxAspectRatio float32 = 18.0 / 9.0
)

// RenderSize is a width/height pair in pixels.
type RenderSize struct {
	Width  int
	Height int
}

func (s RenderSize) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// ResolutionTarget declares the render resolution policy.
type ResolutionTarget struct {
	Mode           ResolutionMode
	MinHeight      int
	MaxHeight      int
	MinAspectRatio float32
	MaxAspectRatio float32
}

func NewFixedVerticalResolution(height int) ResolutionTarget {
	return NewFixedVerticalResolutionWithAspectRatio(height, DefaultMinAspectRatio, DefaultMaxAspectRatio)
}

func NewFixedVerticalResolutionWithAspectRatio(height int, minAspect, maxAspect float32) ResolutionTarget {
	return ResolutionTarget{
		Mode:           FixedVerticalResolution,
		MinHeight:      height,
		MaxHeight:      height,
		MinAspectRatio: minAspect,
		MaxAspectRatio: maxAspect,
	}
}

func NewPixelPerfect(minHeight, maxHeight int) ResolutionTarget {
	return NewPixelPerfectWithAspectRatio(minHeight, maxHeight, DefaultMinAspectRatio, DefaultMaxAspectRatio)
}

func NewPixelPerfectWithAspectRatio(minHeight, maxHeight int, minAspect, maxAspect float32) ResolutionTarget {
	return ResolutionTarget{
		Mode:           PixelPerfect,
		MinHeight:      minHeight,
		MaxHeight:      maxHeight,
		MinAspectRatio: minAspect,
		MaxAspectRatio: maxAspect,
	}
}

// ComputeRenderSizes returns the logical render buffer size and the size of
// the destination blit inside the window.
func (t ResolutionTarget) ComputeRenderSizes(windowWidth, windowHeight int) (render, dest RenderSize) {
	if windowWidth <= 0 || windowHeight <= 0 {
		return RenderSize{}, RenderSize{}
	}

	switch t.Mode {
	case PixelPerfect:
		return t.computeForHeight(windowWidth, windowHeight, t.pixelPerfectHeight(windowHeight))
	default:
		return t.computeForHeight(windowWidth, windowHeight, t.MaxHeight)
	}
}

// pixelPerfectHeight walks integer scales 1, 2, 3, ... and returns the first
// window_height/scale that lands in [MinHeight, MaxHeight]. When no scale
// fits it falls back to MinHeight.
func (t ResolutionTarget) pixelPerfectHeight(windowHeight int) int {
	target := t.MinHeight
	for scale := 1; ; scale++ {
		preScaled := windowHeight / scale
		if preScaled < t.MinHeight {
			break
		}
		if preScaled <= t.MaxHeight {
			target = preScaled
			break
		}
	}
	return target
}

func (t ResolutionTarget) computeForHeight(windowWidth, windowHeight, targetHeight int) (RenderSize, RenderSize) {
	renderHeight := targetHeight
	renderWidth := (renderHeight * windowWidth) / windowHeight
	destWidth := windowWidth
	destHeight := windowHeight

	aspect := float32(windowWidth) / float32(windowHeight)
	if aspect < t.MinAspectRatio {
		// too narrow: letterbox top and bottom
		renderHeight = int(float32(renderWidth) / t.MinAspectRatio)
		destHeight = int(float32(destWidth) / t.MinAspectRatio)
	} else if aspect > t.MaxAspectRatio {
		// too wide: pillarbox left and right
		renderWidth = int(float32(renderHeight) * t.MaxAspectRatio)
		destWidth = int(float32(destHeight) * t.MaxAspectRatio)
	}

	return RenderSize{Width: renderWidth, Height: renderHeight},
		RenderSize{Width: destWidth, Height: destHeight}
}

// DestRect centers a destination blit of the given size in the window.
func DestRect(windowWidth, windowHeight int, dest RenderSize) image.Rectangle {
	x := (windowWidth - dest.Width) / 2
	y := (windowHeight - dest.Height) / 2
	return image.Rect(x, y, x+dest.Width, y+dest.Height)
}
