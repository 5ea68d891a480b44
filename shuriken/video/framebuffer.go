package video

import "image"

// FrameBuffer is the render target: a row-major grid of Color16 reused every
// frame. It is only reallocated when the render size changes.
type FrameBuffer struct {
	width  int
	height int
	buffer []Color16
}

// NewFrameBuffer creates a frame buffer with the specified size.
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		width:  width,
		height: height,
		buffer: make([]Color16, width*height),
	}
}

func (fb *FrameBuffer) Width() int  { return fb.width }
func (fb *FrameBuffer) Height() int { return fb.height }

// Size returns the buffer dimensions as a RenderSize.
func (fb *FrameBuffer) Size() RenderSize {
	return RenderSize{Width: fb.width, Height: fb.height}
}

// Resize changes the dimensions. The backing array is kept when it is large
// enough; contents are undefined afterwards until the next Fill.
func (fb *FrameBuffer) Resize(width, height int) {
	n := width * height
	if cap(fb.buffer) < n {
		fb.buffer = make([]Color16, n)
	}
	fb.buffer = fb.buffer[:n]
	fb.width = width
	fb.height = height
}

// Fill sets every pixel to color.
func (fb *FrameBuffer) Fill(color Color16) {
	for i := range fb.buffer {
		fb.buffer[i] = color
	}
}

// Row returns the mutable slice for row y.
func (fb *FrameBuffer) Row(y int) []Color16 {
	return fb.buffer[y*fb.width : (y+1)*fb.width]
}

func (fb *FrameBuffer) GetPixel(x, y int) Color16 {
	return fb.buffer[y*fb.width+x]
}

func (fb *FrameBuffer) SetPixel(x, y int, color Color16) {
	fb.buffer[y*fb.width+x] = color
}

func (fb *FrameBuffer) ToSlice() []Color16 {
	return fb.buffer
}

// Clone returns a deep copy, for consumers that keep a frame past the
// current composition pass.
func (fb *FrameBuffer) Clone() *FrameBuffer {
	c := &FrameBuffer{width: fb.width, height: fb.height, buffer: make([]Color16, len(fb.buffer))}
	copy(c.buffer, fb.buffer)
	return c
}

// ToRGBA converts the buffer to an 8-bit RGBA image.
func (fb *FrameBuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for i, c := range fb.buffer {
		r, g, b, a := c.RGBA8()
		p := i * 4
		img.Pix[p] = r
		img.Pix[p+1] = g
		img.Pix[p+2] = b
		img.Pix[p+3] = a
	}
	return img
}
