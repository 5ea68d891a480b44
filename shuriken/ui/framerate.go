package ui

import (
	"strconv"
	"time"

	"github.com/chubbymaggie/shuriken16/shuriken/tile"
)

// FrameRateRenderer shows the number of frames composed during the last
// full wall-clock second, right-aligned on row 1.
type FrameRateRenderer struct {
	now             func() time.Time
	start           time.Time
	lastElapsedSecs int64
	lastFrames      int
	frameRate       int
}

func NewFrameRateRenderer() *FrameRateRenderer {
	return newFrameRateRenderer(time.Now)
}

func newFrameRateRenderer(now func() time.Time) *FrameRateRenderer {
	return &FrameRateRenderer{now: now, start: now()}
}

// NewFrameRateLayer builds a text layer driven by a FrameRateRenderer.
func NewFrameRateLayer(font *tile.TileSet, base byte, width, height int) *TextLayer {
	l := NewTextLayer(font, base, width, height)
	l.Renderer = NewFrameRateRenderer()
	return l
}

// FrameRate returns the most recent measurement.
func (r *FrameRateRenderer) FrameRate() int {
	return r.frameRate
}

func (r *FrameRateRenderer) Update(c *TextContents, s Snapshot) {
	elapsed := int64(r.now().Sub(r.start) / time.Second)
	if elapsed != r.lastElapsedSecs {
		r.lastElapsedSecs = elapsed
		r.frameRate = s.FrameCount() - r.lastFrames
		r.lastFrames = s.FrameCount()
	}

	c.Clear()
	text := strconv.Itoa(r.frameRate) + " FPS"
	c.Write(c.Width()-len(text)-1, 1, text)
}
