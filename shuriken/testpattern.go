package shuriken

import (
	"log/slog"

	"github.com/chubbymaggie/shuriken16/shuriken/display"
	"github.com/chubbymaggie/shuriken16/shuriken/input/action"
	"github.com/chubbymaggie/shuriken16/shuriken/timing"
	"github.com/chubbymaggie/shuriken16/shuriken/video"
)

var (
	patternWhite = video.RGB15(31, 31, 31)
	patternBlack = video.RGB15(0, 0, 0)
	patternLight = video.RGB15(22, 22, 22)
	patternDark  = video.RGB15(9, 9, 9)
)

// TestPatternRunner displays test patterns without running a scene. The
// patterns follow the render size picked by the resolution target.
type TestPatternRunner struct {
	frameBuffer      *video.FrameBuffer
	target           video.ResolutionTarget
	dest             video.RenderSize
	patternType      int
	animationCounter int
	limiter          timing.Limiter
}

func NewTestPatternRunner(target video.ResolutionTarget) *TestPatternRunner {
	return &TestPatternRunner{
		frameBuffer: video.NewFrameBuffer(0, 0),
		target:      target,
		limiter:     timing.NewNoOpLimiter(),
	}
}

func (e *TestPatternRunner) SetFrameLimiter(l timing.Limiter) {
	e.limiter = l
}

func (e *TestPatternRunner) RunUntilFrame() error {
	e.animationCounter++
	e.generateTestPattern()
	e.limiter.WaitForNextFrame()
	return nil
}

func (e *TestPatternRunner) GetCurrentFrame() *video.FrameBuffer {
	return e.frameBuffer
}

func (e *TestPatternRunner) HandleAction(act action.Action, pressed bool) {
	if act == action.EngineTestPatternCycle && pressed {
		e.CycleTestPattern()
	}
}

func (e *TestPatternRunner) Resize(windowWidth, windowHeight int) {
	renderSize, dest := e.target.ComputeRenderSizes(windowWidth, windowHeight)
	e.dest = dest
	if renderSize != e.frameBuffer.Size() {
		e.frameBuffer.Resize(renderSize.Width, renderSize.Height)
		e.generateTestPattern()
	}
}

func (e *TestPatternRunner) DestSize() video.RenderSize {
	return e.dest
}

// PatternType returns the index of the current pattern in display.TestPatternNames
func (e *TestPatternRunner) PatternType() int {
	return e.patternType
}

func (e *TestPatternRunner) CycleTestPattern() {
	e.patternType = (e.patternType + 1) % display.TestPatternCount
	e.generateTestPattern()
	slog.Info("Switched to test pattern", "pattern", display.TestPatternNames[e.patternType])
}

// generateTestPattern draws the current pattern. Stripes and diagonals move
// every TestPatternAnimationFrames frames.
func (e *TestPatternRunner) generateTestPattern() {
	fb := e.frameBuffer
	width, height := fb.Width(), fb.Height()
	step := e.animationCounter / display.TestPatternAnimationFrames

	for y := 0; y < height; y++ {
		row := fb.Row(y)
		for x := 0; x < width; x++ {
			var c video.Color16
			switch e.patternType {
			case 0: // Checkerboard
				if ((x/display.TestPatternTileSize)+(y/display.TestPatternTileSize))%2 == 0 {
					c = patternWhite
				} else {
					c = patternBlack
				}
			case 1: // Red, green and blue ramps in horizontal bands
				level := uint16(x * 32 / width)
				switch y * 3 / height {
				case 0:
					c = video.RGB15(level, 0, 0)
				case 1:
					c = video.RGB15(0, level, 0)
				default:
					c = video.RGB15(0, 0, level)
				}
			case 2: // Vertical stripes
				if ((x+step*display.TestPatternStripeSpeed)/display.TestPatternStripeWidth)%2 == 0 {
					c = patternWhite
				} else {
					c = patternDark
				}
			case 3: // Diagonal lines
				if ((x+y+step*display.TestPatternDiagonalSpeed)/display.TestPatternTileSize)%2 == 0 {
					c = patternLight
				} else {
					c = patternDark
				}
			}
			row[x] = c
		}
	}
}
