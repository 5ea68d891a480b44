package shuriken

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chubbymaggie/shuriken16/shuriken/actor"
	"github.com/chubbymaggie/shuriken16/shuriken/display"
	"github.com/chubbymaggie/shuriken16/shuriken/game"
	"github.com/chubbymaggie/shuriken16/shuriken/input/action"
	"github.com/chubbymaggie/shuriken16/shuriken/tilemap"
	"github.com/chubbymaggie/shuriken16/shuriken/video"
)

type buttonRecorder struct {
	actor.Base
	buttons []string
}

func (b *buttonRecorder) OnButtonDown(name string) { b.buttons = append(b.buttons, "+"+name) }
func (b *buttonRecorder) OnButtonUp(name string)   { b.buttons = append(b.buttons, "-"+name) }

var background = video.RGB15(3, 6, 9)

func newTestEngine() (*Engine, *buttonRecorder) {
	state := game.New(&tilemap.Map{Name: "test", BackgroundColor: background})
	rec := &buttonRecorder{Base: actor.NewBase(0, 0)}
	state.AddActor(rec)
	return NewEngine(state, video.NewFixedVerticalResolution(display.DefaultRenderHeight)), rec
}

func TestEngineResize(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		render, dest  video.RenderSize
	}{
		{"4:3 window", 640, 480, video.RenderSize{Width: 320, Height: 240}, video.RenderSize{Width: 640, Height: 480}},
		{"16:9 window", 1280, 720, video.RenderSize{Width: 426, Height: 240}, video.RenderSize{Width: 1280, Height: 720}},
		{"degenerate window", 0, 720, video.RenderSize{}, video.RenderSize{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEngine()
			e.Resize(tt.width, tt.height)
			assert.Equal(t, tt.render, e.RenderSize())
			assert.Equal(t, tt.dest, e.DestSize())
			assert.Equal(t, tt.render, e.GetCurrentFrame().Size())
		})
	}
}

func TestEngineRunUntilFrame(t *testing.T) {
	e, _ := newTestEngine()

	// Before the first resize the buffer is empty and only the simulation runs
	require.NoError(t, e.RunUntilFrame())
	assert.Equal(t, 1, e.State().FrameCount())
	assert.True(t, e.GetCurrentFrame().Size().Empty())

	e.Resize(640, 480)
	require.NoError(t, e.RunUntilFrame())
	assert.Equal(t, 2, e.State().FrameCount())

	frame := e.GetCurrentFrame()
	assert.Equal(t, background, frame.GetPixel(0, 0))
	assert.Equal(t, background, frame.GetPixel(319, 239))
}

func TestEngineButtons(t *testing.T) {
	e, rec := newTestEngine()

	e.HandleAction(action.ButtonA, true)
	e.HandleAction(action.ButtonA, false)
	e.HandleAction(action.EngineQuit, true)
	e.ButtonDown("left")

	assert.Equal(t, []string{"+a", "-a", "+left"}, rec.buttons)
}

func TestTestPatternRunner(t *testing.T) {
	r := NewTestPatternRunner(video.NewFixedVerticalResolution(display.DefaultRenderHeight))
	r.Resize(640, 480)
	require.Equal(t, video.RenderSize{Width: 320, Height: 240}, r.GetCurrentFrame().Size())
	assert.Equal(t, video.RenderSize{Width: 640, Height: 480}, r.DestSize())

	frame := r.GetCurrentFrame()
	// Checkerboard
	assert.Equal(t, patternWhite, frame.GetPixel(0, 0))
	assert.Equal(t, patternBlack, frame.GetPixel(display.TestPatternTileSize, 0))
	assert.Equal(t, patternWhite, frame.GetPixel(display.TestPatternTileSize, display.TestPatternTileSize))

	r.HandleAction(action.EngineTestPatternCycle, false)
	assert.Equal(t, 0, r.PatternType(), "release does not cycle")

	r.HandleAction(action.EngineTestPatternCycle, true)
	assert.Equal(t, 1, r.PatternType())
	// Ramps: red band on top, blue band at the bottom
	assert.Equal(t, video.RGB15(0, 0, 0), frame.GetPixel(0, 0))
	assert.Equal(t, video.RGB15(31, 0, 0), frame.GetPixel(319, 0))
	assert.Equal(t, video.RGB15(0, 0, 31), frame.GetPixel(319, 239))

	r.CycleTestPattern()
	assert.Equal(t, patternWhite, frame.GetPixel(2, 0))
	for i := 0; i < display.TestPatternAnimationFrames; i++ {
		require.NoError(t, r.RunUntilFrame())
	}
	// Stripes move left by TestPatternStripeSpeed pixels per animation step
	assert.Equal(t, patternDark, frame.GetPixel(2, 0))

	r.CycleTestPattern()
	r.CycleTestPattern()
	assert.Equal(t, 0, r.PatternType(), "cycling wraps around")
}
