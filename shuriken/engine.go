package shuriken

import (
	"log/slog"

	"github.com/chubbymaggie/shuriken16/shuriken/game"
	"github.com/chubbymaggie/shuriken16/shuriken/input/action"
	"github.com/chubbymaggie/shuriken16/shuriken/render"
	"github.com/chubbymaggie/shuriken16/shuriken/timing"
	"github.com/chubbymaggie/shuriken16/shuriken/video"
)

// Runner is the interface for everything the backend loop can drive
type Runner interface {
	RunUntilFrame() error
	GetCurrentFrame() *video.FrameBuffer
	HandleAction(act action.Action, pressed bool)

	// Resize reports the backend's presentation area in output pixels
	Resize(windowWidth, windowHeight int)
	// DestSize is the blit size for the last reported window
	DestSize() video.RenderSize
}

var (
	_ Runner = (*Engine)(nil)
	_ Runner = (*TestPatternRunner)(nil)
)

// Engine sequences one simulation tick and one composed frame per call to
// RunUntilFrame. The frame buffer is resized whenever the resolution target
// picks a new render size for the window.
type Engine struct {
	state   *game.State
	target  video.ResolutionTarget
	fb      *video.FrameBuffer
	dest    video.RenderSize
	limiter timing.Limiter
}

// NewEngine creates an engine for state. The frame buffer stays empty until
// the first Resize.
func NewEngine(state *game.State, target video.ResolutionTarget) *Engine {
	return &Engine{
		state:   state,
		target:  target,
		fb:      video.NewFrameBuffer(0, 0),
		limiter: timing.NewNoOpLimiter(),
	}
}

// SetFrameLimiter sets the limiter waited on after every frame
func (e *Engine) SetFrameLimiter(l timing.Limiter) {
	e.limiter = l
}

func (e *Engine) State() *game.State {
	return e.state
}

func (e *Engine) RenderSize() video.RenderSize {
	return e.fb.Size()
}

func (e *Engine) DestSize() video.RenderSize {
	return e.dest
}

// Resize recomputes the render and destination sizes for a window
func (e *Engine) Resize(windowWidth, windowHeight int) {
	renderSize, dest := e.target.ComputeRenderSizes(windowWidth, windowHeight)
	e.dest = dest

	if renderSize == e.fb.Size() {
		return
	}
	e.fb.Resize(renderSize.Width, renderSize.Height)
	e.state.SetViewSize(renderSize.Width, renderSize.Height)
	slog.Info("Render resolution changed",
		"window_width", windowWidth,
		"window_height", windowHeight,
		"render_width", renderSize.Width,
		"render_height", renderSize.Height,
		"dest_width", dest.Width,
		"dest_height", dest.Height)
}

// RunUntilFrame advances the simulation by one tick and composes the frame
func (e *Engine) RunUntilFrame() error {
	e.state.Tick()
	render.RenderFrame(e.fb, e.state)
	e.limiter.WaitForNextFrame()
	return nil
}

func (e *Engine) GetCurrentFrame() *video.FrameBuffer {
	return e.fb
}

// HandleAction forwards game buttons to the actors
func (e *Engine) HandleAction(act action.Action, pressed bool) {
	name, ok := action.ButtonName(act)
	if !ok {
		return
	}
	if pressed {
		e.state.ButtonDown(name)
	} else {
		e.state.ButtonUp(name)
	}
}

func (e *Engine) ButtonDown(name string) { e.state.ButtonDown(name) }
func (e *Engine) ButtonUp(name string)   { e.state.ButtonUp(name) }
