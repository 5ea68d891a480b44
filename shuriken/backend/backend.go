package backend

import (
	"github.com/chubbymaggie/shuriken16/shuriken/input"
	"github.com/chubbymaggie/shuriken16/shuriken/input/action"
	"github.com/chubbymaggie/shuriken16/shuriken/input/event"
	"github.com/chubbymaggie/shuriken16/shuriken/video"
)

// Backend represents a complete presentation platform (display + input)
// Backends are responsible for:
// - Presenting composed frames on their specific output (terminal, SDL window, SSH clients)
// - Translating platform-specific input events to Actions
// - Reporting the window size so the engine can pick a render resolution
type Backend interface {
	// Init configures the backend with the provided configuration.
	// This is a required step before calling Update.
	Init(config BackendConfig) error

	// Update presents the provided frame and returns the input events
	// collected since the previous call. Backends should:
	// 1. Poll for platform-specific events (keyboard, window events, etc.)
	// 2. Report window size changes through Callbacks.OnResize
	// 3. Present the frame scaled to the destination size
	Update(frame *video.FrameBuffer) ([]InputEvent, error)

	// Cleanup resources when shutting down
	Cleanup() error
}

// ActionHandler is implemented by backends that own some engine actions
// themselves (snapshots, debug panels, log level)
type ActionHandler interface {
	HandleAction(act action.Action)
}

// InputEvent is an action transition reported by a backend
type InputEvent struct {
	Action action.Action
	Type   event.Type
}

// BackendConfig holds configuration for backends
type BackendConfig struct {
	Title        string
	WindowWidth  int
	WindowHeight int
	ShowDebug    bool             // Backends may ignore unsupported features
	TestPattern  bool             // Display test pattern instead of the engine frame
	Callbacks    BackendCallbacks // Callbacks for backend communication
	InputManager *input.Manager   // Shared input manager for unified input handling
}

// BackendCallbacks allows backends to communicate with the engine
type BackendCallbacks struct {
	// OnQuit is called when the backend requests shutdown (e.g., window close)
	OnQuit func()

	// OnResize reports the presentation area in output pixels
	OnResize func(width, height int)

	// DestSize returns the blit size for the current window, computed by
	// the engine's resolution target
	DestSize func() video.RenderSize
}

// Resize invokes OnResize when set
func (c BackendCallbacks) Resize(width, height int) {
	if c.OnResize != nil {
		c.OnResize(width, height)
	}
}

// Dest returns the blit size, or fallback when the engine has not
// provided one
func (c BackendCallbacks) Dest(fallback video.RenderSize) video.RenderSize {
	if c.DestSize == nil {
		return fallback
	}
	if d := c.DestSize(); !d.Empty() {
		return d
	}
	return fallback
}
