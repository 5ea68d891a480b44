//go:build sdl2

package sdl2

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/chubbymaggie/shuriken16/shuriken/backend"
	"github.com/chubbymaggie/shuriken16/shuriken/display"
	"github.com/chubbymaggie/shuriken16/shuriken/input"
	"github.com/chubbymaggie/shuriken16/shuriken/input/action"
	"github.com/chubbymaggie/shuriken16/shuriken/input/event"
	"github.com/chubbymaggie/shuriken16/shuriken/video"
)

// Backend presents frames in a resizable SDL2 window. Frames are uploaded
// as-is into an RGB555 streaming texture and scaled by the renderer.
type Backend struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	texSize  video.RenderSize
	running  bool
	config   backend.BackendConfig
	events   []backend.InputEvent
}

var (
	_ backend.Backend       = (*Backend)(nil)
	_ backend.ActionHandler = (*Backend)(nil)
)

func New() *Backend {
	return &Backend{}
}

func (s *Backend) Init(config backend.BackendConfig) error {
	s.config = config

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("failed to initialize SDL2: %w", err)
	}

	width, height := config.WindowWidth, config.WindowHeight
	if width <= 0 || height <= 0 {
		width, height = display.DefaultWindowWidth, display.DefaultWindowHeight
	}

	window, err := sdl.CreateWindow(
		config.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(width),
		int32(height),
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE|sdl.WINDOW_ALLOW_HIGHDPI,
	)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("failed to create window: %w", err)
	}
	s.window = window

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	s.renderer = renderer

	s.running = true
	s.reportSize()

	if config.TestPattern {
		slog.Info("SDL2 backend initialized in test pattern mode")
	} else {
		slog.Info("SDL2 backend initialized")
	}

	return nil
}

func (s *Backend) Update(frame *video.FrameBuffer) ([]backend.InputEvent, error) {
	if !s.running {
		return nil, nil
	}

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		s.handleEvent(ev)
	}

	events := s.events
	s.events = nil

	if !s.running {
		return events, nil
	}

	if err := s.renderFrame(frame); err != nil {
		return events, err
	}
	return events, nil
}

func (s *Backend) Cleanup() error {
	slog.Info("Cleaning up SDL2 backend")

	if s.texture != nil {
		s.texture.Destroy()
	}
	if s.renderer != nil {
		s.renderer.Destroy()
	}
	if s.window != nil {
		s.window.Destroy()
	}
	sdl.Quit()

	return nil
}

// HandleAction processes backend-specific actions
func (s *Backend) HandleAction(act action.Action) {
	if act == action.EngineDebugToggle && s.window != nil {
		flags := s.window.GetFlags()
		if flags&sdl.WINDOW_FULLSCREEN_DESKTOP != 0 {
			_ = s.window.SetFullscreen(0)
		} else {
			_ = s.window.SetFullscreen(sdl.WINDOW_FULLSCREEN_DESKTOP)
		}
	}
}

func (s *Backend) reportSize() {
	w, h, err := s.renderer.GetOutputSize()
	if err != nil {
		slog.Warn("Failed to query renderer output size", "error", err)
		return
	}
	s.config.Callbacks.Resize(int(w), int(h))
}

func (s *Backend) handleEvent(ev sdl.Event) {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		s.quit()

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			s.reportSize()
		}

	case *sdl.KeyboardEvent:
		act, ok := keyMapping[e.Keysym.Sym]
		if !ok {
			return
		}
		isGame := action.GetInfo(act).Category == action.CategoryGameInput
		switch {
		case e.Type == sdl.KEYDOWN && e.Repeat == 0:
			if act == action.EngineQuit {
				s.quit()
				return
			}
			s.events = append(s.events, backend.InputEvent{Action: act, Type: event.Press})
		case e.Type == sdl.KEYUP && isGame:
			s.events = append(s.events, backend.InputEvent{Action: act, Type: event.Release})
		}
	}
}

func (s *Backend) quit() {
	if !s.running {
		return
	}
	s.running = false
	s.events = append(s.events, backend.InputEvent{Action: action.EngineQuit, Type: event.Press})
	if s.config.Callbacks.OnQuit != nil {
		s.config.Callbacks.OnQuit()
	}
}

// sdlKeyNameMap converts SDL keycodes to key names used in default mappings
var sdlKeyNameMap = map[sdl.Keycode]string{
	sdl.K_RETURN: "Enter",
	sdl.K_UP:     "Up",
	sdl.K_DOWN:   "Down",
	sdl.K_LEFT:   "Left",
	sdl.K_RIGHT:  "Right",
	sdl.K_ESCAPE: "Escape",
	sdl.K_SPACE:  "Space",
	sdl.K_F10:    "F10",
	sdl.K_F12:    "F12",
	sdl.K_z:      "z",
	sdl.K_x:      "x",
	sdl.K_w:      "w",
	sdl.K_a:      "a",
	sdl.K_s:      "s",
	sdl.K_d:      "d",
	sdl.K_p:      "p",
	sdl.K_o:      "o",
	sdl.K_f:      "f",
	sdl.K_t:      "t",
	sdl.K_q:      "q",
	sdl.K_EQUALS: "=",
	sdl.K_MINUS:  "-",
}

func buildKeyMapping() map[sdl.Keycode]action.Action {
	mapping := make(map[sdl.Keycode]action.Action)
	for key, keyName := range sdlKeyNameMap {
		if act, ok := input.GetDefaultMapping(keyName); ok {
			mapping[key] = act
		}
	}
	return mapping
}

var keyMapping = buildKeyMapping()

// renderFrame uploads the frame to the texture and blits it into the
// destination rectangle centered in the window
func (s *Backend) renderFrame(frame *video.FrameBuffer) error {
	size := frame.Size()
	if size.Empty() {
		return nil
	}

	if s.texture == nil || s.texSize != size {
		if s.texture != nil {
			s.texture.Destroy()
		}
		texture, err := s.renderer.CreateTexture(
			sdl.PIXELFORMAT_RGB555,
			sdl.TEXTUREACCESS_STREAMING,
			int32(size.Width),
			int32(size.Height),
		)
		if err != nil {
			s.texture = nil
			return fmt.Errorf("failed to create texture: %w", err)
		}
		s.texture = texture
		s.texSize = size
		slog.Debug("SDL2 texture resized", "width", size.Width, "height", size.Height)
	}

	pixels := frame.ToSlice()
	if err := s.texture.Update(nil, unsafe.Pointer(&pixels[0]), size.Width*display.RGB555BytesPerPixel); err != nil {
		return fmt.Errorf("failed to update texture: %w", err)
	}

	w, h, err := s.renderer.GetOutputSize()
	if err != nil {
		return fmt.Errorf("failed to query output size: %w", err)
	}
	dest := s.config.Callbacks.Dest(size)
	rect := video.DestRect(int(w), int(h), dest)

	_ = s.renderer.SetDrawColor(0, 0, 0, 0xff)
	_ = s.renderer.Clear()
	_ = s.renderer.Copy(s.texture, nil, &sdl.Rect{
		X: int32(rect.Min.X),
		Y: int32(rect.Min.Y),
		W: int32(rect.Dx()),
		H: int32(rect.Dy()),
	})
	s.renderer.Present()
	return nil
}
