package ssh

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
	"time"

	gliderssh "github.com/gliderlabs/ssh"

	"github.com/chubbymaggie/shuriken16/shuriken/backend"
	"github.com/chubbymaggie/shuriken16/shuriken/backend/terminal/render"
	"github.com/chubbymaggie/shuriken16/shuriken/display"
	"github.com/chubbymaggie/shuriken16/shuriken/input/action"
	"github.com/chubbymaggie/shuriken16/shuriken/input/event"
	"github.com/chubbymaggie/shuriken16/shuriken/video"
)

// Config holds the SSH listener settings
type Config struct {
	Addr        string
	HostKeyFile string // generated per run when empty
}

// Backend serves the composed frame to every connected SSH session as
// truecolor half-block text. Sessions share one engine: their keys are
// merged and the most recently resized session picks the render size.
type Backend struct {
	cfg      Config
	config   backend.BackendConfig
	server   *gliderssh.Server
	listener net.Listener
	keys     *backend.KeyTracker
	input    chan action.Action

	mu       sync.Mutex
	sessions map[int]*session
	nextID   int
	resize   *[2]int
}

type session struct {
	frames chan *video.FrameBuffer
}

var _ backend.Backend = (*Backend)(nil)

// New creates an SSH backend listening on cfg.Addr once initialized
func New(cfg Config) *Backend {
	return &Backend{
		cfg:      cfg,
		sessions: make(map[int]*session),
		input:    make(chan action.Action, 64),
	}
}

func (b *Backend) Init(config backend.BackendConfig) error {
	b.config = config
	b.keys = backend.NewKeyTracker()

	b.server = &gliderssh.Server{
		Handler: b.handleSession,
	}
	if b.cfg.HostKeyFile != "" {
		if err := b.server.SetOption(gliderssh.HostKeyFile(b.cfg.HostKeyFile)); err != nil {
			return fmt.Errorf("set host key: %w", err)
		}
	}

	listener, err := net.Listen("tcp", b.cfg.Addr)
	if err != nil {
		return fmt.Errorf("ssh listen on %s: %w", b.cfg.Addr, err)
	}
	b.listener = listener

	go func() {
		if err := b.server.Serve(listener); err != nil && !errors.Is(err, gliderssh.ErrServerClosed) {
			slog.Error("SSH server stopped", "error", err)
		}
	}()

	slog.Info("SSH server listening", "addr", listener.Addr().String())
	return nil
}

// Addr returns the address the server is listening on
func (b *Backend) Addr() string {
	if b.listener == nil {
		return ""
	}
	return b.listener.Addr().String()
}

// Sessions returns the number of connected sessions
func (b *Backend) Sessions() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.sessions)
}

func (b *Backend) Update(frame *video.FrameBuffer) ([]backend.InputEvent, error) {
	now := time.Now()

	var events []backend.InputEvent
drain:
	for {
		select {
		case act := <-b.input:
			if action.GetInfo(act).Category == action.CategoryGameInput {
				b.keys.Press(act, now)
			} else {
				events = append(events, backend.InputEvent{Action: act, Type: event.Press})
			}
		default:
			break drain
		}
	}
	events = append(b.keys.Events(now), events...)

	b.mu.Lock()
	resize := b.resize
	b.resize = nil
	sessions := make([]*session, 0, len(b.sessions))
	for _, s := range b.sessions {
		sessions = append(sessions, s)
	}
	b.mu.Unlock()

	if resize != nil {
		b.config.Callbacks.Resize(resize[0], resize[1])
	}

	if len(sessions) > 0 && !frame.Size().Empty() {
		shared := frame.Clone()
		for _, s := range sessions {
			s.offer(shared)
		}
	}

	return events, nil
}

func (b *Backend) Cleanup() error {
	if b.server == nil {
		return nil
	}
	slog.Info("Shutting down SSH server")
	if err := b.server.Close(); err != nil {
		return fmt.Errorf("close ssh server: %w", err)
	}
	return nil
}

// offer replaces any frame the session has not drawn yet
func (s *session) offer(frame *video.FrameBuffer) {
	select {
	case <-s.frames:
	default:
	}
	select {
	case s.frames <- frame:
	default:
	}
}

func (b *Backend) requestResize(cols, rows int) {
	b.mu.Lock()
	b.resize = &[2]int{cols, rows * 2}
	b.mu.Unlock()
}

func (b *Backend) handleSession(sess gliderssh.Session) {
	ptyReq, winCh, ok := sess.Pty()
	if !ok {
		fmt.Fprintln(sess, "Error: PTY required. Use: ssh -t ...")
		return
	}

	s := &session{frames: make(chan *video.FrameBuffer, 1)}
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.sessions[id] = s
	b.mu.Unlock()

	user := sess.User()
	slog.Info("SSH session connected", "id", id, "user", user, "remote", sess.RemoteAddr().String())
	defer func() {
		b.mu.Lock()
		delete(b.sessions, id)
		b.mu.Unlock()
		slog.Info("SSH session disconnected", "id", id, "user", user)
	}()

	var termMu sync.Mutex
	cols, rows := ptyReq.Window.Width, ptyReq.Window.Height
	b.requestResize(cols, rows)

	io.WriteString(sess, enableAltScreen+hideCursor+clearScreen)
	defer io.WriteString(sess, reset+showCursor+disableAltScreen)

	quit := make(chan struct{})
	go func() {
		defer close(quit)
		buf := make([]byte, 64)
		for {
			n, err := sess.Read(buf)
			if err != nil {
				return
			}
			actions, disconnect := parseInput(buf[:n])
			for _, act := range actions {
				select {
				case b.input <- act:
				default:
				}
			}
			if disconnect {
				return
			}
		}
	}()

	go func() {
		for win := range winCh {
			termMu.Lock()
			cols, rows = win.Width, win.Height
			termMu.Unlock()
			b.requestResize(win.Width, win.Height)
		}
	}()

	for {
		select {
		case <-quit:
			return
		case <-sess.Context().Done():
			return
		case frame := <-s.frames:
			termMu.Lock()
			w, h := cols, rows
			termMu.Unlock()

			if _, err := io.WriteString(sess, renderFrame(frame, w, h)); err != nil {
				return
			}
		}
	}
}

// renderFrame fits the frame into a cols x rows terminal, two pixels per row
func renderFrame(frame *video.FrameBuffer, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	dest := fitSize(frame.Size(), cols, rows*2)
	if dest.Empty() {
		return ""
	}
	img := display.Scale(frame, dest)
	rect := video.DestRect(cols, rows*2, dest)
	return encodeCells(render.HalfBlockCells(img, rect, cols, rows))
}

// fitSize returns the largest size with src's aspect ratio inside w x h
func fitSize(src video.RenderSize, w, h int) video.RenderSize {
	if src.Empty() || w <= 0 || h <= 0 {
		return video.RenderSize{}
	}
	if w*src.Height <= h*src.Width {
		return video.RenderSize{Width: w, Height: w * src.Height / src.Width}
	}
	return video.RenderSize{Width: h * src.Width / src.Height, Height: h}
}
