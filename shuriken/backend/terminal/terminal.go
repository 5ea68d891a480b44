package terminal

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/chubbymaggie/shuriken16/shuriken/backend"
	"github.com/chubbymaggie/shuriken16/shuriken/backend/terminal/render"
	"github.com/chubbymaggie/shuriken16/shuriken/display"
	"github.com/chubbymaggie/shuriken16/shuriken/input/action"
	"github.com/chubbymaggie/shuriken16/shuriken/input/event"
	"github.com/chubbymaggie/shuriken16/shuriken/video"
)

const (
	logPanelWidth = 48
	minTermWidth  = 20
	minTermHeight = 6
	logCapacity   = 200
)

// Backend implements the Backend interface using tcell for terminal
// rendering. Every character cell shows two vertically stacked pixels in
// 24-bit color.
type Backend struct {
	screen     tcell.Screen
	running    bool
	logBuffer  *render.LogBuffer
	logLevel   *slog.LevelVar
	config     backend.BackendConfig
	eventQueue []backend.InputEvent // Collect events to return
	keys       *backend.KeyTracker
	signals    chan os.Signal

	gameCols, gameRows int
}

var (
	_ backend.Backend       = (*Backend)(nil)
	_ backend.ActionHandler = (*Backend)(nil)
)

// New creates a new terminal backend
func New() *Backend {
	level := new(slog.LevelVar)
	level.Set(slog.LevelInfo)
	return &Backend{logLevel: level}
}

// Init initializes the terminal backend
func (t *Backend) Init(config backend.BackendConfig) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	return t.initScreen(screen, config)
}

func (t *Backend) initScreen(screen tcell.Screen, config backend.BackendConfig) error {
	t.config = config
	t.keys = backend.NewKeyTracker()

	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	t.screen = screen
	t.running = true

	// Logs go to the in-screen panel while tcell owns the terminal
	t.logBuffer = render.NewLogBuffer(logCapacity)
	slog.SetDefault(slog.New(render.NewLogBufferHandler(t.logBuffer, t.logLevel)))

	if config.TestPattern {
		slog.Info("Terminal backend initialized in test pattern mode")
	} else {
		slog.Info("Terminal backend initialized")
	}

	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	t.screen.Clear()
	t.layout()

	t.signals = make(chan os.Signal, 1)
	signal.Notify(t.signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)

	return nil
}

// Update renders a frame and processes events
func (t *Backend) Update(frame *video.FrameBuffer) ([]backend.InputEvent, error) {
	now := time.Now()

	select {
	case sig := <-t.signals:
		slog.Info("Received signal", "signal", sig)
		t.quit()
	default:
	}

	// Poll for input events synchronously
	for t.screen.HasPendingEvent() {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			t.processKeyEvent(ev, now)
		case *tcell.EventResize:
			t.screen.Sync()
			t.layout()
		}
	}

	events := t.keys.Events(now)
	for _, evt := range t.eventQueue {
		slog.Debug("UI event", "action", action.GetInfo(evt.Action).Description, "type", evt.Type)
	}
	events = append(events, t.eventQueue...)
	t.eventQueue = nil

	if !t.running {
		return events, nil
	}

	t.render(frame)
	t.screen.Show()

	return events, nil
}

// Cleanup cleans up terminal resources
func (t *Backend) Cleanup() error {
	if t.signals != nil {
		signal.Stop(t.signals)
	}
	if t.screen != nil {
		slog.Info("Cleaning up terminal backend")
		t.screen.Fini()
	}
	return nil
}

// HandleAction processes backend-specific actions
func (t *Backend) HandleAction(act action.Action) {
	switch act {
	case action.EngineDebugToggle:
		t.config.ShowDebug = !t.config.ShowDebug
		t.layout()
		if t.config.ShowDebug {
			slog.Info("Log panel enabled")
		} else {
			slog.Info("Log panel disabled")
		}
	case action.DebugLogLevelIncrease:
		t.changeLogLevel(1)
	case action.DebugLogLevelDecrease:
		t.changeLogLevel(-1)
	}
}

// LogLevel returns the level currently shown in the log panel
func (t *Backend) LogLevel() slog.Level {
	return t.logLevel.Level()
}

func (t *Backend) quit() {
	if !t.running {
		return
	}
	t.running = false
	t.eventQueue = append(t.eventQueue, backend.InputEvent{Action: action.EngineQuit, Type: event.Press})
	if t.config.Callbacks.OnQuit != nil {
		t.config.Callbacks.OnQuit()
	}
}

func (t *Backend) processKeyEvent(ev *tcell.EventKey, now time.Time) {
	act, ok := lookupKey(ev)
	if !ok {
		return
	}
	if act == action.EngineQuit {
		t.quit()
		return
	}

	info := action.GetInfo(act)
	if info.Category == action.CategoryGameInput {
		t.keys.Press(act, now)
		return
	}
	t.eventQueue = append(t.eventQueue, backend.InputEvent{Action: act, Type: event.Press})
}

// layout recomputes the game area and reports its pixel size. The top row
// holds the title and the bottom row the help line.
func (t *Backend) layout() {
	termWidth, termHeight := t.screen.Size()

	cols := termWidth
	if t.config.ShowDebug {
		cols = termWidth - logPanelWidth - 1
	}
	rows := termHeight - 2
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}

	if cols == t.gameCols && rows == t.gameRows {
		return
	}
	t.gameCols, t.gameRows = cols, rows
	slog.Debug("Terminal game area", "cols", cols, "rows", rows)
	t.config.Callbacks.Resize(cols, rows*2)
}

func (t *Backend) changeLogLevel(direction int) {
	oldLevel := t.logLevel.Level()
	newLevel := oldLevel
	switch direction {
	case -1:
		switch oldLevel {
		case slog.LevelDebug:
			newLevel = slog.LevelInfo
		case slog.LevelInfo:
			newLevel = slog.LevelWarn
		case slog.LevelWarn:
			newLevel = slog.LevelError
		}
	case 1:
		switch oldLevel {
		case slog.LevelError:
			newLevel = slog.LevelWarn
		case slog.LevelWarn:
			newLevel = slog.LevelInfo
		case slog.LevelInfo:
			newLevel = slog.LevelDebug
		}
	}
	if oldLevel != newLevel {
		t.logLevel.Set(newLevel)
		slog.Warn("Log filter changed", "from", oldLevel, "to", newLevel)
	}
}

func (t *Backend) render(frame *video.FrameBuffer) {
	termWidth, termHeight := t.screen.Size()
	t.screen.Clear()

	if termWidth < minTermWidth || termHeight < minTermHeight {
		style := tcell.StyleDefault.Foreground(tcell.ColorRed)
		msg := fmt.Sprintf("Terminal too small! Need at least %dx%d", minTermWidth, minTermHeight)
		t.drawText(0, termHeight/2, termWidth, msg, style)
		return
	}

	t.drawFrame(frame)
	t.drawChrome(termWidth, termHeight)
	if t.config.ShowDebug {
		t.drawLogs(t.gameCols+1, 1, logPanelWidth, termHeight-2)
	}
}

func (t *Backend) drawFrame(frame *video.FrameBuffer) {
	if t.gameCols == 0 || t.gameRows == 0 || frame.Size().Empty() {
		return
	}

	dest := t.config.Callbacks.Dest(frame.Size())
	img := display.Scale(frame, dest)
	rect := video.DestRect(t.gameCols, t.gameRows*2, dest)

	for y, row := range render.HalfBlockCells(img, rect, t.gameCols, t.gameRows) {
		for x, cell := range row {
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(cell.Top.R), int32(cell.Top.G), int32(cell.Top.B))).
				Background(tcell.NewRGBColor(int32(cell.Bottom.R), int32(cell.Bottom.G), int32(cell.Bottom.B)))
			t.screen.SetContent(x, y+1, render.UpperHalfBlock, nil, style)
		}
	}
}

func (t *Backend) drawChrome(termWidth, termHeight int) {
	borderStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)

	title := " " + t.config.Title + " "
	if t.config.TestPattern {
		title = " Test Pattern "
	}
	t.drawText(1, 0, t.gameCols-1, title, titleStyle)

	if t.config.ShowDebug {
		dividerX := t.gameCols
		for y := 0; y < termHeight-1; y++ {
			t.screen.SetContent(dividerX, y, '│', nil, borderStyle)
		}
		logTitle := fmt.Sprintf(" Logs [%s] (-/+ filter) ", t.logLevel.Level())
		t.drawText(dividerX+2, 0, termWidth-dividerX-2, logTitle, titleStyle)
	}

	var helpText string
	if t.config.TestPattern {
		helpText = " Test Pattern Mode: T=cycle patterns F12=snapshot ESC=exit "
	} else {
		helpText = " F10=logs SPACE=pause/resume F=step F12=snapshot Q=quit | Logs: +/- filter "
	}
	t.drawText(0, termHeight-1, termWidth, helpText, borderStyle)
}

func (t *Backend) drawLogs(startX, startY, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}

	debugStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	infoStyle := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	warnStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	errStyle := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)

	for i, entry := range t.logBuffer.GetRecent(height) {
		style := infoStyle
		switch entry.Level {
		case slog.LevelDebug:
			style = debugStyle
		case slog.LevelWarn:
			style = warnStyle
		case slog.LevelError:
			style = errStyle
		}

		logText := render.FormatLogEntry(entry)
		if len(logText) > width && width > 3 {
			logText = logText[:width-3] + "..."
		}
		t.drawText(startX, startY+i, width, logText, style)
	}
}

func (t *Backend) drawText(x, y, width int, text string, style tcell.Style) {
	i := 0
	for _, ch := range text {
		if i >= width {
			return
		}
		t.screen.SetContent(x+i, y, ch, nil, style)
		i++
	}
}
