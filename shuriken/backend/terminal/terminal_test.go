package terminal

import (
	"log/slog"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chubbymaggie/shuriken16/shuriken/backend"
	"github.com/chubbymaggie/shuriken16/shuriken/input/action"
	"github.com/chubbymaggie/shuriken16/shuriken/input/event"
	"github.com/chubbymaggie/shuriken16/shuriken/video"
)

func TestLookupKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want action.Action
		ok   bool
	}{
		{"arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), action.ButtonUp, true},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), action.ButtonStart, true},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone), action.EngineQuit, true},
		{"wasd", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), action.ButtonLeft, true},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), action.EnginePauseToggle, true},
		{"plus", tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone), action.DebugLogLevelIncrease, true},
		{"unmapped rune", tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), 0, false},
		{"unmapped key", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			act, ok := lookupKey(tt.ev)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, act)
			}
		})
	}
}

func newSimBackend(t *testing.T, config backend.BackendConfig) (*Backend, tcell.SimulationScreen) {
	t.Helper()
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	sim := tcell.NewSimulationScreen("UTF-8")
	b := New()
	require.NoError(t, b.initScreen(sim, config))
	sim.SetSize(80, 25)
	require.NoError(t, sim.PostEvent(tcell.NewEventResize(80, 25)))
	t.Cleanup(func() { _ = b.Cleanup() })
	return b, sim
}

func TestBackendReportsGameArea(t *testing.T) {
	var sizes [][2]int
	config := backend.BackendConfig{
		Title: "Test",
		Callbacks: backend.BackendCallbacks{
			OnResize: func(w, h int) { sizes = append(sizes, [2]int{w, h}) },
		},
	}
	b, sim := newSimBackend(t, config)

	_, err := b.Update(video.NewFrameBuffer(4, 4))
	require.NoError(t, err)
	require.NotEmpty(t, sizes)
	assert.Equal(t, [2]int{80, 46}, sizes[len(sizes)-1], "title and help rows are excluded, two pixels per row")

	sim.SetSize(60, 12)
	require.NoError(t, sim.PostEvent(tcell.NewEventResize(60, 12)))
	_, err = b.Update(video.NewFrameBuffer(4, 4))
	require.NoError(t, err)
	assert.Equal(t, [2]int{60, 20}, sizes[len(sizes)-1])

	// The log panel takes columns from the game area
	b.HandleAction(action.EngineDebugToggle)
	assert.Equal(t, [2]int{60 - logPanelWidth - 1, 20}, sizes[len(sizes)-1])
}

func TestBackendKeys(t *testing.T) {
	quit := false
	b, sim := newSimBackend(t, backend.BackendConfig{
		Callbacks: backend.BackendCallbacks{OnQuit: func() { quit = true }},
	})
	frame := video.NewFrameBuffer(4, 4)

	sim.InjectKey(tcell.KeyRune, 'z', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'p', tcell.ModNone)
	events, err := b.Update(frame)
	require.NoError(t, err)
	assert.Contains(t, events, backend.InputEvent{Action: action.ButtonA, Type: event.Press})
	assert.Contains(t, events, backend.InputEvent{Action: action.EnginePauseToggle, Type: event.Press})

	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	events, err = b.Update(frame)
	require.NoError(t, err)
	assert.Contains(t, events, backend.InputEvent{Action: action.EngineQuit, Type: event.Press})
	assert.True(t, quit)
}

func TestBackendDrawsHalfBlocks(t *testing.T) {
	b, sim := newSimBackend(t, backend.BackendConfig{Title: "Test"})

	frame := video.NewFrameBuffer(80, 46)
	frame.Fill(video.RGB15(31, 0, 0))
	_, err := b.Update(frame)
	require.NoError(t, err)

	cells, width, _ := sim.GetContents()
	cell := cells[1*width+0]
	require.NotEmpty(t, cell.Runes)
	assert.Equal(t, '▀', cell.Runes[0])
}

func TestChangeLogLevel(t *testing.T) {
	b := New()
	assert.Equal(t, slog.LevelInfo, b.LogLevel())

	b.HandleAction(action.DebugLogLevelIncrease)
	assert.Equal(t, slog.LevelDebug, b.LogLevel())
	b.HandleAction(action.DebugLogLevelIncrease)
	assert.Equal(t, slog.LevelDebug, b.LogLevel(), "debug is the most verbose level")

	for i := 0; i < 5; i++ {
		b.HandleAction(action.DebugLogLevelDecrease)
	}
	assert.Equal(t, slog.LevelError, b.LogLevel())
}
