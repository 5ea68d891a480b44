package input

import (
	"time"

	"github.com/chubbymaggie/shuriken16/shuriken/input/action"
	"github.com/chubbymaggie/shuriken16/shuriken/input/event"
)

const (
	// debounceDuration is the minimum time between debounced events
	debounceDuration = 300 * time.Millisecond
)

// ButtonSink receives game button transitions, typically the game state
// which forwards them to every actor.
type ButtonSink interface {
	ButtonDown(name string)
	ButtonUp(name string)
}

// Manager handles input actions and their associated callbacks
type Manager struct {
	handlers      map[action.Action]map[event.Type][]func()
	lastTriggered map[action.Action]map[event.Type]time.Time
	buttons       ButtonSink
	now           func() time.Time
}

func NewManager(buttons ButtonSink) *Manager {
	return &Manager{
		handlers:      make(map[action.Action]map[event.Type][]func()),
		lastTriggered: make(map[action.Action]map[event.Type]time.Time),
		buttons:       buttons,
		now:           time.Now,
	}
}

// SetButtonSink replaces the receiver of game button transitions.
func (m *Manager) SetButtonSink(buttons ButtonSink) {
	m.buttons = buttons
}

// On registers a callback for a specific action and event type
func (m *Manager) On(act action.Action, evt event.Type, callback func()) {
	if m.handlers[act] == nil {
		m.handlers[act] = make(map[event.Type][]func())
	}
	m.handlers[act][evt] = append(m.handlers[act][evt], callback)
}

// Trigger handles the given action and event type.
func (m *Manager) Trigger(act action.Action, evt event.Type) {
	// Game buttons go straight to the sink, without debouncing
	if name, ok := action.ButtonName(act); ok {
		if m.buttons != nil {
			switch evt {
			case event.Press:
				m.buttons.ButtonDown(name)
			case event.Release:
				m.buttons.ButtonUp(name)
			}
		}
		return
	}

	if (evt == event.Press || evt == event.Release) && m.debounced(act, evt) {
		return
	}

	for _, callback := range m.handlers[act][evt] {
		callback()
	}
}

func (m *Manager) debounced(act action.Action, evt event.Type) bool {
	now := m.now()
	if m.lastTriggered[act] == nil {
		m.lastTriggered[act] = make(map[event.Type]time.Time)
	}
	last, seen := m.lastTriggered[act][evt]
	if seen && now.Sub(last) < debounceDuration {
		return true
	}
	m.lastTriggered[act][evt] = now
	return false
}
