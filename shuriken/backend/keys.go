package backend

import (
	"log/slog"
	"time"

	"github.com/chubbymaggie/shuriken16/shuriken/input/action"
	"github.com/chubbymaggie/shuriken16/shuriken/input/event"
)

// KeyTimeout is the key expiry timeout - slightly longer than typical key repeat interval
const KeyTimeout = 100 * time.Millisecond

// KeyTracker turns the press-only key stream of a terminal into
// press/hold/release transitions. A key counts as held while repeats keep
// arriving within KeyTimeout.
type KeyTracker struct {
	lastPressed map[action.Action]time.Time
	active      map[action.Action]bool
}

// NewKeyTracker creates an empty tracker
func NewKeyTracker() *KeyTracker {
	return &KeyTracker{
		lastPressed: make(map[action.Action]time.Time),
		active:      make(map[action.Action]bool),
	}
}

func isDirection(act action.Action) bool {
	switch act {
	case action.ButtonUp, action.ButtonDown, action.ButtonLeft, action.ButtonRight:
		return true
	}
	return false
}

// Press records a key press or repeat at now
func (k *KeyTracker) Press(act action.Action, now time.Time) {
	if isDirection(act) {
		// Directions are exclusive
		delete(k.lastPressed, action.ButtonUp)
		delete(k.lastPressed, action.ButtonDown)
		delete(k.lastPressed, action.ButtonLeft)
		delete(k.lastPressed, action.ButtonRight)
	}
	k.lastPressed[act] = now
}

// Events returns the transitions since the previous call
func (k *KeyTracker) Events(now time.Time) []InputEvent {
	var events []InputEvent
	current := make(map[action.Action]bool)

	for act, last := range k.lastPressed {
		if now.Sub(last) >= KeyTimeout {
			delete(k.lastPressed, act)
			continue
		}
		current[act] = true
		if k.active[act] {
			events = append(events, InputEvent{Action: act, Type: event.Hold})
		} else {
			slog.Debug("Key press", "action", action.GetInfo(act).Description)
			events = append(events, InputEvent{Action: act, Type: event.Press})
		}
	}

	for act := range k.active {
		if !current[act] {
			slog.Debug("Key release", "action", action.GetInfo(act).Description)
			events = append(events, InputEvent{Action: act, Type: event.Release})
		}
	}

	k.active = current
	return events
}
