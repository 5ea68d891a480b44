package input

import "github.com/chubbymaggie/shuriken16/shuriken/input/action"

// DefaultKeyMap provides default key mappings that work across backends.
// Backends can use these mappings as a base and override/extend as needed.
var DefaultKeyMap = map[string]action.Action{
	// Game controls
	"z":     action.ButtonA,
	"x":     action.ButtonB,
	"Enter": action.ButtonStart,
	"Up":    action.ButtonUp,
	"Down":  action.ButtonDown,
	"Left":  action.ButtonLeft,
	"Right": action.ButtonRight,

	// Alternative arrow keys (WASD)
	"w": action.ButtonUp,
	"s": action.ButtonDown,
	"a": action.ButtonLeft,
	"d": action.ButtonRight,

	// Engine controls
	"Space":  action.EnginePauseToggle,
	"p":      action.EnginePauseToggle, // Alternative key
	"o":      action.EngineStepFrame,
	"f":      action.EngineStepFrame, // Alternative key for step frame
	"F10":    action.EngineDebugToggle,
	"F12":    action.EngineSnapshot,
	"t":      action.EngineTestPatternCycle,
	"Escape": action.EngineQuit,
	"q":      action.EngineQuit,

	// Debug controls
	"+": action.DebugLogLevelIncrease,
	"=": action.DebugLogLevelIncrease, // Alternative without shift
	"-": action.DebugLogLevelDecrease,
	"_": action.DebugLogLevelDecrease, // Alternative with shift
}

// GetDefaultMapping returns the default action for a key, if one exists
func GetDefaultMapping(key string) (action.Action, bool) {
	act, ok := DefaultKeyMap[key]
	return act, ok
}
