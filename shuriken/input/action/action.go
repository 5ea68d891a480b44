package action

// Action represents input actions understood by the engine and its backends
type Action int

const (
	// Game controls, delivered to actors as named buttons
	ButtonUp Action = iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonA
	ButtonB
	ButtonStart

	// Engine features
	EngineDebugToggle
	EngineSnapshot
	EnginePauseToggle
	EngineStepFrame
	EngineTestPatternCycle
	EngineQuit

	// Debug controls
	DebugLogLevelIncrease
	DebugLogLevelDecrease
)

// Category groups actions by who consumes them
type Category int

const (
	CategoryGameInput Category = iota
	CategoryEngine
	CategoryDebug
)

// Info describes an action for logging and routing
type Info struct {
	Description string
	Category    Category
	// Button is the name actors receive for game inputs
	Button string
}

var infos = map[Action]Info{
	ButtonUp:               {"Up", CategoryGameInput, "up"},
	ButtonDown:             {"Down", CategoryGameInput, "down"},
	ButtonLeft:             {"Left", CategoryGameInput, "left"},
	ButtonRight:            {"Right", CategoryGameInput, "right"},
	ButtonA:                {"A", CategoryGameInput, "a"},
	ButtonB:                {"B", CategoryGameInput, "b"},
	ButtonStart:            {"Start", CategoryGameInput, "start"},
	EngineDebugToggle:      {"Toggle debug display", CategoryEngine, ""},
	EngineSnapshot:         {"Save snapshot", CategoryEngine, ""},
	EnginePauseToggle:      {"Pause/resume", CategoryEngine, ""},
	EngineStepFrame:        {"Step one frame", CategoryEngine, ""},
	EngineTestPatternCycle: {"Next test pattern", CategoryEngine, ""},
	EngineQuit:             {"Quit", CategoryEngine, ""},
	DebugLogLevelIncrease:  {"More logging", CategoryDebug, ""},
	DebugLogLevelDecrease:  {"Less logging", CategoryDebug, ""},
}

// GetInfo returns the description of act. Unknown actions report an engine
// category with an empty description.
func GetInfo(act Action) Info {
	if info, ok := infos[act]; ok {
		return info
	}
	return Info{Category: CategoryEngine}
}

// ButtonName returns the actor-facing button name for a game input.
func ButtonName(act Action) (string, bool) {
	info, ok := infos[act]
	if !ok || info.Category != CategoryGameInput {
		return "", false
	}
	return info.Button, true
}
