package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/chubbymaggie/shuriken16/shuriken/input"
	"github.com/chubbymaggie/shuriken16/shuriken/input/action"
)

// tcellKeyNameMap converts tcell keys to key names used in default mappings
var tcellKeyNameMap = map[tcell.Key]string{
	tcell.KeyEnter:  "Enter",
	tcell.KeyUp:     "Up",
	tcell.KeyDown:   "Down",
	tcell.KeyLeft:   "Left",
	tcell.KeyRight:  "Right",
	tcell.KeyEscape: "Escape",
	tcell.KeyF10:    "F10",
	tcell.KeyF12:    "F12",
}

// buildKeyMapping creates the key mapping from default mappings
func buildKeyMapping() map[tcell.Key]action.Action {
	mapping := make(map[tcell.Key]action.Action)
	for key, keyName := range tcellKeyNameMap {
		if act, ok := input.GetDefaultMapping(keyName); ok {
			mapping[key] = act
		}
	}
	mapping[tcell.KeyCtrlC] = action.EngineQuit
	return mapping
}

// buildRuneMapping creates the rune mapping from default mappings. Single
// character key names map to themselves, the space bar is named.
func buildRuneMapping() map[rune]action.Action {
	mapping := make(map[rune]action.Action)
	for keyName, act := range input.DefaultKeyMap {
		r := []rune(keyName)
		if len(r) == 1 {
			mapping[r[0]] = act
		}
	}
	if act, ok := input.GetDefaultMapping("Space"); ok {
		mapping[' '] = act
	}
	return mapping
}

var (
	keyMapping  = buildKeyMapping()
	runeMapping = buildRuneMapping()
)

// lookupKey resolves a tcell key event to an action
func lookupKey(ev *tcell.EventKey) (action.Action, bool) {
	if act, ok := keyMapping[ev.Key()]; ok {
		return act, true
	}
	if ev.Key() == tcell.KeyRune {
		act, ok := runeMapping[ev.Rune()]
		return act, ok
	}
	return 0, false
}
