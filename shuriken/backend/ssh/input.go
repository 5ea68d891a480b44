package ssh

import (
	"unicode/utf8"

	"github.com/chubbymaggie/shuriken16/shuriken/input"
	"github.com/chubbymaggie/shuriken16/shuriken/input/action"
)

const ctrlC = 3

// parseInput converts raw session bytes into actions. Keys bound to
// EngineQuit, and Ctrl-C, end the session instead of the engine.
func parseInput(data []byte) (actions []action.Action, disconnect bool) {
	add := func(keyName string) {
		act, ok := input.GetDefaultMapping(keyName)
		if !ok {
			return
		}
		if act == action.EngineQuit {
			disconnect = true
			return
		}
		actions = append(actions, act)
	}

	i := 0
	for i < len(data) {
		// Arrow keys arrive as ESC [ A..D
		if data[i] == 0x1b {
			if i+2 < len(data) && data[i+1] == '[' {
				switch data[i+2] {
				case 'A':
					add("Up")
				case 'B':
					add("Down")
				case 'C':
					add("Right")
				case 'D':
					add("Left")
				}
				i += 3
				continue
			}
			add("Escape")
			i++
			continue
		}

		r, size := utf8.DecodeRune(data[i:])
		switch r {
		case ctrlC:
			disconnect = true
		case '\r', '\n':
			add("Enter")
		case ' ':
			add("Space")
		default:
			add(string(r))
		}
		i += size
	}
	return actions, disconnect
}
