package event

// Type represents the type of input event
type Type int

const (
	Press   Type = iota // Button pressed down (debounced for engine actions)
	Release             // Button released (debounced for engine actions)
	Hold                // Continuous while pressed (not debounced)
)

func (t Type) String() string {
	switch t {
	case Press:
		return "press"
	case Release:
		return "release"
	case Hold:
		return "hold"
	default:
		return "unknown"
	}
}
