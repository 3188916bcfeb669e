package gesture

import "fmt"

// PointerKind identifies a raw pointer event.
type PointerKind uint8

const (
	PointerDown PointerKind = iota + 1
	PointerMove
	PointerUp
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	default:
		return fmt.Sprintf("pointer(%d)", uint8(k))
	}
}

// PointerEvent is one sample of a single contact, in canvas coordinates.
type PointerEvent struct {
	Kind   PointerKind
	X      float64
	Y      float64
	TimeMs int64
}

// IntentKind identifies a classified user action.
type IntentKind uint8

const (
	IntentDrag IntentKind = iota + 1
	IntentDoubleTap
)

func (k IntentKind) String() string {
	switch k {
	case IntentDrag:
		return "drag"
	case IntentDoubleTap:
		return "double_tap"
	default:
		return fmt.Sprintf("intent(%d)", uint8(k))
	}
}

// Intent is the output of the interpreter. DX/DY are only set for drags and
// hold the movement since the previous drag, not an absolute position.
type Intent struct {
	Kind IntentKind
	DX   float64
	DY   float64
}

// Drag builds a drag intent.
func Drag(dx, dy float64) Intent {
	return Intent{Kind: IntentDrag, DX: dx, DY: dy}
}

// DoubleTap builds a double-tap intent.
func DoubleTap() Intent {
	return Intent{Kind: IntentDoubleTap}
}
