package component

import (
	"github.com/milk9111/photosticky/gesture"
	"github.com/milk9111/photosticky/sticker"
)

// Gesture is the per-sticker pointer subscription: events routed to the
// sticker since the last frame, and the session that turns them into
// transform updates.
type Gesture struct {
	Session *sticker.Session
	Pending []gesture.PointerEvent
}

var GestureComponent = NewComponent[Gesture]()
