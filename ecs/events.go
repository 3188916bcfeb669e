package ecs

import (
	"github.com/milk9111/photosticky/gesture"
	"github.com/milk9111/photosticky/sticker"
)

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	EventTransformChanged = "sticker.transform_changed"
	EventStickerAdded     = "sticker.added"
	EventStickerRemoved   = "sticker.removed"
	EventCanvasReset      = "canvas.reset"
)

// TransformChanged is pushed after an intent has been applied to a sticker.
// Transform is the snapshot right after the intent.
type TransformChanged struct {
	Entity    Entity
	Intent    gesture.Intent
	Transform sticker.Transform
}

// EventQueue is a simple FIFO queue, cleared at the end of every world update.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Peek returns the pending events without consuming them, so several
// systems can observe the same frame.
func (q *EventQueue) Peek() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
