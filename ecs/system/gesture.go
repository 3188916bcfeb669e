package system

import (
	"github.com/milk9111/photosticky/ecs"
	"github.com/milk9111/photosticky/ecs/component"
	"github.com/milk9111/photosticky/sticker"
)

// GestureSystem feeds each sticker's queued pointer events through its
// session and copies the result into the sticker transform. It is the only
// writer of TransformComponent.
type GestureSystem struct{}

func NewGestureSystem() *GestureSystem {
	return &GestureSystem{}
}

func (s *GestureSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.GestureComponent, component.TransformComponent, func(e ecs.Entity, g *component.Gesture, t *sticker.Transform) {
		if g.Session == nil {
			g.Pending = g.Pending[:0]
			return
		}

		changed := false
		for _, ev := range g.Pending {
			if _, ok := g.Session.Feed(ev); ok {
				changed = true
			}
		}
		g.Pending = g.Pending[:0]

		if pose, ok := ecs.Get(w, e, component.PoseComponent); ok {
			pose.Held = g.Session.Dragging()
		}
		if changed {
			*t = g.Session.Snapshot()
			ecs.SyncHitBox(w, e)
		}
	})
}
