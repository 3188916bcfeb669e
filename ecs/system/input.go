package system

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/photosticky/ecs"
	"github.com/milk9111/photosticky/ecs/component"
	"github.com/milk9111/photosticky/gesture"
)

// maxPointers is the mouse (pointer 0) plus nine touch slots.
const maxPointers = 10

type pointerState struct {
	down   bool
	lastX  float64
	lastY  float64
	target ecs.Entity
}

// PointerSystem polls mouse and touches and routes canvas-space pointer
// events to the sticker under the press. A sticker keeps receiving a
// pointer's events until it is released, even when the pointer leaves it.
type PointerSystem struct {
	pointers  [maxPointers]pointerState
	touchMap  [maxPointers]ebiten.TouchID
	touchUsed [maxPointers]bool
	touchIDs  []ebiten.TouchID

	// Disabled stops polling while the UI owns the pointer (picker open).
	Disabled bool

	start time.Time
	// Now returns the event clock in milliseconds.
	Now func() int64
}

func NewPointerSystem() *PointerSystem {
	s := &PointerSystem{start: time.Now()}
	s.Now = func() int64 { return time.Since(s.start).Milliseconds() }
	return s
}

func (s *PointerSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	s.dropRemoved(w)
	if s.Disabled {
		s.ReleaseAll(w)
		return
	}

	mx, my := ebiten.CursorPosition()
	s.Process(w, 0, float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))

	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	var active [maxPointers]bool
	for _, tid := range s.touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		active[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		s.Process(w, slot, float64(tx), float64(ty), true)
	}
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !active[i] {
			s.release(w, i)
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

// dropRemoved forgets captures on stickers removed this frame. The contact
// stays down so it cannot grab another sticker before it is released.
func (s *PointerSystem) dropRemoved(w *ecs.World) {
	for _, ev := range w.Events().Peek() {
		if ev.Type != ecs.EventStickerRemoved {
			continue
		}
		e, ok := ev.Data.(ecs.Entity)
		if !ok {
			continue
		}
		for i := range s.pointers {
			if s.pointers[i].target == e {
				s.pointers[i].target = 0
			}
		}
	}
}

func (s *PointerSystem) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// Process runs the press/move/release state machine of one pointer at a
// screen position.
func (s *PointerSystem) Process(w *ecs.World, pointerID int, sx, sy float64, pressed bool) {
	if pointerID < 0 || pointerID >= maxPointers {
		return
	}
	canvas, ok := canvasOf(w)
	if !ok {
		return
	}
	x, y := sx-canvas.ScreenX, sy-canvas.ScreenY
	ps := &s.pointers[pointerID]
	now := s.now()

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.lastX, ps.lastY = x, y
		ps.target = 0
		// Presses outside the photo never grab a sticker, even one dragged
		// partly off it.
		if x < 0 || y < 0 || x >= canvas.Width || y >= canvas.Height {
			return
		}
		target, hit := w.HitSpace().At(x, y)
		if !hit || s.captured(target, pointerID) {
			return
		}
		ps.target = target
		Dispatch(w, target, gesture.PointerEvent{Kind: gesture.PointerDown, X: x, Y: y, TimeMs: now})
	case pressed && ps.down:
		if x == ps.lastX && y == ps.lastY {
			return
		}
		ps.lastX, ps.lastY = x, y
		Dispatch(w, ps.target, gesture.PointerEvent{Kind: gesture.PointerMove, X: x, Y: y, TimeMs: now})
	case !pressed && ps.down:
		Dispatch(w, ps.target, gesture.PointerEvent{Kind: gesture.PointerUp, X: x, Y: y, TimeMs: now})
		ps.down = false
		ps.target = 0
	}
}

// ReleaseAll ends every active contact at its last position.
func (s *PointerSystem) ReleaseAll(w *ecs.World) {
	if s == nil {
		return
	}
	for i := range s.pointers {
		s.release(w, i)
	}
}

func (s *PointerSystem) release(w *ecs.World, pointerID int) {
	ps := &s.pointers[pointerID]
	if !ps.down {
		return
	}
	Dispatch(w, ps.target, gesture.PointerEvent{Kind: gesture.PointerUp, X: ps.lastX, Y: ps.lastY, TimeMs: s.now()})
	ps.down = false
	ps.target = 0
}

// captured reports whether another pointer already owns the sticker. The
// interpreter tracks a single contact per sticker.
func (s *PointerSystem) captured(e ecs.Entity, except int) bool {
	for i := range s.pointers {
		if i != except && s.pointers[i].down && s.pointers[i].target == e {
			return true
		}
	}
	return false
}

func (s *PointerSystem) now() int64 {
	if s.Now == nil {
		return 0
	}
	return s.Now()
}

// Dispatch queues a pointer event on a sticker's gesture subscription.
func Dispatch(w *ecs.World, e ecs.Entity, ev gesture.PointerEvent) bool {
	if !e.Valid() {
		return false
	}
	g, ok := ecs.Get(w, e, component.GestureComponent)
	if !ok {
		return false
	}
	g.Pending = append(g.Pending, ev)
	return true
}

func canvasOf(w *ecs.World) (*component.Canvas, bool) {
	if w == nil {
		return nil, false
	}
	e, ok := w.First(component.CanvasComponent)
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.CanvasComponent)
}
