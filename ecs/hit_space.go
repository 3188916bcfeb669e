package ecs

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/photosticky/ecs/component"
)

type hitEntry struct {
	shape *cp.Shape
	layer int
}

// HitSpace owns a Chipmunk space holding one box per interactive sticker on
// the space's static body. It only answers point queries; nothing is simulated.
type HitSpace struct {
	space   *cp.Space
	entries map[Entity]*hitEntry
	owners  map[*cp.Shape]Entity
}

// NewHitSpace creates an empty hit space.
func NewHitSpace() *HitSpace {
	return &HitSpace{
		space:   cp.NewSpace(),
		entries: make(map[Entity]*hitEntry),
		owners:  make(map[*cp.Shape]Entity),
	}
}

// Sync places (or moves) the box of e, centred on (cx, cy) with edge size.
// Higher layers win overlapping hits.
func (hs *HitSpace) Sync(e Entity, cx, cy, size float64, layer int) {
	if hs == nil || hs.space == nil || !e.Valid() || size <= 0 {
		return
	}
	hs.Remove(e)

	half := size / 2
	bb := cp.BB{L: cx - half, B: cy - half, R: cx + half, T: cy + half}
	shape := cp.NewBox2(hs.space.StaticBody, bb, 0)
	hs.space.AddShape(shape)

	hs.entries[e] = &hitEntry{shape: shape, layer: layer}
	hs.owners[shape] = e
}

// Remove drops the box of e.
func (hs *HitSpace) Remove(e Entity) {
	if hs == nil {
		return
	}
	entry, ok := hs.entries[e]
	if !ok {
		return
	}
	hs.space.RemoveShape(entry.shape)
	delete(hs.owners, entry.shape)
	delete(hs.entries, e)
}

// Len returns the number of tracked boxes.
func (hs *HitSpace) Len() int {
	if hs == nil {
		return 0
	}
	return len(hs.entries)
}

// At returns the top-most entity whose box contains (x, y).
func (hs *HitSpace) At(x, y float64) (Entity, bool) {
	if hs == nil || hs.space == nil || len(hs.entries) == 0 {
		return 0, false
	}
	var (
		best      Entity
		bestLayer int
		found     bool
	)
	hs.space.PointQuery(cp.Vector{X: x, Y: y}, 0, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ cp.Vector, distance float64, _ cp.Vector, _ interface{}) {
		if distance > 0 {
			return
		}
		e, ok := hs.owners[shape]
		if !ok {
			return
		}
		layer := hs.entries[e].layer
		if !found || layer > bestLayer || (layer == bestLayer && e.id() > best.id()) {
			best, bestLayer, found = e, layer, true
		}
	}, nil)
	return best, found
}

// SyncHitBox moves the hit box of sticker e to its logical transform,
// offset by the canvas anchor. It reports whether a box was placed.
func SyncHitBox(w *World, e Entity) bool {
	hs := w.HitSpace()
	if hs == nil {
		return false
	}
	t, ok := Get(w, e, component.TransformComponent)
	if !ok {
		hs.Remove(e)
		return false
	}
	var ax, ay float64
	if ce, ok := w.First(component.CanvasComponent); ok {
		if c, ok := Get(w, ce, component.CanvasComponent); ok {
			ax, ay = c.AnchorX, c.AnchorY
		}
	}
	layer := 0
	if l, ok := Get(w, e, component.RenderLayerComponent); ok {
		layer = l.Index
	}
	size := t.Size()
	hs.Sync(e, ax+t.Position.X+size/2, ay+t.Position.Y+size/2, size, layer)
	return true
}
