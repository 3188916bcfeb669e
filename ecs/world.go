package ecs

import (
	"sort"

	"github.com/milk9111/photosticky/ecs/component"
)

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// World owns entities, component stores and the per-frame event queue.
type World struct {
	gens  []generation
	alive []bool
	free  []entityID

	stores map[component.ComponentID]*SparseSet
	events EventQueue

	hitSpace *HitSpace
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity, reusing freed ids with a bumped generation.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	var id entityID
	if n := len(w.free); n > 0 {
		id = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		w.gens = append(w.gens, 0)
		w.alive = append(w.alive, false)
		id = entityID(len(w.gens))
	}
	w.alive[id-1] = true
	return makeEntity(id, w.gens[id-1])
}

// DestroyEntity removes every component of e and frees its id.
func DestroyEntity(w *World, e Entity) bool {
	if !IsAlive(w, e) {
		return false
	}
	for _, store := range w.stores {
		store.Remove(e)
	}
	if w.hitSpace != nil {
		w.hitSpace.Remove(e)
	}
	idx := e.id() - 1
	w.alive[idx] = false
	w.gens[idx]++
	w.free = append(w.free, e.id())
	return true
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil || !e.Valid() {
		return false
	}
	id := int(e.id())
	if id <= 0 || id > len(w.gens) {
		return false
	}
	return w.alive[id-1] && w.gens[id-1] == e.generation()
}

// Entities returns every live entity in id order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, len(w.gens))
	for i, ok := range w.alive {
		if ok {
			out = append(out, makeEntity(entityID(i+1), w.gens[i]))
		}
	}
	return out
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return IsAlive(w, e)
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w == nil {
		return nil
	}
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s := w.stores[id]
	if s == nil && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// Query returns live entities that have every listed component, in id order.
func (w *World) Query(kinds ...component.Identified) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k.ID(), false)
		if s == nil {
			return nil
		}
		sets = append(sets, s)
	}
	out := IntersectEntities(sets...)
	out = filterAlive(w, out)
	sort.Slice(out, func(i, j int) bool { return out[i].id() < out[j].id() })
	return out
}

// First returns the lowest-id live entity that has the component.
func (w *World) First(kind component.Identified) (Entity, bool) {
	ents := w.Query(kind)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

// Update runs the systems once, then clears the frame's events.
func (w *World) Update(systems ...System) {
	if w == nil {
		return
	}
	for _, s := range systems {
		if s != nil {
			s.Update(w)
		}
	}
	w.events.flush()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// SetHitSpace attaches the pointer hit-testing space.
func (w *World) SetHitSpace(hs *HitSpace) {
	if w == nil {
		return
	}
	w.hitSpace = hs
}

// HitSpace returns the attached hit space, if any.
func (w *World) HitSpace() *HitSpace {
	if w == nil {
		return nil
	}
	return w.hitSpace
}
