package entity

import (
	"fmt"
	"sort"

	"github.com/milk9111/photosticky/ecs"
	"github.com/milk9111/photosticky/ecs/component"
	"github.com/milk9111/photosticky/gesture"
	"github.com/milk9111/photosticky/sticker"
)

// StickerOptions describes a sticker to place on the canvas.
type StickerOptions struct {
	Name     string
	BaseSize float64
	Sprite   component.Sprite
	Gesture  gesture.Config
}

// NewSticker places a sticker at the canvas anchor on top of every other
// sticker. It fails with sticker.ErrInvalidConfiguration for a bad base size.
func NewSticker(w *ecs.World, opts StickerOptions) (ecs.Entity, error) {
	session, err := sticker.NewSession(opts.BaseSize, opts.Gesture)
	if err != nil {
		return 0, fmt.Errorf("sticker %q: %w", opts.Name, err)
	}

	e := ecs.CreateEntity(w)
	session.OnChange = func(t sticker.Transform, intent gesture.Intent) {
		w.Events().Push(ecs.Event{
			Type: ecs.EventTransformChanged,
			Data: ecs.TransformChanged{Entity: e, Intent: intent, Transform: t},
		})
	}
	if err := addSticker(w, e, opts, session); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, err
	}
	ecs.SyncHitBox(w, e)
	w.Events().Push(ecs.Event{Type: ecs.EventStickerAdded, Data: e})
	return e, nil
}

func addSticker(w *ecs.World, e ecs.Entity, opts StickerOptions, session *sticker.Session) error {
	sprite := opts.Sprite
	t := session.Snapshot()

	if err := ecs.Add(w, e, component.StickerTagComponent, &component.StickerTag{Name: opts.Name}); err != nil {
		return fmt.Errorf("sticker %q: add tag: %w", opts.Name, err)
	}
	if err := ecs.Add(w, e, component.TransformComponent, &t); err != nil {
		return fmt.Errorf("sticker %q: add transform: %w", opts.Name, err)
	}
	if err := ecs.Add(w, e, component.GestureComponent, &component.Gesture{Session: session}); err != nil {
		return fmt.Errorf("sticker %q: add gesture: %w", opts.Name, err)
	}
	// the projector fills in the pose when it sees EventStickerAdded
	if err := ecs.Add(w, e, component.PoseComponent, &component.Pose{}); err != nil {
		return fmt.Errorf("sticker %q: add pose: %w", opts.Name, err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent, &sprite); err != nil {
		return fmt.Errorf("sticker %q: add sprite: %w", opts.Name, err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent, &component.RenderLayer{Index: topLayer(w) + 1}); err != nil {
		return fmt.Errorf("sticker %q: add render layer: %w", opts.Name, err)
	}
	return nil
}

func topLayer(w *ecs.World) int {
	top := 0
	ecs.ForEach2(w, component.StickerTagComponent, component.RenderLayerComponent, func(_ ecs.Entity, _ *component.StickerTag, l *component.RenderLayer) {
		if l.Index > top {
			top = l.Index
		}
	})
	return top
}

// Stickers returns every sticker entity, bottom first.
func Stickers(w *ecs.World) []ecs.Entity {
	ents := w.Query(component.StickerTagComponent)
	layerOf := func(e ecs.Entity) int {
		if l, ok := ecs.Get(w, e, component.RenderLayerComponent); ok {
			return l.Index
		}
		return 0
	}
	sort.SliceStable(ents, func(i, j int) bool { return layerOf(ents[i]) < layerOf(ents[j]) })
	return ents
}

// RemoveSticker destroys one sticker.
func RemoveSticker(w *ecs.World, e ecs.Entity) bool {
	if !ecs.Has(w, e, component.StickerTagComponent) {
		return false
	}
	ecs.DestroyEntity(w, e)
	w.Events().Push(ecs.Event{Type: ecs.EventStickerRemoved, Data: e})
	return true
}

// ClearStickers destroys every sticker and returns how many were removed.
func ClearStickers(w *ecs.World) int {
	n := 0
	for _, e := range w.Query(component.StickerTagComponent) {
		if RemoveSticker(w, e) {
			n++
		}
	}
	return n
}
