package entity

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/photosticky/anim"
	"github.com/milk9111/photosticky/ecs"
	"github.com/milk9111/photosticky/ecs/component"
	"github.com/milk9111/photosticky/prefabs"
)

// NewCanvas creates the photo canvas at a screen position. The photo is set
// separately with SetPhoto.
func NewCanvas(w *ecs.World, spec prefabs.CanvasSpec, screenX, screenY float64) (ecs.Entity, error) {
	if spec.Width <= 0 || spec.Height <= 0 {
		return 0, fmt.Errorf("canvas: invalid size %vx%v", spec.Width, spec.Height)
	}
	e := ecs.CreateEntity(w)
	c := &component.Canvas{
		ScreenX: screenX,
		ScreenY: screenY,
		Width:   spec.Width,
		Height:  spec.Height,
		AnchorX: spec.Anchor.X,
		AnchorY: spec.Anchor.Y,
		Scale:   anim.NewSpring(1, anim.SpringConfig{}),
	}
	if err := ecs.Add(w, e, component.CanvasComponent, c); err != nil {
		return 0, fmt.Errorf("canvas: add canvas component: %w", err)
	}
	if err := ecs.Add(w, e, component.CanvasTagComponent, &component.CanvasTag{}); err != nil {
		return 0, fmt.Errorf("canvas: add canvas tag: %w", err)
	}
	return e, nil
}

// ApplyCanvasSpec updates size and anchor after a config reload and moves
// every sticker's hit box with the anchor.
func ApplyCanvasSpec(w *ecs.World, e ecs.Entity, spec prefabs.CanvasSpec) {
	c, ok := ecs.Get(w, e, component.CanvasComponent)
	if !ok {
		return
	}
	if spec.Width > 0 && spec.Height > 0 {
		c.Width, c.Height = spec.Width, spec.Height
	}
	c.AnchorX, c.AnchorY = spec.Anchor.X, spec.Anchor.Y
	for _, s := range Stickers(w) {
		ecs.SyncHitBox(w, s)
	}
}

// SetPhoto replaces the canvas photo and replays the mount animation. src
// is the CPU copy used for export; img is its uploaded counterpart and may
// be nil in headless use.
func SetPhoto(w *ecs.World, e ecs.Entity, src image.Image, img *ebiten.Image) bool {
	c, ok := ecs.Get(w, e, component.CanvasComponent)
	if !ok {
		return false
	}
	c.Photo = src
	c.PhotoImage = img
	w.Events().Push(ecs.Event{Type: ecs.EventCanvasReset, Data: e})
	return true
}
