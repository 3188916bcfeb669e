package export

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/milk9111/photosticky/ecs"
	"github.com/milk9111/photosticky/ecs/component"
	"github.com/milk9111/photosticky/ecs/entity"
	xdraw "golang.org/x/image/draw"
)

var ErrEmptyCanvas = errors.New("export: canvas has no size")

// Placement is one sticker in canvas pixels: top-left corner and edge size.
type Placement struct {
	Image image.Image
	X     float64
	Y     float64
	Size  float64
}

// Scene is everything needed to flatten the canvas.
type Scene struct {
	Width      float64
	Height     float64
	Background color.Color
	Photo      image.Image
	Stickers   []Placement
}

// SceneFromWorld collects the canvas photo and every sticker at its logical
// transform, bottom first. Animation state is not exported.
func SceneFromWorld(w *ecs.World, background color.Color) (Scene, error) {
	ce, ok := w.First(component.CanvasComponent)
	if !ok {
		return Scene{}, errors.New("export: no canvas")
	}
	c, _ := ecs.Get(w, ce, component.CanvasComponent)
	scene := Scene{Width: c.Width, Height: c.Height, Background: background, Photo: c.Photo}

	for _, e := range entity.Stickers(w) {
		t, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}
		s, ok := ecs.Get(w, e, component.SpriteComponent)
		if !ok || s.Source == nil {
			continue
		}
		scene.Stickers = append(scene.Stickers, Placement{
			Image: s.Source,
			X:     c.AnchorX + t.Position.X,
			Y:     c.AnchorY + t.Position.Y,
			Size:  t.Size(),
		})
	}
	return scene, nil
}

// Render flattens the scene into an image width pixels wide, keeping the
// canvas aspect ratio. A non-positive width renders at canvas size.
func Render(scene Scene, width int) (*image.RGBA, error) {
	if scene.Width <= 0 || scene.Height <= 0 {
		return nil, ErrEmptyCanvas
	}
	if width <= 0 {
		width = int(math.Round(scene.Width))
	}
	k := float64(width) / scene.Width
	height := int(math.Round(scene.Height * k))
	dst := image.NewRGBA(image.Rect(0, 0, width, height))

	bg := scene.Background
	if bg == nil {
		bg = color.Black
	}
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	if scene.Photo != nil {
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), scene.Photo, scene.Photo.Bounds(), xdraw.Over, nil)
	}

	for _, p := range scene.Stickers {
		if p.Image == nil || p.Size <= 0 {
			continue
		}
		r := image.Rect(
			int(math.Round(p.X*k)),
			int(math.Round(p.Y*k)),
			int(math.Round((p.X+p.Size)*k)),
			int(math.Round((p.Y+p.Size)*k)),
		)
		if r.Empty() || !r.Overlaps(dst.Bounds()) {
			continue
		}
		xdraw.CatmullRom.Scale(dst, r, p.Image, p.Image.Bounds(), xdraw.Over, nil)
	}
	return dst, nil
}
