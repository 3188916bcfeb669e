package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/photosticky/anim"
)

// Canvas is the photo every sticker is placed on. Sticker positions are
// offsets from (AnchorX, AnchorY) in canvas pixels.
type Canvas struct {
	Photo      image.Image
	PhotoImage *ebiten.Image

	// ScreenX/ScreenY is the top-left of the canvas on screen.
	ScreenX float64
	ScreenY float64
	Width   float64
	Height  float64

	AnchorX float64
	AnchorY float64

	// Mount animation of the photo.
	Scale   anim.Spring
	Opacity *anim.Sequence
}

var CanvasComponent = NewComponent[Canvas]()
