package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite holds the sticker artwork twice: Image for drawing on screen and
// Source for CPU-side export.
type Sprite struct {
	Image  *ebiten.Image
	Source image.Image
}

var SpriteComponent = NewComponent[Sprite]()
