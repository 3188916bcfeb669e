package component

// StickerTag marks a sticker placed on the canvas. Name is the sticker pack
// entry it was built from.
type StickerTag struct {
	Name string
}

var StickerTagComponent = NewComponent[StickerTag]()

type CanvasTag struct{}

var CanvasTagComponent = NewComponent[CanvasTag]()
