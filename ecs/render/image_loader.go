package render

import (
	"fmt"

	"github.com/milk9111/photosticky/assets"
	"github.com/milk9111/photosticky/ecs/component"
	"github.com/milk9111/photosticky/prefabs"
)

// LoadSprite decodes or draws the art for a sticker and uploads it.
func LoadSprite(spec prefabs.StickerSpec) (component.Sprite, error) {
	src, err := assets.StickerImage(spec)
	if err != nil {
		return component.Sprite{}, fmt.Errorf("render: sticker %s: %w", spec.Name, err)
	}
	return component.Sprite{Image: assets.ToEbiten(src), Source: src}, nil
}
