package render

import (
	"github.com/milk9111/photosticky/ecs/component"
	"github.com/milk9111/photosticky/prefabs"
)

// Registry caches sticker sprites by sticker name so the picker and every
// placed copy share one upload.
type Registry struct {
	sprites map[string]component.Sprite

	// load builds a sprite on a cache miss.
	load func(prefabs.StickerSpec) (component.Sprite, error)
}

func NewRegistry() *Registry {
	return &Registry{sprites: make(map[string]component.Sprite), load: LoadSprite}
}

// Sprite returns the cached sprite for spec, loading it on first use.
func (r *Registry) Sprite(spec prefabs.StickerSpec) (component.Sprite, error) {
	if s, ok := r.sprites[spec.Name]; ok {
		return s, nil
	}
	s, err := r.load(spec)
	if err != nil {
		return component.Sprite{}, err
	}
	r.sprites[spec.Name] = s
	return s, nil
}

// Reset drops every cached sprite, used when the sticker pack is reloaded.
func (r *Registry) Reset() {
	r.sprites = make(map[string]component.Sprite)
}

// Len returns the number of cached sprites.
func (r *Registry) Len() int {
	return len(r.sprites)
}
