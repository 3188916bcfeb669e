package entity

import (
	"fmt"

	"github.com/milk9111/photosticky/ecs"
	"github.com/milk9111/photosticky/ecs/component"
)

const toastFrames = 150

// ShowToast adds a short-lived status line over the canvas.
func ShowToast(w *ecs.World, text string, isErr bool) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ToastComponent, &component.Toast{Text: text, Error: isErr}); err != nil {
		return 0, fmt.Errorf("toast: add toast component: %w", err)
	}
	if err := ecs.Add(w, e, component.TTLComponent, &component.TTL{Frames: toastFrames}); err != nil {
		return 0, fmt.Errorf("toast: add ttl: %w", err)
	}
	return e, nil
}
