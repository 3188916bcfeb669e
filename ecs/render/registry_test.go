package render

import (
	"errors"
	"image"
	"testing"

	"github.com/milk9111/photosticky/ecs/component"
	"github.com/milk9111/photosticky/prefabs"
)

func TestRegistryCachesByName(t *testing.T) {
	calls := 0
	r := NewRegistry()
	r.load = func(spec prefabs.StickerSpec) (component.Sprite, error) {
		calls++
		if spec.Name == "broken" {
			return component.Sprite{}, errors.New("boom")
		}
		return component.Sprite{Source: image.NewRGBA(image.Rect(0, 0, 1, 1))}, nil
	}

	tests := []struct {
		name      string
		spec      string
		wantCalls int
		wantErr   bool
	}{
		{"first_load", "sunny", 1, false},
		{"cached", "sunny", 1, false},
		{"other", "grape", 2, false},
		{"error_not_cached", "broken", 3, true},
		{"error_retried", "broken", 4, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := r.Sprite(prefabs.StickerSpec{Name: tc.spec})
			if (err != nil) != tc.wantErr {
				t.Fatalf("unexpected error state: %v", err)
			}
			if calls != tc.wantCalls {
				t.Fatalf("expected %d loads, got %d", tc.wantCalls, calls)
			}
		})
	}

	if r.Len() != 2 {
		t.Fatalf("expected 2 cached sprites, got %d", r.Len())
	}
	r.Reset()
	if r.Len() != 0 {
		t.Fatalf("reset should empty the cache")
	}
}
