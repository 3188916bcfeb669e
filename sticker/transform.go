package sticker

import (
	"errors"
	"fmt"
	"math"

	"github.com/milk9111/photosticky/gesture"
)

// ErrInvalidConfiguration is returned when a transform would start with a
// degenerate base size.
var ErrInvalidConfiguration = errors.New("sticker: invalid configuration")

// Toggle is the double-tap state of a sticker.
type Toggle uint8

const (
	Normal Toggle = iota
	Doubled
)

func (t Toggle) String() string {
	if t == Doubled {
		return "doubled"
	}
	return "normal"
}

// Vec is an offset in canvas pixels.
type Vec struct {
	X float64
	Y float64
}

// Transform is the logical placement of one sticker. It is a plain value;
// a copy is a consistent snapshot.
type Transform struct {
	// Position is the offset from the canvas anchor. It is unbounded.
	Position Vec
	// Scale multiplies BaseSize and is always > 0.
	Scale    float64
	BaseSize float64
	Toggle   Toggle
}

// NewTransform returns the initial transform of a freshly placed sticker.
func NewTransform(baseSize float64) (Transform, error) {
	if !(baseSize > 0) || math.IsInf(baseSize, 0) {
		return Transform{}, fmt.Errorf("%w: base size %v must be a positive number", ErrInvalidConfiguration, baseSize)
	}
	return Transform{Scale: 1, BaseSize: baseSize, Toggle: Normal}, nil
}

// Size is the displayed edge length.
func (t Transform) Size() float64 {
	return t.BaseSize * t.Scale
}

// ApplyDrag moves the sticker by an incremental delta.
func ApplyDrag(t *Transform, dx, dy float64) {
	if t == nil {
		return
	}
	t.Position.X += dx
	t.Position.Y += dy
}

// ApplyDoubleTap flips between normal and doubled size. Shrinking rounds the
// displayed size to whole pixels, so integer base sizes round-trip exactly.
func ApplyDoubleTap(t *Transform) {
	if t == nil {
		return
	}
	switch t.Toggle {
	case Normal:
		t.Scale *= 2
		t.Toggle = Doubled
	case Doubled:
		half := t.Size() / 2
		size := math.Round(half)
		if size <= 0 {
			size = half
		}
		t.Scale = size / t.BaseSize
		t.Toggle = Normal
	}
}

// Apply applies one intent and reports whether the transform changed.
func Apply(t *Transform, in gesture.Intent) bool {
	if t == nil {
		return false
	}
	switch in.Kind {
	case gesture.IntentDrag:
		if in.DX == 0 && in.DY == 0 {
			return false
		}
		ApplyDrag(t, in.DX, in.DY)
		return true
	case gesture.IntentDoubleTap:
		ApplyDoubleTap(t)
		return true
	}
	return false
}
