package system

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/photosticky/ecs"
	"github.com/milk9111/photosticky/gesture"
)

// Feedback pulses, matching light and medium impact styles.
var (
	HapticLight  = ebiten.VibrateOptions{Duration: 10 * time.Millisecond, Magnitude: 0.3}
	HapticMedium = ebiten.VibrateOptions{Duration: 20 * time.Millisecond, Magnitude: 0.6}
)

// HapticsSystem vibrates the device when a sticker is double tapped. The UI
// calls Impact directly for button presses.
type HapticsSystem struct {
	Disabled bool
	// Vibrate plays a pulse; ebiten.Vibrate by default. It is a no-op on
	// platforms without a vibration motor.
	Vibrate func(*ebiten.VibrateOptions)
}

func NewHapticsSystem() *HapticsSystem {
	return &HapticsSystem{Vibrate: ebiten.Vibrate}
}

func (s *HapticsSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	for _, ev := range w.Events().Peek() {
		if ev.Type != ecs.EventTransformChanged {
			continue
		}
		if data, ok := ev.Data.(ecs.TransformChanged); ok && data.Intent.Kind == gesture.IntentDoubleTap {
			s.Impact(HapticMedium)
		}
	}
}

// Impact plays one feedback pulse unless haptics are disabled.
func (s *HapticsSystem) Impact(opts ebiten.VibrateOptions) {
	if s == nil || s.Disabled || s.Vibrate == nil {
		return
	}
	s.Vibrate(&opts)
}
