package anim

import "github.com/milk9111/photosticky/common"

// Ease maps linear progress in [0,1] to eased progress.
type Ease func(t float64) float64

func Linear(t float64) float64 { return t }

func CubicOut(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// Keyframe moves the sequence value to To over Duration seconds.
type Keyframe struct {
	To       float64
	Duration float64
	Ease     Ease
}

// Sequence plays keyframes one after another after an optional delay,
// like a chain of timed tweens.
type Sequence struct {
	Delay  float64
	Frames []Keyframe

	from    float64
	value   float64
	elapsed float64
	index   int
}

// NewSequence starts at from and holds it until the delay passes.
func NewSequence(from, delay float64, frames ...Keyframe) *Sequence {
	return &Sequence{Delay: delay, Frames: frames, from: from, value: from}
}

// Value returns the current output.
func (s *Sequence) Value() float64 {
	if s == nil {
		return 0
	}
	return s.value
}

// Done reports whether every keyframe has played.
func (s *Sequence) Done() bool {
	return s == nil || s.index >= len(s.Frames)
}

// Step advances the sequence by dt seconds.
func (s *Sequence) Step(dt float64) float64 {
	if s == nil {
		return 0
	}
	if s.Delay > 0 {
		if dt <= s.Delay {
			s.Delay -= dt
			return s.value
		}
		dt -= s.Delay
		s.Delay = 0
	}
	for dt > 0 && !s.Done() {
		kf := s.Frames[s.index]
		remaining := kf.Duration - s.elapsed
		if kf.Duration <= 0 || dt >= remaining {
			dt -= max(remaining, 0)
			s.value = kf.To
			s.from = kf.To
			s.elapsed = 0
			s.index++
			continue
		}
		s.elapsed += dt
		dt = 0
		ease := kf.Ease
		if ease == nil {
			ease = Linear
		}
		p := ease(s.elapsed / kf.Duration)
		s.value = common.Lerp(s.from, kf.To, p)
	}
	return s.value
}
