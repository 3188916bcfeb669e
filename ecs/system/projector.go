package system

import (
	"github.com/milk9111/photosticky/anim"
	"github.com/milk9111/photosticky/ecs"
	"github.com/milk9111/photosticky/ecs/component"
	"github.com/milk9111/photosticky/gesture"
	"github.com/milk9111/photosticky/prefabs"
	"github.com/milk9111/photosticky/sticker"
)

const (
	mountDelay       = 0.1
	mountFade        = 0.5
	photoMountScale  = 0.8
	defaultFrameStep = 1.0 / 60.0
)

// ProjectorSystem turns logical sticker transforms into the animated pose
// the renderer draws. It reads transforms and events and never writes a
// transform back.
type ProjectorSystem struct {
	spec prefabs.ProjectorSpec
	// Step is the simulated time per update, in seconds.
	Step float64
}

func NewProjectorSystem(spec prefabs.ProjectorSpec) *ProjectorSystem {
	return &ProjectorSystem{spec: spec, Step: defaultFrameStep}
}

// SetSpec swaps the animation settings, used on hot reload. Running
// springs pick up the new constants on their next step.
func (s *ProjectorSystem) SetSpec(spec prefabs.ProjectorSpec) {
	if s == nil {
		return
	}
	s.spec = spec
}

// restingPose returns a pose at rest on t with the configured springs.
func (s *ProjectorSystem) restingPose(t sticker.Transform) component.Pose {
	return component.Pose{
		X:    anim.NewSpring(t.Position.X, s.spec.PositionSpring.Config()),
		Y:    anim.NewSpring(t.Position.Y, s.spec.PositionSpring.Config()),
		Size: anim.NewSpring(t.Size(), s.spec.SizeSpring.Config()),
	}
}

func (s *ProjectorSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	for _, ev := range w.Events().Peek() {
		switch ev.Type {
		case ecs.EventStickerAdded:
			if e, ok := ev.Data.(ecs.Entity); ok {
				s.mountSticker(w, e)
			}
		case ecs.EventTransformChanged:
			if data, ok := ev.Data.(ecs.TransformChanged); ok {
				s.retarget(w, data)
			}
		case ecs.EventCanvasReset:
			if e, ok := ev.Data.(ecs.Entity); ok {
				s.mountCanvas(w, e)
			}
		}
	}

	dt := s.Step
	if dt <= 0 {
		dt = defaultFrameStep
	}

	ecs.ForEach2(w, component.PoseComponent, component.TransformComponent, func(e ecs.Entity, p *component.Pose, t *sticker.Transform) {
		p.X.Config = s.spec.PositionSpring.Config()
		p.Y.Config = s.spec.PositionSpring.Config()
		p.Size.Config = s.spec.SizeSpring.Config()

		p.X.Target = t.Position.X
		p.Y.Target = t.Position.Y
		p.Size.Target = t.Size()

		if p.Held {
			p.X.Snap(t.Position.X)
			p.Y.Snap(t.Position.Y)
		} else {
			p.X.Step(dt)
			p.Y.Step(dt)
		}
		p.Size.Step(dt)

		if p.Rotation != nil {
			p.Rotation.Step(dt)
			if p.Rotation.Done() && p.Rotation.Value() == 0 {
				p.Rotation = nil
			}
		}
		if p.Opacity != nil {
			p.Opacity.Step(dt)
			if p.Opacity.Done() && p.Opacity.Value() >= 1 {
				p.Opacity = nil
			}
		}
	})

	ecs.ForEach(w, component.CanvasComponent, func(e ecs.Entity, c *component.Canvas) {
		c.Scale.Config = s.spec.PhotoSpring.Config()
		c.Scale.Step(dt)
		if c.Opacity != nil {
			c.Opacity.Step(dt)
		}
	})
}

func (s *ProjectorSystem) mountSticker(w *ecs.World, e ecs.Entity) {
	p, ok := ecs.Get(w, e, component.PoseComponent)
	if !ok {
		return
	}
	t, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		return
	}
	*p = s.restingPose(*t)
	p.Opacity = anim.NewSequence(0, mountDelay, anim.Keyframe{To: 1, Duration: mountFade, Ease: anim.CubicOut})
	p.Rotation = anim.NewSequence(0, mountDelay,
		anim.Keyframe{To: -15, Duration: 0.2},
		anim.Keyframe{To: 10, Duration: 0.15},
		anim.Keyframe{To: 0, Duration: 0.15},
	)
}

func (s *ProjectorSystem) retarget(w *ecs.World, data ecs.TransformChanged) {
	if data.Intent.Kind != gesture.IntentDoubleTap {
		return
	}
	p, ok := ecs.Get(w, data.Entity, component.PoseComponent)
	if !ok {
		return
	}
	amp := s.spec.WobbleDegrees
	if data.Transform.Toggle == sticker.Normal {
		amp = -amp
	}
	d := s.spec.WobbleMs / 1000
	from := 0.0
	if p.Rotation != nil {
		from = p.Rotation.Value()
	}
	p.Rotation = anim.NewSequence(from, 0,
		anim.Keyframe{To: amp, Duration: d},
		anim.Keyframe{To: -amp, Duration: d},
		anim.Keyframe{To: 0, Duration: d},
	)
}

func (s *ProjectorSystem) mountCanvas(w *ecs.World, e ecs.Entity) {
	c, ok := ecs.Get(w, e, component.CanvasComponent)
	if !ok {
		return
	}
	c.Scale = anim.NewSpring(photoMountScale, s.spec.PhotoSpring.Config())
	c.Scale.Target = 1
	c.Opacity = anim.NewSequence(0, 0, anim.Keyframe{To: 1, Duration: mountFade, Ease: anim.CubicOut})
}

// PoseOpacity returns the opacity a pose is drawn with.
func PoseOpacity(p *component.Pose) float64 {
	if p == nil || p.Opacity == nil {
		return 1
	}
	return p.Opacity.Value()
}

// PoseRotation returns the drawn rotation in degrees.
func PoseRotation(p *component.Pose) float64 {
	if p == nil || p.Rotation == nil {
		return 0
	}
	return p.Rotation.Value()
}
