package anim

import "math"

const (
	DefaultStiffness = 100.0
	DefaultDamping   = 10.0
	DefaultMass      = 1.0

	restDelta    = 0.01
	restVelocity = 0.01
	maxSubstep   = 1.0 / 240.0
)

// SpringConfig describes a damped harmonic spring.
type SpringConfig struct {
	Stiffness float64
	Damping   float64
	Mass      float64
}

func (c SpringConfig) withDefaults() SpringConfig {
	if c.Stiffness <= 0 {
		c.Stiffness = DefaultStiffness
	}
	if c.Damping <= 0 {
		c.Damping = DefaultDamping
	}
	if c.Mass <= 0 {
		c.Mass = DefaultMass
	}
	return c
}

// Spring animates a displayed value towards a target.
type Spring struct {
	Value    float64
	Velocity float64
	Target   float64
	Config   SpringConfig
}

// NewSpring starts a spring at rest on value.
func NewSpring(value float64, cfg SpringConfig) Spring {
	return Spring{Value: value, Target: value, Config: cfg.withDefaults()}
}

// Snap jumps to v with no motion left.
func (s *Spring) Snap(v float64) {
	s.Value = v
	s.Target = v
	s.Velocity = 0
}

// Settled reports whether the spring has come to rest on its target.
func (s *Spring) Settled() bool {
	return math.Abs(s.Target-s.Value) < restDelta && math.Abs(s.Velocity) < restVelocity
}

// Step advances the spring by dt seconds using semi-implicit Euler substeps.
func (s *Spring) Step(dt float64) float64 {
	if dt <= 0 || s.Settled() {
		if s.Settled() {
			s.Value = s.Target
			s.Velocity = 0
		}
		return s.Value
	}
	cfg := s.Config.withDefaults()
	steps := int(math.Ceil(dt / maxSubstep))
	h := dt / float64(steps)
	for i := 0; i < steps; i++ {
		force := -cfg.Stiffness*(s.Value-s.Target) - cfg.Damping*s.Velocity
		s.Velocity += force / cfg.Mass * h
		s.Value += s.Velocity * h
	}
	if s.Settled() {
		s.Value = s.Target
		s.Velocity = 0
	}
	return s.Value
}
