package sticker

import (
	"context"
	"sync"

	"github.com/milk9111/photosticky/gesture"
)

// Session binds one sticker's pointer stream to its transform. Feed and Run
// must be driven from one goroutine; Snapshot may be called from any.
type Session struct {
	interp *gesture.Interpreter

	mu        sync.RWMutex
	transform Transform

	// OnChange, if set, receives the transform after every applied intent.
	OnChange func(Transform, gesture.Intent)
}

// NewSession creates a session for a sticker with the given base size.
func NewSession(baseSize float64, cfg gesture.Config) (*Session, error) {
	t, err := NewTransform(baseSize)
	if err != nil {
		return nil, err
	}
	return &Session{interp: gesture.NewInterpreter(cfg), transform: t}, nil
}

// Snapshot returns the transform after the last completed intent.
func (s *Session) Snapshot() Transform {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.transform
}

// Feed interprets one event and applies the resulting intent, if any.
func (s *Session) Feed(ev gesture.PointerEvent) (gesture.Intent, bool) {
	intent, ok := s.interp.Feed(ev)
	if !ok {
		return gesture.Intent{}, false
	}
	s.apply(intent)
	return intent, true
}

// Dragging reports whether the current contact has turned into a drag.
func (s *Session) Dragging() bool {
	return s != nil && s.interp.Dragging()
}

// SetConfig swaps the gesture thresholds without dropping the contact.
func (s *Session) SetConfig(cfg gesture.Config) {
	if s == nil {
		return
	}
	s.interp.SetConfig(cfg)
}

// Run consumes a live pointer subscription until it closes or ctx ends.
func (s *Session) Run(ctx context.Context, events <-chan gesture.PointerEvent) error {
	return s.interp.Run(ctx, events, s.apply)
}

func (s *Session) apply(intent gesture.Intent) {
	s.mu.Lock()
	changed := Apply(&s.transform, intent)
	snap := s.transform
	s.mu.Unlock()

	if changed && s.OnChange != nil {
		s.OnChange(snap, intent)
	}
}
