package gesture

import (
	"context"
	"math"
)

const (
	defaultTouchSlop         = 8.0 // pixels
	defaultTapTimeoutMs      = 500
	defaultDoubleTapInterval = 300
	defaultDoubleTapDistance = 40.0 // pixels
)

// Config holds the tap/pan disambiguation thresholds.
type Config struct {
	// TouchSlop is the travel in pixels after which a press becomes a drag
	// and can no longer be a tap.
	TouchSlop float64
	// TapTimeoutMs is the longest press that still counts as a tap.
	TapTimeoutMs int64
	// DoubleTapIntervalMs is the longest gap between the first release and
	// the second press.
	DoubleTapIntervalMs int64
	// DoubleTapDistance is the furthest the second tap may land from the first.
	DoubleTapDistance float64
}

// DefaultConfig returns thresholds close to the common mobile platform values.
func DefaultConfig() Config {
	return Config{
		TouchSlop:           defaultTouchSlop,
		TapTimeoutMs:        defaultTapTimeoutMs,
		DoubleTapIntervalMs: defaultDoubleTapInterval,
		DoubleTapDistance:   defaultDoubleTapDistance,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.TouchSlop <= 0 {
		c.TouchSlop = d.TouchSlop
	}
	if c.TapTimeoutMs <= 0 {
		c.TapTimeoutMs = d.TapTimeoutMs
	}
	if c.DoubleTapIntervalMs <= 0 {
		c.DoubleTapIntervalMs = d.DoubleTapIntervalMs
	}
	if c.DoubleTapDistance <= 0 {
		c.DoubleTapDistance = d.DoubleTapDistance
	}
	return c
}

type tapRecord struct {
	x, y   float64
	timeMs int64
	valid  bool
}

// Interpreter classifies the pointer stream of one sticker into intents.
// It is not safe for concurrent use; feed it from a single goroutine.
type Interpreter struct {
	cfg Config

	down     bool
	dragging bool
	startX   float64
	startY   float64
	startMs  int64
	lastX    float64
	lastY    float64
	// reported is the pointer position already accounted for by emitted drags.
	reportedX float64
	reportedY float64

	lastTap tapRecord
}

// NewInterpreter creates an interpreter; zero config fields fall back to defaults.
func NewInterpreter(cfg Config) *Interpreter {
	return &Interpreter{cfg: cfg.withDefaults()}
}

// Config returns the effective thresholds.
func (in *Interpreter) Config() Config {
	if in == nil {
		return DefaultConfig()
	}
	return in.cfg
}

// SetConfig swaps thresholds without dropping the current contact.
func (in *Interpreter) SetConfig(cfg Config) {
	if in == nil {
		return
	}
	in.cfg = cfg.withDefaults()
}

// Dragging reports whether the active contact has turned into a drag.
func (in *Interpreter) Dragging() bool {
	return in != nil && in.down && in.dragging
}

// Active reports whether a contact is currently pressed.
func (in *Interpreter) Active() bool {
	return in != nil && in.down
}

// Reset drops the active contact and the tap history.
func (in *Interpreter) Reset() {
	if in == nil {
		return
	}
	cfg := in.cfg
	*in = Interpreter{cfg: cfg}
}

// Feed consumes one event and returns the intent it completes, if any.
// Events that do not fit the current contact are ignored.
func (in *Interpreter) Feed(ev PointerEvent) (Intent, bool) {
	if in == nil {
		return Intent{}, false
	}
	switch ev.Kind {
	case PointerDown:
		return in.press(ev)
	case PointerMove:
		return in.move(ev)
	case PointerUp:
		return in.release(ev)
	}
	return Intent{}, false
}

func (in *Interpreter) press(ev PointerEvent) (Intent, bool) {
	if in.down {
		// single contact model: a second press is noise
		return Intent{}, false
	}
	in.down = true
	in.dragging = false
	in.startX, in.startY = ev.X, ev.Y
	in.lastX, in.lastY = ev.X, ev.Y
	in.reportedX, in.reportedY = ev.X, ev.Y
	in.startMs = ev.TimeMs

	if in.lastTap.valid {
		gap := ev.TimeMs - in.lastTap.timeMs
		if gap < 0 || gap > in.cfg.DoubleTapIntervalMs {
			in.lastTap = tapRecord{}
		}
	}
	return Intent{}, false
}

func (in *Interpreter) move(ev PointerEvent) (Intent, bool) {
	if !in.down {
		return Intent{}, false
	}
	in.lastX, in.lastY = ev.X, ev.Y
	if !in.dragging {
		if math.Hypot(ev.X-in.startX, ev.Y-in.startY) <= in.cfg.TouchSlop {
			return Intent{}, false
		}
		in.dragging = true
		in.lastTap = tapRecord{}
	}
	dx := ev.X - in.reportedX
	dy := ev.Y - in.reportedY
	if dx == 0 && dy == 0 {
		return Intent{}, false
	}
	in.reportedX, in.reportedY = ev.X, ev.Y
	return Drag(dx, dy), true
}

func (in *Interpreter) release(ev PointerEvent) (Intent, bool) {
	if !in.down {
		return Intent{}, false
	}
	in.down = false

	if in.dragging {
		in.dragging = false
		// trailing movement on the release sample still belongs to the drag
		dx := ev.X - in.reportedX
		dy := ev.Y - in.reportedY
		if dx != 0 || dy != 0 {
			in.reportedX, in.reportedY = ev.X, ev.Y
			return Drag(dx, dy), true
		}
		return Intent{}, false
	}

	held := ev.TimeMs - in.startMs
	travel := math.Hypot(ev.X-in.startX, ev.Y-in.startY)
	if travel > in.cfg.TouchSlop {
		// a flick that crossed the slop between two samples is a drag
		in.lastTap = tapRecord{}
		dx := ev.X - in.reportedX
		dy := ev.Y - in.reportedY
		in.reportedX, in.reportedY = ev.X, ev.Y
		return Drag(dx, dy), true
	}
	if held < 0 || held > in.cfg.TapTimeoutMs {
		in.lastTap = tapRecord{}
		return Intent{}, false
	}

	prev := in.lastTap
	if prev.valid && in.startMs-prev.timeMs <= in.cfg.DoubleTapIntervalMs &&
		math.Hypot(in.startX-prev.x, in.startY-prev.y) <= in.cfg.DoubleTapDistance {
		in.lastTap = tapRecord{}
		return DoubleTap(), true
	}

	in.lastTap = tapRecord{x: in.startX, y: in.startY, timeMs: ev.TimeMs, valid: true}
	return Intent{}, false
}

// Run feeds events from a live subscription until the channel is closed or
// ctx is cancelled. Every recognised intent is passed to emit in order.
func (in *Interpreter) Run(ctx context.Context, events <-chan PointerEvent, emit func(Intent)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if intent, ok := in.Feed(ev); ok && emit != nil {
				emit(intent)
			}
		}
	}
}
