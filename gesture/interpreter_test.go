package gesture

import (
	"context"
	"errors"
	"testing"
	"time"
)

func down(x, y float64, t int64) PointerEvent { return PointerEvent{Kind: PointerDown, X: x, Y: y, TimeMs: t} }
func move(x, y float64, t int64) PointerEvent { return PointerEvent{Kind: PointerMove, X: x, Y: y, TimeMs: t} }
func up(x, y float64, t int64) PointerEvent   { return PointerEvent{Kind: PointerUp, X: x, Y: y, TimeMs: t} }

func feedAll(in *Interpreter, events []PointerEvent) []Intent {
	var out []Intent
	for _, ev := range events {
		if intent, ok := in.Feed(ev); ok {
			out = append(out, intent)
		}
	}
	return out
}

func countKind(intents []Intent, kind IntentKind) int {
	n := 0
	for _, in := range intents {
		if in.Kind == kind {
			n++
		}
	}
	return n
}

func TestInterpreterClassification(t *testing.T) {
	cases := []struct {
		name       string
		events     []PointerEvent
		doubleTaps int
		drags      int
	}{
		{
			name:       "double_tap",
			events:     []PointerEvent{down(10, 10, 0), up(10, 10, 50), down(12, 11, 150), up(12, 11, 200)},
			doubleTaps: 1,
		},
		{
			name:   "single_tap",
			events: []PointerEvent{down(10, 10, 0), up(10, 10, 50)},
		},
		{
			name:   "taps_too_slow",
			events: []PointerEvent{down(10, 10, 0), up(10, 10, 50), down(10, 10, 500), up(10, 10, 550)},
		},
		{
			name:   "taps_too_far_apart",
			events: []PointerEvent{down(10, 10, 0), up(10, 10, 50), down(200, 10, 100), up(200, 10, 150)},
		},
		{
			name:   "long_press_is_not_a_tap",
			events: []PointerEvent{down(10, 10, 0), up(10, 10, 900), down(10, 10, 950), up(10, 10, 1000)},
		},
		{
			name:       "jitter_inside_slop_still_taps",
			events:     []PointerEvent{down(10, 10, 0), move(13, 12, 10), up(13, 12, 40), down(10, 10, 100), move(11, 9, 110), up(11, 9, 140)},
			doubleTaps: 1,
		},
		{
			name:   "drag_then_tap_is_not_double",
			events: []PointerEvent{down(10, 10, 0), move(40, 10, 10), up(40, 10, 20), down(40, 10, 60), up(40, 10, 80)},
			drags:  1,
		},
		{
			name:   "second_press_drags",
			events: []PointerEvent{down(10, 10, 0), up(10, 10, 40), down(10, 10, 80), move(30, 30, 90), move(35, 30, 100), up(35, 30, 120)},
			drags:  2,
		},
		{
			name:       "third_tap_starts_new_sequence",
			events:     []PointerEvent{down(0, 0, 0), up(0, 0, 20), down(0, 0, 60), up(0, 0, 80), down(0, 0, 120), up(0, 0, 140)},
			doubleTaps: 1,
		},
		{
			name:       "four_taps_two_double_taps",
			events:     []PointerEvent{down(0, 0, 0), up(0, 0, 20), down(0, 0, 60), up(0, 0, 80), down(0, 0, 120), up(0, 0, 140), down(0, 0, 180), up(0, 0, 200)},
			doubleTaps: 2,
		},
		{
			name:   "malformed_stream_ignored",
			events: []PointerEvent{up(0, 0, 0), move(5, 5, 10), up(5, 5, 20), {Kind: PointerKind(42)}},
		},
		{
			name:   "time_going_backwards",
			events: []PointerEvent{down(0, 0, 100), up(0, 0, 120), down(0, 0, 50), up(0, 0, 60)},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := NewInterpreter(Config{})
			got := feedAll(in, c.events)
			if n := countKind(got, IntentDoubleTap); n != c.doubleTaps {
				t.Fatalf("expected %d double taps, got %d (%v)", c.doubleTaps, n, got)
			}
			if n := countKind(got, IntentDrag); n != c.drags {
				t.Fatalf("expected %d drags, got %d (%v)", c.drags, n, got)
			}
		})
	}
}

func TestInterpreterDragDeltasSumToTravel(t *testing.T) {
	tests := []struct {
		name  string
		path  [][2]float64
		endX  float64
		endY  float64
		total [2]float64
	}{
		{name: "straight", path: [][2]float64{{5, 0}, {10, 0}, {20, 0}, {30, 0}}, endX: 30, endY: 0, total: [2]float64{30, 0}},
		{name: "single_jump", path: [][2]float64{{100, -50}}, endX: 100, endY: -50, total: [2]float64{100, -50}},
		{name: "back_and_forth", path: [][2]float64{{20, 20}, {-10, 5}, {3, -2}}, endX: 7, endY: -2, total: [2]float64{7, -2}},
		{name: "release_moves_further", path: [][2]float64{{15, 0}}, endX: 25, endY: 4, total: [2]float64{25, 4}},
		{name: "flick_without_moves", endX: 40, endY: 0, total: [2]float64{40, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := NewInterpreter(Config{})
			events := []PointerEvent{down(0, 0, 0)}
			for i, p := range tc.path {
				events = append(events, move(p[0], p[1], int64(10*(i+1))))
			}
			events = append(events, up(tc.endX, tc.endY, 500))

			var sx, sy float64
			for _, intent := range feedAll(in, events) {
				if intent.Kind != IntentDrag {
					t.Fatalf("unexpected intent %v", intent.Kind)
				}
				sx += intent.DX
				sy += intent.DY
			}
			if sx != tc.total[0] || sy != tc.total[1] {
				t.Fatalf("expected total (%v,%v), got (%v,%v)", tc.total[0], tc.total[1], sx, sy)
			}
		})
	}
}

func TestInterpreterFlickInOneSample(t *testing.T) {
	in := NewInterpreter(Config{})
	got := feedAll(in, []PointerEvent{down(0, 0, 0), up(40, 0, 16)})
	if len(got) != 1 || got[0].Kind != IntentDrag || got[0].DX != 40 || got[0].DY != 0 {
		t.Fatalf("expected one drag of (40,0), got %+v", got)
	}

	// the flick is not a tap, so a following tap pair still needs two taps
	got = feedAll(in, []PointerEvent{down(40, 0, 100), up(40, 0, 140)})
	if len(got) != 0 {
		t.Fatalf("a tap after a flick must not complete a double tap, got %+v", got)
	}
	got = feedAll(in, []PointerEvent{down(40, 0, 200), up(40, 0, 240)})
	if len(got) != 1 || got[0].Kind != IntentDoubleTap {
		t.Fatalf("expected double tap, got %+v", got)
	}
}

func TestInterpreterIgnoresSecondPress(t *testing.T) {
	in := NewInterpreter(Config{})
	in.Feed(down(0, 0, 0))
	if _, ok := in.Feed(down(50, 50, 5)); ok {
		t.Fatalf("second press should not produce an intent")
	}
	intent, ok := in.Feed(move(20, 0, 10))
	if !ok || intent.DX != 20 || intent.DY != 0 {
		t.Fatalf("drag should be measured from the first press, got %+v ok=%v", intent, ok)
	}
}

func TestInterpreterConfigDefaults(t *testing.T) {
	in := NewInterpreter(Config{TouchSlop: 2})
	cfg := in.Config()
	if cfg.TouchSlop != 2 {
		t.Fatalf("expected explicit slop to be kept, got %v", cfg.TouchSlop)
	}
	if cfg.DoubleTapIntervalMs != defaultDoubleTapInterval || cfg.TapTimeoutMs != defaultTapTimeoutMs {
		t.Fatalf("expected defaults to fill zero fields, got %+v", cfg)
	}

	in.Feed(down(0, 0, 0))
	if _, ok := in.Feed(move(3, 0, 5)); !ok {
		t.Fatalf("3px should exceed a 2px slop")
	}
	in.Reset()
	if in.Active() || in.Dragging() {
		t.Fatalf("reset should drop the contact")
	}
}

func TestInterpreterRun(t *testing.T) {
	t.Run("closed_channel", func(t *testing.T) {
		events := make(chan PointerEvent, 8)
		for _, ev := range []PointerEvent{down(0, 0, 0), up(0, 0, 10), down(0, 0, 40), up(0, 0, 60)} {
			events <- ev
		}
		close(events)

		var got []Intent
		err := NewInterpreter(Config{}).Run(context.Background(), events, func(i Intent) { got = append(got, i) })
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].Kind != IntentDoubleTap {
			t.Fatalf("expected one double tap, got %v", got)
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		events := make(chan PointerEvent)
		done := make(chan error, 1)
		go func() { done <- NewInterpreter(Config{}).Run(ctx, events, nil) }()
		cancel()
		select {
		case err := <-done:
			if !errors.Is(err, context.Canceled) {
				t.Fatalf("expected context.Canceled, got %v", err)
			}
		case <-time.After(time.Second):
			t.Fatalf("run did not stop after cancel")
		}
	})
}
