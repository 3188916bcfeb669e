package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/photosticky/ecs/component"
	"github.com/milk9111/photosticky/gesture"
	"github.com/milk9111/photosticky/sticker"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("second DestroyEntity should return false")
				}
			}
		})
	}
}

func TestRecycledEntityIsNotAliasedByStaleHandle(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := CreateEntity(w)
	if err := Add(w, old, h, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected id reuse, got %v and %v", old, fresh)
	}
	if fresh == old {
		t.Fatalf("recycled entity must carry a new generation")
	}
	if Has(w, fresh, h) {
		t.Fatalf("recycled entity inherited a component")
	}
	if err := Add(w, old, h, intPtr(2)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive for stale handle, got %v", err)
	}
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestWorldComponentsAndQueries(t *testing.T) {
	w := NewWorld()

	hInt := component.NewComponent[int]()
	hStr := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, hInt, intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, hInt)
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
				*v = 11
				if v2, _ := Get(w, e1, hInt); *v2 != 11 {
					t.Fatalf("mutation through pointer not visible")
				}
			},
			teardown: func() bool { return Remove(w, e1, hInt) },
		},
		{
			name: "add_str_to_both",
			setup: func() error {
				if err := Add(w, e1, hStr, stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, hStr, stringPtr("b"))
			},
			check: func(t *testing.T) {
				got := w.Query(hStr)
				if len(got) != 2 || got[0] != e1 || got[1] != e2 {
					t.Fatalf("expected [e1 e2] in id order, got %v", got)
				}
			},
			teardown: func() bool { return Remove(w, e1, hStr) },
		},
		{
			name:  "nil_value",
			setup: func() error { return nil },
			check: func(t *testing.T) {
				if err := Add[int](w, e1, hInt, nil); !errors.Is(err, component.ErrNilComponent) {
					t.Fatalf("expected ErrNilComponent, got %v", err)
				}
			},
			teardown: func() bool { return !Has(w, e1, hInt) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestForEach3(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				e3 := CreateEntity(w)

				ha := component.NewComponent[int]()
				hb := component.NewComponent[int]()
				hc := component.NewComponent[int]()

				for _, step := range []struct {
					e Entity
					h component.ComponentHandle[int]
				}{{e1, ha}, {e2, ha}, {e2, hb}, {e2, hc}, {e3, hb}} {
					if err := Add(w, step.e, step.h, intPtr(1)); err != nil {
						t.Fatal(err)
					}
				}

				var res []Entity
				ForEach3(w, ha, hb, hc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 1 || res[0] != e2 {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)
				ha := component.NewComponent[int]()
				hb := component.NewComponent[int]()
				hc := component.NewComponent[int]()
				_ = Add(w, e, ha, intPtr(1))
				_ = Add(w, e, hb, intPtr(2))
				_ = Add(w, e, hc, intPtr(3))

				if !DestroyEntity(w, e) {
					t.Fatal("failed to destroy entity")
				}

				var res []Entity
				ForEach3(w, ha, hb, hc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty result after destroy, got %v", res)
				}
			},
		},
		{
			name: "missing_store_returns_nil",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)
				ha := component.NewComponent[int]()
				hb := component.NewComponent[int]()
				hc := component.NewComponent[int]()
				_ = Add(w, e, ha, intPtr(1))

				var res []Entity
				ForEach3(w, ha, hb, hc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty when other store missing, got %v", res)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

type recordingSystem struct {
	seen []int
}

func (r *recordingSystem) Update(w *World) {
	r.seen = append(r.seen, len(w.Events().Peek()))
	w.Events().Push(Event{Type: EventCanvasReset})
}

func TestSchedulerSharesEventsWithinFrame(t *testing.T) {
	w := NewWorld()
	a := &recordingSystem{}
	b := &recordingSystem{}
	s := NewScheduler(a, b)

	s.Update(w)
	if len(a.seen) != 1 || a.seen[0] != 0 || b.seen[0] != 1 {
		t.Fatalf("second system should see the first system's event, got a=%v b=%v", a.seen, b.seen)
	}
	if len(w.Events().Peek()) != 0 {
		t.Fatalf("events must be cleared at the end of the frame")
	}

	s.Update(w)
	if a.seen[1] != 0 {
		t.Fatalf("events leaked into the next frame: %v", a.seen)
	}
}

func TestEventQueuePeekKeepsPayload(t *testing.T) {
	var q EventQueue
	tr, err := sticker.NewTransform(100)
	if err != nil {
		t.Fatal(err)
	}
	q.Push(Event{Type: EventTransformChanged, Data: TransformChanged{Intent: gesture.DoubleTap(), Transform: tr}})
	q.Push(Event{Type: EventStickerAdded})

	got := q.Peek()
	if len(got) != 2 || got[0].Type != EventTransformChanged {
		t.Fatalf("unexpected events %+v", got)
	}
	if data, ok := got[0].Data.(TransformChanged); !ok || data.Transform.BaseSize != 100 {
		t.Fatalf("payload lost: %+v", got[0].Data)
	}
	if len(q.Peek()) != 2 {
		t.Fatalf("peek must not consume events")
	}
	q.flush()
	if q.Peek() != nil {
		t.Fatalf("queue should be empty after flush")
	}
}
