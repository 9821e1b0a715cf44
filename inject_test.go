package dominoes

import "testing"

func TestInjectMove(t *testing.T) {
	in := NewCursorInput()
	var got []PointerEvent
	in.OnPointerMove(func(e PointerEvent) { got = append(got, e) })

	in.InjectMove(10, 20)
	in.InjectMove(-30, 40)
	if in.Pending() != 2 {
		t.Fatalf("expected 2 queued events, got %d", in.Pending())
	}

	// Frame 1
	in.Update()
	if in.Pending() != 1 {
		t.Fatalf("expected 1 remaining event after frame 1, got %d", in.Pending())
	}
	if len(got) != 1 || got[0] != (PointerEvent{OffsetX: 10, OffsetY: 20}) {
		t.Errorf("after frame 1 got %v", got)
	}

	// Frame 2
	in.Update()
	if in.Pending() != 0 {
		t.Fatalf("expected 0 remaining events after frame 2, got %d", in.Pending())
	}
	if len(got) != 2 || got[1] != (PointerEvent{OffsetX: -30, OffsetY: 40}) {
		t.Errorf("after frame 2 got %v", got)
	}
}

func TestInjectPath(t *testing.T) {
	in := NewCursorInput()
	var got []PointerEvent
	in.OnPointerMove(func(e PointerEvent) { got = append(got, e) })

	// Path from (10,10) to (50,90) over 5 frames:
	// (10,10) (20,30) (30,50) (40,70) (50,90)
	in.InjectPath(10, 10, 50, 90, 5)
	if in.Pending() != 5 {
		t.Fatalf("expected 5 queued events, got %d", in.Pending())
	}
	for i := 0; i < 5; i++ {
		in.Update()
	}

	want := []PointerEvent{{10, 10}, {20, 30}, {30, 50}, {40, 70}, {50, 90}}
	if len(got) != len(want) {
		t.Fatalf("got %d events, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestInjectPathMinFrames(t *testing.T) {
	in := NewCursorInput()
	in.InjectPath(0, 0, 100, 100, 1)
	if in.Pending() != 2 {
		t.Errorf("expected 2 queued events (start + end), got %d", in.Pending())
	}
}
