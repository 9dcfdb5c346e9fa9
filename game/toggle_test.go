package game

import "testing"

func TestPoll(t *testing.T) {
	cases := []struct {
		name      string
		held      bool
		allowed   bool
		remaining int
		fired     bool
		next      int
	}{
		{"idle", false, true, 0, false, 0},
		{"press", true, true, 0, true, CooldownFrames},
		{"press while cooling", true, true, 5, false, 4},
		{"release while cooling", false, true, 5, false, 4},
		{"cooldown expires this frame", true, true, 1, true, CooldownFrames},
		{"press out of reach", true, false, 0, false, 0},
		{"drain out of reach", true, false, 3, false, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fired, next := Poll(tc.held, tc.allowed, tc.remaining, CooldownFrames)
			if fired != tc.fired || next != tc.next {
				t.Errorf("Poll(%v, %v, %d): expected (%v, %d), got (%v, %d)",
					tc.held, tc.allowed, tc.remaining, tc.fired, tc.next, fired, next)
			}
		})
	}
}

func TestPollPanicsOnNegativeCooldown(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for negative cooldown")
		}
	}()
	Poll(true, true, -1, CooldownFrames)
}

func TestToggleHeldFiresOncePerWindow(t *testing.T) {
	tg := NewToggle("axes", false, false)
	var fired []int
	for frame := 0; frame <= 45; frame++ {
		if tg.Poll(true, false) {
			fired = append(fired, frame)
		}
	}
	want := []int{0, 20, 40}
	if len(fired) != len(want) {
		t.Fatalf("expected firings at %v, got %v", want, fired)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Errorf("firing %d: expected frame %d, got %d", i, want[i], fired[i])
		}
	}
	// three flips from off
	if !tg.On {
		t.Error("expected toggle to end on")
	}
}

func TestToggleCooldownNeverNegative(t *testing.T) {
	tg := NewToggle("light", false, false)
	pattern := []bool{true, false, false, true, true, false, true}
	for frame := 0; frame < 200; frame++ {
		tg.Poll(pattern[frame%len(pattern)], false)
		if tg.Remaining < 0 || tg.Remaining > tg.Period {
			t.Fatalf("frame %d: cooldown %d out of [0, %d]", frame, tg.Remaining, tg.Period)
		}
	}
}

func TestGatedToggleNeedsProximity(t *testing.T) {
	tg := NewToggle("wolf", false, true)
	if tg.Poll(true, false) {
		t.Fatal("gated toggle fired while out of reach")
	}
	if tg.On {
		t.Fatal("gated toggle flipped while out of reach")
	}
	if !tg.Poll(true, true) || !tg.On {
		t.Error("expected gated toggle to fire once in reach")
	}
}
