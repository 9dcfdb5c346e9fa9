package main

import (
	"strings"
	"testing"

	"escape-demo/game"
)

func TestSkyFadesTowardOutcome(t *testing.T) {
	sky := NewSky()
	lost := game.Snapshot{Outcome: game.Lost, Delta: 0.1}
	prev := sky.Color.R
	for i := 0; i < 5; i++ {
		c := sky.Update(lost)
		if c.R <= prev {
			t.Fatalf("step %d: expected red to rise, got %v after %v", i, c.R, prev)
		}
		prev = c.R
	}
	if prev >= skyLost.R {
		t.Errorf("expected fade still in progress, got %v", prev)
	}
}

func TestSkySnapsOnRestart(t *testing.T) {
	sky := NewSky()
	sky.Color = skyWon
	c := sky.Update(game.Snapshot{Delta: 0.01, Events: game.Events{Restarted: true}})
	if c != skyDark {
		t.Errorf("expected %v after restart, got %v", skyDark, c)
	}
}

func TestSkyLongFrameLandsOnTarget(t *testing.T) {
	sky := NewSky()
	c := sky.Update(game.Snapshot{FullBright: true, Delta: 5})
	if c != skyBright {
		t.Errorf("expected %v, got %v", skyBright, c)
	}
}

func TestEventLines(t *testing.T) {
	snap := game.Snapshot{
		TorchLit:    false,
		HoldingWolf: true,
		AttenIndex:  3,
		Outcome:     game.Lost,
		Events: game.Events{
			Fired:   []game.Action{game.ActionTorchLight, game.ActionPickWolf, game.ActionAttenuationUp},
			Outcome: true,
		},
	}
	got := eventLines(snap)
	want := []string{
		"[Torch] OFF",
		"[Wolf] picked up",
		"[Light] attenuation 3 linear 0.14 quadratic 0.07",
		"[Game] caught by the water sheep",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %q", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestEventLinesRestartOnly(t *testing.T) {
	got := eventLines(game.Snapshot{Events: game.Events{
		Fired:     []game.Action{game.ActionRestart},
		Restarted: true,
	}})
	if len(got) != 1 || got[0] != "[Game] restarted" {
		t.Errorf("unexpected lines %q", got)
	}
}

func TestDescribe(t *testing.T) {
	var sl StatusLine
	describe(&sl, game.Snapshot{HoldingTorch: true, TorchLit: true}, 60)
	s := sl.String()
	for _, part := range []string{"playing", "FPS 60", "torch ON", "torch held", "atten 0"} {
		if !strings.Contains(s, part) {
			t.Errorf("expected %q in %q", part, s)
		}
	}
	if strings.Contains(s, "wolf held") {
		t.Errorf("unexpected wolf in %q", s)
	}
}
