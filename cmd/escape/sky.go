package main

import (
	"escape-demo/core"
	"escape-demo/game"
)

// Clear colours per situation. Play happens in a dark room; the win and
// loss tints fade in over a couple of seconds.
var (
	skyDark   = core.Gray(0.1)
	skyBright = core.Color{R: 0.58, G: 0.75, B: 0.95, A: 1}
	skyWon    = core.Color{R: 0.35, G: 0.10, B: 0.55, A: 1}
	skyLost   = core.Color{R: 0.45, G: 0.05, B: 0.05, A: 1}
)

// Sky eases the clear colour toward the palette entry for the current frame.
type Sky struct {
	Color core.Color
	Speed float32 // fraction of the remaining gap closed per second
}

func NewSky() *Sky {
	return &Sky{Color: skyDark, Speed: 1.5}
}

func skyTarget(s game.Snapshot) core.Color {
	switch s.Outcome {
	case game.Won:
		return skyWon
	case game.Lost:
		return skyLost
	}
	if s.FullBright {
		return skyBright
	}
	return skyDark
}

// Update advances the fade by dt seconds. A restart snaps straight back.
func (sk *Sky) Update(s game.Snapshot) core.Color {
	target := skyTarget(s)
	if s.Events.Restarted {
		sk.Color = target
		return sk.Color
	}
	t := sk.Speed * s.Delta
	if t >= 1 {
		sk.Color = target
		return sk.Color
	}
	sk.Color = lerpColor(sk.Color, target, t)
	return sk.Color
}

// lerpColor linearly interpolates between two colours.
func lerpColor(a, b core.Color, t float32) core.Color {
	return core.Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: 1,
	}
}
