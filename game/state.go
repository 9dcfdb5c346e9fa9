package game

import (
	"fmt"
	"strings"

	"escape-demo/math"
)

// Prop is a carriable object: where it stands and which way it faces.
type Prop struct {
	Position math.Vec3
	Facing   float32 // radians about +Y
}

// State is every piece of mutable game data. It holds no pointers or
// slices, so a plain assignment copies it completely.
type State struct {
	TorchLit   Toggle
	HoldWolf   Toggle
	HoldTorch  Toggle
	FullBright Toggle
	Ortho      Toggle
	Axes       Toggle

	Restart     Cooldown
	Attenuation Cooldown
	AttenIndex  int

	Tail  Oscillator
	LegsA Oscillator // front-left and back-right
	LegsB Oscillator // front-right and back-left

	Torch Prop
	Wolf  Prop
	Sheep Chaser

	Outcome Outcome
	Frame   uint64
}

func NewState() State {
	return defaultState()
}

func defaultState() State {
	return State{
		TorchLit:   NewToggle("lit", true, true),
		HoldWolf:   NewToggle("wolf", false, true),
		HoldTorch:  NewToggle("torch", false, true),
		FullBright: NewToggle("bright", false, false),
		Ortho:      NewToggle("ortho", false, false),
		Axes:       NewToggle("axes", false, false),

		Restart:     NewCooldown(),
		Attenuation: NewCooldown(),
		AttenIndex:  MinAttenuation,

		Tail:  NewSwing(1),
		LegsA: NewSwing(1),
		LegsB: NewSwing(-1),

		Torch: Prop{Position: DefaultTorchPos},
		Wolf:  Prop{Position: DefaultWolfPos},
		Sheep: Chaser{Position: DefaultSheepPos, Speed: SheepSpeed},

		Outcome: Playing,
	}
}

// Reset starts a new round. The frame counter keeps running and the restart
// key stays locked for one cooldown so a held R does not reset twice.
func (s *State) Reset() {
	frame := s.Frame
	*s = defaultState()
	s.Frame = frame
	s.Restart.Remaining = s.Restart.Period
}

// Pursuing reports whether the sheep is chasing this frame.
func (s *State) Pursuing() bool {
	return s.HoldWolf.On && s.Outcome == Playing
}

// toggles lists the mode toggles with the action that drives each and its
// proximity gate, in the order they are polled.
func (s *State) toggles(near Proximity) []boundToggle {
	return []boundToggle{
		{ActionTorchLight, &s.TorchLit, near.Light},
		{ActionPickWolf, &s.HoldWolf, near.Wolf},
		{ActionPickTorch, &s.HoldTorch, near.Torch},
		{ActionLightMode, &s.FullBright, false},
		{ActionProjection, &s.Ortho, false},
		{ActionAxes, &s.Axes, false},
	}
}

type boundToggle struct {
	action Action
	toggle *Toggle
	near   bool
}

// nudgeAttenuation moves the attenuation index by delta, clamped.
func (s *State) nudgeAttenuation(delta int) {
	s.AttenIndex += delta
	if s.AttenIndex < MinAttenuation {
		s.AttenIndex = MinAttenuation
	} else if s.AttenIndex > MaxAttenuation {
		s.AttenIndex = MaxAttenuation
	}
}

func (s *State) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "frame=%d outcome=%s", s.Frame, s.Outcome)
	for _, t := range []*Toggle{&s.TorchLit, &s.HoldWolf, &s.HoldTorch, &s.FullBright, &s.Ortho, &s.Axes} {
		fmt.Fprintf(&b, " %s=%v", t.Name, t.On)
	}
	fmt.Fprintf(&b, " atten=%d sheep=(%.2f, %.2f, %.2f)", s.AttenIndex,
		s.Sheep.Position.X, s.Sheep.Position.Y, s.Sheep.Position.Z)
	return b.String()
}
