package game

import "escape-demo/math"

// Events describes what changed during one frame.
type Events struct {
	Fired     []Action // toggles and one-shot actions that fired, in poll order
	Restarted bool
	Outcome   bool // the outcome changed this frame
}

// Snapshot is the read-only view of one committed frame.
type Snapshot struct {
	Frame uint64
	Delta float32

	Player  math.Vec3
	Outcome Outcome

	TorchLit     bool
	HoldingWolf  bool
	HoldingTorch bool
	FullBright   bool
	Orthographic bool
	ShowAxes     bool
	AttenIndex   int

	Torch Prop
	Wolf  Prop
	Sheep Prop

	TailAngle float32 // degrees
	LegsA     float32
	LegsB     float32

	Events Events
}

func newSnapshot(s *State, player math.Vec3, dt float32, ev Events) Snapshot {
	return Snapshot{
		Frame:        s.Frame,
		Delta:        dt,
		Player:       player,
		Outcome:      s.Outcome,
		TorchLit:     s.TorchLit.On,
		HoldingWolf:  s.HoldWolf.On,
		HoldingTorch: s.HoldTorch.On,
		FullBright:   s.FullBright.On,
		Orthographic: s.Ortho.On,
		ShowAxes:     s.Axes.On,
		AttenIndex:   s.AttenIndex,
		Torch:        s.Torch,
		Wolf:         s.Wolf,
		Sheep:        Prop{Position: s.Sheep.Position, Facing: s.Sheep.Facing},
		TailAngle:    s.Tail.Angle,
		LegsA:        s.LegsA.Angle,
		LegsB:        s.LegsB.Angle,
		Events:       ev,
	}
}

// Lighting resolves the light profile selected by this frame's modes.
func (s Snapshot) Lighting() Lighting {
	return resolveLighting(s)
}

// Has reports whether a fired this frame.
func (e Events) Has(a Action) bool {
	for _, f := range e.Fired {
		if f == a {
			return true
		}
	}
	return false
}
