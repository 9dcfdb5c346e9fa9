package game

import "escape-demo/math"

// InRange reports whether two points are within InteractRadius.
func InRange(a, b math.Vec3) bool {
	return a.Distance(b) <= InteractRadius
}

// Proximity holds the gates recomputed at the start of every frame.
type Proximity struct {
	Light bool // torch light switch
	Wolf  bool // wolf pickup
	Torch bool // torch pickup
}

func proximityOf(player math.Vec3, s *State) Proximity {
	return Proximity{
		Light: InRange(player, s.Torch.Position),
		Wolf:  InRange(player, s.Wolf.Position),
		Torch: InRange(player, s.Torch.Position),
	}
}
