package world

import (
	"escape-demo/game"
	"escape-demo/math"
	"escape-demo/scene"
)

// Items lists every cube to draw for one frame.
func Items(s game.Snapshot) []scene.Item {
	items := make([]scene.Item, 0, 48)
	for _, r := range Props {
		items = r.Build(items, math.Vec3Zero, 0, Pose{})
	}
	if s.ShowAxes {
		items = Axes.Build(items, math.Vec3Zero, 0, Pose{})
	}

	pose := Pose{Tail: s.TailAngle, LegsA: s.LegsA, LegsB: s.LegsB}
	items = Wolf.Build(items, s.Wolf.Position, s.Wolf.Facing, pose)
	items = Sheep.Build(items, s.Sheep.Position, s.Sheep.Facing, pose)
	items = Torch.Build(items, s.Torch.Position, s.Torch.Facing, pose)
	return items
}
