// Package world describes everything drawn in the demo as tables of cube
// parts and turns a game snapshot into a flat list of scene items.
package world

import (
	"escape-demo/math"
	"escape-demo/scene"
)

// Swing selects which animation angle, if any, tilts a part about X.
type Swing int

const (
	Still Swing = iota
	Tail
	LegsA
	LegsB
)

// Part is one scaled cube of a rig, placed relative to the rig origin.
// Unless Centered is set the cube stands on its offset instead of being
// centred on it, so legs and pillars grow upwards from their anchor.
type Part struct {
	Name     string
	Offset   math.Vec3
	Scale    math.Vec3
	Material string
	Swing    Swing
	Tilt     float32 // fixed pitch in degrees, added to any swing
	Centered bool
}

// Rig is a named set of parts moved and turned as a whole.
type Rig struct {
	Name  string
	Parts []Part
}

// Pose carries the animation angles (degrees) for one frame.
type Pose struct {
	Tail  float32
	LegsA float32
	LegsB float32
}

func (p Pose) angle(s Swing) float32 {
	switch s {
	case Tail:
		return p.Tail
	case LegsA:
		return p.LegsA
	case LegsB:
		return p.LegsB
	}
	return 0
}

var lift = math.Vec3{X: 0, Y: 0.5, Z: 0}

// Build places the rig at origin turned by facing (radians about +Y) and
// appends one item per part to dst.
func (r Rig) Build(dst []scene.Item, origin math.Vec3, facing float32, pose Pose) []scene.Item {
	root := math.Mat4Identity().Translate(origin).RotateY(facing)
	for _, p := range r.Parts {
		m := root.Translate(p.Offset)
		if pitch := p.Tilt + pose.angle(p.Swing); pitch != 0 {
			m = m.RotateX(math.Radians(pitch))
		}
		m = m.ScaleBy(p.Scale)
		if !p.Centered {
			m = m.Translate(lift)
		}
		dst = append(dst, scene.Item{
			Name:     r.Name + "/" + p.Name,
			Model:    m,
			Material: p.Material,
		})
	}
	return dst
}
