package game

import "escape-demo/math"

// Chaser walks straight at a target across the ground plane.
type Chaser struct {
	Position math.Vec3
	Speed    float32
	Facing   float32 // radians about +Y, 0 = facing +Z
}

// Pursue moves the chaser towards target for dt seconds and turns it to face
// the way it walks. Height is never changed. A chaser already standing on
// the target (planar gap <= ArriveEpsilon) keeps both position and facing.
func (c Chaser) Pursue(target math.Vec3, dt float32) Chaser {
	d := target.Sub(c.Position).Planar()
	gap := d.Length()
	if gap <= ArriveEpsilon {
		return c
	}
	dir := d.Mul(1 / gap)
	if facing, ok := math.SignedYawAngle(math.Vec3Front, dir); ok {
		c.Facing = facing
	}

	step := c.Speed * ChaseSpeedScale * dt
	if step > gap {
		step = gap
	}
	c.Position = c.Position.Add(dir.Mul(step))
	return c
}
