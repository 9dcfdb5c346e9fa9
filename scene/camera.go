package scene

import (
	stdmath "math"

	"escape-demo/game"
	"escape-demo/math"
)

// Camera defaults for a player standing on flat ground.
const (
	EyeHeight          = float32(1.0)
	WalkSpeed          = float32(2.5)
	DefaultSensitivity = float32(0.1)
	DefaultFOV         = float32(45)

	jumpSpeed = float32(3.5)
	gravity   = float32(9.8)
	maxPitch  = float32(89)
)

var StartPosition = math.Vec3{X: 0, Y: EyeHeight, Z: 3}

// FPSCamera is a first-person camera that walks on the ground plane and
// can jump. It implements game.Player.
type FPSCamera struct {
	pos         math.Vec3
	Yaw         float32 // degrees, -90 looks down -Z
	Pitch       float32 // degrees
	Sensitivity float32
	FOV         float32 // degrees

	sprinting bool
	airborne  bool
	vy        float32

	front math.Vec3
	right math.Vec3
}

var _ game.Player = (*FPSCamera)(nil)

func NewFPSCamera(pos math.Vec3) *FPSCamera {
	c := &FPSCamera{
		pos:         pos,
		Yaw:         -90,
		Sensitivity: DefaultSensitivity,
		FOV:         DefaultFOV,
	}
	c.updateVectors()
	return c
}

// Reset puts the camera back at the start position looking down -Z.
func (c *FPSCamera) Reset() {
	sens := c.Sensitivity
	*c = *NewFPSCamera(StartPosition)
	c.Sensitivity = sens
}

func (c *FPSCamera) Position() math.Vec3 { return c.pos }
func (c *FPSCamera) Forward() math.Vec3  { return c.front }
func (c *FPSCamera) Airborne() bool      { return c.airborne }

func (c *FPSCamera) SetSprinting(on bool) { c.sprinting = on }

func (c *FPSCamera) speed() float32 {
	if c.sprinting {
		return WalkSpeed * 2
	}
	return WalkSpeed
}

// Move walks along the ground plane; looking up or down never changes height.
func (c *FPSCamera) Move(dir game.Direction, dt float32) {
	step := c.speed() * dt
	ahead := c.front.Planar().Normalize()
	switch dir {
	case game.MoveForward:
		c.pos = c.pos.Add(ahead.Mul(step))
	case game.MoveBackward:
		c.pos = c.pos.Sub(ahead.Mul(step))
	case game.MoveLeft:
		c.pos = c.pos.Sub(c.right.Mul(step))
	case game.MoveRight:
		c.pos = c.pos.Add(c.right.Mul(step))
	case game.MoveJump:
		if !c.airborne {
			c.airborne = true
			c.vy = jumpSpeed
		}
	}
}

// Update integrates an ongoing jump and lands on the floor.
func (c *FPSCamera) Update(dt float32) {
	if !c.airborne {
		c.pos.Y = EyeHeight
		return
	}
	c.vy -= gravity * dt
	c.pos.Y += c.vy * dt
	if c.pos.Y <= EyeHeight {
		c.pos.Y = EyeHeight
		c.vy = 0
		c.airborne = false
	}
}

// Look applies a mouse offset in screen pixels.
func (c *FPSCamera) Look(dx, dy float64) {
	c.Yaw += float32(dx) * c.Sensitivity
	c.Pitch += float32(dy) * c.Sensitivity
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	} else if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
	c.updateVectors()
}

// LookAtSky tilts the view straight up.
func (c *FPSCamera) LookAtSky() {
	c.Pitch = maxPitch
	c.updateVectors()
}

func (c *FPSCamera) ViewMatrix() math.Mat4 {
	return math.Mat4LookAt(c.pos, c.pos.Add(c.front), math.Vec3Up)
}

// Projection returns the perspective projection, or a fixed 4x4 unit
// orthographic box when ortho is set.
func (c *FPSCamera) Projection(aspect float32, ortho bool) math.Mat4 {
	if ortho {
		return math.Mat4Orthographic(-2, 2, -2, 2, -100, 100)
	}
	return math.Mat4Perspective(math.Radians(c.FOV), aspect, 0.1, 300)
}

func (c *FPSCamera) updateVectors() {
	yaw := float64(math.Radians(c.Yaw))
	pitch := float64(math.Radians(c.Pitch))
	front := math.Vec3{
		X: float32(stdmath.Cos(yaw) * stdmath.Cos(pitch)),
		Y: float32(stdmath.Sin(pitch)),
		Z: float32(stdmath.Sin(yaw) * stdmath.Cos(pitch)),
	}
	c.front = front.Normalize()
	c.right = c.front.Cross(math.Vec3Up).Normalize()
}
