package game

import "escape-demo/math"

// Interaction and animation tuning. These are fixed for the demo; nothing
// reads them from config.
const (
	InteractRadius = float32(1.6) // shared by every proximity check
	CooldownFrames = 20           // frames between two firings of one key

	SwingMin  = float32(-30) // degrees
	SwingMax  = float32(30)
	SwingStep = float32(2) // degrees per frame

	SheepSpeed      = float32(1.0)
	ChaseSpeedScale = float32(0.1)
	ArriveEpsilon   = float32(1e-4) // planar gap treated as "already there"

	MinAttenuation = 0
	MaxAttenuation = 10

	WolfCarryHeight = float32(0.3)
)

// Default placements, also restored by Reset.
var (
	DefaultTorchPos = math.Vec3{X: 0, Y: 0.735, Z: 0.1}
	DefaultWolfPos  = math.Vec3{X: 2, Y: 0.3, Z: -1}
	DefaultSheepPos = math.Vec3{X: -2, Y: 0.55, Z: -0.65}

	PortalPos = math.Vec3{X: 0, Y: 0, Z: -10}
)
