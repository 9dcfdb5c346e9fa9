package game

import "escape-demo/math"

// Action is a logical key, bound to a physical key by the config package.
type Action int

const (
	ActionForward Action = iota
	ActionBackward
	ActionLeft
	ActionRight
	ActionJump
	ActionSprint
	ActionTorchLight
	ActionPickWolf
	ActionPickTorch
	ActionLightMode
	ActionProjection
	ActionAxes
	ActionRestart
	ActionAttenuationUp
	ActionAttenuationDown
	ActionExport
	ActionQuit
	actionCount
)

var actionNames = [actionCount]string{
	ActionForward:         "forward",
	ActionBackward:        "backward",
	ActionLeft:            "left",
	ActionRight:           "right",
	ActionJump:            "jump",
	ActionSprint:          "sprint",
	ActionTorchLight:      "torch_light",
	ActionPickWolf:        "pick_wolf",
	ActionPickTorch:       "pick_torch",
	ActionLightMode:       "light_mode",
	ActionProjection:      "projection",
	ActionAxes:            "axes",
	ActionRestart:         "restart",
	ActionAttenuationUp:   "attenuation_up",
	ActionAttenuationDown: "attenuation_down",
	ActionExport:          "export",
	ActionQuit:            "quit",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Actions lists every action in declaration order.
func Actions() []Action {
	out := make([]Action, actionCount)
	for i := range out {
		out[i] = Action(i)
	}
	return out
}

// ParseAction maps a config name back to its Action.
func ParseAction(name string) (Action, bool) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), true
		}
	}
	return 0, false
}

// Input is the set of actions held down during one frame.
type Input map[Action]bool

// Direction is a movement command forwarded to the player.
type Direction int

const (
	MoveForward Direction = iota
	MoveBackward
	MoveLeft
	MoveRight
	MoveJump
)

var moveBindings = [...]struct {
	action Action
	dir    Direction
}{
	{ActionForward, MoveForward},
	{ActionBackward, MoveBackward},
	{ActionLeft, MoveLeft},
	{ActionRight, MoveRight},
}

// Player is the camera the game reads from and steers.
type Player interface {
	Position() math.Vec3
	Forward() math.Vec3
	// Airborne reports an ongoing jump or fall.
	Airborne() bool
	SetSprinting(on bool)
	Move(dir Direction, dt float32)
}
