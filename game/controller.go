// Package game holds the per-frame rules of the escape demo: debounced mode
// toggles, proximity gates, carried objects, the chasing sheep, limb
// animation and the win/lose outcome. It knows nothing about rendering.
package game

import "escape-demo/math"

// Controller owns the game state and advances it once per frame.
type Controller struct {
	state  State
	clock  Clock
	export Cooldown
}

func NewController() *Controller {
	return &Controller{state: NewState(), export: NewCooldown()}
}

// State returns a copy of the committed state.
func (c *Controller) State() State {
	return c.state
}

// Tick runs one frame. now is the wall clock in seconds. The new state is
// built on a copy and committed at the end, so callers only ever observe
// whole frames.
func (c *Controller) Tick(now float64, in Input, p Player) Snapshot {
	dt := c.clock.Tick(now)
	next := c.state
	next.Frame++
	var ev Events

	if next.Outcome != Lost {
		steer(p, in, dt)
	}
	pos := p.Position()
	fwd := p.Forward()
	near := proximityOf(pos, &next)

	if c.export.Trigger(in[ActionExport], true) {
		ev.Fired = append(ev.Fired, ActionExport)
	}

	if next.Restart.Trigger(in[ActionRestart], true) {
		next.Reset()
		ev.Fired = append(ev.Fired, ActionRestart)
		ev.Restarted = true
		ev.Outcome = c.state.Outcome != next.Outcome
		c.state = next
		return newSnapshot(&c.state, pos, dt, ev)
	}

	for _, b := range next.toggles(near) {
		if b.toggle.Poll(in[b.action], b.near) {
			ev.Fired = append(ev.Fired, b.action)
		}
	}

	up, down := in[ActionAttenuationUp], in[ActionAttenuationDown]
	if next.Attenuation.Trigger(up || down, true) {
		if up && !down {
			next.nudgeAttenuation(1)
			ev.Fired = append(ev.Fired, ActionAttenuationUp)
		} else if down && !up {
			next.nudgeAttenuation(-1)
			ev.Fired = append(ev.Fired, ActionAttenuationDown)
		}
	}

	facing, aimed := math.SignedYawAngle(math.Vec3Front, fwd)
	if next.HoldWolf.On {
		next.Wolf.Position = pos.Add(fwd).WithY(WolfCarryHeight)
		if aimed {
			next.Wolf.Facing = facing
		}
	}
	if next.HoldTorch.On {
		next.Torch.Position = pos.Add(fwd)
		if aimed {
			next.Torch.Facing = facing
		}
	}

	next.Tail = next.Tail.Advance()
	if next.Pursuing() {
		next.LegsA = next.LegsA.Advance()
		next.LegsB = next.LegsB.Advance()
		next.Sheep = next.Sheep.Pursue(pos, dt)
	}

	next.Outcome = Evaluate(next.Outcome, pos, next.Sheep.Position, next.HoldWolf.On)
	ev.Outcome = next.Outcome != c.state.Outcome

	c.state = next
	return newSnapshot(&c.state, pos, dt, ev)
}

// steer forwards held movement keys to the player. Jumping is only passed
// on while the player stands on the ground.
func steer(p Player, in Input, dt float32) {
	p.SetSprinting(in[ActionSprint])
	for _, b := range moveBindings {
		if in[b.action] {
			p.Move(b.dir, dt)
		}
	}
	if in[ActionJump] && !p.Airborne() {
		p.Move(MoveJump, dt)
	}
}
