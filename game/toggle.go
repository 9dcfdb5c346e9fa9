package game

import "fmt"

// Poll is the debounce step for one key and one frame. The countdown drains
// first, so a key held down fires on frames 0, period, 2*period, ...
// allowed carries any extra precondition such as proximity.
func Poll(held, allowed bool, remaining, period int) (fired bool, next int) {
	if remaining < 0 {
		panic(fmt.Sprintf("game: negative cooldown %d", remaining))
	}
	if remaining > 0 {
		remaining--
	}
	if held && allowed && remaining == 0 {
		return true, period
	}
	return false, remaining
}

// Cooldown debounces an action that has no on/off value of its own
// (restart, attenuation up/down).
type Cooldown struct {
	Remaining int
	Period    int
}

func NewCooldown() Cooldown {
	return Cooldown{Period: CooldownFrames}
}

// Trigger must run every frame, held or not, so the countdown keeps draining.
func (c *Cooldown) Trigger(held, allowed bool) bool {
	fired, next := Poll(held, allowed, c.Remaining, c.Period)
	c.Remaining = next
	return fired
}

// Toggle is an edge-triggered on/off mode. A gated toggle only fires when
// the caller reports the player is near enough.
type Toggle struct {
	Name  string
	On    bool
	Gated bool
	Cooldown
}

func NewToggle(name string, on, gated bool) Toggle {
	return Toggle{Name: name, On: on, Gated: gated, Cooldown: NewCooldown()}
}

// Poll flips the toggle when it fires and reports whether it did.
func (t *Toggle) Poll(held, near bool) bool {
	if !t.Trigger(held, !t.Gated || near) {
		return false
	}
	t.On = !t.On
	return true
}
