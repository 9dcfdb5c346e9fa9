package game

import "escape-demo/math"

type Outcome int

const (
	Playing Outcome = iota
	Lost
	Won
)

func (o Outcome) String() string {
	switch o {
	case Playing:
		return "playing"
	case Lost:
		return "lost"
	case Won:
		return "won"
	}
	return "unknown"
}

// Terminal reports whether the round is over.
func (o Outcome) Terminal() bool {
	return o != Playing
}

// Evaluate derives this frame's outcome. Once Lost or Won it never changes;
// only Reset starts a new round. The portal is checked before the sheep, so
// reaching both on the same frame counts as a win.
func Evaluate(current Outcome, player, sheep math.Vec3, holdingWolf bool) Outcome {
	if current.Terminal() {
		return current
	}
	if holdingWolf && InRange(player, PortalPos) {
		return Won
	}
	if InRange(player, sheep) {
		return Lost
	}
	return Playing
}
