package main

import (
	"fmt"
	"strings"

	"escape-demo/game"
)

// StatusLine collects fields for the title bar and the periodic console log.
type StatusLine struct {
	parts []string
}

func (sl *StatusLine) Add(format string, args ...interface{}) {
	sl.parts = append(sl.parts, fmt.Sprintf(format, args...))
}

func (sl *StatusLine) Clear() {
	sl.parts = sl.parts[:0]
}

func (sl *StatusLine) String() string {
	return strings.Join(sl.parts, " | ")
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}

// describe fills sl with the headline state of one frame.
func describe(sl *StatusLine, s game.Snapshot, fps int) {
	sl.Clear()
	sl.Add("%s", s.Outcome)
	sl.Add("FPS %d", fps)
	sl.Add("pos (%.2f, %.2f, %.2f)", s.Player.X, s.Player.Y, s.Player.Z)
	sl.Add("sheep (%.2f, %.2f)", s.Sheep.Position.X, s.Sheep.Position.Z)
	sl.Add("torch %s", onOff(s.TorchLit))
	if s.HoldingWolf {
		sl.Add("wolf held")
	}
	if s.HoldingTorch {
		sl.Add("torch held")
	}
	sl.Add("atten %d", s.AttenIndex)
}

// eventLines renders the log lines for toggles and outcome changes.
func eventLines(s game.Snapshot) []string {
	var out []string
	if s.Events.Restarted {
		return append(out, "[Game] restarted")
	}
	for _, a := range s.Events.Fired {
		switch a {
		case game.ActionTorchLight:
			out = append(out, "[Torch] "+onOff(s.TorchLit))
		case game.ActionPickWolf:
			out = append(out, "[Wolf] "+map[bool]string{true: "picked up", false: "dropped"}[s.HoldingWolf])
		case game.ActionPickTorch:
			out = append(out, "[Torch] "+map[bool]string{true: "picked up", false: "dropped"}[s.HoldingTorch])
		case game.ActionLightMode:
			out = append(out, "[Light] "+map[bool]string{true: "full bright", false: "dim"}[s.FullBright])
		case game.ActionProjection:
			out = append(out, "[View] "+map[bool]string{true: "orthographic", false: "perspective"}[s.Orthographic])
		case game.ActionAxes:
			out = append(out, "[Axes] "+onOff(s.ShowAxes))
		case game.ActionAttenuationUp, game.ActionAttenuationDown:
			lin, quad := game.Falloff(s.AttenIndex)
			out = append(out, fmt.Sprintf("[Light] attenuation %d linear %g quadratic %g", s.AttenIndex, lin, quad))
		}
	}
	if s.Events.Outcome {
		switch s.Outcome {
		case game.Won:
			out = append(out, "[Game] escaped through the portal")
		case game.Lost:
			out = append(out, "[Game] caught by the water sheep")
		}
	}
	return out
}
