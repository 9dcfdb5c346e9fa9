package core

import (
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	KeySpace      = int(glfw.KeySpace)
	KeyEscape     = int(glfw.KeyEscape)
	KeyEnter      = int(glfw.KeyEnter)
	KeyTab        = int(glfw.KeyTab)
	KeyLeftShift  = int(glfw.KeyLeftShift)
	KeyRightShift = int(glfw.KeyRightShift)
	KeyUp         = int(glfw.KeyUp)
	KeyDown       = int(glfw.KeyDown)
	KeyLeft       = int(glfw.KeyLeft)
	KeyRight      = int(glfw.KeyRight)
	KeyF5         = int(glfw.KeyF5)
	KeyA          = int(glfw.KeyA)
	KeyC          = int(glfw.KeyC)
	KeyD          = int(glfw.KeyD)
	KeyE          = int(glfw.KeyE)
	KeyF          = int(glfw.KeyF)
	KeyK          = int(glfw.KeyK)
	KeyL          = int(glfw.KeyL)
	KeyO          = int(glfw.KeyO)
	KeyP          = int(glfw.KeyP)
	KeyR          = int(glfw.KeyR)
	KeyS          = int(glfw.KeyS)
	KeyT          = int(glfw.KeyT)
	KeyW          = int(glfw.KeyW)
)

var namedKeys = map[string]int{
	"SPACE":       KeySpace,
	"ESCAPE":      KeyEscape,
	"ENTER":       KeyEnter,
	"TAB":         KeyTab,
	"LEFT_SHIFT":  KeyLeftShift,
	"RIGHT_SHIFT": KeyRightShift,
	"UP":          KeyUp,
	"DOWN":        KeyDown,
	"LEFT":        KeyLeft,
	"RIGHT":       KeyRight,
	"F5":          KeyF5,
}

// KeyByName resolves a binding such as "T", "7", "SPACE" or "left_shift"
// to a key code. Letters and digits map directly onto their GLFW codes.
func KeyByName(name string) (int, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if len(name) == 1 {
		c := name[0]
		switch {
		case c >= 'A' && c <= 'Z':
			return int(glfw.KeyA) + int(c-'A'), true
		case c >= '0' && c <= '9':
			return int(glfw.Key0) + int(c-'0'), true
		}
	}
	key, ok := namedKeys[name]
	return key, ok
}
