// Package config loads the demo settings from YAML and keeps them fresh
// while the game runs.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"escape-demo/core"
	"escape-demo/game"
)

// SupportedVersions is the range of config schema versions this build reads.
const SupportedVersions = "^1.0"

type Config struct {
	Version string            `yaml:"version"`
	Window  Window            `yaml:"window"`
	Assets  string            `yaml:"assets"`
	Export  string            `yaml:"export_dir"`
	Keys    map[string]string `yaml:"keys"`
	Mouse   Mouse             `yaml:"mouse"`
	Audio   Audio             `yaml:"audio"`
	Log     Log               `yaml:"log"`
}

type Window struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	VSync      bool   `yaml:"vsync"`
	Fullscreen bool   `yaml:"fullscreen"`
}

type Mouse struct {
	Sensitivity float32 `yaml:"sensitivity"`
}

type Audio struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0..1
}

type Log struct {
	Quiet       bool `yaml:"quiet"`
	StatusEvery int  `yaml:"status_every"` // frames between status lines
}

// DefaultKeys binds every action to the stock keyboard layout.
func DefaultKeys() map[string]string {
	return map[string]string{
		game.ActionForward.String():         "W",
		game.ActionBackward.String():        "S",
		game.ActionLeft.String():            "A",
		game.ActionRight.String():           "D",
		game.ActionJump.String():            "SPACE",
		game.ActionSprint.String():          "LEFT_SHIFT",
		game.ActionTorchLight.String():      "T",
		game.ActionPickWolf.String():        "E",
		game.ActionPickTorch.String():       "F",
		game.ActionLightMode.String():       "O",
		game.ActionProjection.String():      "P",
		game.ActionAxes.String():            "C",
		game.ActionRestart.String():         "R",
		game.ActionAttenuationUp.String():   "L",
		game.ActionAttenuationDown.String(): "K",
		game.ActionExport.String():          "F5",
		game.ActionQuit.String():            "ESCAPE",
	}
}

func Default() Config {
	return Config{
		Version: "1.0.0",
		Window: Window{
			Width:  800,
			Height: 800,
			Title:  "Escape the Water Sheep",
			VSync:  true,
		},
		Assets: "resources/textures",
		Export: ".",
		Keys:   DefaultKeys(),
		Mouse:  Mouse{Sensitivity: 0.1},
		Audio:  Audio{Enabled: true, Volume: 0.5},
		Log:    Log{StatusEvery: 60},
	}
}

// Load reads path over the defaults. A missing file is not an error: the
// defaults are returned as they are.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result. Keys
// listed in the document replace the default binding for that action only.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	keys := cfg.Keys
	cfg.Keys = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	for action, key := range cfg.Keys {
		keys[action] = key
	}
	cfg.Keys = keys

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	constraint, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return fmt.Errorf("version constraint: %w", err)
	}
	v, err := semver.NewVersion(c.Version)
	if err != nil {
		return fmt.Errorf("version %q: %w", c.Version, err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("version %s not in supported range %s", v, SupportedVersions)
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Mouse.Sensitivity <= 0 {
		return fmt.Errorf("mouse sensitivity %v must be positive", c.Mouse.Sensitivity)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio volume %v outside [0, 1]", c.Audio.Volume)
	}
	if c.Log.StatusEvery < 0 {
		return fmt.Errorf("log status_every %d must not be negative", c.Log.StatusEvery)
	}
	if _, err := c.Bindings(); err != nil {
		return err
	}
	return nil
}

// Bindings resolves the key table into key codes per action.
func (c Config) Bindings() (map[game.Action]int, error) {
	names := make([]string, 0, len(c.Keys))
	for name := range c.Keys {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[game.Action]int, len(names))
	for _, name := range names {
		action, ok := game.ParseAction(name)
		if !ok {
			return nil, fmt.Errorf("keys: unknown action %q", name)
		}
		key, ok := core.KeyByName(c.Keys[name])
		if !ok {
			return nil, fmt.Errorf("keys: %s: unknown key %q", name, c.Keys[name])
		}
		out[action] = key
	}
	for _, a := range game.Actions() {
		if _, ok := out[a]; !ok {
			return nil, fmt.Errorf("keys: no binding for %s", a)
		}
	}
	return out, nil
}
