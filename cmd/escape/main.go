package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"escape-demo/audio"
	"escape-demo/config"
	"escape-demo/core"
	"escape-demo/game"
	"escape-demo/opengl"
	"escape-demo/scene"
	"escape-demo/world"
)

func main() {
	configPath := flag.String("config", "escape.yaml", "path to the YAML settings file")
	quiet := flag.Bool("quiet", false, "suppress event and status logging")
	flag.Parse()

	log.SetFlags(log.Ltime)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[Config] %v", err)
	}
	if *quiet {
		cfg.Log.Quiet = true
	}
	if err := run(cfg, *configPath); err != nil {
		log.Printf("[Main] %v", err)
		os.Exit(1)
	}
}

// session is the mutable part of the config that follows file edits.
type session struct {
	bindings map[game.Action]int
	quiet    bool
	every    int
}

func (s *session) apply(cfg config.Config, camera *scene.FPSCamera, sound *audio.Player) error {
	bindings, err := cfg.Bindings()
	if err != nil {
		return err
	}
	s.bindings = bindings
	s.quiet = cfg.Log.Quiet
	s.every = cfg.Log.StatusEvery
	camera.Sensitivity = cfg.Mouse.Sensitivity
	if cfg.Audio.Enabled {
		sound.SetVolume(cfg.Audio.Volume)
	} else {
		sound.SetVolume(0)
	}
	return nil
}

func (s *session) poll(window *core.Window) game.Input {
	in := make(game.Input, len(s.bindings))
	for action, key := range s.bindings {
		in[action] = window.IsKeyPressed(key)
	}
	return in
}

func run(cfg config.Config, configPath string) error {
	window, err := core.NewWindow(core.WindowConfig{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Title:      cfg.Window.Title,
		Resizable:  true,
		VSync:      cfg.Window.VSync,
		Fullscreen: cfg.Window.Fullscreen,
	})
	if err != nil {
		return err
	}
	defer window.Destroy()

	renderer, err := opengl.NewRenderer()
	if err != nil {
		return err
	}
	width, height := window.GetFramebufferSize()
	renderer.SetViewport(width, height)
	window.SetResizeCallback(renderer.SetViewport)

	lib, errs := scene.LoadLibrary(cfg.Assets, world.Materials)
	for _, err := range errs {
		log.Printf("[Texture] %v (using fallback colour)", err)
	}
	renderer.UploadLibrary(lib)
	defer renderer.Destroy(lib)

	camera := scene.NewFPSCamera(scene.StartPosition)
	window.SetCursorCallback(camera.Look)

	sound := audio.NewPlayer(cfg.Audio.Enabled, cfg.Audio.Volume)
	defer sound.Close()

	var sess session
	if err := sess.apply(cfg, camera, sound); err != nil {
		return err
	}

	var updates <-chan config.Config
	var watchErrs <-chan error
	if watcher, err := config.Watch(configPath); err != nil {
		log.Printf("[Config] not watching %s: %v", configPath, err)
	} else {
		defer watcher.Close()
		updates, watchErrs = watcher.Updates, watcher.Errors
	}

	controller := game.NewController()
	sky := NewSky()
	var status StatusLine

	printControls(cfg)

	frames, fps := 0, 0
	lastSecond := time.Now()

	for !window.ShouldClose() {
		window.PollEvents()

		select {
		case next := <-updates:
			if err := sess.apply(next, camera, sound); err != nil {
				log.Printf("[Config] %v", err)
			} else {
				log.Printf("[Config] reloaded %s", configPath)
			}
		case err := <-watchErrs:
			log.Printf("[Config] %v (keeping previous settings)", err)
		default:
		}

		in := sess.poll(window)
		snap := controller.Tick(window.Time(), in, camera)
		camera.Update(snap.Delta)

		if snap.Events.Restarted {
			camera.Reset()
			window.ResetMouse()
		}
		if snap.Outcome == game.Lost {
			camera.LookAtSky()
		}

		if !sess.quiet {
			for _, line := range eventLines(snap) {
				log.Print(line)
			}
		}
		sound.Play(audio.CuesFor(snap)...)

		items := world.Items(snap)
		if snap.Events.Has(game.ActionExport) {
			exportFrame(cfg.Export, snap.Frame, items, lib)
		}
		if in[game.ActionQuit] {
			window.SetShouldClose()
		}

		fbw, fbh := window.GetFramebufferSize()
		aspect := float32(1)
		if fbh > 0 {
			aspect = float32(fbw) / float32(fbh)
		}
		renderer.Draw(opengl.Frame{
			View:       camera.ViewMatrix(),
			Projection: camera.Projection(aspect, snap.Orthographic),
			ViewPos:    camera.Position(),
			Light:      snap.Lighting(),
			Sky:        sky.Update(snap),
		}, items, lib)
		window.SwapBuffers()

		frames++
		if now := time.Now(); now.Sub(lastSecond) >= time.Second {
			fps = frames
			frames = 0
			lastSecond = now
			describe(&status, snap, fps)
			drawn, culled := renderer.DrawStats()
			status.Add("cubes %d/%d", drawn, drawn+culled)
			window.SetTitle(cfg.Window.Title + " | " + status.String())
		}
		if !sess.quiet && sess.every > 0 && snap.Frame%uint64(sess.every) == 0 {
			describe(&status, snap, fps)
			log.Printf("[Frame %d] %s", snap.Frame, status.String())
		}
	}

	log.Println("[Main] exiting")
	return nil
}

func exportFrame(dir string, frame uint64, items []scene.Item, lib scene.Library) {
	path := filepath.Join(dir, fmt.Sprintf("escape-%06d.glb", frame))
	if err := scene.ExportGLB(path, items, lib); err != nil {
		log.Printf("[Export] %v", err)
		return
	}
	log.Printf("[Export] wrote %s (%d cubes)", path, len(items))
}

func printControls(cfg config.Config) {
	fmt.Println("===========================================")
	fmt.Println("  " + cfg.Window.Title)
	fmt.Println("===========================================")
	fmt.Println("Reach the portal before the water sheep reaches you.")
	fmt.Println("Picking up the wolf makes the sheep give chase.")
	fmt.Println("")
	for _, a := range game.Actions() {
		fmt.Printf("  %-18s %s\n", a, cfg.Keys[a.String()])
	}
	fmt.Println("")
	fmt.Println("  mouse              look around")
	fmt.Println("===========================================")
}
