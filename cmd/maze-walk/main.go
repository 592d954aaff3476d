package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze-walk/audio"
	"github.com/lixenwraith/maze-walk/config"
	"github.com/lixenwraith/maze-walk/engine"
	"github.com/lixenwraith/maze-walk/render"
)

func main() {
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "maze-walk: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	mesh, err := cfg.LoadWallMesh()
	if err != nil {
		fmt.Fprintf(os.Stderr, "maze-walk: wall mesh: %v\n", err)
		os.Exit(1)
	}

	sound := audio.NewSoundManager(cfg.Audio.Volume)
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			log.Printf("[AUDIO] initialization failed: %v (continuing without audio)", err)
		}
	} else {
		sound.SetMuted(true)
	}
	defer sound.Cleanup()

	clock := engine.NewTimeProvider()
	session, err := engine.Load(cfg, clock, engine.Options{
		OnGoal: sound.PlayGoal,
		OnBump: sound.PlayBump,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "maze-walk: %v\n", err)
		os.Exit(1)
	}

	caster := render.NewRaycaster(session.World().Grid)
	lo, hi := mesh.Bounds()
	caster.SetWallSpan(lo.Y(), hi.Y())

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "maze-walk: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "maze-walk: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mMAZE-WALK CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.HideCursor()
	screen.Clear()

	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	log.Printf("[MAIN] level %dx%d, %d grass blades", session.World().Grid.Width(), session.World().Grid.Height(), len(session.World().Grass))
	newApp(screen, session, sound, caster, clock).run(events)
}
