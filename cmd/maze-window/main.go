//go:build cgo

// Command maze-window walks a maze in a desktop window
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/maze-walk/audio"
	"github.com/lixenwraith/maze-walk/config"
	"github.com/lixenwraith/maze-walk/engine"
	"github.com/lixenwraith/maze-walk/input"
	"github.com/lixenwraith/maze-walk/parameter"
	"github.com/lixenwraith/maze-walk/render"
)

// Named keys the window forwards; letters are added in init
var windowKeys = map[ebiten.Key]string{
	ebiten.KeyArrowUp:    "up",
	ebiten.KeyArrowDown:  "down",
	ebiten.KeyArrowLeft:  "left",
	ebiten.KeyArrowRight: "right",
	ebiten.KeyEscape:     "esc",
	ebiten.KeyTab:        "tab",
	ebiten.KeySpace:      "space",
	ebiten.KeyEnter:      "enter",
}

func init() {
	letters := []ebiten.Key{
		ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE, ebiten.KeyF, ebiten.KeyG,
		ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL, ebiten.KeyM, ebiten.KeyN,
		ebiten.KeyO, ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR, ebiten.KeyS, ebiten.KeyT, ebiten.KeyU,
		ebiten.KeyV, ebiten.KeyW, ebiten.KeyX, ebiten.KeyY, ebiten.KeyZ,
	}
	for i, k := range letters {
		windowKeys[k] = string(rune('a' + i))
	}
}

type windowGame struct {
	session *engine.Session
	sound   *audio.SoundManager
	caster  *render.Raycaster
	view    *render.View
	img     *image.RGBA
	viewImg *ebiten.Image
	frame   engine.Frame
	keys    *input.KeyNames[ebiten.Key]
}

// viewScale is the window pixel size of one raycast sample
const viewScale = parameter.WindowWidth / parameter.WindowColumns

func (g *windowGame) Update() error {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)

	for key, name := range windowKeys {
		if inpututil.IsKeyJustPressed(key) {
			down := name
			if ctrl && len(name) == 1 {
				down = "ctrl+" + name
			}
			switch g.session.KeyDown(g.keys.Press(key, down)) {
			case input.IntentQuit:
				return ebiten.Termination
			case input.IntentToggleMute:
				g.sound.ToggleMute()
			}
		}
		if inpututil.IsKeyJustReleased(key) {
			if down, ok := g.keys.Release(key); ok {
				g.session.KeyUp(down)
			}
		}
	}

	g.frame, _ = g.session.Update()
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	g.caster.Render(g.view, g.frame, float32(g.view.Width)/float32(g.view.Height))
	g.img = render.Paint(g.img, g.view)
	if g.viewImg == nil {
		g.viewImg = ebiten.NewImage(g.view.Width, g.view.Height)
	}
	g.viewImg.WritePixels(g.img.Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(viewScale, viewScale)
	screen.DrawImage(g.viewImg, op)

	ebitenutil.DebugPrintAt(screen, render.StatusLine(g.frame, g.sound.Muted()), 4, 2)
	if g.frame.ShowMap {
		for i, line := range render.Minimap(g.session.World().Grid, g.session.Explored, g.frame.Cell, g.frame.Direction, parameter.MinimapMaxCells) {
			ebitenutil.DebugPrintAt(screen, line, 8, 24+i*16)
		}
	}
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return parameter.WindowWidth, parameter.WindowHeight
}

func main() {
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "maze-window: %v\n", err)
		os.Exit(2)
	}

	// The window leaves stderr free for logs
	if cfg.Debug {
		log.SetOutput(os.Stderr)
		log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	} else {
		log.SetOutput(io.Discard)
	}

	mesh, err := cfg.LoadWallMesh()
	if err != nil {
		fmt.Fprintf(os.Stderr, "maze-window: wall mesh: %v\n", err)
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

	session, err := engine.Load(cfg, engine.NewTimeProvider(), engine.Options{
		OnGoal: sound.PlayGoal,
		OnBump: sound.PlayBump,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "maze-window: %v\n", err)
		os.Exit(1)
	}

	caster := render.NewRaycaster(session.World().Grid)
	lo, hi := mesh.Bounds()
	caster.SetWallSpan(lo.Y(), hi.Y())

	g := &windowGame{
		session: session,
		sound:   sound,
		caster:  caster,
		view:    render.NewView(parameter.WindowColumns, parameter.WindowHeight/viewScale),
		keys:    input.NewKeyNames[ebiten.Key](),
	}
	g.frame, _ = session.Update()

	ebiten.SetWindowTitle("maze-walk")
	ebiten.SetWindowSize(parameter.WindowWidth, parameter.WindowHeight)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fmt.Fprintf(os.Stderr, "maze-window: %v\n", err)
		os.Exit(1)
	}
}
