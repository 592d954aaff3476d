package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze-walk/audio"
	"github.com/lixenwraith/maze-walk/engine"
	"github.com/lixenwraith/maze-walk/input"
	"github.com/lixenwraith/maze-walk/parameter"
	"github.com/lixenwraith/maze-walk/render"
)

// app binds a session to a tcell screen
type app struct {
	screen  tcell.Screen
	session *engine.Session
	sound   *audio.SoundManager
	caster  *render.Raycaster
	view    *render.View
	hold    *input.HoldTracker
	clock   engine.Clock
}

func newApp(screen tcell.Screen, session *engine.Session, sound *audio.SoundManager, caster *render.Raycaster, clock engine.Clock) *app {
	return &app{
		screen:  screen,
		session: session,
		sound:   sound,
		caster:  caster,
		view:    render.NewView(1, 1),
		hold:    input.NewHoldTracker(parameter.KeyHoldInitial, parameter.KeyHoldRepeat),
		clock:   clock,
	}
}

// handleKey routes a key event and reports whether the app should quit
func (a *app) handleKey(ev *tcell.EventKey) bool {
	name := input.TerminalKeyName(ev)
	if name == "" {
		return false
	}
	b, ok := a.session.Binding(name)
	if !ok {
		return false
	}

	switch b.Kind {
	case input.BindAction:
		if a.hold.Press(b.Action, a.clock.Now()) {
			a.session.Press(b.Action)
		}
	case input.BindIntent:
		switch b.Intent {
		case input.IntentQuit:
			return true
		case input.IntentToggleMute:
			a.sound.ToggleMute()
		case input.IntentRestart:
			a.hold.Reset()
			a.session.Trigger(b.Intent)
		default:
			a.session.Trigger(b.Intent)
		}
	}
	return false
}

// releaseExpired lets go of keys whose autorepeat stopped
func (a *app) releaseExpired() {
	for _, act := range a.hold.Expire(a.clock.Now()) {
		a.session.Release(act)
	}
}

// step advances the session and redraws
func (a *app) step() {
	a.releaseExpired()
	f, _ := a.session.Update()
	a.draw(f)
}

func (a *app) draw(f engine.Frame) {
	w, h := a.screen.Size()
	rows := h - parameter.HUDRows
	if w < 1 || rows < 1 {
		return
	}

	a.screen.Clear()
	a.view.Resize(w, 2*rows)
	a.caster.Render(a.view, f, float32(w)/float32(2*rows))
	render.DrawView(a.screen, a.view, 0, parameter.HUDRows)

	hud := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	if f.Won {
		hud = hud.Foreground(tcell.ColorGreen).Bold(true)
	}
	x := render.DrawText(a.screen, 0, 0, hud, render.StatusLine(f, a.sound.Muted()))
	for ; x < w; x++ {
		a.screen.SetContent(x, 0, ' ', nil, hud)
	}

	if f.ShowMap {
		lines := render.Minimap(a.session.World().Grid, a.session.Explored, f.Cell, f.Direction, parameter.MinimapMaxCells)
		mapStyle := tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack)
		for i, line := range lines {
			y := parameter.HUDRows + 1 + i
			if y >= h {
				break
			}
			render.DrawText(a.screen, 1, y, mapStyle, line)
		}
	}

	a.screen.Show()
}

// run drives the frame loop until a quit key or channel close
func (a *app) run(events <-chan tcell.Event) {
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	a.step()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if a.handleKey(ev) {
					return
				}
			case *tcell.EventResize:
				a.screen.Sync()
			}
		case <-ticker.C:
			a.step()
		}
	}
}
