// Package engine runs one maze session: it owns the world and the navigation
// controller, routes key names through the keymap and produces a Frame per
// update for whichever renderer is attached.
package engine

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/maze-walk/input"
	"github.com/lixenwraith/maze-walk/maze"
	"github.com/lixenwraith/maze-walk/navigation"
	"github.com/lixenwraith/maze-walk/parameter"
	"github.com/lixenwraith/maze-walk/physics"
	"github.com/lixenwraith/maze-walk/world"
)

// Options configure a session. A zero Seed, Keymap or Navigation falls back
// to its default.
type Options struct {
	GrassDensity int
	Seed         int64
	Keymap       input.Keymap
	Navigation   navigation.Settings

	// OnGoal runs once each time the player first reaches the goal
	OnGoal func()
	// OnBump runs when the player walks into a wall it was not already touching
	OnBump func()
}

// Frame is the read-only snapshot a renderer draws from
type Frame struct {
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	Up        mgl32.Vec3
	Light     mgl32.Vec3
	Goal      mgl32.Vec3

	Grass []mgl32.Vec3
	Walls []mgl32.Mat4

	Cell        maze.Point
	ReachedGoal bool
	Bumped      bool
	Won         bool
	Elapsed     time.Duration
	Ticks       int
	Explored    int
	ShowMap     bool
}

// Session is single-threaded; frontends deliver input from their own loop
type Session struct {
	clock  Clock
	opts   Options
	world  *world.World
	nav    *navigation.Controller
	keymap input.Keymap

	explored  mapset.Set[maze.Point]
	startedAt time.Time
	wonAt     time.Time
	won       bool
	reached   bool
	touching  bool
	bumped    bool
	ticks     int
	showMap   bool
}

// NewSession places a player on the start cell of g
func NewSession(g *maze.Grid, clock Clock, opts Options) (*Session, error) {
	if g == nil {
		return nil, fmt.Errorf("session: nil grid")
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	if clock == nil {
		clock = NewTimeProvider()
	}
	if opts.GrassDensity < 0 {
		return nil, fmt.Errorf("session: grass density %d: %w", opts.GrassDensity, maze.ErrOutOfRange)
	}
	if opts.GrassDensity > parameter.GrassDensityMax {
		opts.GrassDensity = parameter.GrassDensityMax
	}
	if opts.Seed == 0 {
		opts.Seed = clock.Now().UnixNano()
	}
	if opts.Keymap == nil {
		opts.Keymap = input.DefaultKeymap()
	}
	if opts.Navigation == (navigation.Settings{}) {
		opts.Navigation = navigation.DefaultSettings()
	}

	s := &Session{
		clock:  clock,
		opts:   opts,
		world:  world.New(g, opts.GrassDensity, rand.New(rand.NewSource(opts.Seed))),
		keymap: opts.Keymap,
	}
	now := clock.Now()
	s.nav = navigation.NewController(g, s.world.StartPosition(), mgl32.Vec3{0, 0, -1}, now, opts.Navigation)
	s.resetProgress(now)

	log.Printf("[SESSION] %dx%d maze, %d grass points, %d walls", g.Width(), g.Height(), len(s.world.Grass), len(s.world.WallTransforms()))
	return s, nil
}

func (s *Session) World() *world.World       { return s.world }
func (s *Session) Keymap() input.Keymap       { return s.keymap }
func (s *Session) Won() bool                  { return s.won }
func (s *Session) ShowMap() bool              { return s.showMap }
func (s *Session) Position() mgl32.Vec3       { return s.nav.Position() }
func (s *Session) Direction() mgl32.Vec3      { return s.nav.Direction() }
func (s *Session) Pressed() input.ActionSet   { return s.nav.Pressed() }
func (s *Session) Explored(p maze.Point) bool { return s.explored.Has(p) }

// Binding resolves a key name through the session keymap
func (s *Session) Binding(name string) (input.Binding, bool) {
	return s.keymap.Lookup(name)
}

// Press holds a navigation action until Release
func (s *Session) Press(a input.Action) { s.nav.Press(a) }

// Release lets go of a navigation action
func (s *Session) Release(a input.Action) { s.nav.Release(a) }

// KeyDown routes a key press. Actions are held; intents fire immediately and
// are returned so the frontend can act on the ones it owns (quit, mute).
func (s *Session) KeyDown(name string) input.Intent {
	b, ok := s.keymap.Lookup(name)
	if !ok {
		return input.IntentNone
	}
	switch b.Kind {
	case input.BindAction:
		s.nav.Press(b.Action)
	case input.BindIntent:
		s.Trigger(b.Intent)
		return b.Intent
	}
	return input.IntentNone
}

// KeyUp releases the action bound to a key, if any
func (s *Session) KeyUp(name string) {
	if b, ok := s.keymap.Lookup(name); ok && b.Kind == input.BindAction {
		s.nav.Release(b.Action)
	}
}

// Trigger applies the intents the session owns
func (s *Session) Trigger(i input.Intent) {
	switch i {
	case input.IntentRestart:
		s.Restart()
	case input.IntentToggleMap:
		s.showMap = !s.showMap
	}
}

// Restart returns the player to the start cell facing north and clears the
// explored map and win latch
func (s *Session) Restart() {
	now := s.clock.Now()
	s.nav.Reset(s.world.StartPosition(), mgl32.Vec3{0, 0, -1}, now)
	s.resetProgress(now)
	log.Printf("[SESSION] restart")
}

func (s *Session) resetProgress(now time.Time) {
	s.explored = mapset.New[maze.Point]()
	s.explored.Put(s.world.CellOf(s.nav.Position()))
	s.startedAt = now
	s.wonAt = time.Time{}
	s.won = false
	s.reached = false
	s.touching = false
	s.bumped = false
	s.ticks = 0
}

// Update runs at most one navigation tick and returns the frame to draw.
// ticked reports whether the player state changed.
func (s *Session) Update() (f Frame, ticked bool) {
	now := s.clock.Now()
	res, ticked := s.nav.Update(now)
	if ticked {
		s.ticks++
		s.explored.Put(s.world.CellOf(res.Position))
		s.reached = res.ReachedGoal
		s.bumped = res.Collision.Hit && !s.touching
		s.touching = res.Collision.Hit
		if s.bumped && s.opts.OnBump != nil {
			s.opts.OnBump()
		}
		if res.ReachedGoal && !s.won {
			s.won = true
			s.wonAt = now
			log.Printf("[SESSION] goal reached after %d ticks (%v)", s.ticks, now.Sub(s.startedAt))
			if s.opts.OnGoal != nil {
				s.opts.OnGoal()
			}
		}
	}
	return s.snapshot(now), ticked
}

func (s *Session) snapshot(now time.Time) Frame {
	pos := s.nav.Position()
	elapsed := now.Sub(s.startedAt)
	if s.won {
		elapsed = s.wonAt.Sub(s.startedAt)
	}
	return Frame{
		Position:    pos,
		Direction:   s.nav.Direction(),
		Up:          physics.Up,
		Light:       mgl32.Vec3{pos.X(), parameter.LightHeight, pos.Z()},
		Goal:        s.world.GoalPosition(),
		Grass:       s.world.Grass,
		Walls:       s.world.WallTransforms(),
		Cell:        s.world.CellOf(pos),
		ReachedGoal: s.reached,
		Bumped:      s.bumped,
		Won:         s.won,
		Elapsed:     elapsed,
		Ticks:       s.ticks,
		Explored:    s.explored.Size(),
		ShowMap:     s.showMap,
	}
}
