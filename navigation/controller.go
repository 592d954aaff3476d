// Package navigation turns held input actions into player movement through
// the maze, one throttled tick at a time
package navigation

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/maze-walk/input"
	"github.com/lixenwraith/maze-walk/maze"
	"github.com/lixenwraith/maze-walk/parameter"
	"github.com/lixenwraith/maze-walk/physics"
	"github.com/lixenwraith/maze-walk/world"
)

// Settings tune the controller; DefaultSettings matches the parameter package
type Settings struct {
	TickInterval    time.Duration
	TurnStepDegrees float32
	MoveSpeed       float32
	ProbeRadius     float32
}

// DefaultSettings returns the reference tuning
func DefaultSettings() Settings {
	return Settings{
		TickInterval:    parameter.TickInterval,
		TurnStepDegrees: parameter.TurnStepDegrees,
		MoveSpeed:       parameter.MoveSpeed,
		ProbeRadius:     parameter.ProbeRadius,
	}
}

// TickResult describes one committed navigation tick
type TickResult struct {
	Position    mgl32.Vec3
	Direction   mgl32.Vec3
	Collision   physics.Resolution
	ReachedGoal bool
}

// Controller owns the player pose and the held action set. It borrows the
// grid read-only.
type Controller struct {
	grid     *maze.Grid
	settings Settings

	position  mgl32.Vec3
	direction mgl32.Vec3
	pressed   input.ActionSet
	lastTick  time.Time
}

// NewController places the player at pos facing dir. dir is flattened onto
// the floor plane and normalised; a zero dir faces -z.
func NewController(g *maze.Grid, pos, dir mgl32.Vec3, now time.Time, s Settings) *Controller {
	c := &Controller{grid: g, settings: s}
	c.Reset(pos, dir, now)
	return c
}

// Reset moves the player and releases every held action
func (c *Controller) Reset(pos, dir mgl32.Vec3, now time.Time) {
	c.position = mgl32.Vec3{pos.X(), parameter.EyeHeight, pos.Z()}
	c.direction = horizontal(dir)
	c.pressed.Clear()
	c.lastTick = now
}

func (c *Controller) Position() mgl32.Vec3     { return c.position }
func (c *Controller) Direction() mgl32.Vec3    { return c.direction }
func (c *Controller) Pressed() input.ActionSet { return c.pressed }

// Press marks a held until Release
func (c *Controller) Press(a input.Action) {
	c.pressed.Press(a)
}

// Release clears a
func (c *Controller) Release(a input.Action) {
	c.pressed.Release(a)
}

// Update advances one tick if more than TickInterval has passed since the
// last one. Movement is a fixed amount per tick regardless of the actual
// elapsed time.
func (c *Controller) Update(now time.Time) (TickResult, bool) {
	if now.Sub(c.lastTick) <= c.settings.TickInterval {
		return TickResult{}, false
	}
	c.lastTick = now
	return c.Tick(), true
}

// Tick applies one turn + translate + collision step unconditionally
func (c *Controller) Tick() TickResult {
	// Turning: both turn keys held cancel out
	var angle float32
	if c.pressed.Held(input.TurnRight) {
		angle += c.settings.TurnStepDegrees
	}
	if c.pressed.Held(input.TurnLeft) {
		angle -= c.settings.TurnStepDegrees
	}
	if angle != 0 {
		c.direction = Rotate(c.direction, angle)
	}

	// Translation: each held key contributes a full step, diagonals are not normalised
	strafe := physics.Strafe(c.direction)
	step := c.settings.MoveSpeed
	pos := c.position
	if c.pressed.Held(input.Forward) {
		pos = pos.Add(c.direction.Mul(step))
	}
	if c.pressed.Held(input.Right) {
		pos = pos.Add(strafe.Mul(step))
	}
	if c.pressed.Held(input.Back) {
		pos = pos.Sub(c.direction.Mul(step))
	}
	if c.pressed.Held(input.Left) {
		pos = pos.Sub(strafe.Mul(step))
	}

	res := physics.ResolveWallCollision(pos, c.direction, c.grid, c.settings.ProbeRadius)
	c.position = res.Position

	here := world.CellOf(c.position, c.grid.Width(), c.grid.Height())
	return TickResult{
		Position:    c.position,
		Direction:   c.direction,
		Collision:   res,
		ReachedGoal: res.Goal || c.grid.CellAt(here) == maze.Goal,
	}
}

// Rotate turns a horizontal direction about world up. Positive degrees turn
// toward the strafe (right-hand) side: -z rotates toward +x.
func Rotate(dir mgl32.Vec3, degrees float32) mgl32.Vec3 {
	r := mgl32.Rotate3DY(-mgl32.DegToRad(degrees))
	return horizontal(r.Mul3x1(dir))
}

// horizontal projects v onto the floor plane and normalises it
func horizontal(v mgl32.Vec3) mgl32.Vec3 {
	v[1] = 0
	if v.Len() == 0 {
		return mgl32.Vec3{0, 0, -1}
	}
	return v.Normalize()
}
