package world

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/maze-walk/maze"
)

// World is a loaded maze placed in world space. Everything in it is computed
// once at load and read-only for the rest of the session.
type World struct {
	Grid  *maze.Grid
	Grass []mgl32.Vec3

	walls []mgl32.Mat4
}

// New places g in world space and scatters grass with the given density
func New(g *maze.Grid, grassDensity int, rng *rand.Rand) *World {
	w := &World{
		Grid:  g,
		Grass: ScatterGrass(g, grassDensity, rng),
	}

	g.Each(func(p maze.Point, c maze.Cell) {
		if c != maze.Wall {
			return
		}
		center := CellCenter(p, g.Width(), g.Height())
		w.walls = append(w.walls, mgl32.Translate3D(center.X(), 0, center.Z()))
	})

	return w
}

// StartPosition is the player spawn point: the centre of the start cell
func (w *World) StartPosition() mgl32.Vec3 {
	return CellCenter(w.Grid.Start(), w.Grid.Width(), w.Grid.Height())
}

// GoalPosition is where the goal marker stands
func (w *World) GoalPosition() mgl32.Vec3 {
	return CellCenter(w.Grid.Goal(), w.Grid.Width(), w.Grid.Height())
}

// CellOf maps a world position to its grid cell
func (w *World) CellOf(pos mgl32.Vec3) maze.Point {
	return CellOf(pos, w.Grid.Width(), w.Grid.Height())
}

// CellAt returns the kind of cell under a world position; outside is Wall
func (w *World) CellAt(pos mgl32.Vec3) maze.Cell {
	return w.Grid.CellAt(w.CellOf(pos))
}

// WallTransforms returns one model matrix per wall cell, translating a unit
// wall block (footprint [-1,1] on x and z) onto its cell
func (w *World) WallTransforms() []mgl32.Mat4 {
	return w.walls
}

// Extent returns the low and high (x, z) corners of the maze footprint on the floor plane
func (w *World) Extent() (lo, hi mgl32.Vec3) {
	lo = CellOrigin(maze.Point{}, w.Grid.Width(), w.Grid.Height())
	hi = CellOrigin(maze.Point{Row: w.Grid.Height(), Col: w.Grid.Width()}, w.Grid.Width(), w.Grid.Height())
	return lo, hi
}
