// Package world places a maze grid in continuous world space: the cell <->
// coordinate mapping, derived render data and the grass scatter
package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/maze-walk/maze"
	"github.com/lixenwraith/maze-walk/parameter"
)

// CellToWorld maps a cell index on one axis to world space.
// Cells are 2 units wide and the maze is centred on the origin; the returned
// coordinate is the low edge of the cell's footprint [w, w+2).
func CellToWorld(index, dim int) float32 {
	return float32(index*2-dim) - 1
}

// WorldToCell is the inverse of CellToWorld on one axis. Positions left of
// the maze yield negative indices; callers bounds-check.
func WorldToCell(pos float32, dim int) int {
	f := math.Floor(float64(pos)+1) + float64(dim)
	return int(math.Floor(f / 2))
}

// CellOrigin is the low (x, z) corner of the cell's footprint
func CellOrigin(p maze.Point, width, height int) mgl32.Vec3 {
	return mgl32.Vec3{CellToWorld(p.Col, width), 0, CellToWorld(p.Row, height)}
}

// CellCenter is the midpoint of the cell's footprint
func CellCenter(p maze.Point, width, height int) mgl32.Vec3 {
	const half = parameter.CellSize / 2
	return CellOrigin(p, width, height).Add(mgl32.Vec3{half, 0, half})
}

// CellOf maps a world position to its grid cell (row from z, column from x)
func CellOf(pos mgl32.Vec3, width, height int) maze.Point {
	return maze.Point{
		Row: WorldToCell(pos.Z(), height),
		Col: WorldToCell(pos.X(), width),
	}
}
