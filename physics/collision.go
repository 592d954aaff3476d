package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/maze-walk/maze"
	"github.com/lixenwraith/maze-walk/world"
)

// Up is the world vertical; facing directions stay perpendicular to it
var Up = mgl32.Vec3{0, 1, 0}

// Probe identifies one of the four wall sensing points around the player
type Probe uint8

// Probes are evaluated in declaration order
const (
	ProbeForward Probe = iota
	ProbeBack
	ProbeRight
	ProbeLeft
	probeCount
)

func (p Probe) String() string {
	switch p {
	case ProbeForward:
		return "forward"
	case ProbeBack:
		return "back"
	case ProbeRight:
		return "right"
	case ProbeLeft:
		return "left"
	default:
		return "none"
	}
}

// Axis is the world axis a collision correction was applied on
type Axis uint8

const (
	AxisNone Axis = iota
	AxisX
	AxisZ
)

// Resolution is the outcome of one ResolveWallCollision call
type Resolution struct {
	Position   mgl32.Vec3 // Corrected position
	Hit        bool       // A probe landed in a wall
	Probe      Probe      // First colliding probe, valid when Hit
	Axis       Axis       // Axis corrected, AxisNone when no hit
	Correction float32    // Amount subtracted from Position on Axis
	Goal       bool       // A probe checked before any hit landed in the goal cell
}

// Strafe returns the right-hand vector of a facing direction: direction × up
func Strafe(direction mgl32.Vec3) mgl32.Vec3 {
	return direction.Cross(Up)
}

// ProbePoints returns the four sensing points in evaluation order
func ProbePoints(pos, direction mgl32.Vec3, radius float32) [probeCount]mgl32.Vec3 {
	fwd := direction.Mul(radius)
	side := Strafe(direction).Mul(radius)
	return [probeCount]mgl32.Vec3{
		pos.Add(fwd),
		pos.Sub(fwd),
		pos.Add(side),
		pos.Sub(side),
	}
}

// ResolveWallCollision pushes pos out of any wall its probes penetrate.
//
// Probes are tested forward, back, right, left. The first probe inside a Wall
// cell (or outside the grid) decides the correction: per axis, the signed
// distance from the probe to the nearest integer coordinate; the larger of the
// two magnitudes picks the axis, and only that axis is corrected. Later probes
// are not examined, so a single call fixes at most one axis.
func ResolveWallCollision(pos, direction mgl32.Vec3, g *maze.Grid, radius float32) Resolution {
	res := Resolution{Position: pos}

	for i, probe := range ProbePoints(pos, direction, radius) {
		x, z := probe.X(), probe.Z()
		cell := maze.Point{
			Row: world.WorldToCell(z, g.Height()),
			Col: world.WorldToCell(x, g.Width()),
		}

		switch g.CellAt(cell) {
		case maze.Wall:
			xCorr := nearestBoundaryOffset(x)
			zCorr := nearestBoundaryOffset(z)

			res.Hit = true
			res.Probe = Probe(i)
			if abs32(xCorr) > abs32(zCorr) {
				res.Axis = AxisX
				res.Correction = xCorr
				res.Position[0] -= xCorr
			} else {
				res.Axis = AxisZ
				res.Correction = zCorr
				res.Position[2] -= zCorr
			}
			return res
		case maze.Goal:
			res.Goal = true
		}
	}

	return res
}

// nearestBoundaryOffset returns v's signed offset from the closer of
// floor(v) and floor(v)+1: frac when frac < |frac-1|, else frac-1
func nearestBoundaryOffset(v float32) float32 {
	frac := v - float32(math.Floor(float64(v)))
	frac2 := frac - 1
	if frac < abs32(frac2) {
		return frac
	}
	return frac2
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
