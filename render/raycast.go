package render

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/maze-walk/engine"
	"github.com/lixenwraith/maze-walk/maze"
	"github.com/lixenwraith/maze-walk/parameter"
	"github.com/lixenwraith/maze-walk/physics"
)

const (
	grassBladeHeight = 0.2
	grassDrawRange   = 24.0
)

// Hit is where a ray first meets a wall or the grid edge
type Hit struct {
	// Depth along the camera direction, world units
	Depth float32
	// Side is the axis of the crossed cell boundary
	Side physics.Axis
	// Cell is the wall cell, possibly outside the grid
	Cell maze.Point
	// U is the horizontal position across the wall face in [0,1)
	U float32
}

// Raycaster draws a maze grid into a View
type Raycaster struct {
	grid *maze.Grid
	// grid-space offsets: world = 2*g - dim - 1
	offX, offZ float64

	wallLo, wallHi float32

	sprites []sprite
}

type sprite struct {
	x, depth float32
	// height above the eye: blade base for grass, centre for the goal
	y       float32
	surface Surface
}

// NewRaycaster prepares a raycaster for g
func NewRaycaster(g *maze.Grid) *Raycaster {
	return &Raycaster{
		grid:   g,
		offX:   float64(g.Width()) + 1,
		offZ:   float64(g.Height()) + 1,
		wallLo: parameter.FloorHeight,
		wallHi: -parameter.FloorHeight,
	}
}

// SetWallSpan sets the world heights of the wall bottom and top, normally
// the y bounds of the wall mesh
func (r *Raycaster) SetWallSpan(lo, hi float32) {
	if hi > lo {
		r.wallLo, r.wallHi = lo, hi
	}
}

// Cast walks the grid along ray from pos and returns the first wall boundary.
// ray need not be unit length; Depth is the ray parameter at the hit, which
// for camera rays dir + k*strafe is the depth along dir.
func (r *Raycaster) Cast(pos, ray mgl32.Vec3) Hit {
	const cell = parameter.CellSize

	// Grid space: one unit per cell
	px := (float64(pos.X()) + r.offX) / cell
	pz := (float64(pos.Z()) + r.offZ) / cell
	rx, rz := float64(ray.X()), float64(ray.Z())

	mapX, mapZ := int(math.Floor(px)), int(math.Floor(pz))

	deltaX, deltaZ := math.Inf(1), math.Inf(1)
	if rx != 0 {
		deltaX = math.Abs(1 / rx)
	}
	if rz != 0 {
		deltaZ = math.Abs(1 / rz)
	}

	stepX, stepZ := 1, 1
	sideX := (float64(mapX) + 1 - px) * deltaX
	if rx < 0 {
		stepX = -1
		sideX = (px - float64(mapX)) * deltaX
	}
	sideZ := (float64(mapZ) + 1 - pz) * deltaZ
	if rz < 0 {
		stepZ = -1
		sideZ = (pz - float64(mapZ)) * deltaZ
	}

	side := physics.AxisX
	limit := r.grid.Width() + r.grid.Height() + 2
	for i := 0; i < limit; i++ {
		if sideX < sideZ {
			sideX += deltaX
			mapX += stepX
			side = physics.AxisX
		} else {
			sideZ += deltaZ
			mapZ += stepZ
			side = physics.AxisZ
		}
		if r.grid.CellAt(maze.Point{Row: mapZ, Col: mapX}) == maze.Wall {
			break
		}
	}

	var t, along float64
	if side == physics.AxisX {
		t = sideX - deltaX
		along = pz + t*rz
	} else {
		t = sideZ - deltaZ
		along = px + t*rx
	}

	return Hit{
		Depth: float32(t * cell),
		Side:  side,
		Cell:  maze.Point{Row: mapZ, Col: mapX},
		U:     float32(along - math.Floor(along)),
	}
}

// Render fills v with the scene seen from f. aspect is the width/height ratio
// of one view sample times the view's width/height.
func (r *Raycaster) Render(v *View, f engine.Frame, aspect float32) {
	cam := NewCamera(f.Position, f.Direction, f.Up, aspect)
	tanH, tanV := cam.TanHalfFOV()
	strafe := physics.Strafe(f.Direction)
	eye := f.Position.Y()

	for x := 0; x < v.Width; x++ {
		camX := 2*(float32(x)+0.5)/float32(v.Width) - 1
		ray := f.Direction.Add(strafe.Mul(camX * tanH))
		hit := r.Cast(f.Position, ray)

		top := rowAt(r.wallHi-eye, hit.Depth, tanV, v.Height)
		bottom := rowAt(max(r.wallLo, parameter.FloorHeight)-eye, hit.Depth, tanV, v.Height)
		mirror := rowAt(2*parameter.FloorHeight-r.wallHi-eye, hit.Depth, tanV, v.Height)
		v.Columns[x] = Column{Hit: hit, Top: top, Bottom: bottom}

		shade := wallShade(hit)
		for y := 0; y < v.Height; y++ {
			var s Sample
			switch {
			case y < top:
				s = Sample{Surface: SurfaceSky}
			case y < bottom:
				s = Sample{Surface: SurfaceWall, Shade: shade}
			case y < mirror:
				s = Sample{Surface: SurfaceReflection, Shade: shade * reflectionMix}
			default:
				s = Sample{Surface: SurfaceFloor, Shade: lightAt(floorDepth(y, eye, tanV, v.Height))}
			}
			v.Samples[y*v.Width+x] = s
		}
	}

	r.drawSprites(v, f, cam, tanH, tanV)
}

// drawSprites paints grass blades and the goal marker far to near, hidden
// behind the wall of their column
func (r *Raycaster) drawSprites(v *View, f engine.Frame, cam Camera, tanH, tanV float32) {
	r.sprites = r.sprites[:0]
	eye := f.Position.Y()

	for _, g := range f.Grass {
		if g.Sub(f.Position).Len() > grassDrawRange {
			continue
		}
		base := mgl32.Vec3{g.X(), parameter.FloorHeight, g.Z()}
		if x, _, depth, ok := cam.Project(base, v.Width, v.Height); ok {
			r.sprites = append(r.sprites, sprite{x: x, depth: depth, y: parameter.FloorHeight - eye, surface: SurfaceGrass})
		}
	}
	if x, _, depth, ok := cam.Project(f.Goal, v.Width, v.Height); ok {
		r.sprites = append(r.sprites, sprite{x: x, depth: depth, y: f.Goal.Y() - eye, surface: SurfaceGoal})
	}
	sort.Slice(r.sprites, func(i, j int) bool { return r.sprites[i].depth > r.sprites[j].depth })

	for _, s := range r.sprites {
		switch s.surface {
		case SurfaceGrass:
			r.drawGrass(v, s, tanV)
		case SurfaceGoal:
			r.drawGoal(v, s, eye, tanH, tanV)
		}
	}
}

func (r *Raycaster) drawGrass(v *View, s sprite, tanV float32) {
	col := int(s.x)
	if col < 0 || col >= v.Width || s.depth >= v.Columns[col].Depth {
		return
	}
	top := rowAt(s.y+grassBladeHeight, s.depth, tanV, v.Height)
	bottom := rowAt(s.y, s.depth, tanV, v.Height)
	if bottom <= top {
		bottom = top + 1
	}
	shade := lightAt(s.depth)
	for y := top; y < bottom; y++ {
		v.set(col, y, Sample{Surface: SurfaceGrass, Shade: shade})
	}
}

// drawGoal paints the marker and its reflection in the floor
func (r *Raycaster) drawGoal(v *View, s sprite, eye, tanH, tanV float32) {
	half := float32(parameter.GoalMarkerScale)
	halfW := half / (s.depth * tanH) * float32(v.Width) / 2
	left := int(math.Ceil(float64(s.x - halfW - 0.5)))
	right := int(math.Ceil(float64(s.x + halfW - 0.5)))

	top := rowAt(s.y+half, s.depth, tanV, v.Height)
	bottom := rowAt(s.y-half, s.depth, tanV, v.Height)
	// Mirror image about the floor plane
	mirrorY := 2*(parameter.FloorHeight-eye) - s.y
	mTop := rowAt(mirrorY+half, s.depth, tanV, v.Height)
	mBottom := rowAt(mirrorY-half, s.depth, tanV, v.Height)

	shade := lightAt(s.depth)
	for x := max(left, 0); x < min(right, v.Width); x++ {
		c := v.Columns[x]
		if s.depth >= c.Depth {
			continue
		}
		for y := top; y < bottom; y++ {
			v.set(x, y, Sample{Surface: SurfaceGoal, Shade: shade})
		}
		for y := max(mTop, c.Bottom); y < mBottom; y++ {
			v.set(x, y, Sample{Surface: SurfaceGoalReflection, Shade: shade * reflectionMix})
		}
	}
}

// rowAt returns the first row whose centre lies at or below world height y
// seen at the given depth
func rowAt(y, depth, tanV float32, height int) int {
	if depth <= 0 {
		if y > 0 {
			return 0
		}
		return height
	}
	row := (1 - y/(depth*tanV)) / 2 * float32(height)
	return int(math.Ceil(float64(row - 0.5)))
}

// floorDepth is the depth of the floor plane seen through row y
func floorDepth(y int, eye, tanV float32, height int) float32 {
	ndc := 2*(float32(y)+0.5)/float32(height) - 1
	if ndc <= 0 {
		return parameter.CameraFar
	}
	return (eye - parameter.FloorHeight) / (ndc * tanV)
}
