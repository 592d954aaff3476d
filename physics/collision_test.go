package physics

import (
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/maze-walk/maze"
	"github.com/lixenwraith/maze-walk/world"
)

const testRadius = 0.3

var north = mgl32.Vec3{0, 0, -1}

func loadGrid(t *testing.T, src string) *maze.Grid {
	t.Helper()
	g, err := maze.ParseLevel(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseLevel failed: %v", err)
	}
	return g
}

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestStrafe_RightHanded(t *testing.T) {
	if got := Strafe(north); !got.ApproxEqual(mgl32.Vec3{1, 0, 0}) {
		t.Errorf("Expected strafe of north to be +x, got %v", got)
	}
}

// TestResolve_NorthWall pushes the player back from a wall row ahead of it
func TestResolve_NorthWall(t *testing.T) {
	// Whole top row walled; player in the centre cell close to its north edge
	g := loadGrid(t, "3 3\n2 0 2 2\n0 0\n1 0\n2 0\n")
	pos := mgl32.Vec3{-1, 0, -1.8}

	res := ResolveWallCollision(pos, north, g, testRadius)

	if !res.Hit || res.Probe != ProbeForward || res.Axis != AxisZ {
		t.Fatalf("Expected forward probe hit corrected on z, got %+v", res)
	}
	if res.Position.X() != pos.X() {
		t.Errorf("Expected x unchanged at %v, got %v", pos.X(), res.Position.X())
	}
	moved := res.Position.Z() - pos.Z()
	if moved <= 0 {
		t.Errorf("Expected z to move away from the wall (increase), moved %v", moved)
	}
	if moved >= testRadius {
		t.Errorf("Expected correction below probe radius, moved %v", moved)
	}
	if !near(res.Position.Z(), -1.7) {
		t.Errorf("Expected z = -1.7, got %v", res.Position.Z())
	}
}

func TestResolve_NoContact(t *testing.T) {
	g := loadGrid(t, "3 3\n2 0 2 2\n0 0\n1 0\n2 0\n")
	pos := world.CellCenter(maze.Point{Row: 1, Col: 1}, 3, 3)

	res := ResolveWallCollision(pos, north, g, testRadius)
	if res.Hit || res.Axis != AxisNone {
		t.Errorf("Expected no hit at cell centre, got %+v", res)
	}
	if res.Position != pos {
		t.Errorf("Expected position unchanged, got %v", res.Position)
	}
}

// TestResolve_Containment checks a shallow wall penetration from each side is
// ejected so the probe leaves the wall or rests on its boundary
func TestResolve_Containment(t *testing.T) {
	// Centre wall occupies x in [-2,0), z in [-2,0)
	g := loadGrid(t, "3 3\n0 0 2 2\n1 1\n")

	tests := []struct {
		name string
		pos  mgl32.Vec3
		dir  mgl32.Vec3
	}{
		{"from east", mgl32.Vec3{0.25, 0, -1}, mgl32.Vec3{-1, 0, 0}},
		{"from south", mgl32.Vec3{-1, 0, 0.22}, mgl32.Vec3{0, 0, -1}},
		{"from west", mgl32.Vec3{-2.25, 0, -1}, mgl32.Vec3{1, 0, 0}},
		{"from north", mgl32.Vec3{-1, 0, -2.22}, mgl32.Vec3{0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ResolveWallCollision(tt.pos, tt.dir, g, testRadius)
			if !res.Hit || res.Probe != ProbeForward {
				t.Fatalf("Expected forward probe hit, got %+v", res)
			}

			probe := ProbePoints(res.Position, tt.dir, testRadius)[ProbeForward]
			cell := world.CellOf(probe, 3, 3)
			if g.CellAt(cell) != maze.Wall {
				return
			}

			// Still in the wall cell: must sit on its boundary, not inside
			v := probe.X()
			if res.Axis == AxisZ {
				v = probe.Z()
			}
			if !near(v, -2) && !near(v, 0) {
				t.Errorf("Expected probe ejected to the wall boundary, probe at %v (cell %v)", probe, cell)
			}
		})
	}
}

// TestResolve_ProbeAtWallCentre pins the degenerate case: a probe exactly on
// a wall cell's centre sits on integer coordinates, so both per-axis offsets are
// zero and the correction leaves the player where it was
func TestResolve_ProbeAtWallCentre(t *testing.T) {
	g := loadGrid(t, "3 3\n0 0 2 2\n1 1\n")
	pos := mgl32.Vec3{-1, 0, -0.75}

	res := ResolveWallCollision(pos, north, g, 0.25)

	if !res.Hit || res.Probe != ProbeForward {
		t.Fatalf("Expected forward probe hit, got %+v", res)
	}
	if res.Axis != AxisZ || res.Correction != 0 {
		t.Errorf("Expected zero correction on z, got axis %v correction %v", res.Axis, res.Correction)
	}
	if res.Position != pos {
		t.Errorf("Expected position unchanged at %v, got %v", pos, res.Position)
	}
	probe := ProbePoints(res.Position, north, 0.25)[ProbeForward]
	if g.CellAt(world.CellOf(probe, 3, 3)) != maze.Wall {
		t.Errorf("Expected probe to remain in the wall cell, probe at %v", probe)
	}
}

// TestResolve_FirstHitOnly verifies only one axis is corrected even when
// several probes collide
func TestResolve_FirstHitOnly(t *testing.T) {
	g := loadGrid(t, "3 3 2 0 0 2")
	// Corner of cell (0,0): forward probe leaves the grid north, left probe west
	pos := mgl32.Vec3{-3.85, 0, -3.9}

	res := ResolveWallCollision(pos, north, g, testRadius)

	if !res.Hit || res.Probe != ProbeForward {
		t.Fatalf("Expected forward probe to win, got %+v", res)
	}
	if res.Axis != AxisZ {
		t.Errorf("Expected z correction, got axis %d", res.Axis)
	}
	if res.Position.X() != pos.X() {
		t.Errorf("Expected x untouched despite left probe outside grid, got %v", res.Position.X())
	}
	if !near(res.Position.Z(), -3.7) {
		t.Errorf("Expected z = -3.7, got %v", res.Position.Z())
	}
}

func TestResolve_ProbeOrder(t *testing.T) {
	g := loadGrid(t, "3 3 2 0 0 2")
	// Facing south: forward probe stays inside, back probe leaves north, right probe leaves west
	pos := mgl32.Vec3{-3.85, 0, -3.9}
	south := mgl32.Vec3{0, 0, 1}

	res := ResolveWallCollision(pos, south, g, testRadius)
	if !res.Hit || res.Probe != ProbeBack {
		t.Errorf("Expected back probe to be the first hit, got %+v", res)
	}
}

func TestResolve_OutsideGridIsSolid(t *testing.T) {
	g := loadGrid(t, "2 1")
	// 2x1 strip spans x in [-3,1)
	pos := mgl32.Vec3{0.9, 0, -1}

	res := ResolveWallCollision(pos, mgl32.Vec3{1, 0, 0}, g, testRadius)
	if !res.Hit || res.Axis != AxisX {
		t.Fatalf("Expected x correction against grid edge, got %+v", res)
	}
	if res.Position.X() >= pos.X() {
		t.Errorf("Expected player pushed back west, got x %v", res.Position.X())
	}
}

func TestResolve_GoalProbe(t *testing.T) {
	g := loadGrid(t, "3 3 0 0 2 2")
	pos := mgl32.Vec3{1, 0, -0.1}

	res := ResolveWallCollision(pos, mgl32.Vec3{0, 0, 1}, g, testRadius)
	if res.Hit {
		t.Errorf("Expected no wall hit, got %+v", res)
	}
	if !res.Goal {
		t.Error("Expected forward probe to report the goal")
	}
	if res.Position != pos {
		t.Errorf("Expected goal probe to leave position unchanged, got %v", res.Position)
	}
}
