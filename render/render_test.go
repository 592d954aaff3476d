package render

import (
	"image/color"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/maze-walk/engine"
	"github.com/lixenwraith/maze-walk/maze"
	"github.com/lixenwraith/maze-walk/physics"
)

const eps = 1e-4

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < eps
}

func loadGrid(t *testing.T, src string) *maze.Grid {
	t.Helper()
	g, err := maze.ParseLevel(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseLevel: %v", err)
	}
	return g
}

var north = mgl32.Vec3{0, 0, -1}

func TestCamera_ViewAndProject(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{}, north, physics.Up, 2)

	eye := cam.View().Mul4x1(mgl32.Vec4{0, 0, -5, 1})
	if !near(eye.X(), 0) || !near(eye.Y(), 0) || !near(eye.Z(), -5) {
		t.Errorf("Expected point ahead to stay on -z in eye space, got %v", eye)
	}

	x, y, depth, ok := cam.Project(mgl32.Vec3{0, 0, -5}, 40, 20)
	if !ok || !near(x, 20) || !near(y, 10) || !near(depth, 5) {
		t.Errorf("Expected centre (20,10) depth 5, got (%v,%v) depth %v ok=%v", x, y, depth, ok)
	}

	if x, _, _, _ := cam.Project(mgl32.Vec3{1, 0, -5}, 40, 20); x <= 20 {
		t.Errorf("Expected +x to project right of centre, got %v", x)
	}
	if _, y, _, _ := cam.Project(mgl32.Vec3{0, 1, -5}, 40, 20); y >= 10 {
		t.Errorf("Expected +y to project above centre, got %v", y)
	}
	if _, _, _, ok := cam.Project(mgl32.Vec3{0, 0, 5}, 40, 20); ok {
		t.Error("Expected point behind camera to be rejected")
	}

	h, v := cam.TanHalfFOV()
	if !near(v, float32(math.Tan(25*math.Pi/180))) || !near(h, 2*v) {
		t.Errorf("Expected tan half angles (%v, %v), got (%v, %v)", 2*v, v, h, v)
	}
}

func TestMirrorMatrix(t *testing.T) {
	m := MirrorMatrix()

	p := m.Mul4x1(mgl32.Vec4{1, 0.5, 2, 1})
	if !near(p.X(), 1) || !near(p.Y(), -2.5) || !near(p.Z(), 2) {
		t.Errorf("Expected (1,-2.5,2), got %v", p)
	}
	// The floor plane maps onto itself
	if f := m.Mul4x1(mgl32.Vec4{3, -1, 4, 1}); !near(f.Y(), -1) {
		t.Errorf("Expected floor point fixed, got %v", f)
	}
}

func TestGoalMarkerTransform(t *testing.T) {
	p := GoalMarkerTransform(mgl32.Vec3{3, 0, -5}).Mul4x1(mgl32.Vec4{1, 1, 1, 1})
	if !near(p.X(), 3.5) || !near(p.Y(), 0.5) || !near(p.Z(), -4.5) {
		t.Errorf("Expected (3.5,0.5,-4.5), got %v", p)
	}
}

func TestCast(t *testing.T) {
	// 1x3 strip: x in [-2,0), z in [-4,2)
	r := NewRaycaster(loadGrid(t, "1 3 2 0 0 0"))
	hit := r.Cast(mgl32.Vec3{-1, 0, 1}, north)
	if !near(hit.Depth, 5) {
		t.Errorf("Expected depth 5 to the far edge, got %v", hit.Depth)
	}
	if hit.Side != physics.AxisZ || hit.Cell != (maze.Point{Row: -1, Col: 0}) {
		t.Errorf("Expected z face of cell (-1,0), got %v %v", hit.Side, hit.Cell)
	}
	if !near(hit.U, 0.5) {
		t.Errorf("Expected hit at mid face, got u=%v", hit.U)
	}

	// Open 3x3, from the centre cell facing +x
	r = NewRaycaster(loadGrid(t, "3 3 0 0 2 2"))
	hit = r.Cast(mgl32.Vec3{-1, 0, -1}, mgl32.Vec3{1, 0, 0})
	if !near(hit.Depth, 3) || hit.Side != physics.AxisX || hit.Cell != (maze.Point{Row: 1, Col: 3}) {
		t.Errorf("Expected x face of (1,3) at depth 3, got %+v", hit)
	}

	// Interior wall
	r = NewRaycaster(loadGrid(t, "3 3 0 0 2 2\n2 1\n"))
	hit = r.Cast(mgl32.Vec3{-1, 0, -1}, mgl32.Vec3{1, 0, 0})
	if !near(hit.Depth, 1) || hit.Cell != (maze.Point{Row: 1, Col: 2}) {
		t.Errorf("Expected wall (1,2) at depth 1, got %+v", hit)
	}
}

func corridorFrame() engine.Frame {
	return engine.Frame{
		Position:  mgl32.Vec3{-1, 0, 1},
		Direction: north,
		Up:        physics.Up,
		Goal:      mgl32.Vec3{-1, 0, -3},
	}
}

func TestRender_Corridor(t *testing.T) {
	r := NewRaycaster(loadGrid(t, "1 3 2 0 0 0"))
	v := NewView(40, 20)
	r.Render(v, corridorFrame(), 2)

	tests := []struct {
		x, y int
		want Surface
	}{
		{20, 2, SurfaceSky},
		{20, 6, SurfaceWall},
		{20, 10, SurfaceGoal},
		{20, 15, SurfaceReflection},
		{20, 19, SurfaceGoalReflection},
		{0, 10, SurfaceWall},
	}
	for _, tt := range tests {
		if got := v.At(tt.x, tt.y).Surface; got != tt.want {
			t.Errorf("Expected surface %d at (%d,%d), got %d", tt.want, tt.x, tt.y, got)
		}
	}

	if c := v.Columns[20]; !near(c.Depth, 5) || c.Top != 6 || c.Bottom != 14 {
		t.Errorf("Expected centre column depth 5 rows [6,14), got %+v", c)
	}
	// Nearby side wall is lit more than the far end wall
	if v.At(0, 10).Shade <= v.At(20, 6).Shade {
		t.Errorf("Expected near wall brighter, got %v vs %v", v.At(0, 10).Shade, v.At(20, 6).Shade)
	}
}

func TestRender_Grass(t *testing.T) {
	r := NewRaycaster(loadGrid(t, "1 3 2 0 0 0"))
	v := NewView(40, 20)

	f := corridorFrame()
	f.Goal = mgl32.Vec3{-1, 0, 11} // behind the camera
	f.Grass = []mgl32.Vec3{{-0.95, 0, -3}}
	r.Render(v, f, 2)
	if got := v.At(20, 14).Surface; got != SurfaceGrass {
		t.Errorf("Expected grass blade at (20,14), got %d", got)
	}
	for _, s := range v.Samples {
		if s.Surface == SurfaceGoal {
			t.Fatal("Expected goal behind camera to be skipped")
		}
	}

	// Beyond the end wall: hidden
	f.Grass = []mgl32.Vec3{{-0.95, 0, -5}}
	r.Render(v, f, 2)
	for i, s := range v.Samples {
		if s.Surface == SurfaceGrass {
			t.Fatalf("Expected grass behind wall hidden, found at %d", i)
		}
	}
}

func TestSampleColor(t *testing.T) {
	if got := (Sample{Surface: SurfaceWall, Shade: 0.5}).Color(); got != (color.RGBA{91, 84, 70, 255}) {
		t.Errorf("Expected half-lit wall, got %v", got)
	}
	if got := (Sample{Surface: SurfaceWall, Shade: 3}).Color(); got != (color.RGBA{182, 168, 140, 255}) {
		t.Errorf("Expected shade clamped to 1, got %v", got)
	}
	if got := (Sample{Surface: SurfaceSky}).Color(); got != surfaceColors[SurfaceSky] {
		t.Errorf("Expected unlit sky, got %v", got)
	}
}

func TestView_Bounds(t *testing.T) {
	v := NewView(0, -3)
	if v.Width != 1 || v.Height != 1 {
		t.Errorf("Expected 1x1 minimum view, got %dx%d", v.Width, v.Height)
	}
	v.Resize(4, 2)
	v.set(9, 9, Sample{Surface: SurfaceWall})
	if s := v.At(-1, 0); s.Surface != SurfaceSky {
		t.Errorf("Expected outside to read as sky, got %d", s.Surface)
	}
	if len(v.Samples) != 8 || len(v.Columns) != 4 {
		t.Errorf("Expected 8 samples 4 columns, got %d %d", len(v.Samples), len(v.Columns))
	}
}

func TestCellFor(t *testing.T) {
	ch, style := cellFor(Sample{Surface: SurfaceSky}, Sample{Surface: SurfaceWall, Shade: 1})
	want := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(12, 14, 24)).
		Background(tcell.NewRGBColor(182, 168, 140))
	if ch != '▀' || style != want {
		t.Errorf("Expected sky over wall half block, got %q %v", ch, style)
	}
}

func TestDrawView(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(40, 12)

	r := NewRaycaster(loadGrid(t, "1 3 2 0 0 0"))
	v := NewView(40, 20)
	r.Render(v, corridorFrame(), 2)

	defer func() {
		if rec := recover(); rec != nil {
			t.Errorf("DrawView panicked: %v", rec)
		}
	}()
	DrawView(screen, v, 0, 1)
	if end := DrawText(screen, 0, 0, tcell.StyleDefault, "maze"); end != 4 {
		t.Errorf("Expected text to end at column 4, got %d", end)
	}
}

func TestMinimap(t *testing.T) {
	g := loadGrid(t, "1 3 2 0 0 0")
	explored := map[maze.Point]bool{{Row: 2, Col: 0}: true}
	lines := Minimap(g, func(p maze.Point) bool { return explored[p] }, maze.Point{Row: 2, Col: 0}, north, 41)

	want := []string{" ", ".", "^"}
	if strings.Join(lines, "|") != strings.Join(want, "|") {
		t.Errorf("Expected %q, got %q", want, lines)
	}

	explored[maze.Point{Row: 1, Col: 0}] = true
	lines = Minimap(g, func(p maze.Point) bool { return explored[p] }, maze.Point{Row: 1, Col: 0}, mgl32.Vec3{1, 0, 0}, 41)
	if want := []string{"G", ">", "S"}; strings.Join(lines, "|") != strings.Join(want, "|") {
		t.Errorf("Expected %q, got %q", want, lines)
	}
}

func TestMinimapWindow(t *testing.T) {
	tests := []struct {
		at, n, size   int
		first, length int
	}{
		{10, 41, 21, 0, 21},
		{40, 41, 21, 20, 21},
		{20, 41, 21, 10, 21},
		{5, 3, 21, 0, 3},
	}
	for _, tt := range tests {
		if first, length := window(tt.at, tt.n, tt.size); first != tt.first || length != tt.length {
			t.Errorf("window(%d,%d,%d): expected (%d,%d), got (%d,%d)", tt.at, tt.n, tt.size, tt.first, tt.length, first, length)
		}
	}
}

func TestStatusLine(t *testing.T) {
	f := engine.Frame{Cell: maze.Point{Row: 1, Col: 2}, Explored: 4, Elapsed: 1500 * time.Millisecond, Won: true}
	line := StatusLine(f, true)
	for _, want := range []string{"cell 1,2", "explored 4", "1.5s", "GOAL REACHED", "[muted]"} {
		if !strings.Contains(line, want) {
			t.Errorf("Expected %q in status line %q", want, line)
		}
	}
}

func TestPaint(t *testing.T) {
	v := NewView(3, 2)
	v.set(1, 1, Sample{Surface: SurfaceWall, Shade: 1})

	img := Paint(nil, v)
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("Expected 3x2 image, got %v", img.Bounds())
	}
	if got := img.RGBAAt(1, 1); got != (color.RGBA{182, 168, 140, 255}) {
		t.Errorf("Expected wall colour at (1,1), got %v", got)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{12, 14, 24, 255}) {
		t.Errorf("Expected sky colour at (0,0), got %v", got)
	}

	if again := Paint(img, v); again != img {
		t.Error("Expected a same-size image to be reused")
	}
	v.Resize(4, 2)
	if bigger := Paint(img, v); bigger == img || bigger.Bounds().Dx() != 4 {
		t.Error("Expected a resized view to reallocate")
	}
}

func TestRaycaster_SetWallSpan(t *testing.T) {
	r := NewRaycaster(loadGrid(t, "1 3 2 0 0 0"))
	v := NewView(40, 20)

	// Half-height walls: the top edge drops to the horizon
	r.SetWallSpan(-1, 0)
	r.Render(v, corridorFrame(), 2)
	if c := v.Columns[20]; c.Top != 10 || c.Bottom != 14 {
		t.Errorf("Expected half wall rows [10,14), got [%d,%d)", c.Top, c.Bottom)
	}

	// Empty spans are ignored
	r.SetWallSpan(1, 1)
	r.Render(v, corridorFrame(), 2)
	if c := v.Columns[20]; c.Top != 10 {
		t.Errorf("Expected span unchanged, got top %d", c.Top)
	}
}
