package render

import (
	"image/color"
	"math"

	"github.com/lixenwraith/maze-walk/physics"
)

// Surface is what a view sample shows
type Surface uint8

const (
	SurfaceSky Surface = iota
	SurfaceWall
	SurfaceReflection
	SurfaceFloor
	SurfaceGrass
	SurfaceGoal
	SurfaceGoalReflection
)

// Sample is one view pixel: a surface and its light level in [0,1]
type Sample struct {
	Surface Surface
	Shade   float32
}

// Base colours at full light
var surfaceColors = [...]color.RGBA{
	SurfaceSky:            {12, 14, 24, 255},
	SurfaceWall:           {182, 168, 140, 255},
	SurfaceReflection:     {96, 92, 84, 255},
	SurfaceFloor:          {38, 44, 56, 255},
	SurfaceGrass:          {72, 168, 64, 255},
	SurfaceGoal:           {244, 196, 48, 255},
	SurfaceGoalReflection: {150, 124, 50, 255},
}

// Color returns the lit colour of the sample
func (s Sample) Color() color.RGBA {
	base := surfaceColors[s.Surface]
	if s.Surface == SurfaceSky {
		return base
	}
	k := clamp01(s.Shade)
	return color.RGBA{
		R: uint8(float32(base.R) * k),
		G: uint8(float32(base.G) * k),
		B: uint8(float32(base.B) * k),
		A: 255,
	}
}

// Column is the wall hit recorded for one view column
type Column struct {
	Hit
	Top, Bottom int // first wall row and first row below the wall
}

// View is a row-major sample buffer filled by the raycaster
type View struct {
	Width, Height int
	Samples       []Sample
	Columns       []Column
}

// NewView allocates a view of the given size
func NewView(width, height int) *View {
	v := &View{}
	v.Resize(width, height)
	return v
}

// Resize reallocates the buffers if the size changed
func (v *View) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if v.Width == width && v.Height == height {
		return
	}
	v.Width, v.Height = width, height
	v.Samples = make([]Sample, width*height)
	v.Columns = make([]Column, width)
}

// At returns the sample at (x, y); outside the view reads as sky
func (v *View) At(x, y int) Sample {
	if x < 0 || x >= v.Width || y < 0 || y >= v.Height {
		return Sample{}
	}
	return v.Samples[y*v.Width+x]
}

func (v *View) set(x, y int, s Sample) {
	if x < 0 || x >= v.Width || y < 0 || y >= v.Height {
		return
	}
	v.Samples[y*v.Width+x] = s
}

// Lighting: ambient floor plus a point light above the player
const (
	ambient       = 0.18
	attenLinear   = 0.09
	attenQuad     = 0.032
	sideDimming   = 0.8
	reflectionMix = 0.55
)

// lightAt returns the light level at horizontal distance d from the player
func lightAt(d float32) float32 {
	atten := 1 / (1 + attenLinear*d + attenQuad*d*d)
	return ambient + (1-ambient)*atten
}

func wallShade(h Hit) float32 {
	s := lightAt(h.Depth)
	if h.Side == physics.AxisZ {
		s *= sideDimming
	}
	return s
}

func clamp01(v float32) float32 {
	return float32(math.Max(0, math.Min(1, float64(v))))
}
