// Package render turns session frames into pictures: camera matrices for GPU
// renderers and a software raycaster for the terminal and window frontends
package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/maze-walk/parameter"
)

// Camera is a first-person pinhole camera
type Camera struct {
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	Up        mgl32.Vec3
	Aspect    float32 // viewport width / height
	FOV       float32 // vertical, radians
}

// NewCamera uses the default vertical field of view
func NewCamera(pos, dir, up mgl32.Vec3, aspect float32) Camera {
	return Camera{
		Position:  pos,
		Direction: dir,
		Up:        up,
		Aspect:    aspect,
		FOV:       mgl32.DegToRad(parameter.CameraFOVDegrees),
	}
}

// View looks from the position along the direction
func (c Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Direction), c.Up)
}

// Projection is the perspective projection
func (c Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(c.FOV, c.Aspect, parameter.CameraNear, parameter.CameraFar)
}

func (c Camera) ViewProjection() mgl32.Mat4 {
	return c.Projection().Mul4(c.View())
}

// TanHalfFOV returns tan of the half angles, horizontal then vertical
func (c Camera) TanHalfFOV() (h, v float32) {
	v = float32(math.Tan(float64(c.FOV) / 2))
	return v * c.Aspect, v
}

// Project maps a world point to viewport coordinates (origin top-left, y down)
// and its depth along the view direction. ok is false behind the near plane.
func (c Camera) Project(p mgl32.Vec3, width, height int) (x, y, depth float32, ok bool) {
	clip := c.ViewProjection().Mul4x1(p.Vec4(1))
	depth = clip.W()
	if depth < parameter.CameraNear {
		return 0, 0, depth, false
	}
	ndcX, ndcY := clip.X()/depth, clip.Y()/depth
	x = (ndcX + 1) / 2 * float32(width)
	y = (1 - ndcY) / 2 * float32(height)
	return x, y, depth, true
}

// MirrorMatrix reflects the scene about the floor plane for the reflection pass
func MirrorMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(0, 2*parameter.FloorHeight, 0).Mul4(mgl32.Scale3D(1, -1, 1))
}

// GoalMarkerTransform places the unit goal marker at the goal position
func GoalMarkerTransform(goal mgl32.Vec3) mgl32.Mat4 {
	s := float32(parameter.GoalMarkerScale)
	return mgl32.Translate3D(goal.X(), goal.Y(), goal.Z()).Mul4(mgl32.Scale3D(s, s, s))
}
