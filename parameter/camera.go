package parameter

// Camera and scene setup
const (
	// CameraFOVDegrees is the vertical field of view of the projection
	CameraFOVDegrees = 50.0
	CameraNear       = 0.1
	CameraFar        = 1000.0

	// EyeHeight is the camera height above the floor plane
	EyeHeight = 0.0

	// FloorHeight is the floor plane. Wall blocks span [FloorHeight, -FloorHeight]
	// and the reflection pass mirrors the scene about this plane.
	FloorHeight = -1.0

	// LightHeight is the height of the point light that follows the player
	LightHeight = 1.0

	// GoalMarkerScale is the uniform scale of the goal trophy mesh
	GoalMarkerScale = 0.5
)
