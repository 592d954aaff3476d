package parameter

// World layout
const (
	// CellSize is the world-space edge length of one maze cell
	CellSize = 2.0

	// GrassDensity is n in the n×n grass samples scattered over each floor cell
	GrassDensity = 6

	// GrassDensityMax caps config-supplied densities
	GrassDensityMax = 32
)

// Generated level defaults
const (
	MazeWidth    = 21
	MazeHeight   = 15
	MazeBraiding = 0.3 // Some loops, not too many dead ends
)
