package parameter

// Wall collision
const (
	// ProbeRadius is how far ahead, behind and to each side of the player the
	// resolver samples for wall penetration (world units)
	ProbeRadius = 0.30
)
