package parameter

import "time"

// Frontend frame pacing
const (
	// FrameUpdateInterval drives the render loop (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// WindowWidth and WindowHeight size the windowed frontend
	WindowWidth  = 960
	WindowHeight = 540

	// WindowColumns is the number of raycast columns in the windowed frontend
	WindowColumns = 320
)

// Terminal key hold emulation: terminals report presses and autorepeat, never releases
const (
	// KeyHoldInitial covers the autorepeat delay after the first press
	KeyHoldInitial = 550 * time.Millisecond

	// KeyHoldRepeat releases a key once autorepeat stops arriving
	KeyHoldRepeat = 120 * time.Millisecond
)

// HUD
const (
	HUDRows         = 1
	MinimapMaxCells = 41
)
