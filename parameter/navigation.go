package parameter

import "time"

// Navigation tick
const (
	// TickInterval is the minimum elapsed time before the controller advances.
	// Movement is per tick, not per second: a faster frame loop does not move
	// the player faster once it exceeds one tick per interval.
	TickInterval = 10 * time.Millisecond

	// TurnStepDegrees is the facing rotation applied per tick while a turn key is held
	TurnStepDegrees = 2.0

	// MoveSpeed is the world-unit displacement per tick per held movement key
	MoveSpeed = 0.1
)
