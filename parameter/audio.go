package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Goal chime: a rising arpeggio
var GoalChimeNotes = []float64{523.25, 659.25, 783.99, 1046.50}

const GoalChimeNoteDuration = 90 * time.Millisecond
