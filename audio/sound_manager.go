package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/maze-walk/parameter"
)

const (
	sampleRate = beep.SampleRate(parameter.AudioSampleRate)

	bumpDuration  = 70 * time.Millisecond
	bumpFrequency = 90.0
)

// SoundManager plays the session's one-shot sounds through a shared mixer.
// Every method is safe to call before Initialize or after Cleanup.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
}

// NewSoundManager creates a sound manager. volume is a base-2 gain applied to
// every sound: 0 is unchanged, -1 is half amplitude.
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup drops queued sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker close; an empty mixer plays silence
	sm.initialized = false
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.muted && sm.initialized {
		speaker.Lock()
		sm.mixer.Clear()
		speaker.Unlock()
	}
	return sm.muted
}

// SetMuted sets mute
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Muted reports whether sounds are suppressed
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// PlayGoal plays the goal chime
func (sm *SoundManager) PlayGoal() {
	chime, err := GoalChime(sampleRate, parameter.GoalChimeNotes, parameter.GoalChimeNoteDuration)
	if err != nil {
		return
	}
	sm.play(chime)
}

// PlayBump plays a short thud for walking into a wall
func (sm *SoundManager) PlayBump() {
	sm.play(beep.Take(sampleRate.N(bumpDuration), NewThudGenerator(sampleRate, bumpFrequency)))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	speaker.Lock()
	sm.mixer.Add(&effects.Volume{Streamer: s, Base: 2, Volume: sm.volume})
	speaker.Unlock()
}

// GoalChime is a run of sine notes, each noteLength long
func GoalChime(sr beep.SampleRate, notes []float64, noteLength time.Duration) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, freq := range notes {
		tone, err := generators.SineTone(sr, freq)
		if err != nil {
			return nil, fmt.Errorf("chime note %.2fHz: %w", freq, err)
		}
		parts = append(parts, beep.Take(sr.N(noteLength), tone))
	}
	return beep.Seq(parts...), nil
}

// ThudGenerator is a low sine with a fast exponential decay
type ThudGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewThudGenerator creates a thud generator
func NewThudGenerator(sr beep.SampleRate, freq float64) *ThudGenerator {
	return &ThudGenerator{sr: sr, freq: freq}
}

func (g *ThudGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * 40)
		sample := 0.4 * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ThudGenerator) Err() error {
	return nil
}
