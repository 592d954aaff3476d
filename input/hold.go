package input

import "time"

// HoldTracker synthesizes key releases for frontends that only report presses.
// Terminals deliver one press, then autorepeat presses after a delay, and
// nothing on release; a key counts as held until its presses stop arriving.
type HoldTracker struct {
	initial, repeat time.Duration
	held            [ActionCount]bool
	deadline        [ActionCount]time.Time
}

// NewHoldTracker creates a tracker. initial covers the gap between the first
// press and the first autorepeat; repeat covers the gap between repeats.
func NewHoldTracker(initial, repeat time.Duration) *HoldTracker {
	return &HoldTracker{initial: initial, repeat: repeat}
}

// Press records a press of a at now. It returns true for the first press of
// a hold, when the caller should forward a press event.
func (h *HoldTracker) Press(a Action, now time.Time) bool {
	if a >= ActionCount {
		return false
	}
	if h.held[a] {
		h.deadline[a] = now.Add(h.repeat)
		return false
	}
	h.held[a] = true
	h.deadline[a] = now.Add(h.initial)
	return true
}

// Expire returns the actions whose presses stopped arriving before now and
// marks them released
func (h *HoldTracker) Expire(now time.Time) []Action {
	var released []Action
	for _, a := range Actions {
		if h.held[a] && now.After(h.deadline[a]) {
			h.held[a] = false
			released = append(released, a)
		}
	}
	return released
}

// Reset forgets all holds
func (h *HoldTracker) Reset() {
	h.held = [ActionCount]bool{}
}

// KeyNames remembers the key name each physical key was pressed under, so a
// release is routed to the same binding as its press even if modifiers
// changed in between (ctrl+w down, w up)
type KeyNames[K comparable] struct {
	down map[K]string
}

// NewKeyNames creates an empty tracker
func NewKeyNames[K comparable]() *KeyNames[K] {
	return &KeyNames[K]{down: make(map[K]string)}
}

// Press records name for key and returns it
func (n *KeyNames[K]) Press(key K, name string) string {
	n.down[key] = name
	return name
}

// Release returns the name key was pressed under and forgets it. ok is false
// for a key with no recorded press.
func (n *KeyNames[K]) Release(key K) (name string, ok bool) {
	name, ok = n.down[key]
	delete(n.down, key)
	return name, ok
}
