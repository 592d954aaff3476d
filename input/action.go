package input

// Action is one of the six held navigation controls
type Action uint8

const (
	Forward Action = iota
	Right
	Back
	Left
	TurnRight
	TurnLeft
	ActionCount
)

// Actions lists every navigation action in index order
var Actions = [ActionCount]Action{Forward, Right, Back, Left, TurnRight, TurnLeft}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ActionSet is the set of currently held actions, indexed by Action.
// It only records last known state: a press and release between two reads
// is not observed.
type ActionSet [ActionCount]bool

// Press marks a held
func (s *ActionSet) Press(a Action) {
	if a < ActionCount {
		s[a] = true
	}
}

// Release marks a released
func (s *ActionSet) Release(a Action) {
	if a < ActionCount {
		s[a] = false
	}
}

// Held reports whether a is held
func (s ActionSet) Held(a Action) bool {
	return a < ActionCount && s[a]
}

// Clear releases everything
func (s *ActionSet) Clear() {
	*s = ActionSet{}
}

// Any reports whether at least one action is held
func (s ActionSet) Any() bool {
	for _, held := range s {
		if held {
			return true
		}
	}
	return false
}

// Intent is a one-shot system command, as opposed to a held Action
type Intent uint8

const (
	IntentNone Intent = iota
	IntentQuit
	IntentRestart
	IntentToggleMute
	IntentToggleMap
)
