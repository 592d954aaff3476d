package input

import (
	"fmt"
	"strings"
)

// BindKind classifies what a key drives
type BindKind uint8

const (
	BindNone BindKind = iota
	BindAction
	BindIntent
)

// Binding is what one key is bound to
type Binding struct {
	Kind   BindKind
	Action Action
	Intent Intent
}

// Keymap maps canonical key names to bindings. Key names are lower case: single
// characters ("w"), named keys ("up", "left", "esc", "tab", "space", "enter")
// and ctrl chords ("ctrl+c"). Frontends translate their native key codes to
// these names, which keeps the keymap independent of any key-code scheme.
type Keymap map[string]Binding

// Key name aliases accepted in configuration
var keyAliases = map[string]string{
	"escape":     "esc",
	"return":     "enter",
	" ":          "space",
	"arrowup":    "up",
	"arrowdown":  "down",
	"arrowleft":  "left",
	"arrowright": "right",
}

// DefaultKeymap returns the default bindings: WASD moves, arrows turn and move
func DefaultKeymap() Keymap {
	action := func(a Action) Binding { return Binding{Kind: BindAction, Action: a} }
	intent := func(i Intent) Binding { return Binding{Kind: BindIntent, Intent: i} }

	return Keymap{
		"w":     action(Forward),
		"d":     action(Right),
		"s":     action(Back),
		"a":     action(Left),
		"up":    action(Forward),
		"down":  action(Back),
		"right": action(TurnRight),
		"left":  action(TurnLeft),
		"e":     action(TurnRight),
		"q":     action(TurnLeft),

		"esc":    intent(IntentQuit),
		"ctrl+c": intent(IntentQuit),
		"r":      intent(IntentRestart),
		"m":      intent(IntentToggleMute),
		"tab":    intent(IntentToggleMap),
	}
}

// Lookup returns the binding for a key name
func (k Keymap) Lookup(name string) (Binding, bool) {
	b, ok := k[NormalizeKeyName(name)]
	return b, ok && b.Kind != BindNone
}

// Clone returns an independent copy
func (k Keymap) Clone() Keymap {
	out := make(Keymap, len(k))
	for name, b := range k {
		out[name] = b
	}
	return out
}

// NormalizeKeyName lower-cases a key name and resolves aliases
func NormalizeKeyName(name string) string {
	if name == " " {
		return "space"
	}
	n := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := keyAliases[n]; ok {
		return alias
	}
	return n
}

// ParseKeyBindings converts key name → action name pairs (as read from the
// [keys] config table) into a sparse override Keymap
func ParseKeyBindings(raw map[string]string) (Keymap, error) {
	out := make(Keymap, len(raw))
	for key, actionName := range raw {
		name := NormalizeKeyName(key)
		if name == "" {
			return nil, fmt.Errorf("[keys] empty key name")
		}
		b, err := resolveBinding(actionName)
		if err != nil {
			return nil, fmt.Errorf("[keys] key %q: %w", key, err)
		}
		out[name] = b
	}
	return out, nil
}

// MergeKeymap returns base with override applied. Override entries bound to
// "none" delete the key from the result.
func MergeKeymap(base, override Keymap) Keymap {
	result := base.Clone()
	for name, b := range override {
		if b.Kind == BindNone {
			delete(result, name)
		} else {
			result[name] = b
		}
	}
	return result
}
