package input

import (
	"fmt"
	"strings"
)

var actionNames = map[Action]string{
	Forward:   "forward",
	Right:     "right",
	Back:      "back",
	Left:      "left",
	TurnRight: "turn_right",
	TurnLeft:  "turn_left",
}

// bindingRegistry maps canonical binding names to Bindings
// Used by the keymap config loader to resolve TOML action strings
var bindingRegistry map[string]Binding

func init() {
	bindingRegistry = buildBindingRegistry()
}

func buildBindingRegistry() map[string]Binding {
	r := map[string]Binding{
		// Unbind sentinel
		"none": {},

		// System
		"quit":        {Kind: BindIntent, Intent: IntentQuit},
		"restart":     {Kind: BindIntent, Intent: IntentRestart},
		"toggle_mute": {Kind: BindIntent, Intent: IntentToggleMute},
		"toggle_map":  {Kind: BindIntent, Intent: IntentToggleMap},
	}
	for a, name := range actionNames {
		r[name] = Binding{Kind: BindAction, Action: a}
	}
	return r
}

// resolveBinding converts an action name string to a Binding
func resolveBinding(name string) (Binding, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	b, ok := bindingRegistry[name]
	if !ok {
		return Binding{}, fmt.Errorf("unknown action: %q", name)
	}
	return b, nil
}
