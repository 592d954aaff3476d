package input

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// TerminalKeyName converts a tcell key event to a keymap key name.
// Returns "" for keys with no name.
func TerminalKeyName(ev *tcell.EventKey) string {
	return terminalKeyName(ev.Key(), ev.Rune(), ev.Modifiers())
}

func terminalKeyName(key tcell.Key, r rune, mod tcell.ModMask) string {
	switch key {
	case tcell.KeyRune:
		if mod&tcell.ModCtrl != 0 {
			return "ctrl+" + strings.ToLower(string(r))
		}
		if r == ' ' {
			return "space"
		}
		return strings.ToLower(string(r))
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyCtrlQ:
		return "ctrl+q"
	default:
		return ""
	}
}
