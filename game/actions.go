package game

import "github.com/gdamore/tcell/v2"

// Action is a user command decoded from a key press.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionToggleRun
	ActionStep
	ActionFaster
	ActionSlower
	ActionReset
)

// ActionForKey maps a key event onto the command it triggers.
func ActionForKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
	default:
		return ActionNone
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return ActionQuit
	case 'p', 'P':
		return ActionToggleRun
	case ' ':
		return ActionStep
	case '+', '=':
		return ActionFaster
	case '-', '_':
		return ActionSlower
	case 'r', 'R':
		return ActionReset
	}
	return ActionNone
}
