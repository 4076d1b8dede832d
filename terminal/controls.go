package terminal

import "github.com/gdamore/tcell/v2"

// Command is a user action decoded from the keyboard
type Command uint8

const (
	CommandQuit Command = iota
	CommandToggle
	CommandMore
	CommandFewer
	CommandGrow
	CommandShrink
)

func (c Command) String() string {
	switch c {
	case CommandQuit:
		return "quit"
	case CommandToggle:
		return "toggle"
	case CommandMore:
		return "more"
	case CommandFewer:
		return "fewer"
	case CommandGrow:
		return "grow"
	case CommandShrink:
		return "shrink"
	default:
		return "unknown"
	}
}

// Help is the key summary shown in the status line
const Help = "s:start/stop +/-:count ]/[:size q:quit"

// CommandFor decodes a key event
func CommandFor(ev *tcell.EventKey) (Command, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CommandQuit, true
	case tcell.KeyRune:
	default:
		return 0, false
	}

	switch ev.Rune() {
	case 'q':
		return CommandQuit, true
	case 's':
		return CommandToggle, true
	case '+', '=':
		return CommandMore, true
	case '-', '_':
		return CommandFewer, true
	case ']':
		return CommandGrow, true
	case '[':
		return CommandShrink, true
	}
	return 0, false
}
