package game

import "github.com/gdamore/tcell/v2"

// Action is what a key press asks the game to do.
type Action int

const (
	ActionNone Action = iota
	ActionMove
	ActionQuit
)

// Command is a decoded key press.
type Command struct {
	Action Action
	DX, DY int
}

func move(dx, dy int) Command {
	return Command{Action: ActionMove, DX: dx, DY: dy}
}

// keyMoves maps special keys, including a numpad without num lock.
var keyMoves = map[tcell.Key]Command{
	tcell.KeyLeft:  move(-1, 0),
	tcell.KeyRight: move(1, 0),
	tcell.KeyUp:    move(0, -1),
	tcell.KeyDown:  move(0, 1),
	tcell.KeyHome:  move(-1, -1),
	tcell.KeyPgUp:  move(1, -1),
	tcell.KeyEnd:   move(-1, 1),
	tcell.KeyPgDn:  move(1, 1),
}

// runeMoves covers vi keys, WASD and numpad digits.
var runeMoves = map[rune]Command{
	'h': move(-1, 0), 'a': move(-1, 0), '4': move(-1, 0),
	'l': move(1, 0), 'd': move(1, 0), '6': move(1, 0),
	'k': move(0, -1), 'w': move(0, -1), '8': move(0, -1),
	'j': move(0, 1), 's': move(0, 1), '2': move(0, 1),

	// Diagonals
	'y': move(-1, -1), '7': move(-1, -1),
	'u': move(1, -1), '9': move(1, -1),
	'b': move(-1, 1), '1': move(-1, 1),
	'n': move(1, 1), '3': move(1, 1),

	'q': {Action: ActionQuit},
}

// CommandForKey decodes a key event. Unmapped keys return ActionNone.
func CommandForKey(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Command{Action: ActionQuit}
	case tcell.KeyRune:
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return runeMoves[r]
	default:
		return keyMoves[ev.Key()]
	}
}
