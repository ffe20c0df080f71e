package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/fishtank/game"
)

// command is a viewer-level key effect that does not touch the game.
type command uint8

const (
	cmdNone command = iota
	cmdQuit
	cmdPause
)

// keyBinding maps a key event to a game action or a viewer command.
func keyBinding(ev *tcell.EventKey) (game.Action, command) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.ActionNone, cmdQuit
	case tcell.KeyRune:
	default:
		return game.ActionNone, cmdNone
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return game.ActionNone, cmdQuit
	case ' ':
		return game.ActionNone, cmdPause
	case 'f', 'F':
		return game.ActionAddFish, cmdNone
	case 'b', 'B':
		return game.ActionAddLure, cmdNone
	case 'l', 'L':
		return game.ActionToggleLine, cmdNone
	case 'p', 'P':
		return game.ActionTogglePredator, cmdNone
	}
	return game.ActionNone, cmdNone
}
