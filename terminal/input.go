package terminal

import (
	"github.com/gdamore/tcell/v2"

	"snake-classic/game/types"
)

var keyActions = map[tcell.Key]types.Action{
	tcell.KeyUp:     types.ActionUp,
	tcell.KeyDown:   types.ActionDown,
	tcell.KeyLeft:   types.ActionLeft,
	tcell.KeyRight:  types.ActionRight,
	tcell.KeyEnter:  types.ActionStart,
	tcell.KeyEscape: types.ActionQuit,
	tcell.KeyCtrlC:  types.ActionQuit,
}

var runeActions = map[rune]types.Action{
	'w': types.ActionUp,
	'W': types.ActionUp,
	's': types.ActionDown,
	'S': types.ActionDown,
	'a': types.ActionLeft,
	'A': types.ActionLeft,
	'd': types.ActionRight,
	'D': types.ActionRight,
	' ': types.ActionStartPause,
	'p': types.ActionPause,
	'P': types.ActionPause,
	'r': types.ActionRestart,
	'R': types.ActionRestart,
	'+': types.ActionSpeedUp,
	'=': types.ActionSpeedUp,
	'-': types.ActionSpeedDown,
	'_': types.ActionSpeedDown,
	'q': types.ActionQuit,
	'Q': types.ActionQuit,
}

// ActionForEvent maps a key event to its action
func ActionForEvent(ev *tcell.EventKey) types.Action {
	if ev.Key() == tcell.KeyRune {
		if a, ok := runeActions[ev.Rune()]; ok {
			return a
		}
		return types.ActionNone
	}
	if a, ok := keyActions[ev.Key()]; ok {
		return a
	}
	return types.ActionNone
}
