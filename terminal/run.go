package terminal

import (
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"snake-classic/game"
	"snake-classic/game/types"
)

// NewScreen creates the terminal screen without initializing it
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create terminal screen")
	}
	return screen, nil
}

// Run initializes screen and drives session until the player quits. Redraws
// happen on input and after every scheduled tick.
func Run(session *game.Session, screen tcell.Screen) error {
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init terminal screen")
	}
	defer screen.Fini()
	screen.HideCursor()

	redraw := make(chan struct{}, 1)
	session.Scheduler().OnTick(func(types.RunState) {
		select {
		case redraw <- struct{}{}:
		default:
		}
	})
	defer session.Scheduler().OnTick(nil)

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	renderer := NewRenderer(screen)
	renderer.Draw(session.Game().Snapshot())

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				action := ActionForEvent(ev)
				if action == types.ActionQuit {
					log.Printf("[UI] [INFO] quit requested")
					return nil
				}
				if action != types.ActionNone {
					session.Dispatch(action)
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-redraw:
		}
		renderer.Draw(session.Game().Snapshot())
	}
}
