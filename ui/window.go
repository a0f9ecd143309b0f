package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-classic/game"
	"snake-classic/game/types"
)

const (
	windowWidth  = 800
	windowHeight = 560
)

// Run opens the window and drives session until the window closes or the player quits
func Run(session *game.Session) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(windowWidth, windowHeight, "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	// Esc is bound to quit through the action table
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)

	renderer := NewRenderer()
	for !rl.WindowShouldClose() {
		for _, action := range PollActions() {
			if action == types.ActionQuit {
				return
			}
			session.Dispatch(action)
		}
		renderer.Draw(session.Game().Snapshot())
	}
}
