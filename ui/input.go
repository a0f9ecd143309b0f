package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-classic/game/types"
)

// keyBindings maps raylib key codes to actions. Order matters only for
// PollActions output, which follows this slice.
var keyBindings = []struct {
	key    int32
	action types.Action
}{
	{rl.KeyUp, types.ActionUp},
	{rl.KeyW, types.ActionUp},
	{rl.KeyDown, types.ActionDown},
	{rl.KeyS, types.ActionDown},
	{rl.KeyLeft, types.ActionLeft},
	{rl.KeyA, types.ActionLeft},
	{rl.KeyRight, types.ActionRight},
	{rl.KeyD, types.ActionRight},
	{rl.KeySpace, types.ActionStartPause},
	{rl.KeyEnter, types.ActionStart},
	{rl.KeyP, types.ActionPause},
	{rl.KeyR, types.ActionRestart},
	{rl.KeyEqual, types.ActionSpeedUp},
	{rl.KeyKpAdd, types.ActionSpeedUp},
	{rl.KeyMinus, types.ActionSpeedDown},
	{rl.KeyKpSubtract, types.ActionSpeedDown},
	{rl.KeyQ, types.ActionQuit},
	{rl.KeyEscape, types.ActionQuit},
}

// ActionForKey returns the action bound to key
func ActionForKey(key int32) types.Action {
	for _, b := range keyBindings {
		if b.key == key {
			return b.action
		}
	}
	return types.ActionNone
}

// PollActions returns the actions whose keys were pressed this frame
func PollActions() []types.Action {
	var actions []types.Action
	for _, b := range keyBindings {
		if rl.IsKeyPressed(b.key) {
			actions = append(actions, b.action)
		}
	}
	return actions
}
