package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/lavarun/system"
)

const stickDeadZone = 0.3

// command holds the one-shot keys handled by the driver rather than the
// simulation.
type command struct {
	restart bool
	pause   bool
	quit    bool
}

// readInput polls keyboard and the first gamepad.
func readInput() (system.Input, command) {
	in := system.Input{
		Left:  anyKeyPressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right: anyKeyPressed(ebiten.KeyD, ebiten.KeyArrowRight),
		Up:    anyKeyPressed(ebiten.KeyW, ebiten.KeyArrowUp),
		Down:  anyKeyPressed(ebiten.KeyS, ebiten.KeyArrowDown),
	}
	cmd := command{
		restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
		pause:   inpututil.IsKeyJustPressed(ebiten.KeyP),
		quit:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}

	ids := ebiten.AppendGamepadIDs(nil)
	if len(ids) == 0 {
		return in, cmd
	}
	gid := ids[0]
	if !ebiten.IsStandardGamepadLayoutAvailable(gid) {
		return in, cmd
	}

	x := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
	y := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickVertical)
	in.Left = in.Left || x < -stickDeadZone || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftLeft)
	in.Right = in.Right || x > stickDeadZone || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftRight)
	in.Up = in.Up || y < -stickDeadZone || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftTop)
	in.Down = in.Down || y > stickDeadZone || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftBottom)

	cmd.restart = cmd.restart || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightLeft)
	cmd.pause = cmd.pause || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight)
	return in, cmd
}

func anyKeyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
