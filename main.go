package main

import (
	"errors"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"trajview/internal/config"
	"trajview/internal/game"
)

func main() {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Projectile Range - Wheel/Up/Down: aim, SPACE: launch, Esc: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(config.MinWidth, config.MinHeight, -1, -1)

	if err := ebiten.RunGame(game.NewGame()); err != nil && !errors.Is(err, ebiten.Termination) {
		// No console to print to; report through a native dialog.
		_ = zenity.Error("projectile range: "+err.Error(), zenity.Title("Projectile Range"))
		os.Exit(1)
	}
}
