package main

import (
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/StuartRussell17405/pong/configs"
	"github.com/StuartRussell17405/pong/internal/app"
)

func main() {
	cfg := configs.New()

	ebiten.SetWindowSize(int(cfg.ScreenWidth), int(cfg.ScreenHeight))
	ebiten.SetWindowTitle("Pong")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	slog.Info("starting game", "width", cfg.ScreenWidth, "height", cfg.ScreenHeight)

	if err := ebiten.RunGame(app.New(cfg)); err != nil {
		slog.Error("error to run game", "error", err)
		os.Exit(1)
	}
}
