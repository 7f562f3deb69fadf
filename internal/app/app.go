// Package app wires the simulation, input adapter and renderer into an
// ebiten.Game and drives them at the host's frame cadence.
package app

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/StuartRussell17405/pong/configs"
	"github.com/StuartRussell17405/pong/internal/game"
	"github.com/StuartRussell17405/pong/internal/input"
	"github.com/StuartRussell17405/pong/internal/render"
)

// App runs one fixed simulation step per host tick, then draws. There is no
// delta-time scaling: a slow frame slows the game down. Update and Draw run
// on a single goroutine, so entity state needs no locking.
//
// Ebiten keeps ticking while the match is paused or over; Step no-ops in
// those phases, which leaves the entities frozen exactly as an un-scheduled
// loop would.
type App struct {
	cfg   configs.Config
	match *game.Match
	input *input.Adapter
	ren   *render.Renderer
}

func New(cfg configs.Config) *App {
	hud := render.NewHUD()
	a := &App{
		cfg:   cfg,
		match: game.NewMatch(cfg, hud),
		input: input.New(),
		ren:   render.New(cfg, hud),
	}
	a.match.Start()
	return a
}

func (a *App) Update() error {
	if a.input.PauseToggled() {
		a.match.TogglePause()
	}
	a.match.Step(a.input.Poll())
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.ren.Draw(screen, a.match)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(a.cfg.ScreenWidth), int(a.cfg.ScreenHeight)
}
