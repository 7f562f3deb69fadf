// Package render draws the playfield from a match snapshot. It is strictly
// read-only with respect to game state.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/StuartRussell17405/pong/configs"
	"github.com/StuartRussell17405/pong/internal/game"
)

var (
	colBackground = color.RGBA{0x20, 0x20, 0x30, 0xff}
	colNet        = color.RGBA{0x50, 0x50, 0x60, 0xff}
	colPaddle     = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colBall       = color.RGBA{0xff, 0xd7, 0x00, 0xff}
)

const netWidth = 4

type Renderer struct {
	cfg  configs.Config
	face text.Face
	hud  *HUD
}

func New(cfg configs.Config, hud *HUD) *Renderer {
	return &Renderer{
		cfg:  cfg,
		face: text.NewGoXFace(basicfont.Face7x13),
		hud:  hud,
	}
}

// Draw renders one frame: background, dashed center line, both paddles, the
// ball and the HUD text.
func (r *Renderer) Draw(screen *ebiten.Image, m *game.Match) {
	screen.Fill(colBackground)

	r.drawNet(screen)
	r.drawPaddle(screen, m.Player)
	r.drawPaddle(screen, m.CPU)
	vector.FillCircle(screen, float32(m.Ball.X), float32(m.Ball.Y), float32(m.Ball.R), colBall, true)

	r.drawHUD(screen)
}

func (r *Renderer) drawNet(screen *ebiten.Image) {
	x := float32(r.cfg.ScreenWidth/2) - netWidth/2
	for y := 0.0; y < r.cfg.ScreenHeight; y += r.cfg.DashLen + r.cfg.DashGap {
		vector.FillRect(screen, x, float32(y), netWidth, float32(r.cfg.DashLen), colNet, false)
	}
}

// drawPaddle renders a paddle as a capsule: a rect with a half-circle on
// each end, since the vector package has no rounded-rect primitive.
func (r *Renderer) drawPaddle(screen *ebiten.Image, p *game.Paddle) {
	x, y := float32(p.X), float32(p.Y)
	w, h := float32(p.W), float32(p.H)
	rad := w / 2

	vector.FillRect(screen, x, y+rad, w, h-2*rad, colPaddle, true)
	vector.FillCircle(screen, x+rad, y+rad, rad, colPaddle, true)
	vector.FillCircle(screen, x+rad, y+h-rad, rad, colPaddle, true)
}

func (r *Renderer) drawHUD(screen *ebiten.Image) {
	r.drawText(screen, r.hud.left, r.cfg.ScreenWidth/4, 20, 3)
	r.drawText(screen, r.hud.right, r.cfg.ScreenWidth*3/4, 20, 3)
	if r.hud.message != "" {
		r.drawText(screen, r.hud.message, r.cfg.ScreenWidth/2, r.cfg.ScreenHeight/2-60, 2)
	}
}

func (r *Renderer) drawText(screen *ebiten.Image, s string, cx, y, scale float64) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, y)
	op.ColorScale.ScaleWithColor(colPaddle)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, s, r.face, op)
}
