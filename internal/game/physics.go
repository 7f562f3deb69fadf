package game

import (
	"math"

	"github.com/StuartRussell17405/pong/internal/geom"
)

func (m *Match) stepBall() {
	b := m.Ball
	b.X += b.VX
	b.Y += b.VY

	// Top and bottom walls: clamp to the boundary and reflect, no energy
	// loss. A frame that hits a wall and a paddle resolves the paddle last.
	if b.Y-b.R < 0 {
		b.Y = b.R
		b.VY = -b.VY
	}
	if b.Y+b.R > m.cfg.ScreenHeight {
		b.Y = m.cfg.ScreenHeight - b.R
		b.VY = -b.VY
	}

	// Only the paddle the ball travels toward can be hit, so a receding
	// ball never re-collides with the paddle it just left.
	if b.VX < 0 && hitsPaddle(b, m.Player) {
		b.X = m.Player.X + m.Player.W + b.R
		m.bounce(m.Player, 1)
	} else if b.VX > 0 && hitsPaddle(b, m.CPU) {
		b.X = m.CPU.X - b.R
		m.bounce(m.CPU, -1)
	}

	switch {
	case b.X < -b.R:
		// Out on the left: right side scores, re-serve rightward.
		m.score(&m.Score.Right, ServeRight)
	case b.X > m.cfg.ScreenWidth+b.R:
		m.score(&m.Score.Left, ServeLeft)
	}
}

// hitsPaddle is a circle-vs-rectangle overlap test: the closest point on the
// paddle to the ball center must lie within the ball's radius.
func hitsPaddle(b *Ball, p *Paddle) bool {
	cx := geom.Clamp(b.X, p.X, p.X+p.W)
	cy := geom.Clamp(b.Y, p.Y, p.Y+p.H)
	dx := b.X - cx
	dy := b.Y - cy
	return dx*dx+dy*dy <= b.R*b.R
}

// bounce applies the paddle reflection rule. outX is the horizontal sign of
// the outgoing velocity: +1 off the left paddle, -1 off the right.
func (m *Match) bounce(p *Paddle, outX float64) {
	b := m.Ball

	// Normalized hit offset, roughly [-1, 1]. Can exceed that slightly at
	// the very edge of the collision radius; deliberately not clamped.
	rel := (b.Y - p.CenterY()) / (p.H / 2)
	angle := rel * m.cfg.BounceMaxAngle

	b.Speed += m.cfg.BounceSpeedup
	vx, vy := geom.Velocity(b.Speed, angle)
	b.VX = outX * vx
	b.VY = vy

	// Keep some horizontal pace even on extreme-angle hits, otherwise
	// near-vertical volleys stall the game.
	if math.Abs(b.VX) < m.cfg.MinHorizSpeed {
		b.VX = outX * m.cfg.MinHorizSpeed
	}
}

// score awards a point, pushes the new tally to the display and either ends
// the match at the winning score or re-serves toward serveDir.
func (m *Match) score(tally *int, serveDir int) {
	*tally++
	m.display.SetScore(m.Score.Left, m.Score.Right)

	if *tally >= m.cfg.WinningScore {
		m.Phase = PhaseOver
		if m.Score.Left >= m.cfg.WinningScore {
			m.display.SetMessage("You win!")
		} else {
			m.display.SetMessage("Game over")
		}
		return
	}
	m.ResetBall(serveDir)
}
