package game

// stepAI drives the right paddle: track the ball while it approaches, drift
// back to the vertical center once it recedes. Pursuit is capped per frame
// so the AI stays beatable.
func (m *Match) stepAI() {
	p := m.CPU
	var target float64
	if m.Ball.VX > 0 {
		target = m.Ball.Y - p.H/2
	} else {
		target = (m.cfg.ScreenHeight - p.H) / 2
	}
	p.MoveToward(target)
	p.ClampY(m.cfg.ScreenHeight)
}
