package game

import "github.com/StuartRussell17405/pong/internal/geom"

// Paddle is a vertical bat. X is fixed after creation; Y is rewritten every
// frame by its controller and always clamped to the playfield.
type Paddle struct {
	X, Y float64
	W, H float64

	// MaxSpeed is the per-frame movement cap. For the human paddle it is
	// the step applied per held key, for the AI it bounds pursuit speed.
	MaxSpeed float64
}

func (p *Paddle) CenterY() float64 { return p.Y + p.H/2 }

// ClampY keeps the paddle fully inside a field of the given height.
func (p *Paddle) ClampY(fieldHeight float64) {
	p.Y = geom.Clamp(p.Y, 0, fieldHeight-p.H)
}

// MoveToward moves Y toward target by at most MaxSpeed, snapping to the
// target once it is within reach.
func (p *Paddle) MoveToward(target float64) {
	switch d := target - p.Y; {
	case d > p.MaxSpeed:
		p.Y += p.MaxSpeed
	case d < -p.MaxSpeed:
		p.Y -= p.MaxSpeed
	default:
		p.Y = target
	}
}

// Ball state. Speed is the nominal scalar speed; the horizontal floor applied
// after a paddle bounce can push |velocity| slightly above it.
type Ball struct {
	X, Y   float64
	R      float64
	Speed  float64
	VX, VY float64
}

// Score holds the running point count for each side. Counts only ever grow;
// a full restart replaces the whole pair.
type Score struct {
	Left, Right int
}

// Phase is the match state.
type Phase uint8

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseOver
)

// Intent is the transient per-frame input record. TargetY carries an
// absolute pointer or touch position when HasTarget is set; Up and Down are
// held-key flags. A fresh pointer movement wins over held keys.
type Intent struct {
	Up, Down  bool
	TargetY   float64
	HasTarget bool
}

// Display receives score and status text pushed by the match. An empty
// message means "hide".
type Display interface {
	SetScore(left, right int)
	SetMessage(msg string)
}

type nopDisplay struct{}

func (nopDisplay) SetScore(int, int) {}
func (nopDisplay) SetMessage(string) {}
