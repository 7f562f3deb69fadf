package game

import (
	"math/rand"
	"time"

	"github.com/StuartRussell17405/pong/configs"
	"github.com/StuartRussell17405/pong/internal/geom"
)

// Serve directions for ResetBall.
const (
	ServeLeft   = -1
	ServeRandom = 0
	ServeRight  = 1
)

// Match owns all game state: both paddles, the ball, the score and the
// phase. The loop driver holds one Match and advances it a fixed step per
// host tick; nothing else mutates it.
type Match struct {
	Player *Paddle // left side, human
	CPU    *Paddle // right side, AI
	Ball   *Ball
	Score  Score
	Phase  Phase

	cfg     configs.Config
	display Display
	rng     *rand.Rand
}

// NewMatch builds the entities at their start positions. display may be nil.
// The match starts in the Over phase; call Start to begin play.
func NewMatch(cfg configs.Config, display Display) *Match {
	if display == nil {
		display = nopDisplay{}
	}
	startY := (cfg.ScreenHeight - cfg.PaddleHeight) / 2
	return &Match{
		Player: &Paddle{
			X:        cfg.PaddleInset,
			Y:        startY,
			W:        cfg.PaddleWidth,
			H:        cfg.PaddleHeight,
			MaxSpeed: cfg.PlayerSpeed,
		},
		CPU: &Paddle{
			X:        cfg.ScreenWidth - cfg.PaddleInset - cfg.PaddleWidth,
			Y:        startY,
			W:        cfg.PaddleWidth,
			H:        cfg.PaddleHeight,
			MaxSpeed: cfg.AISpeed,
		},
		Ball:    &Ball{R: cfg.BallRadius},
		Phase:   PhaseOver,
		cfg:     cfg,
		display: display,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Start resets the scores, serves toward a random side and puts the match
// in motion. Also the harness entry point for a full (re)start.
func (m *Match) Start() {
	m.Score = Score{}
	m.Phase = PhaseRunning
	m.display.SetScore(0, 0)
	m.display.SetMessage("")
	m.ResetBall(ServeRandom)
}

// ResetBall re-serves from the center of the field. dir > 0 serves rightward,
// dir < 0 leftward, 0 picks a random side. Speed ramps with the combined
// score, capped, and the angle is random within the serve cone.
func (m *Match) ResetBall(dir int) {
	if dir == 0 {
		if m.rng.Intn(2) == 0 {
			dir = ServeLeft
		} else {
			dir = ServeRight
		}
	}

	total := m.Score.Left + m.Score.Right
	if total > m.cfg.ServeRampCap {
		total = m.cfg.ServeRampCap
	}
	speed := m.cfg.ServeSpeed + float64(total)*m.cfg.ServeRamp
	angle := (m.rng.Float64()*2 - 1) * m.cfg.ServeMaxAngle

	b := m.Ball
	b.X = m.cfg.ScreenWidth / 2
	b.Y = m.cfg.ScreenHeight / 2
	b.Speed = speed
	b.VX, b.VY = geom.Velocity(speed, angle)
	if dir < 0 {
		b.VX = -b.VX
	}
}

// TogglePause flips Running and Paused. Ignored once the match is over.
func (m *Match) TogglePause() {
	switch m.Phase {
	case PhaseRunning:
		m.Phase = PhasePaused
		m.display.SetMessage("Paused")
	case PhasePaused:
		m.Phase = PhaseRunning
		m.display.SetMessage("")
	}
}

// Step advances the simulation one frame: paddles, then ball translation,
// wall and paddle collisions, then scoring. No-op unless running.
func (m *Match) Step(in Intent) {
	if m.Phase != PhaseRunning {
		return
	}
	m.stepPlayer(in)
	m.stepAI()
	m.stepBall()
}

func (m *Match) stepPlayer(in Intent) {
	p := m.Player
	if in.HasTarget {
		// Pointer movement beats held keys.
		p.Y = in.TargetY - p.H/2
	} else {
		if in.Up {
			p.Y -= p.MaxSpeed
		}
		if in.Down {
			p.Y += p.MaxSpeed
		}
	}
	p.ClampY(m.cfg.ScreenHeight)
}
