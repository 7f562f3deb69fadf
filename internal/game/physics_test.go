package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/StuartRussell17405/pong/configs"
	"github.com/StuartRussell17405/pong/internal/geom"
)

func newTestMatch(d Display) *Match {
	m := NewMatch(configs.New(), d)
	m.rng = rand.New(rand.NewSource(1))
	m.Phase = PhaseRunning
	return m
}

func TestBounceCenterHitIsHorizontal(t *testing.T) {
	m := newTestMatch(nil)
	b := m.Ball
	b.Speed = 9
	b.Y = m.Player.CenterY()

	m.bounce(m.Player, 1)

	if b.VY != 0 {
		t.Errorf("center hit should bounce purely horizontally, got VY = %v", b.VY)
	}
	if b.VX <= 0 {
		t.Errorf("left paddle bounce must head rightward, got VX = %v", b.VX)
	}
	if math.Abs(b.VX-9.8) > 1e-9 {
		t.Errorf("expected VX = old speed + 0.8 = 9.8, got %v", b.VX)
	}
}

func TestBounceEdgeHitAngle(t *testing.T) {
	tests := []struct {
		name string
		rel  float64
	}{
		{"bottom edge", 1},
		{"top edge", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMatch(nil)
			b := m.Ball
			b.Speed = 9
			b.Y = m.Player.CenterY() + tt.rel*m.Player.H/2

			m.bounce(m.Player, 1)

			angle := math.Atan2(b.VY, b.VX)
			want := tt.rel * math.Pi / 3
			if math.Abs(angle-want) > 1e-9 {
				t.Errorf("edge hit angle = %v rad, want %v rad", angle, want)
			}
		})
	}
}

func TestBounceSpeedMonotonic(t *testing.T) {
	m := newTestMatch(nil)
	b := m.Ball
	b.Speed = 9
	b.Y = m.Player.CenterY() + 20

	for i := 0; i < 8; i++ {
		before := b.Speed
		out := float64(1)
		if i%2 == 1 {
			out = -1
		}
		m.bounce(m.Player, out)
		if b.Speed < before+0.8 {
			t.Fatalf("bounce %d: speed %v -> %v, want at least +0.8", i, before, b.Speed)
		}
		if got := geom.Speed(b.VX, b.VY); got < before+0.8-1e-9 {
			t.Fatalf("bounce %d: |velocity| = %v, want at least %v", i, got, before+0.8)
		}
	}
}

func TestBounceHorizontalSpeedFloor(t *testing.T) {
	m := newTestMatch(nil)
	b := m.Ball

	// A slow ball at the paddle edge yields a 60 degree bounce whose
	// horizontal component (1.8 * cos 60 = 0.9) sits under the floor.
	b.Speed = 1
	b.Y = m.Player.CenterY() + m.Player.H/2
	m.bounce(m.Player, 1)
	if b.VX != 2.5 {
		t.Errorf("left paddle floor: VX = %v, want 2.5", b.VX)
	}

	b.Speed = 1
	b.Y = m.CPU.CenterY() + m.CPU.H/2
	m.bounce(m.CPU, -1)
	if b.VX != -2.5 {
		t.Errorf("right paddle floor: VX = %v, want -2.5", b.VX)
	}
}

func TestWallReflection(t *testing.T) {
	m := newTestMatch(nil)
	b := m.Ball
	b.X = m.cfg.ScreenWidth / 2
	b.Y = b.R + 1
	b.VX = 3
	b.VY = -5

	m.stepBall()

	if b.Y != b.R {
		t.Errorf("ball should be clamped to the top boundary, Y = %v, want %v", b.Y, b.R)
	}
	if b.VY != 5 {
		t.Errorf("vertical velocity should invert, VY = %v, want 5", b.VY)
	}

	b.Y = m.cfg.ScreenHeight - b.R - 1
	b.VY = 5
	m.stepBall()
	if b.Y != m.cfg.ScreenHeight-b.R {
		t.Errorf("ball should be clamped to the bottom boundary, Y = %v", b.Y)
	}
	if b.VY != -5 {
		t.Errorf("vertical velocity should invert at the bottom, VY = %v", b.VY)
	}
}

func TestPaddleCollisionRepositionsBall(t *testing.T) {
	m := newTestMatch(nil)
	b := m.Ball
	p := m.Player
	b.Speed = 9
	b.X = p.X + p.W + b.R + 2
	b.Y = p.CenterY()
	b.VX = -6
	b.VY = 0

	m.stepBall()

	if want := p.X + p.W + b.R; b.X != want {
		t.Errorf("ball should sit just outside the paddle face, X = %v, want %v", b.X, want)
	}
	if b.VX <= 0 {
		t.Errorf("ball should head rightward after hitting the left paddle, VX = %v", b.VX)
	}
}

func TestRecedingBallDoesNotRecollide(t *testing.T) {
	m := newTestMatch(nil)
	b := m.Ball

	// Overlapping the left paddle but already moving away.
	b.X = m.Player.X + m.Player.W
	b.Y = m.Player.CenterY()
	b.VX = 4
	b.VY = 0
	wantX := b.X + b.VX

	m.stepBall()

	if b.X != wantX {
		t.Errorf("receding ball should only translate, X = %v, want %v", b.X, wantX)
	}
	if b.VX != 4 {
		t.Errorf("receding ball velocity should be untouched, VX = %v", b.VX)
	}
}

func TestCircleRectOverlap(t *testing.T) {
	p := &Paddle{X: 100, Y: 100, W: 14, H: 100}

	tests := []struct {
		name string
		x, y float64
		hit  bool
	}{
		{"center overlap", 110, 150, true},
		{"touching face", 100 + 14 + 9, 150, true},
		{"just past face", 100 + 14 + 9.5, 150, false},
		{"corner within radius", 120, 94, true},
		{"corner outside radius", 122, 92, false},
		{"far away", 400, 150, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Ball{X: tt.x, Y: tt.y, R: 9}
			if got := hitsPaddle(b, p); got != tt.hit {
				t.Errorf("hitsPaddle(ball at %v,%v) = %v, want %v", tt.x, tt.y, got, tt.hit)
			}
		})
	}
}
