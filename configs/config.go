package configs

import "math"

// Game constants. Everything tunable lives here so the simulation,
// renderer and input adapter agree on the same numbers.
type Config struct {
	ScreenWidth  float64
	ScreenHeight float64

	PaddleWidth  float64
	PaddleHeight float64
	PaddleInset  float64

	// Per-frame movement caps. The player cap is the step applied per held
	// key, the AI cap bounds its pursuit speed. Same concept, different value.
	PlayerSpeed float64
	AISpeed     float64

	BallRadius float64

	// Serve speed ramps with the combined score, capped.
	ServeSpeed    float64
	ServeRamp     float64
	ServeRampCap  int
	ServeMaxAngle float64 // radians off horizontal

	// Paddle bounce tuning.
	BounceMaxAngle float64 // radians, vertical deflection cap
	BounceSpeedup  float64 // added to scalar speed on every paddle hit
	MinHorizSpeed  float64 // floor that prevents near-vertical stalls

	WinningScore int

	// Center line dash pattern.
	DashLen float64
	DashGap float64
}

func New() Config {
	return Config{
		ScreenWidth:  800,
		ScreenHeight: 500,

		PaddleWidth:  14,
		PaddleHeight: 100,
		PaddleInset:  24,

		PlayerSpeed: 12,
		AISpeed:     10,

		BallRadius: 9,

		ServeSpeed:    9,
		ServeRamp:     0.35,
		ServeRampCap:  12,
		ServeMaxAngle: math.Pi / 4, // 45 degrees

		BounceMaxAngle: math.Pi / 3, // 60 degrees
		BounceSpeedup:  0.8,
		MinHorizSpeed:  2.5,

		WinningScore: 10,

		DashLen: 12,
		DashGap: 10,
	}
}
