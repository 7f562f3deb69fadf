// Package input translates host keyboard, mouse and touch state into the
// per-frame intent the simulation consumes.
//
// Precedence rule: a pointer or touch movement observed this frame produces
// an absolute target that wins over held keys; with no fresh movement the
// held keys step the paddle. Latest source wins, nothing is queued.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/StuartRussell17405/pong/internal/game"
)

// Adapter polls device state once per tick. W/S or the arrow keys move the
// paddle, Space toggles pause, the mouse or a touch drags it directly.
type Adapter struct {
	lastX, lastY int
	primed       bool
	touches      []ebiten.TouchID
}

func New() *Adapter {
	return &Adapter{}
}

// Poll reads the current device state. Call exactly once per Update so
// cursor-movement detection stays frame-accurate.
func (a *Adapter) Poll() game.Intent {
	var in game.Intent

	in.Up = ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	in.Down = ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)

	// Cursor positions arrive in logical coordinates; Ebiten rescales from
	// the displayed window size before we see them. Only a cursor that
	// actually moved counts as pointer input.
	x, y := ebiten.CursorPosition()
	if a.primed && (x != a.lastX || y != a.lastY) {
		in.TargetY = float64(y)
		in.HasTarget = true
	}
	a.lastX, a.lastY = x, y
	a.primed = true

	// An active touch always counts as fresh movement and wins outright.
	a.touches = ebiten.AppendTouchIDs(a.touches[:0])
	if len(a.touches) > 0 {
		_, ty := ebiten.TouchPosition(a.touches[0])
		in.TargetY = float64(ty)
		in.HasTarget = true
	}

	return in
}

// PauseToggled reports a pause keypress on this frame.
func (a *Adapter) PauseToggled() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace)
}
