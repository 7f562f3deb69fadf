package render

import "strconv"

// HUD implements game.Display. It buffers the score and message text the
// match pushes so the renderer can draw the latest values every frame.
type HUD struct {
	left, right string
	message     string
}

func NewHUD() *HUD {
	return &HUD{left: "0", right: "0"}
}

func (h *HUD) SetScore(left, right int) {
	h.left = strconv.Itoa(left)
	h.right = strconv.Itoa(right)
}

func (h *HUD) SetMessage(msg string) {
	h.message = msg
}
