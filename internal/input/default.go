package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"git.lost.host/meutraa/arrowfall/internal/game"
)

// Fixed key bindings in lane order, so simultaneous presses always
// resolve in the same order; there is no remapping.
var keyBindings = [game.NumLanes]ebiten.Key{
	game.Left:  ebiten.KeyArrowLeft,
	game.Up:    ebiten.KeyArrowUp,
	game.Down:  ebiten.KeyArrowDown,
	game.Right: ebiten.KeyArrowRight,
}

// touchZoneFraction is the height of the touch control strip along the
// bottom edge, as a fraction of canvas height.
const touchZoneFraction = 0.18

// TouchZone is the rectangle of the on-screen control for a direction,
// one quarter of the canvas width each, in lane order.
func TouchZone(d game.Direction, w, h int) (x, y, zw, zh float64) {
	zw = float64(w) / game.NumLanes
	zh = touchZoneFraction * float64(h)
	return float64(d) * zw, float64(h) - zh, zw, zh
}

// TouchDirection maps a touch point to the direction of the zone it
// landed in, if any.
func TouchDirection(x, y, w, h int) (game.Direction, bool) {
	if float64(y) < float64(h)-touchZoneFraction*float64(h) {
		return 0, false
	}
	if x < 0 || x >= w || y >= h {
		return 0, false
	}
	d := game.Direction(x * game.NumLanes / w)
	return d, true
}

// JustPressed collects the directional inputs that occurred since the
// previous frame, from both the keyboard and the touch zones.
func JustPressed(w, h int) []game.Direction {
	dirs := []game.Direction{}
	for d, key := range keyBindings {
		if inpututil.IsKeyJustPressed(key) {
			dirs = append(dirs, game.Direction(d))
		}
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		if d, ok := TouchDirection(x, y, w, h); ok {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// StartPressed reports whether the start control was activated this
// frame: Enter, a mouse click, or any touch while idle.
func StartPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	return len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}
