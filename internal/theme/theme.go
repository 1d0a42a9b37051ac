package theme

import (
	"image/color"

	"git.lost.host/meutraa/arrowfall/internal/game"
)

type Theme interface {
	NoteColor(d game.Direction) color.RGBA
	LaneColor(d game.Direction) color.RGBA
	SplashColor() color.RGBA
	TouchZoneColor(d game.Direction) color.RGBA
}
