package theme

import (
	"image/color"

	"git.lost.host/meutraa/arrowfall/internal/game"
)

type DefaultTheme struct{}

var noteColors = map[game.Direction]color.RGBA{
	game.Left:  {236, 30, 0, 255},  // red
	game.Up:    {0, 118, 236, 255}, // blue
	game.Down:  {236, 195, 0, 255}, // yellow
	game.Right: {0, 236, 128, 255}, // green
}

var fallback = color.RGBA{255, 255, 255, 255}

func (t *DefaultTheme) NoteColor(d game.Direction) color.RGBA {
	col, ok := noteColors[d]
	if !ok {
		return fallback
	}
	return col
}

func (t *DefaultTheme) LaneColor(d game.Direction) color.RGBA {
	return color.RGBA{106, 106, 106, 128}
}

func (t *DefaultTheme) SplashColor() color.RGBA {
	return color.RGBA{255, 255, 255, 255}
}

func (t *DefaultTheme) TouchZoneColor(d game.Direction) color.RGBA {
	col := t.NoteColor(d)
	col.A = 48
	return col
}
