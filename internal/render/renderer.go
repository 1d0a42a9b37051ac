package render

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"git.lost.host/meutraa/arrowfall/internal/game"
	"git.lost.host/meutraa/arrowfall/internal/theme"
)

const (
	// Speed is how fast notes travel toward the hit line, in pixels
	// per second of song time.
	Speed = 200.0

	// HitLineInset is the distance of the hit line from the bottom
	// edge of the canvas.
	HitLineInset = 50.0

	// NoteRadius is the drawn radius of a note.
	NoteRadius = 14.0
)

// laneFractions are the lane x-offsets as fractions of canvas width.
// Lane index 0..3 is Left, Up, Down, Right — the Direction constant
// order, which is independent of the pitch table order.
var laneFractions = [game.NumLanes]float64{0.30, 0.45, 0.60, 0.75}

func LaneX(d game.Direction, width int) float64 {
	return laneFractions[d] * float64(width)
}

func HitLineY(height int) float64 {
	return float64(height) - HitLineInset
}

// NoteY is the vertical position of a note at the given elapsed time.
// It equals the hit line exactly when elapsed reaches the note time,
// independent of canvas width, and keeps moving up past it if the note
// is never hit.
func NoteY(noteTime, elapsed time.Duration, height int) float64 {
	return (noteTime-elapsed).Seconds()*Speed + float64(height) - HitLineInset
}

type Renderer interface {
	Reposition(notes []*game.Note, elapsed time.Duration, height int)
	Draw(dst *ebiten.Image, s *game.Session, th theme.Theme)
	AddSplash(d game.Direction, frames int)
}
