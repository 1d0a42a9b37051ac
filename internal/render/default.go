package render

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"git.lost.host/meutraa/arrowfall/internal/game"
	"git.lost.host/meutraa/arrowfall/internal/input"
	"git.lost.host/meutraa/arrowfall/internal/theme"
)

type DefaultRenderer struct {
	decorations []*decoration
}

type decoration struct {
	direction game.Direction
	frames    int // remaining frames until removed
}

func (r *DefaultRenderer) AddSplash(d game.Direction, frames int) {
	r.decorations = append(r.decorations, &decoration{direction: d, frames: frames})
}

// Reposition recomputes every pending note's vertical position from
// the current elapsed time. It runs before any drawing in the frame.
func (r *DefaultRenderer) Reposition(notes []*game.Note, elapsed time.Duration, height int) {
	for _, note := range notes {
		note.Y = NoteY(note.Time, elapsed, height)
	}
}

func (r *DefaultRenderer) Draw(dst *ebiten.Image, s *game.Session, th theme.Theme) {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()

	r.drawLanes(dst, w, h, th)
	r.drawTouchZones(dst, w, h, th)
	r.drawNotes(dst, s, w, h, th)
	r.tickDecorations(dst, w, h, th)
}

func (r *DefaultRenderer) drawLanes(dst *ebiten.Image, w, h int, th theme.Theme) {
	y := float32(HitLineY(h))
	for d := game.Direction(0); d < game.NumLanes; d++ {
		x := float32(LaneX(d, w))
		vector.StrokeLine(dst, x, 0, x, float32(h), 1, th.LaneColor(d), false)
		vector.StrokeCircle(dst, x, y, NoteRadius+4, 2, th.LaneColor(d), true)
	}
}

func (r *DefaultRenderer) drawNotes(dst *ebiten.Image, s *game.Session, w, h int, th theme.Theme) {
	for _, note := range s.Notes() {
		if note.Y < -NoteRadius || note.Y > float64(h)+NoteRadius {
			continue
		}
		x := float32(LaneX(note.Direction, w))
		vector.DrawFilledCircle(dst, x, float32(note.Y), NoteRadius, th.NoteColor(note.Direction), true)
	}
}

func (r *DefaultRenderer) drawTouchZones(dst *ebiten.Image, w, h int, th theme.Theme) {
	for d := game.Direction(0); d < game.NumLanes; d++ {
		x, y, zw, zh := input.TouchZone(d, w, h)
		vector.DrawFilledRect(dst, float32(x), float32(y), float32(zw), float32(zh), th.TouchZoneColor(d), false)
	}
}

func (r *DefaultRenderer) tickDecorations(dst *ebiten.Image, w, h int, th theme.Theme) {
	nd := make([]*decoration, 0, len(r.decorations))
	y := float32(HitLineY(h))
	for _, dec := range r.decorations {
		if dec.frames == 0 {
			continue
		}
		col := th.SplashColor()
		col.A = uint8(int(col.A) * dec.frames / 24)
		x := float32(LaneX(dec.direction, w))
		vector.StrokeCircle(dst, x, y, NoteRadius+8, 3, col, true)
		dec.frames--
		nd = append(nd, dec)
	}
	r.decorations = nd
}
