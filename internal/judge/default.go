package judge

import (
	"time"

	"git.lost.host/meutraa/arrowfall/internal/game"
)

type DefaultJudge struct{}

func abs(x time.Duration) time.Duration {
	if x < 0 {
		return -x
	}
	return x
}

// ApplyInput scans the active notes in original order and takes the
// first one whose direction matches and whose time is inside the hit
// window. Earliest original time wins, not nearest in time. Input on
// an idle session is ignored entirely.
func (j *DefaultJudge) ApplyInput(s *game.Session, dir game.Direction, elapsed time.Duration) (*game.Note, time.Duration, bool) {
	if !s.Playing() {
		return nil, 0, false
	}
	for _, note := range s.Notes() {
		if note.Direction != dir {
			continue
		}
		distance := note.Time - elapsed
		if abs(distance) < Window {
			s.Remove(note)
			s.AddScore(PointsPerHit)
			return note, distance, true
		}
	}
	return nil, 0, false
}
