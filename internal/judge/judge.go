package judge

import (
	"time"

	"git.lost.host/meutraa/arrowfall/internal/game"
)

const (
	// Window is the tolerance around a note's nominal time within
	// which an input counts as a hit. Strictly less-than.
	Window = 150 * time.Millisecond

	// PointsPerHit is the only increment the score ever moves by.
	PointsPerHit = 100
)

type Judge interface {
	// ApplyInput resolves one directional input against the session's
	// active notes at the given elapsed time. On a hit the matched
	// note is removed and the score awarded; on a miss nothing
	// changes.
	ApplyInput(s *game.Session, dir game.Direction, elapsed time.Duration) (*game.Note, time.Duration, bool)
}
