package game

import (
	"time"
)

type Note struct {
	Time      time.Duration // The time the note should be hit
	Direction Direction     // The lane this note belongs to

	// This is state, recomputed every frame by the renderer
	Y float64
}
