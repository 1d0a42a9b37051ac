package game

import (
	"time"
)

type State uint8

const (
	Idle State = iota
	Playing
)

// Session owns all mutable play state: the active note set, the score
// and the timing clock. The renderer repositions notes through it and
// the judge removes them through it, both from the same frame loop, so
// no locking is needed.
type Session struct {
	state State
	score int
	clock Clock
	track *Track
	notes []*Note
}

func NewSession(track *Track) *Session {
	return &Session{track: track}
}

// Start resets the session to a fresh state: score to zero, the full
// parsed note set restored, the clock cleared so the next frame latches
// a new start instant. Calling it on a running session restarts it.
func (s *Session) Start() {
	s.score = 0
	s.notes = s.track.CloneNotes()
	s.clock.Reset()
	s.state = Playing
}

func (s *Session) Stop() {
	s.state = Idle
}

func (s *Session) Playing() bool {
	return s.state == Playing
}

func (s *Session) Score() int {
	return s.score
}

func (s *Session) AddScore(points int) {
	s.score += points
}

// Notes is the active note set, always an order-preserving subsequence
// of the parsed track with hit notes removed.
func (s *Session) Notes() []*Note {
	return s.notes
}

// Remove takes a single hit note out of the active set. Missed notes
// are never removed; they scroll past the hit line and stay pending.
func (s *Session) Remove(note *Note) {
	for i, n := range s.notes {
		if n == note {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			return
		}
	}
}

func (s *Session) Elapsed(now time.Time) time.Duration {
	return s.clock.Elapsed(now)
}
