package judge

import (
	"testing"
	"time"

	"git.lost.host/meutraa/arrowfall/internal/game"
)

func playingSession(notes ...game.Note) *game.Session {
	s := game.NewSession(&game.Track{Notes: notes})
	s.Start()
	return s
}

func TestHitWindowBoundary(t *testing.T) {
	j := DefaultJudge{}
	tests := []struct {
		elapsed time.Duration
		hit     bool
	}{
		{2*time.Second + 149*time.Millisecond, true},
		{2*time.Second - 149*time.Millisecond, true},
		{2*time.Second + 150*time.Millisecond, false}, // strictly less than
		{2*time.Second + 151*time.Millisecond, false},
		{2*time.Second - 151*time.Millisecond, false},
	}
	for _, test := range tests {
		s := playingSession(game.Note{Time: 2 * time.Second, Direction: game.Up})
		_, _, hit := j.ApplyInput(s, game.Up, test.elapsed)
		if hit != test.hit {
			t.Log("elapsed ", test.elapsed)
			t.Log("hit     ", hit)
			t.Log("expected", test.hit)
			t.Fail()
		}
	}
}

func TestFirstInOrderWins(t *testing.T) {
	// Two Up notes both inside the window; the earlier original index
	// must win even though the later one is nearer in time.
	j := DefaultJudge{}
	s := playingSession(
		game.Note{Time: 1000 * time.Millisecond, Direction: game.Up},
		game.Note{Time: 1140 * time.Millisecond, Direction: game.Up},
	)
	note, _, hit := j.ApplyInput(s, game.Up, 1130*time.Millisecond)
	if !hit {
		t.Fatal("expected a hit")
	}
	if note.Time != 1000*time.Millisecond {
		t.Log("hit note at", note.Time, "- wanted the earliest, not the nearest")
		t.Fail()
	}
}

func TestUpNoteScenario(t *testing.T) {
	j := DefaultJudge{}
	s := playingSession(game.Note{Time: 2 * time.Second, Direction: game.Up})

	_, _, hit := j.ApplyInput(s, game.Up, 2050*time.Millisecond)
	if !hit || s.Score() != 100 || len(s.Notes()) != 0 {
		t.Log("hit", hit, "score", s.Score(), "notes", len(s.Notes()))
		t.Fail()
	}

	// The note is gone; a second input changes nothing
	_, _, hit = j.ApplyInput(s, game.Up, 2100*time.Millisecond)
	if hit || s.Score() != 100 {
		t.Log("second input: hit", hit, "score", s.Score())
		t.Fail()
	}
}

func TestWrongDirectionIsAMiss(t *testing.T) {
	j := DefaultJudge{}
	s := playingSession(game.Note{Time: 2 * time.Second, Direction: game.Left})
	if _, _, hit := j.ApplyInput(s, game.Right, 2*time.Second); hit {
		t.Fail()
	}
	if s.Score() != 0 || len(s.Notes()) != 1 {
		t.Log("score", s.Score(), "notes", len(s.Notes()))
		t.Fail()
	}
}

func TestInputIgnoredWhenIdle(t *testing.T) {
	j := DefaultJudge{}
	s := game.NewSession(&game.Track{Notes: []game.Note{
		{Time: time.Second, Direction: game.Up},
	}})
	if _, _, hit := j.ApplyInput(s, game.Up, time.Second); hit {
		t.Fail()
	}
	if s.Score() != 0 {
		t.Fail()
	}
}

func TestOnlyFirstMatchRemoved(t *testing.T) {
	// Two qualifying notes; a single input removes exactly one.
	j := DefaultJudge{}
	s := playingSession(
		game.Note{Time: 1000 * time.Millisecond, Direction: game.Down},
		game.Note{Time: 1050 * time.Millisecond, Direction: game.Down},
	)
	j.ApplyInput(s, game.Down, 1020*time.Millisecond)
	if len(s.Notes()) != 1 || s.Score() != 100 {
		t.Log("notes", len(s.Notes()), "score", s.Score())
		t.Fail()
	}
}

var benchResult bool

func BenchmarkApplyInput(b *testing.B) {
	notes := make([]game.Note, 1000)
	for i := range notes {
		notes[i] = game.Note{
			Time:      time.Duration(i) * 250 * time.Millisecond,
			Direction: game.Direction(i % game.NumLanes),
		}
	}
	j := DefaultJudge{}
	s := playingSession(notes...)
	elapsed := 200 * time.Second
	b.ResetTimer()

	hit := false
	for n := 0; n < b.N; n++ {
		_, _, hit = j.ApplyInput(s, game.Left, elapsed)
	}
	benchResult = hit
}
