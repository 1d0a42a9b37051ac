package midi

import (
	"testing"
	"time"

	"git.lost.host/meutraa/arrowfall/internal/game"
	"git.lost.host/meutraa/arrowfall/internal/testdata"
)

func approx(a, b time.Duration) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 2*time.Millisecond
}

func TestParsePitchTable(t *testing.T) {
	data, err := testdata.MakeSMF([]testdata.NoteEvent{
		{At: 0.5, Pitch: 37},
		{At: 1.0, Pitch: 38},
		{At: 1.5, Pitch: 39},
		{At: 2.0, Pitch: 40},
	})
	if nil != err {
		t.Fatal("unable to build midi fixture", err)
	}

	psr := DefaultParser{}
	track, err := psr.Parse(data)
	if nil != err {
		t.Fatal("unable to parse", err)
	}

	expected := []game.Note{
		{Time: 500 * time.Millisecond, Direction: game.Left},
		{Time: 1000 * time.Millisecond, Direction: game.Up},
		{Time: 1500 * time.Millisecond, Direction: game.Right},
		{Time: 2000 * time.Millisecond, Direction: game.Down},
	}
	if len(track.Notes) != len(expected) {
		t.Fatal("expected", len(expected), "notes, got", len(track.Notes))
	}
	for i, note := range track.Notes {
		if note.Direction != expected[i].Direction || !approx(note.Time, expected[i].Time) {
			t.Log("note    ", i, note.Time, note.Direction)
			t.Log("expected", i, expected[i].Time, expected[i].Direction)
			t.Fail()
		}
	}
}

func TestParseDropsUnmappedPitches(t *testing.T) {
	data, err := testdata.MakeSMF([]testdata.NoteEvent{
		{At: 0.5, Pitch: 37},
		{At: 1.0, Pitch: 60}, // outside the lane table
		{At: 1.5, Pitch: 36}, // boundary, one below the table
		{At: 2.0, Pitch: 41}, // boundary, one above the table
		{At: 2.5, Pitch: 40},
	})
	if nil != err {
		t.Fatal("unable to build midi fixture", err)
	}

	psr := DefaultParser{}
	track, err := psr.Parse(data)
	if nil != err {
		t.Fatal("unable to parse", err)
	}

	if len(track.Notes) != 2 {
		t.Fatal("expected unmapped pitches dropped, got", len(track.Notes), "notes")
	}
	for _, note := range track.Notes {
		if note.Direction >= game.NumLanes {
			t.Log("note with direction outside the four lanes", note)
			t.Fail()
		}
	}
}

func TestParseOrdersByTime(t *testing.T) {
	data, err := testdata.MakeSMF([]testdata.NoteEvent{
		{At: 0.25, Pitch: 38},
		{At: 0.75, Pitch: 38},
		{At: 1.25, Pitch: 37},
	})
	if nil != err {
		t.Fatal("unable to build midi fixture", err)
	}

	psr := DefaultParser{}
	track, err := psr.Parse(data)
	if nil != err {
		t.Fatal("unable to parse", err)
	}
	for i := 1; i < len(track.Notes); i++ {
		if track.Notes[i].Time < track.Notes[i-1].Time {
			t.Log("notes out of order at", i)
			t.Fail()
		}
	}
}

func TestParseGarbage(t *testing.T) {
	psr := DefaultParser{}
	if _, err := psr.Parse([]byte("not a midi file")); nil == err {
		t.Fail()
	}
	if _, err := psr.Parse(nil); nil == err {
		t.Fail()
	}
}
