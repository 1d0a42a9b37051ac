package midi

import (
	"bytes"
	"errors"
	"log/slog"
	"sort"
	"time"

	"gitlab.com/gomidi/midi/v2/smf"

	"git.lost.host/meutraa/arrowfall/internal/game"
)

// The fixed pitch table. Only these four pitches produce playable
// notes; anything else in the file is dropped at parse time rather
// than carried as a note with no lane.
var pitchDirections = map[uint8]game.Direction{
	37: game.Left,
	38: game.Up,
	39: game.Right,
	40: game.Down,
}

type DefaultParser struct{}

// Parse reads a standard MIDI file and turns the note-start events of
// the first note-bearing track into a play track. Event start times
// come from the file's own tempo map, in absolute microseconds.
func (p *DefaultParser) Parse(data []byte) (*game.Track, error) {
	type event struct {
		at  time.Duration
		dir game.Direction
		ok  bool
	}
	perTrack := map[int][]event{}

	reader := smf.ReadTracksFrom(bytes.NewReader(data))
	reader.Do(func(ev smf.TrackEvent) {
		var ch, key, vel uint8
		if !ev.Message.GetNoteStart(&ch, &key, &vel) {
			return
		}
		dir, ok := pitchDirections[key]
		perTrack[ev.TrackNo] = append(perTrack[ev.TrackNo], event{
			at:  time.Duration(ev.AbsMicroSeconds) * time.Microsecond,
			dir: dir,
			ok:  ok,
		})
	})
	if err := reader.Error(); nil != err {
		return nil, err
	}

	trackNos := make([]int, 0, len(perTrack))
	for no := range perTrack {
		trackNos = append(trackNos, no)
	}
	if len(trackNos) == 0 {
		return nil, errors.New("no note events in any track")
	}
	sort.Ints(trackNos)
	events := perTrack[trackNos[0]]

	notes := []game.Note{}
	dropped := 0
	for _, ev := range events {
		if !ev.ok {
			dropped++
			continue
		}
		notes = append(notes, game.Note{Time: ev.at, Direction: ev.dir})
	}
	if dropped > 0 {
		slog.Warn("dropped note events with pitches outside the lane table",
			"count", dropped, "track", trackNos[0])
	}

	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].Time < notes[j].Time
	})

	return &game.Track{Notes: notes}, nil
}
