// Package testdata builds small standard MIDI files for tests.
package testdata

import (
	"bytes"
	"math"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

type NoteEvent struct {
	At    float64 // note start in seconds
	Pitch uint8
}

const (
	ticksPerQuarter = 960
	bpm             = 120
	// 120 bpm and 960 ticks per quarter puts 1920 ticks in a second.
	ticksPerSecond = ticksPerQuarter * bpm / 60
)

// MakeSMF writes a single-track MIDI file with one note-on per event,
// at the given absolute times. Events must be ordered by At ascending
// and at least a few milliseconds apart.
func MakeSMF(events []NoteEvent) ([]byte, error) {
	sm := smf.New()
	sm.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(bpm))
	prev := int64(0)
	for _, ev := range events {
		at := int64(math.Round(ev.At * ticksPerSecond))
		tr.Add(uint32(at-prev), midi.NoteOn(0, ev.Pitch, 100))
		tr.Add(2, midi.NoteOff(0, ev.Pitch))
		prev = at + 2
	}
	tr.Close(0)
	if err := sm.Add(tr); nil != err {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := sm.WriteTo(&buf); nil != err {
		return nil, err
	}
	return buf.Bytes(), nil
}
