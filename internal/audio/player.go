// Package audio plays the session's backing track. Playback is started
// and stopped in lockstep with session state; the visual clock runs on
// its own and is never resynchronized against the stream.
package audio

import (
	"bytes"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
)

type Player struct {
	streamer beep.StreamSeekCloser
	format   beep.Format
	finished atomic.Bool
}

// NewPlayer decodes an mp3 stream and initialises the speaker for its
// sample rate.
func NewPlayer(data []byte) (*Player, error) {
	streamer, format, err := mp3.Decode(io.NopCloser(bytes.NewReader(data)))
	if nil != err {
		return nil, fmt.Errorf("unable to decode mp3: %w", err)
	}
	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/20)); nil != err {
		return nil, fmt.Errorf("unable to init speaker: %w", err)
	}
	return &Player{streamer: streamer, format: format}, nil
}

// Start latches the stream back to position zero and begins playback.
func (p *Player) Start() error {
	speaker.Clear()
	if err := p.streamer.Seek(0); nil != err {
		return fmt.Errorf("unable to seek to start: %w", err)
	}
	p.finished.Store(false)
	speaker.Play(beep.Seq(p.streamer, beep.Callback(func() {
		p.finished.Store(true)
	})))
	return nil
}

func (p *Player) Stop() {
	speaker.Clear()
}

// Finished reports whether the stream has played to its end since the
// last Start. The callback runs on the speaker goroutine, so this is
// the only cross-thread state in the game and is kept atomic.
func (p *Player) Finished() bool {
	return p.finished.Load()
}

func (p *Player) Close() error {
	return p.streamer.Close()
}
