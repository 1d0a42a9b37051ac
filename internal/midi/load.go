package midi

import (
	"log/slog"

	"git.lost.host/meutraa/arrowfall/internal/fetch"
	"git.lost.host/meutraa/arrowfall/internal/game"
)

// Load fetches and parses a note track. A failed fetch or parse is
// logged and degrades to an empty track, so the game stays playable
// with zero notes. There is no retry.
func Load(src string, p Parser) *game.Track {
	data, err := fetch.Bytes(src)
	if nil != err {
		slog.Error("unable to load midi", "src", src, "err", err)
		return &game.Track{Name: src}
	}
	track, err := p.Parse(data)
	if nil != err {
		slog.Error("unable to parse midi", "src", src, "err", err)
		return &game.Track{Name: src}
	}
	track.Name = src
	return track
}
