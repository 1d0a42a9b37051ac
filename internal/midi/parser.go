package midi

import "git.lost.host/meutraa/arrowfall/internal/game"

type Parser interface {
	Parse(data []byte) (*game.Track, error)
}
