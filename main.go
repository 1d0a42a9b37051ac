package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"git.lost.host/meutraa/arrowfall/internal/audio"
	"git.lost.host/meutraa/arrowfall/internal/config"
	"git.lost.host/meutraa/arrowfall/internal/fetch"
	"git.lost.host/meutraa/arrowfall/internal/game"
	"git.lost.host/meutraa/arrowfall/internal/judge"
	"git.lost.host/meutraa/arrowfall/internal/midi"
	"git.lost.host/meutraa/arrowfall/internal/render"
	"git.lost.host/meutraa/arrowfall/internal/store"
	"git.lost.host/meutraa/arrowfall/internal/theme"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

func initLogger(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
}

func run() error {
	config.Parse()
	initLogger(*config.Verbose)

	// Ensure our Default implementations are used as interfaces
	var psr midi.Parser = &midi.DefaultParser{}

	client, err := store.NewClient(*config.DSN, *config.Bucket)
	if nil != err {
		return err
	}
	defer func() {
		if err := client.Close(); nil != err {
			slog.Error("unable to close record store", "err", err)
		}
	}()

	if *config.Upload {
		return upload(client)
	}

	audioSrc := *config.Audio
	var track *game.Track
	if *config.Record != 0 {
		rec, err := client.Record(*config.Record)
		if nil != err {
			return err
		}
		audioSrc = rec.MP3URL
		track, err = psr.Parse(rec.MIDIData)
		if nil != err {
			slog.Error("unable to parse stored midi, starting with no notes",
				"record", rec.ID, "err", err)
			track = &game.Track{}
		}
	} else {
		track = midi.Load(*config.Midi, psr)
	}

	if audioSrc == "" {
		return errors.New("an audio track is required, pass --audio or --record")
	}
	audioData, err := fetch.Bytes(audioSrc)
	if nil != err {
		return fmt.Errorf("unable to load audio: %w", err)
	}
	player, err := audio.NewPlayer(audioData)
	if nil != err {
		return err
	}
	defer player.Close()

	slog.Info("track loaded", "notes", len(track.Notes), "audio", audioSrc)

	program := &Program{
		Judge:    &judge.DefaultJudge{},
		Theme:    &theme.DefaultTheme{},
		Renderer: &render.DefaultRenderer{},
		session:  game.NewSession(track),
		player:   player,
	}

	ebiten.SetWindowSize(960, 720)
	ebiten.SetWindowTitle("arrowfall")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(program)
}

// upload stores a local audio file in the media bucket, saves a game
// record pointing at it together with the raw midi bytes, and prints
// the new record id.
func upload(client *store.Client) error {
	if *config.Audio == "" || *config.Midi == "" {
		return errors.New("--upload requires both --audio and --midi")
	}
	f, err := os.Open(*config.Audio)
	if nil != err {
		return err
	}
	defer f.Close()
	url, err := client.StoreMedia(f, filepath.Base(*config.Audio))
	if nil != err {
		return err
	}
	data, err := fetch.Bytes(*config.Midi)
	if nil != err {
		return err
	}
	rec, err := client.CreateRecord(url, data)
	if nil != err {
		return err
	}
	fmt.Printf("record %v created (%v)\n", rec.ID, rec.MP3URL)
	return nil
}
