package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"git.lost.host/meutraa/arrowfall/internal/audio"
	"git.lost.host/meutraa/arrowfall/internal/config"
	"git.lost.host/meutraa/arrowfall/internal/game"
	"git.lost.host/meutraa/arrowfall/internal/input"
	"git.lost.host/meutraa/arrowfall/internal/judge"
	"git.lost.host/meutraa/arrowfall/internal/render"
	"git.lost.host/meutraa/arrowfall/internal/theme"
)

// Program is the Ebiten game. Update and Draw run cooperatively on one
// thread, so the session is only ever touched from the frame loop: the
// judge removes notes during Update, the renderer repositions them at
// the top of Draw.
type Program struct {
	Judge    judge.Judge
	Theme    theme.Theme
	Renderer render.Renderer

	session *game.Session
	player  *audio.Player

	width, height int
	elapsed       time.Duration

	// Stats for the current session
	totalHits int
	lastError time.Duration
}

func (p *Program) startSession() error {
	p.resetSession()
	return p.player.Start()
}

func (p *Program) resetSession() {
	p.session.Start()
	// The clock does not latch until the next Update, so the first Draw
	// must not see the previous session's elapsed time.
	p.elapsed = 0
	p.totalHits = 0
	p.lastError = 0
}

func (p *Program) stopSession() {
	p.session.Stop()
	p.player.Stop()
}

func (p *Program) Update() error {
	now := time.Now()

	if !p.session.Playing() {
		if input.StartPressed() {
			return p.startSession()
		}
		return nil
	}

	// The session has no natural terminal transition of its own; it
	// ends when the audio runs out or the player bails.
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || p.player.Finished() {
		p.stopSession()
		return nil
	}

	p.elapsed = p.session.Elapsed(now) + *config.Offset

	for _, dir := range input.JustPressed(p.width, p.height) {
		note, distance, ok := p.Judge.ApplyInput(p.session, dir, p.elapsed)
		if !ok {
			continue
		}
		p.totalHits++
		p.lastError = -distance
		p.Renderer.AddSplash(note.Direction, 24)
	}
	return nil
}

func (p *Program) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})

	if p.session.Playing() {
		p.Renderer.Reposition(p.session.Notes(), p.elapsed, p.height)
	}
	p.Renderer.Draw(screen, p.session, p.Theme)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %6v", p.session.Score()), 8, 8)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(" Hits: %6v", p.totalHits), 8, 24)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Notes: %6v", len(p.session.Notes())), 8, 40)
	if p.totalHits > 0 {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("Error: %4vms", p.lastError.Milliseconds()), 8, 56)
	}

	if !p.session.Playing() {
		ebitenutil.DebugPrintAt(screen, "press enter or tap to start", p.width/2-80, p.height/2)
	}
}

// Layout fills the container width and caps the canvas height to
// min(70% of the outside height, 75% of the width), recomputed on
// every resize.
func (p *Program) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := outsideWidth
	h := int(0.70 * float64(outsideHeight))
	if limit := int(0.75 * float64(outsideWidth)); limit < h {
		h = limit
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	p.width, p.height = w, h
	return w, h
}
