// Package result provides the end-of-session screen.
package result

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/pollo/internal/application/render"
	"github.com/younwookim/pollo/internal/application/scene"
	"github.com/younwookim/pollo/internal/application/world"
	"github.com/younwookim/pollo/internal/domain/entity"
)

var (
	colorWonBG  = color.RGBA{250, 214, 150, 255}
	colorLostBG = color.RGBA{40, 20, 20, 255}
	colorWon    = color.RGBA{60, 120, 40, 255}
	colorLost   = color.RGBA{230, 80, 60, 255}
	colorText   = color.RGBA{150, 120, 90, 255}
)

// Result shows how a session ended and offers the next step.
type Result struct {
	director scene.Director
	sound    entity.SoundSink
	result   scene.Result
	screenW  int
	screenH  int

	justPressed func(ebiten.Key) bool
}

// New creates a result scene
func New(director scene.Director, sound entity.SoundSink, r scene.Result, screenW, screenH int) *Result {
	return &Result{
		director:    director,
		sound:       sound,
		result:      r,
		screenW:     screenW,
		screenH:     screenH,
		justPressed: inpututil.IsKeyJustPressed,
	}
}

// CanContinue reports whether a next level is available
func (s *Result) CanContinue() bool {
	return s.result.Outcome == world.OutcomeWon && s.result.Next != ""
}

// Update handles the menu keys (implements scene.Scene)
func (s *Result) Update(_ float64) (scene.Scene, error) {
	switch {
	case s.CanContinue() && s.justPressed(ebiten.KeyEnter):
		return s.director.Play(s.result.Next)
	case s.justPressed(ebiten.KeyR):
		return s.director.Play(s.result.Level)
	case s.justPressed(ebiten.KeyEscape), s.justPressed(ebiten.KeyT):
		return s.director.Title(), nil
	case !s.CanContinue() && s.justPressed(ebiten.KeyEnter):
		return s.director.Title(), nil
	}
	return nil, nil
}

// Draw renders the outcome and stats
func (s *Result) Draw(screen *ebiten.Image) {
	cx := float64(s.screenW) / 2
	r := s.result

	headline, clr := "GAME OVER", colorLost
	screen.Fill(colorLostBG)
	if r.Outcome == world.OutcomeWon {
		headline, clr = "YOU WIN!", colorWon
		screen.Fill(colorWonBG)
	}
	render.DrawTextCentered(screen, headline, cx, 120, clr)

	stats := fmt.Sprintf("%s  coins %d  bottles %d  time %.1fs", r.Level, r.Coins, r.Bottles, r.Time.Seconds())
	render.DrawTextCentered(screen, stats, cx, 170, colorText)

	hint := "ENTER title  R retry"
	if s.CanContinue() {
		hint = "ENTER next level  R replay  T title"
	}
	render.DrawTextCentered(screen, hint, cx, float64(s.screenH)-60, colorText)
}

// OnEnter plays the jingle for the outcome
func (s *Result) OnEnter() {
	s.sound.StopAll()
	if s.result.Outcome == world.OutcomeWon {
		s.sound.PlayOne(entity.SoundGameStart)
	} else {
		s.sound.PlayOne(entity.SoundDead)
	}
}

// OnExit silences the jingle
func (s *Result) OnExit() {
	s.sound.StopAll()
}
