// Package title provides the title screen with level selection.
package title

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/pollo/internal/application/render"
	"github.com/younwookim/pollo/internal/application/scene"
	"github.com/younwookim/pollo/internal/domain/entity"
)

var (
	colorBG       = color.RGBA{250, 214, 150, 255}
	colorTitle    = color.RGBA{120, 40, 20, 255}
	colorItem     = color.RGBA{60, 40, 20, 255}
	colorSelected = color.RGBA{200, 60, 30, 255}
)

// Title lets the player pick a level and start a session.
type Title struct {
	director scene.Director
	sound    entity.SoundSink
	levels   []string
	selected int
	screenW  int
	screenH  int

	justPressed func(ebiten.Key) bool
}

// New creates a title scene. start preselects a level if it is listed.
func New(director scene.Director, sound entity.SoundSink, levels []string, start string, screenW, screenH int) *Title {
	t := &Title{
		director:    director,
		sound:       sound,
		levels:      levels,
		screenW:     screenW,
		screenH:     screenH,
		justPressed: inpututil.IsKeyJustPressed,
	}
	for i, l := range levels {
		if l == start {
			t.selected = i
		}
	}
	return t
}

// Selected returns the highlighted level
func (t *Title) Selected() string {
	if len(t.levels) == 0 {
		return ""
	}
	return t.levels[t.selected]
}

// Update handles menu input (implements scene.Scene)
func (t *Title) Update(_ float64) (scene.Scene, error) {
	n := len(t.levels)
	if n == 0 {
		return nil, nil
	}

	switch {
	case t.justPressed(ebiten.KeyArrowUp):
		t.selected = (t.selected - 1 + n) % n
	case t.justPressed(ebiten.KeyArrowDown):
		t.selected = (t.selected + 1) % n
	case t.justPressed(ebiten.KeyM):
		t.sound.SetMuted(!t.sound.Muted())
	case t.justPressed(ebiten.KeyEnter), t.justPressed(ebiten.KeySpace):
		return t.director.Play(t.Selected())
	}
	return nil, nil
}

// Draw renders the title screen
func (t *Title) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	cx := float64(t.screenW) / 2

	render.DrawTextCentered(screen, "POLLO LOCO", cx, 80, colorTitle)
	for i, l := range t.levels {
		clr, label := colorItem, l
		if i == t.selected {
			clr, label = colorSelected, "> "+l+" <"
		}
		render.DrawTextCentered(screen, label, cx, 160+float64(i)*20, clr)
	}

	hint := "UP/DOWN select  ENTER start  M mute"
	if t.sound.Muted() {
		hint += " (muted)"
	}
	render.DrawTextCentered(screen, hint, cx, float64(t.screenH)-60, colorItem)
	render.DrawTextCentered(screen, "ARROWS move  SPACE jump  D throw", cx, float64(t.screenH)-40, colorItem)
}

// OnEnter is called when the scene becomes active
func (t *Title) OnEnter() {
	t.sound.StopAll()
}

// OnExit is called when the scene is left
func (t *Title) OnExit() {}
