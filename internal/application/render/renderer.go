// Package render draws a world: scenery and pickups, enemies, the boss,
// the character, thrown bottles and the status bars.
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/pollo/internal/application/world"
	"github.com/younwookim/pollo/internal/domain/entity"
	"github.com/younwookim/pollo/internal/infrastructure/assets"
)

// Colors for placeholder rendering
var (
	colorSky       = color.RGBA{250, 214, 150, 255}
	colorGround    = color.RGBA{196, 140, 80, 255}
	colorCloud     = color.RGBA{255, 255, 255, 200}
	colorCharacter = color.RGBA{70, 120, 200, 255}
	colorChicken   = color.RGBA{150, 90, 40, 255}
	colorChick     = color.RGBA{240, 210, 60, 255}
	colorDead      = color.RGBA{90, 90, 90, 255}
	colorBoss      = color.RGBA{170, 60, 40, 255}
	colorCoin      = color.RGBA{255, 215, 0, 255}
	colorBottle    = color.RGBA{60, 160, 90, 255}
	colorSplash    = color.RGBA{220, 120, 40, 255}
	colorBarBG     = color.RGBA{60, 60, 60, 200}
	colorHealth    = color.RGBA{100, 200, 100, 255}
	colorBossBar   = color.RGBA{220, 80, 60, 255}
	colorText      = color.RGBA{40, 30, 20, 255}
)

// Options configures a Renderer.
type Options struct {
	ScreenWidth  int
	ScreenHeight int
	GroundY      float64 // top of the ground strip in placeholder mode
	HUDSeconds   float32
	Placeholders bool // draw colored boxes for sprites that are not loaded
}

// Renderer draws worlds. It keeps a HUD per world for the bar tweens.
type Renderer struct {
	assets *assets.Loader
	opts   Options

	hud      *HUD
	hudWorld *world.World
}

// NewRenderer creates a renderer reading sprites from loader.
func NewRenderer(loader *assets.Loader, opts Options) *Renderer {
	return &Renderer{assets: loader, opts: opts}
}

// Update advances the HUD tweens of w by dt seconds.
func (r *Renderer) Update(w *world.World, dt float32) {
	r.hudFor(w).Update(dt)
}

func (r *Renderer) hudFor(w *world.World) *HUD {
	if r.hudWorld != w {
		r.hudWorld = w
		r.hud = NewHUD(r.opts.HUDSeconds, w.Bars.Health, w.Bars.Coins, w.Bars.Bottles, w.Bars.Boss)
	}
	return r.hud
}

// Draw renders w. Nothing is drawn once the session is over.
func (r *Renderer) Draw(screen *ebiten.Image, w *world.World) {
	if w.GameOver() {
		return
	}
	screen.Fill(colorSky)
	camX := w.CameraX

	if r.opts.Placeholders {
		h := float32(r.opts.ScreenHeight) - float32(r.opts.GroundY)
		vector.DrawFilledRect(screen, 0, float32(r.opts.GroundY), float32(r.opts.ScreenWidth), h, colorGround, false)
	}
	for _, b := range w.Level.Backgrounds {
		r.drawBody(screen, &b.Body, camX, nil)
	}
	for _, c := range w.Level.Clouds {
		r.drawBody(screen, &c.Body, camX, colorCloud)
	}

	r.drawBars(screen, w)

	for _, c := range w.Level.Collectibles {
		if c.Collected {
			continue
		}
		clr := colorCoin
		if c.Kind == entity.KindBottle {
			clr = colorBottle
		}
		r.drawBody(screen, &c.Body, camX, clr)
	}
	for _, e := range w.Level.Enemies {
		clr := colorChicken
		switch {
		case e.Dead:
			clr = colorDead
		case e.Kind == entity.KindChick:
			clr = colorChick
		}
		r.drawBody(screen, &e.Body, camX, clr)
	}
	if b := w.Level.Endboss; b != nil {
		clr := colorBoss
		if b.Dead {
			clr = colorDead
		}
		r.drawBody(screen, &b.Body, camX, clr)
	}
	r.drawBody(screen, &w.Character.Body, camX, colorCharacter)
	for _, t := range w.Throwables() {
		clr := colorBottle
		if t.Exploded {
			clr = colorSplash
		}
		r.drawBody(screen, &t.Body, camX, clr)
	}
}

// drawBody draws the body's current frame. A nil fallback skips the
// placeholder box.
func (r *Renderer) drawBody(screen *ebiten.Image, b *entity.Body, camX float64, fallback color.Color) {
	if !OnScreen(b, camX, r.opts.ScreenWidth, r.opts.ScreenHeight) {
		return
	}
	if img := r.image(b.Anim.Frame()); img != nil {
		bounds := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM = SpriteGeoM(b, bounds.Dx(), bounds.Dy(), camX)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)
		return
	}
	if r.opts.Placeholders && fallback != nil {
		vector.DrawFilledRect(screen, float32(b.X+camX), float32(b.Y), float32(b.Width), float32(b.Height), fallback, false)
	}
}

func (r *Renderer) image(path string) *ebiten.Image {
	if r.assets == nil || path == "" {
		return nil
	}
	return r.assets.Image(path).Image()
}

func (r *Renderer) drawBars(screen *ebiten.Image, w *world.World) {
	hud := r.hudFor(w)
	r.drawBar(screen, hud, w.Bars.Health, colorHealth, "")
	r.drawBar(screen, hud, w.Bars.Coins, colorCoin, fmt.Sprintf("x%d", w.Character.Coins))
	r.drawBar(screen, hud, w.Bars.Bottles, colorBottle, fmt.Sprintf("x%d", w.Character.Bottles))
	if b := w.Level.Endboss; b != nil && b.HadFirstContact {
		r.drawBar(screen, hud, w.Bars.Boss, colorBossBar, "")
	}
}

func (r *Renderer) drawBar(screen *ebiten.Image, hud *HUD, bar *entity.StatusBar, clr color.Color, label string) {
	if img := r.image(bar.Frame()); img != nil {
		bounds := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(bar.Width/float64(bounds.Dx()), bar.Height/float64(bounds.Dy()))
		op.GeoM.Translate(bar.X, bar.Y)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)
	} else if r.opts.Placeholders {
		x, y := float32(bar.X), float32(bar.Y+bar.Height/3)
		w, h := float32(bar.Width), float32(bar.Height/3)
		vector.DrawFilledRect(screen, x, y, w, h, colorBarBG, false)
		vector.DrawFilledRect(screen, x, y, w*hud.Shown(bar), h, clr, false)
	}
	if label != "" {
		DrawText(screen, label, bar.X+bar.Width+4, bar.Y+bar.Height/3, colorText)
	}
}
