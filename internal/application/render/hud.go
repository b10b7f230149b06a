package render

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/younwookim/pollo/internal/domain/entity"
)

// barView eases the displayed fill of one status bar toward its value.
type barView struct {
	bar    *entity.StatusBar
	target float32
	shown  float32
	tween  *gween.Tween
}

// HUD animates status bar fills.
type HUD struct {
	seconds float32
	views   []*barView
}

// NewHUD creates a HUD whose fills take seconds to reach a new value.
func NewHUD(seconds float32, bars ...*entity.StatusBar) *HUD {
	h := &HUD{seconds: seconds}
	for _, b := range bars {
		f := Fill(b)
		h.views = append(h.views, &barView{bar: b, target: f, shown: f})
	}
	return h
}

// Fill is the bar's current value as a fraction of a full bar.
func Fill(b *entity.StatusBar) float32 {
	return float32(b.Index()) / float32(entity.BarFrames-1)
}

// Update advances every tween by dt seconds.
func (h *HUD) Update(dt float32) {
	for _, v := range h.views {
		if f := Fill(v.bar); f != v.target {
			v.target = f
			if h.seconds <= 0 {
				v.shown, v.tween = f, nil
				continue
			}
			v.tween = gween.New(v.shown, f, h.seconds, ease.OutQuad)
		}
		if v.tween == nil {
			continue
		}
		shown, done := v.tween.Update(dt)
		v.shown = shown
		if done {
			v.shown = v.target
			v.tween = nil
		}
	}
}

// Shown returns the displayed fill of b, or its exact fill if b is not
// tracked by the HUD.
func (h *HUD) Shown(b *entity.StatusBar) float32 {
	for _, v := range h.views {
		if v.bar == b {
			return v.shown
		}
	}
	return Fill(b)
}
