package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/pollo/internal/domain/entity"
)

// SpriteGeoM maps an imgW x imgH image onto the body's sprite rectangle in
// screen space. Reversed bodies are mirrored inside the same rectangle, so
// the body itself is never touched.
func SpriteGeoM(b *entity.Body, imgW, imgH int, camX float64) ebiten.GeoM {
	var g ebiten.GeoM
	if imgW <= 0 || imgH <= 0 {
		return g
	}
	g.Scale(b.Width/float64(imgW), b.Height/float64(imgH))
	if b.Reversed {
		g.Scale(-1, 1)
		g.Translate(b.Width, 0)
	}
	g.Translate(b.X+camX, b.Y)
	return g
}

// OnScreen reports whether the body's sprite rectangle intersects the
// screen after the camera offset.
func OnScreen(b *entity.Body, camX float64, screenW, screenH int) bool {
	r := entity.Rect{X: b.X + camX, Y: b.Y, W: b.Width, H: b.Height}
	return r.Overlaps(entity.Rect{W: float64(screenW), H: float64(screenH)})
}
