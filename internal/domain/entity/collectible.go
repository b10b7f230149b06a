package entity

// Collectible is a static pickup. Once collected it is never drawn or
// checked again.
type Collectible struct {
	Body
	Kind      CollectibleKind
	Collected bool
	Frames    Animation
}

// NewCollectible creates an uncollected pickup.
func NewCollectible(kind CollectibleKind, x, y float64, shape Shape, frames Animation) *Collectible {
	c := &Collectible{
		Body:   NewBody(x, y, shape),
		Kind:   kind,
		Frames: frames,
	}
	if len(frames) > 0 {
		c.Anim.Show(frames[0])
	}
	return c
}

// Collect marks the pickup taken. It reports false if it already was.
func (c *Collectible) Collect() bool {
	if c.Collected {
		return false
	}
	c.Collected = true
	return true
}
