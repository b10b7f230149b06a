package entity

// Cloud drifts left across the sky.
type Cloud struct {
	Body
	Speed float64
}

// NewCloud creates a cloud at x, y.
func NewCloud(x, y float64, shape Shape, speed float64, frame string) *Cloud {
	c := &Cloud{Body: NewBody(x, y, shape), Speed: speed}
	c.Anim.Show(frame)
	return c
}

// Drift moves the cloud one tick to the left.
func (c *Cloud) Drift() {
	c.X -= c.Speed
}

// Background is a static parallax layer.
type Background struct {
	Body
}

// NewBackground creates a layer at x.
func NewBackground(x float64, shape Shape, frame string) *Background {
	b := &Background{Body: NewBody(x, 0, shape)}
	b.Anim.Show(frame)
	return b
}
