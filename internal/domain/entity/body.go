package entity

import "time"

// Default physics values. Systems override them from physics.json.
const (
	DefaultEnergy        = 100
	DefaultDamage        = 10
	DefaultJumpImpulse   = 30.0
	DefaultBounceImpulse = 15.0
	DefaultAcceleration  = 2.5
	DefaultHurtWindow    = time.Second
)

// Body is the drawable unit every entity is built from.
// X, Y is the top-left corner of the sprite rectangle.
type Body struct {
	X, Y          float64
	Width, Height float64
	Offset        Offset
	Reversed      bool // draw mirrored horizontally
	Anim          Animator
}

// NewBody creates a body at x, y with the given shape.
func NewBody(x, y float64, shape Shape) Body {
	return Body{
		X:      x,
		Y:      y,
		Width:  shape.Width,
		Height: shape.Height,
		Offset: shape.Offset,
	}
}

// Hitbox returns the collision rectangle derived from the current position.
func (b *Body) Hitbox() Rect {
	return Rect{
		X: b.X + b.Offset.Left,
		Y: b.Y + b.Offset.Top,
		W: b.Width - b.Offset.Left - b.Offset.Right,
		H: b.Height - b.Offset.Top - b.Offset.Bottom,
	}
}

// Collides reports whether the hitboxes of b and o overlap.
func (b *Body) Collides(o *Body) bool {
	return b.Hitbox().Overlaps(o.Hitbox())
}

// Mover adds velocity, gravity and the damage model to a Body.
type Mover struct {
	Body

	Speed        float64 // horizontal units per tick
	SpeedY       float64 // positive is upward
	Acceleration float64 // gravity per tick
	Energy       int

	HurtWindow time.Duration

	Walking bool
	Jumping bool
	Dead    bool

	lastHit time.Duration
	wasHit  bool
}

// NewMover creates a mover with full energy and default gravity.
func NewMover(x, y float64, shape Shape, speed float64) Mover {
	return Mover{
		Body:         NewBody(x, y, shape),
		Speed:        speed,
		Acceleration: DefaultAcceleration,
		Energy:       DefaultEnergy,
		HurtWindow:   DefaultHurtWindow,
	}
}

// ApplyGravity integrates one tick of vertical motion.
// Below ground and not rising, the mover snaps to ground and lands.
func (m *Mover) ApplyGravity(ground float64) {
	if m.Y < ground || m.SpeedY > 0 {
		m.Y -= m.SpeedY
		m.SpeedY -= m.Acceleration
		return
	}
	m.Y = ground
	m.SpeedY = 0
	m.Jumping = false
}

// Jump starts a jump and skips the startup frames.
func (m *Mover) Jump(impulse float64) {
	m.SpeedY = impulse
	m.Anim.SetCounter(2)
	m.Jumping = true
}

// Bounce gives a smaller upward kick after a stomp.
func (m *Mover) Bounce(impulse float64) {
	m.SpeedY = impulse
	m.Jumping = true
}

// Hit applies damage at time now. It reports whether the mover died.
// Dead movers ignore further hits.
func (m *Mover) Hit(now time.Duration, amount int) bool {
	if m.Dead {
		return false
	}
	m.Energy -= amount
	m.lastHit = now
	m.wasHit = true
	if m.Energy <= 0 {
		m.Die()
		return true
	}
	return false
}

// Die clamps energy to zero and marks the mover dead.
func (m *Mover) Die() {
	m.Energy = 0
	m.Dead = true
	m.Walking = false
}

// IsHurt reports whether now lies inside the window after the last hit.
func (m *Mover) IsHurt(now time.Duration) bool {
	if !m.wasHit {
		return false
	}
	return now-m.lastHit < m.HurtWindow
}

// LastHit returns the time of the most recent hit.
func (m *Mover) LastHit() time.Duration {
	return m.lastHit
}

// IsFallingOnto reports whether m is descending with its bottom edge
// at or below the top of o.
func (m *Mover) IsFallingOnto(o *Body) bool {
	return m.SpeedY < 0 && m.Y+m.Height >= o.Y
}

// MoveRight steps right by Speed.
func (m *Mover) MoveRight() {
	m.X += m.Speed
}

// MoveLeft steps left by Speed.
func (m *Mover) MoveLeft() {
	m.X -= m.Speed
}
