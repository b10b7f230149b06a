package entity

import "time"

// BossAnimations holds the poses of the end boss.
type BossAnimations struct {
	Walk   Animation
	Alert  Animation
	Attack Animation
	Hurt   Animation
	Dead   Animation
}

// Endboss stays dormant until first contact, then chases the character.
type Endboss struct {
	Mover

	HadFirstContact     bool
	FirstContactCounter int
	Alert               bool
	Attacking           bool

	Anims BossAnimations
}

// NewEndboss creates a dormant boss at x.
func NewEndboss(x, y float64, shape Shape, speed float64, anims BossAnimations) *Endboss {
	b := &Endboss{
		Mover: NewMover(x, y, shape, speed),
		Anims: anims,
	}
	if len(anims.Alert) > 0 {
		b.Anim.Show(anims.Alert[0])
	}
	return b
}

// HitByBottle subtracts damage and stamps the hit time. Energy below
// zero is clamped and kills the boss. It reports whether the boss died.
func (b *Endboss) HitByBottle(now time.Duration, damage int) bool {
	if b.Dead {
		return false
	}
	b.Energy -= damage
	b.lastHit = now
	b.wasHit = true
	if b.Energy <= 0 {
		b.Die()
		return true
	}
	return false
}

// Active reports whether the alert grace period after first contact is over.
func (b *Endboss) Active() bool {
	return b.HadFirstContact && !b.Alert
}
