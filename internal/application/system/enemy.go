package system

import (
	"github.com/younwookim/pollo/internal/domain/entity"
	"github.com/younwookim/pollo/internal/infrastructure/config"
)

// EnemySystem runs the patrolling enemies and the end boss
type EnemySystem struct {
	config *config.PhysicsConfig
}

// NewEnemySystem creates a new enemy system
func NewEnemySystem(cfg *config.PhysicsConfig) *EnemySystem {
	return &EnemySystem{config: cfg}
}

// Move walks a live enemy one tick to the left
func (s *EnemySystem) Move(e *entity.Enemy) {
	if e.Dead {
		return
	}
	e.MoveLeft()
}

// Animate plays the walk cycle or the dead pose
func (s *EnemySystem) Animate(e *entity.Enemy) {
	if e.Dead {
		e.Anim.Play(e.Anims.Dead)
		return
	}
	e.Anim.Play(e.Anims.Walk)
}

// MoveBoss chases the character once the boss is active.
func (s *EnemySystem) MoveBoss(b *entity.Endboss, charX float64, ctx Context) {
	if b.Dead || b.IsHurt(ctx.Now) || b.Alert || !b.HadFirstContact {
		return
	}

	walking := false
	if charX < b.X {
		b.MoveLeft()
		b.Reversed = false
		walking = true
	} else if charX > b.X {
		b.MoveRight()
		b.Reversed = true
		walking = true
	}
	b.Walking = walking
}

// BossNear reports whether the character counts as close for an attack.
// Either comparison suffices, so in effect this is charX >= bossX-r.
func BossNear(charX, bossX, r float64) bool {
	return charX+r >= bossX || charX >= bossX-r
}

// AnimateBoss advances the first-contact alert and picks the boss pose.
func (s *EnemySystem) AnimateBoss(b *entity.Endboss, charX float64, ctx Context) {
	if !b.HadFirstContact {
		if charX+s.config.Boss.ContactRange < b.X {
			b.Anim.Play(b.Anims.Alert)
			b.Alert = true
			return
		}
		b.HadFirstContact = true
		b.FirstContactCounter = 0
	}

	if b.FirstContactCounter < s.config.Boss.AlertTicks {
		b.Anim.Play(b.Anims.Alert)
		b.Alert = true
		b.FirstContactCounter++
		return
	}
	b.Alert = false

	switch {
	case b.Dead:
		b.Anim.Play(b.Anims.Dead)
		b.Attacking = false
	case b.IsHurt(ctx.Now):
		b.Anim.Play(b.Anims.Hurt)
		b.Attacking = false
	case BossNear(charX, b.X, s.config.Boss.AttackRange):
		if !b.Attacking {
			b.Attacking = true
			ctx.Sound.PlayOne(entity.SoundEndbossAttack)
		}
		b.Anim.Play(b.Anims.Attack)
	case b.Walking:
		b.Anim.Play(b.Anims.Walk)
		b.Attacking = false
	}
}
