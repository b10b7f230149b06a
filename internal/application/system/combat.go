package system

import (
	"github.com/younwookim/pollo/internal/application/timer"
	"github.com/younwookim/pollo/internal/domain/entity"
	"github.com/younwookim/pollo/internal/infrastructure/config"
)

// CombatSystem resolves collisions between the character, enemies, the
// boss, thrown bottles and pickups.
type CombatSystem struct {
	config     *config.PhysicsConfig
	throwable  *config.ThrowableConfig
	sched      *timer.Scheduler
	throwables []*entity.Throwable

	coolingDown bool

	// Event callbacks
	OnCharacterHit func()
	OnBossHit      func()
	OnPickup       func(kind entity.CollectibleKind)
	OnThrow        func()
}

// NewCombatSystem creates a new combat system. Explosions schedule their
// removal on sched.
func NewCombatSystem(cfg *config.PhysicsConfig, throwable *config.ThrowableConfig, sched *timer.Scheduler) *CombatSystem {
	return &CombatSystem{
		config:     cfg,
		throwable:  throwable,
		sched:      sched,
		throwables: make([]*entity.Throwable, 0, 8),
	}
}

// Throwables returns the live bottles
func (s *CombatSystem) Throwables() []*entity.Throwable {
	return s.throwables
}

// CoolingDown reports whether a throw is blocked until the key is released
func (s *CombatSystem) CoolingDown() bool {
	return s.coolingDown
}

// Update runs one interaction pass.
func (s *CombatSystem) Update(c *entity.Character, lvl *entity.Level, ctx Context) {
	s.bottlesVsEnemies(lvl, ctx)
	s.characterVsEnemies(c, lvl, ctx)
	if lvl.Endboss != nil {
		s.bossInteractions(c, lvl.Endboss, ctx)
	}
	s.handleThrow(c, lvl.Endboss, ctx)
	s.collect(c, lvl, ctx)
	s.sweep()
}

func (s *CombatSystem) bottlesVsEnemies(lvl *entity.Level, ctx Context) {
	for _, e := range lvl.Enemies {
		if e.Dead {
			continue
		}
		for _, t := range s.throwables {
			if t.Exploded || !t.Collides(&e.Body) {
				continue
			}
			s.explode(t, &e.Body)
			e.Die()
			ctx.Sound.PlayOne(entity.SoundBottleHit)
			ctx.Sound.PlayOne(entity.SoundEnemyDead)
			break
		}
	}
}

func (s *CombatSystem) characterVsEnemies(c *entity.Character, lvl *entity.Level, ctx Context) {
	for _, e := range lvl.Enemies {
		if e.Dead || !c.Collides(&e.Body) {
			continue
		}
		if c.IsFallingOnto(&e.Body) {
			e.Die()
			c.Bounce(s.config.Gravity.BounceImpulse)
			ctx.Sound.PlayOne(entity.SoundEnemyDead)
			continue
		}
		if !c.IsHurt(ctx.Now) {
			s.damageCharacter(c, ctx)
		}
	}
}

func (s *CombatSystem) bossInteractions(c *entity.Character, b *entity.Endboss, ctx Context) {
	for _, t := range s.throwables {
		if t.Exploded || !t.Collides(&b.Body) {
			continue
		}
		s.explode(t, &b.Body)
		ctx.Sound.PlayOne(entity.SoundBottleHit)
		b.HitByBottle(ctx.Now, s.config.Combat.BottleDamage)
		if s.OnBossHit != nil {
			s.OnBossHit()
		}
	}

	if c.Collides(&b.Body) && !c.IsHurt(ctx.Now) {
		s.damageCharacter(c, ctx)
	}
}

func (s *CombatSystem) damageCharacter(c *entity.Character, ctx Context) {
	if c.Dead {
		return
	}
	if c.Hit(ctx.Now, s.config.Combat.ContactDamage) {
		ctx.Sound.PlayOne(entity.SoundDead)
	} else {
		ctx.Sound.PlayOne(entity.SoundHurt)
	}
	if s.OnCharacterHit != nil {
		s.OnCharacterHit()
	}
}

// handleThrow spawns at most one bottle per key press.
func (s *CombatSystem) handleThrow(c *entity.Character, b *entity.Endboss, ctx Context) {
	if !ctx.Input.Throw {
		s.coolingDown = false
		return
	}
	if s.coolingDown || c.Dead || c.Bottles < 1 {
		return
	}
	if b != nil && b.IsHurt(ctx.Now) {
		return
	}

	throw := s.config.Combat.Throw
	right := !c.Reversed
	x := c.X + throw.OffsetRight
	if !right {
		x = c.X + throw.OffsetLeft
	}
	t := entity.NewThrowable(
		x, c.Y+throw.OffsetY,
		SpriteShape(s.throwable.Sprite),
		throw.Speed,
		throw.LaunchSpeedY,
		right,
		entity.ThrowableAnimations{
			Rotation: s.throwable.Sprite.Animations["rotation"],
			Splash:   s.throwable.Sprite.Animations["splash"],
		},
	)
	t.Acceleration = s.config.Gravity.Acceleration
	s.throwables = append(s.throwables, t)

	c.Bottles--
	c.ResetStanding()
	s.coolingDown = true
	if s.OnThrow != nil {
		s.OnThrow()
	}
}

func (s *CombatSystem) collect(c *entity.Character, lvl *entity.Level, ctx Context) {
	for _, p := range lvl.Collectibles {
		if p.Collected || !c.Collides(&p.Body) {
			continue
		}
		p.Collect()
		switch p.Kind {
		case entity.KindCoin:
			c.Coins++
			ctx.Sound.PlayOne(entity.SoundCoin)
		case entity.KindBottle:
			c.Bottles++
			ctx.Sound.PlayOne(entity.SoundBottleCollect)
		}
		if s.OnPickup != nil {
			s.OnPickup(p.Kind)
		}
	}
}

// explode pins t onto target and schedules its removal.
func (s *CombatSystem) explode(t *entity.Throwable, target *entity.Body) {
	if !t.Explode(target) {
		return
	}
	s.sched.After(s.sched.Ticks(s.config.Timing.ExplodeRemoval()), func() {
		t.MarkedForRemoval = true
	})
}

// sweep drops bottles marked for removal, keeping order.
func (s *CombatSystem) sweep() {
	n := 0
	for _, t := range s.throwables {
		if !t.MarkedForRemoval {
			s.throwables[n] = t
			n++
		}
	}
	for i := n; i < len(s.throwables); i++ {
		s.throwables[i] = nil
	}
	s.throwables = s.throwables[:n]
}
