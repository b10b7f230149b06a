package system

import (
	"github.com/younwookim/pollo/internal/domain/entity"
	"github.com/younwookim/pollo/internal/infrastructure/config"
)

// PlayerSystem drives the character from input
type PlayerSystem struct {
	config *config.PhysicsConfig
}

// NewPlayerSystem creates a new player system
func NewPlayerSystem(cfg *config.PhysicsConfig) *PlayerSystem {
	return &PlayerSystem{config: cfg}
}

// Move applies one tick of input and returns the new camera offset.
// The character stays inside [0, endX].
func (s *PlayerSystem) Move(c *entity.Character, ctx Context, endX float64) float64 {
	if c.Dead {
		c.Walking = false
		return s.CameraX(c)
	}

	walking := false
	if ctx.Input.Right && c.X < endX {
		c.MoveRight()
		if c.X > endX {
			c.X = endX
		}
		c.Reversed = false
		walking = true
	}
	if ctx.Input.Left && c.X > 0 {
		c.MoveLeft()
		if c.X < 0 {
			c.X = 0
		}
		c.Reversed = true
		walking = true
	}
	jumped := false
	if ctx.Input.Jump && !c.Jumping {
		c.Jump(s.config.Gravity.JumpImpulse)
		ctx.Sound.PlayOne(entity.SoundJump)
		jumped = true
	}
	c.Walking = walking
	if walking || jumped {
		c.ResetStanding()
	}

	return s.CameraX(c)
}

// CameraX returns the camera offset that keeps the character in view
func (s *PlayerSystem) CameraX(c *entity.Character) float64 {
	return -c.X + s.config.Camera.OffsetX
}

// Animate picks the character pose. First match wins:
// dead, hurt, jumping, walking, long idle, idle.
func (s *PlayerSystem) Animate(c *entity.Character, ctx Context) {
	hurt := c.IsHurt(ctx.Now)
	longIdle := false

	switch {
	case c.Dead:
		c.Anim.Play(c.Anims.Dead)
		c.ResetStanding()
	case hurt:
		c.Anim.Play(c.Anims.Hurt)
		c.ResetStanding()
	case c.Jumping:
		c.Anim.Play(c.Anims.Jump)
		c.ResetStanding()
	case c.Walking:
		c.Anim.Play(c.Anims.Walk)
		c.ResetStanding()
	default:
		if c.StandStill(ctx.Now) >= s.config.Timing.LongIdle() {
			c.Anim.Play(c.Anims.LongIdle)
			longIdle = true
		} else {
			c.Anim.Play(c.Anims.Idle)
		}
	}

	if longIdle {
		ctx.Sound.PlayOne(entity.SoundLongIdle)
	} else {
		ctx.Sound.StopOne(entity.SoundLongIdle)
	}

	if !c.Dead && !hurt && !c.Jumping && c.Walking {
		ctx.Sound.PlayOne(entity.SoundWalk)
	} else {
		ctx.Sound.StopOne(entity.SoundWalk)
	}
}
