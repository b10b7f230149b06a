package config

import (
	"fmt"
	"time"
)

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display DisplayConfig `json:"display"`
	Timing  TimingConfig  `json:"timing"`
	Gravity GravityConfig `json:"gravity"`
	Camera  CameraConfig  `json:"camera"`
	Combat  CombatConfig  `json:"combat"`
	Boss    BossConfig    `json:"boss"`
	HUD     HUDConfig     `json:"hud"`
}

// Validate rejects rates and cadences that cannot drive the tick scheduler.
func (p *PhysicsConfig) Validate() error {
	if p.Display.Framerate <= 0 {
		return fmt.Errorf("%w: display.framerate must be positive, got %d", ErrInvalidConfig, p.Display.Framerate)
	}
	if p.Timing.AnimationInterval <= 0 {
		return fmt.Errorf("%w: timing.animationInterval must be positive, got %d", ErrInvalidConfig, p.Timing.AnimationInterval)
	}
	return nil
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"` // simulation ticks per second
}

// TimingConfig holds cadences and windows. Durations are in milliseconds.
type TimingConfig struct {
	AnimationInterval int `json:"animationInterval"` // ticks between animation frames
	HurtWindowMs      int `json:"hurtWindowMs"`
	LongIdleMs        int `json:"longIdleMs"`
	ExplodeRemovalMs  int `json:"explodeRemovalMs"`
}

// HurtWindow returns the post-hit window as a duration
func (t TimingConfig) HurtWindow() time.Duration {
	return time.Duration(t.HurtWindowMs) * time.Millisecond
}

// LongIdle returns the standing time before the long idle pose
func (t TimingConfig) LongIdle() time.Duration {
	return time.Duration(t.LongIdleMs) * time.Millisecond
}

// ExplodeRemoval returns the delay between an explosion and removal
func (t TimingConfig) ExplodeRemoval() time.Duration {
	return time.Duration(t.ExplodeRemovalMs) * time.Millisecond
}

type GravityConfig struct {
	Acceleration  float64 `json:"acceleration"`
	GroundY       float64 `json:"groundY"`
	JumpImpulse   float64 `json:"jumpImpulse"`
	BounceImpulse float64 `json:"bounceImpulse"`
	DespawnY      float64 `json:"despawnY"` // thrown bottles below this are removed
}

type CameraConfig struct {
	OffsetX float64 `json:"offsetX"`
}

type CombatConfig struct {
	ContactDamage int         `json:"contactDamage"`
	BottleDamage  int         `json:"bottleDamage"`
	Throw         ThrowConfig `json:"throw"`
}

type ThrowConfig struct {
	OffsetRight  float64 `json:"offsetRight"`
	OffsetLeft   float64 `json:"offsetLeft"`
	OffsetY      float64 `json:"offsetY"`
	Speed        float64 `json:"speed"`
	LaunchSpeedY float64 `json:"launchSpeedY"`
}

type BossConfig struct {
	ContactRange float64 `json:"contactRange"`
	AttackRange  float64 `json:"attackRange"`
	AlertTicks   int     `json:"alertTicks"`
}

type HUDConfig struct {
	TweenSeconds float32    `json:"tweenSeconds"`
	Bars         BarsConfig `json:"bars"`
}

type BarsConfig struct {
	Width   float64        `json:"width"`
	Height  float64        `json:"height"`
	Health  PositionConfig `json:"health"`
	Coins   PositionConfig `json:"coins"`
	Bottles PositionConfig `json:"bottles"`
	Boss    PositionConfig `json:"boss"`
}

type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RangeConfig describes Min + rand*Spread.
type RangeConfig struct {
	Min    float64 `json:"min"`
	Spread float64 `json:"spread"`
}
