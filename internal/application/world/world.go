// Package world runs one play session: a character, a level and the
// timer registry that drives every behaviour tick by tick.
package world

import (
	"time"

	"github.com/younwookim/pollo/internal/application/system"
	"github.com/younwookim/pollo/internal/application/timer"
	"github.com/younwookim/pollo/internal/domain/entity"
	"github.com/younwookim/pollo/internal/infrastructure/config"
)

// Outcome is how a session ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

// String returns the name of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "none"
	}
}

// Callbacks are invoked at most once when the session ends.
type Callbacks struct {
	OnWon  func()
	OnLost func()
}

// Bars are the four HUD projections.
type Bars struct {
	Health  *entity.StatusBar
	Coins   *entity.StatusBar
	Bottles *entity.StatusBar
	Boss    *entity.StatusBar
}

// World owns the session state. It is not safe for concurrent use.
type World struct {
	config *config.GameConfig
	sched  *timer.Scheduler
	sound  entity.SoundSink

	physics *system.PhysicsSystem
	player  *system.PlayerSystem
	enemies *system.EnemySystem
	combat  *system.CombatSystem

	Character *entity.Character
	Level     *entity.Level
	CameraX   float64
	Bars      Bars

	input     system.InputState
	callbacks Callbacks
	gameOver  bool
	outcome   Outcome
}

// New creates a world and registers its jobs. Nothing runs until Step.
func New(cfg *config.GameConfig, level *entity.Level, character *entity.Character, sound entity.SoundSink, cb Callbacks) *World {
	if sound == nil {
		sound = &entity.NopSink{}
	}
	sched := timer.New(cfg.Physics.Display.Framerate)

	w := &World{
		config:    cfg,
		sched:     sched,
		sound:     sound,
		physics:   system.NewPhysicsSystem(cfg.Physics),
		player:    system.NewPlayerSystem(cfg.Physics),
		enemies:   system.NewEnemySystem(cfg.Physics),
		combat:    system.NewCombatSystem(cfg.Physics, &cfg.Entities.Throwable, sched),
		Character: character,
		Level:     level,
		callbacks: cb,
	}
	w.applyPhysics()
	w.initBars()
	w.CameraX = w.player.CameraX(character)

	w.combat.OnCharacterHit = w.refreshHealth
	w.combat.OnBossHit = w.refreshBoss
	w.combat.OnPickup = func(entity.CollectibleKind) { w.refreshAmounts() }
	w.combat.OnThrow = w.refreshAmounts

	w.registerJobs()
	return w
}

// applyPhysics copies the configured gravity and hurt window onto every mover.
func (w *World) applyPhysics() {
	p := w.config.Physics
	set := func(m *entity.Mover) {
		m.Acceleration = p.Gravity.Acceleration
		m.HurtWindow = p.Timing.HurtWindow()
	}
	set(&w.Character.Mover)
	for _, e := range w.Level.Enemies {
		set(&e.Mover)
	}
	if w.Level.Endboss != nil {
		set(&w.Level.Endboss.Mover)
	}
}

func (w *World) initBars() {
	hud := w.config.Physics.HUD.Bars
	frames := w.config.Entities.StatusBars
	bar := func(p config.PositionConfig, mode entity.BarMode, f []string) *entity.StatusBar {
		return entity.NewStatusBar(p.X, p.Y, hud.Width, hud.Height, mode, f)
	}
	w.Bars = Bars{
		Health:  bar(hud.Health, entity.BarPercent, frames.Health),
		Coins:   bar(hud.Coins, entity.BarAmount, frames.Coins),
		Bottles: bar(hud.Bottles, entity.BarAmount, frames.Bottles),
		Boss:    bar(hud.Boss, entity.BarPercent, frames.Boss),
	}
	w.refreshHealth()
	w.refreshBoss()
	w.refreshAmounts()
}

func (w *World) refreshHealth() {
	w.Bars.Health.Set(w.Character.Energy)
}

func (w *World) refreshBoss() {
	if w.Level.Endboss != nil {
		w.Bars.Boss.Set(w.Level.Endboss.Energy)
	}
}

func (w *World) refreshAmounts() {
	w.Bars.Coins.Set(w.Character.Coins)
	w.Bars.Bottles.Set(w.Character.Bottles)
}

// registerJobs wires the behaviours in their fixed per-tick order.
func (w *World) registerJobs() {
	w.sched.Every(1, w.moveCharacter)
	w.sched.Every(1, w.applyGravity)
	w.sched.Every(1, w.moveEnemies)
	w.sched.Every(1, w.moveThrowables)
	w.sched.Every(1, w.moveClouds)
	w.sched.Every(uint64(w.config.Physics.Timing.AnimationInterval), w.animate)
	w.sched.Every(1, w.interact)
}

func (w *World) context() system.Context {
	return system.Context{Now: w.sched.Elapsed(), Input: w.input, Sound: w.sound}
}

func (w *World) moveCharacter() {
	w.CameraX = w.player.Move(w.Character, w.context(), w.Level.EndX)
}

func (w *World) applyGravity() {
	w.physics.ApplyGravity(&w.Character.Mover)
}

func (w *World) moveEnemies() {
	for _, e := range w.Level.Enemies {
		w.enemies.Move(e)
	}
	if b := w.Level.Endboss; b != nil {
		w.enemies.MoveBoss(b, w.Character.X, w.context())
	}
}

func (w *World) moveThrowables() {
	for _, t := range w.combat.Throwables() {
		w.physics.UpdateThrowable(t)
	}
}

func (w *World) moveClouds() {
	for _, c := range w.Level.Clouds {
		c.Drift()
	}
}

func (w *World) animate() {
	ctx := w.context()
	w.player.Animate(w.Character, ctx)
	for _, e := range w.Level.Enemies {
		w.enemies.Animate(e)
	}
	if b := w.Level.Endboss; b != nil {
		w.enemies.AnimateBoss(b, w.Character.X, ctx)
	}
	for _, t := range w.combat.Throwables() {
		if t.Exploded {
			t.Anim.Play(t.Anims.Splash)
		} else {
			t.Anim.Play(t.Anims.Rotation)
		}
	}
	for _, c := range w.Level.Collectibles {
		if c.Kind == entity.KindCoin && !c.Collected {
			c.Anim.Play(c.Frames)
		}
	}
}

func (w *World) interact() {
	w.combat.Update(w.Character, w.Level, w.context())
	w.checkGameOver()
}

func (w *World) checkGameOver() {
	if w.Character.Dead {
		w.finish(OutcomeLost)
		return
	}
	if b := w.Level.Endboss; b != nil && b.Dead && !b.IsHurt(w.sched.Elapsed()) {
		w.finish(OutcomeWon)
	}
}

// finish ends the session once. No job runs afterwards.
func (w *World) finish(o Outcome) {
	if w.gameOver {
		return
	}
	w.gameOver = true
	w.outcome = o
	w.sched.CancelAll()

	switch o {
	case OutcomeWon:
		if w.callbacks.OnWon != nil {
			w.callbacks.OnWon()
		}
	case OutcomeLost:
		if w.callbacks.OnLost != nil {
			w.callbacks.OnLost()
		}
	}
}

// Step advances the simulation one tick with the given input.
func (w *World) Step(input system.InputState) {
	if w.gameOver {
		return
	}
	w.input = input
	w.sched.Tick()
}

// Stop cancels every job without reporting an outcome.
func (w *World) Stop() {
	w.gameOver = true
	w.sched.CancelAll()
}

// Now returns the simulated time since the session started
func (w *World) Now() time.Duration {
	return w.sched.Elapsed()
}

// Ticks returns the number of steps run
func (w *World) Ticks() uint64 {
	return w.sched.Now()
}

// GameOver reports whether the session has ended
func (w *World) GameOver() bool {
	return w.gameOver
}

// Outcome returns how the session ended
func (w *World) Outcome() Outcome {
	return w.outcome
}

// Throwables returns the bottles in flight or exploding
func (w *World) Throwables() []*entity.Throwable {
	return w.combat.Throwables()
}

// Sound returns the sink the world plays through
func (w *World) Sound() entity.SoundSink {
	return w.sound
}
