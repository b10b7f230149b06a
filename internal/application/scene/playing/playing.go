// Package playing provides the main gameplay scene.
package playing

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/pollo/internal/application/render"
	"github.com/younwookim/pollo/internal/application/scene"
	"github.com/younwookim/pollo/internal/application/state"
	"github.com/younwookim/pollo/internal/application/system"
	"github.com/younwookim/pollo/internal/application/world"
	"github.com/younwookim/pollo/internal/domain/entity"
	"github.com/younwookim/pollo/internal/infrastructure/config"
)

// Colors for overlays
var (
	colorOverlay = color.RGBA{0, 0, 0, 128}
	colorText    = color.RGBA{255, 255, 255, 255}
)

// Options configures a Playing scene.
type Options struct {
	Renderer   *render.Renderer
	Sound      entity.SoundSink
	Input      *system.InputSystem
	Seed       int64
	RecordPath string // record inputs to this file; "" disables recording
}

// Playing is the main gameplay scene
type Playing struct {
	director scene.Director
	level    *config.LevelConfig
	world    *world.World
	renderer *render.Renderer
	input    *system.InputSystem
	sound    entity.SoundSink
	state    state.GameState
	seed     int64
	screenW  int
	screenH  int

	// Input recording
	recorder       *Recorder
	recordFilename string
	saved          bool

	justPressed func(ebiten.Key) bool
}

// New creates a new Playing scene for one level.
func New(director scene.Director, cfg *config.GameConfig, lvl *config.LevelConfig, opts Options) (*Playing, error) {
	if opts.Sound == nil {
		opts.Sound = &entity.NopSink{}
	}
	if opts.Input == nil {
		opts.Input = system.NewInputSystem()
	}

	p := &Playing{
		director:       director,
		level:          lvl,
		renderer:       opts.Renderer,
		input:          opts.Input,
		sound:          opts.Sound,
		state:          state.StatePlaying,
		seed:           opts.Seed,
		screenW:        cfg.Physics.Display.ScreenWidth,
		screenH:        cfg.Physics.Display.ScreenHeight,
		recordFilename: opts.RecordPath,
		justPressed:    inpututil.IsKeyJustPressed,
	}

	w, err := world.Build(cfg, lvl, opts.Seed, opts.Sound, world.Callbacks{
		OnWon:  p.onWon,
		OnLost: p.onLost,
	})
	if err != nil {
		return nil, err
	}
	p.world = w

	if opts.RecordPath != "" {
		p.recorder = NewRecorder(opts.Seed, lvl.ID)
		log.Printf("Recording enabled: %s (seed: %d)", opts.RecordPath, opts.Seed)
	}

	return p, nil
}

func (p *Playing) onWon() {
	p.state = state.StateWon
	p.sound.StopAll()
}

func (p *Playing) onLost() {
	p.state = state.StateLost
	p.sound.StopAll()
}

// World returns the running session
func (p *Playing) World() *world.World {
	return p.world
}

// State returns the scene state
func (p *Playing) State() state.GameState {
	return p.state
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if p.justPressed(ebiten.KeyM) {
		p.toggleMute()
	}

	switch p.state {
	case state.StatePaused:
		if p.justPressed(ebiten.KeyEscape) {
			p.state = p.state.TogglePause()
			p.sound.PlayOne(entity.SoundBackgroundMusic)
		}
		return nil, nil
	case state.StatePlaying:
		p.updatePlaying(dt)
	}

	if p.state.Ended() {
		p.saveRecording()
		return p.director.Result(p.Result()), nil
	}
	return nil, nil // nil = stay on this scene
}

func (p *Playing) updatePlaying(dt float64) {
	// Check for pause
	if p.justPressed(ebiten.KeyEscape) {
		p.state = p.state.TogglePause()
		p.sound.StopAll()
		return
	}

	// F5: Save recording manually
	if p.justPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
		p.saved = false
	}

	input := p.input.GetInput()
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	p.world.Step(input)
	if p.renderer != nil {
		p.renderer.Update(p.world, float32(dt))
	}
}

func (p *Playing) toggleMute() {
	muted := !p.sound.Muted()
	p.sound.SetMuted(muted)
	if !muted && p.state == state.StatePlaying {
		p.sound.PlayOne(entity.SoundBackgroundMusic)
	}
}

// Result summarises the session so far
func (p *Playing) Result() scene.Result {
	return scene.Result{
		Level:   p.level.ID,
		Next:    p.level.Next,
		Outcome: p.world.Outcome(),
		Coins:   p.world.Character.Coins,
		Bottles: p.world.Character.Bottles,
		Time:    p.world.Now(),
	}
}

// saveRecording saves the current recording to file once
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.saved {
		return
	}
	p.saved = true

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	if p.renderer != nil {
		p.renderer.Draw(screen, p.world)
	}

	if p.sound.Muted() {
		render.DrawText(screen, "MUTED", float64(p.screenW)-60, 10, colorText)
	}
	if p.state == state.StatePaused {
		p.drawPauseOverlay(screen)
	}
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), colorOverlay, false)
	cx := float64(p.screenW) / 2
	render.DrawTextCentered(screen, "PAUSED", cx, float64(p.screenH)/2-20, colorText)
	render.DrawTextCentered(screen, "ESC resume  M mute", cx, float64(p.screenH)/2, colorText)
}

// OnEnter starts the music
func (p *Playing) OnEnter() {
	p.sound.PlayOne(entity.SoundGameStart)
	p.sound.PlayOne(entity.SoundBackgroundMusic)
}

// OnExit stops the session and saves any recording
func (p *Playing) OnExit() {
	p.world.Stop()
	p.sound.StopAll()
	p.saveRecording()
}
