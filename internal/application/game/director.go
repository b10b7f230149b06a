package game

import (
	"fmt"
	"time"

	"github.com/younwookim/pollo/internal/application/render"
	"github.com/younwookim/pollo/internal/application/scene"
	"github.com/younwookim/pollo/internal/application/scene/playing"
	"github.com/younwookim/pollo/internal/application/scene/result"
	"github.com/younwookim/pollo/internal/application/scene/title"
	"github.com/younwookim/pollo/internal/application/system"
	"github.com/younwookim/pollo/internal/domain/entity"
	"github.com/younwookim/pollo/internal/infrastructure/config"
)

// DirectorOptions configures a Director.
type DirectorOptions struct {
	Loader     *config.Loader
	Config     *config.GameConfig
	Sound      entity.SoundSink
	Renderer   *render.Renderer
	Input      *system.InputSystem
	Levels     []string // shown on the title screen
	Start      string   // preselected level
	Seed       int64    // 0 draws a fresh seed per session
	RecordPath string
}

// Director wires the title, playing and result scenes together.
type Director struct {
	opts    DirectorOptions
	screenW int
	screenH int
	now     func() time.Time
}

// NewDirector creates a director. Loader and Config are required.
func NewDirector(opts DirectorOptions) (*Director, error) {
	if opts.Loader == nil || opts.Config == nil {
		return nil, fmt.Errorf("director needs a config loader and a loaded config")
	}
	if opts.Sound == nil {
		opts.Sound = &entity.NopSink{}
	}
	return &Director{
		opts:    opts,
		screenW: opts.Config.Physics.Display.ScreenWidth,
		screenH: opts.Config.Physics.Display.ScreenHeight,
		now:     time.Now,
	}, nil
}

// Title implements scene.Director
func (d *Director) Title() scene.Scene {
	return title.New(d, d.opts.Sound, d.opts.Levels, d.opts.Start, d.screenW, d.screenH)
}

// Play implements scene.Director
func (d *Director) Play(level string) (scene.Scene, error) {
	lvl, err := d.opts.Loader.LoadLevel(level)
	if err != nil {
		return nil, fmt.Errorf("failed to load level %q: %w", level, err)
	}

	p, err := playing.New(d, d.opts.Config, lvl, playing.Options{
		Renderer:   d.opts.Renderer,
		Sound:      d.opts.Sound,
		Input:      d.opts.Input,
		Seed:       d.seed(),
		RecordPath: d.opts.RecordPath,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start level %q: %w", level, err)
	}
	return p, nil
}

// Result implements scene.Director
func (d *Director) Result(r scene.Result) scene.Scene {
	return result.New(d, d.opts.Sound, r, d.screenW, d.screenH)
}

func (d *Director) seed() int64 {
	if d.opts.Seed != 0 {
		return d.opts.Seed
	}
	return d.now().UnixNano()
}
