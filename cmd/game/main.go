package main

import (
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/younwookim/pollo/internal/application/game"
	"github.com/younwookim/pollo/internal/application/render"
	"github.com/younwookim/pollo/internal/application/system"
	"github.com/younwookim/pollo/internal/domain/entity"
	"github.com/younwookim/pollo/internal/infrastructure/assets"
	"github.com/younwookim/pollo/internal/infrastructure/config"
	"github.com/younwookim/pollo/internal/infrastructure/sound"
)

// levels lists the campaign in title-screen order
var levels = []string{"level1", "level2", "level3", "training"}

func main() {
	// Parse command line flags
	levelFlag := flag.String("level", "level1", "Level preselected on the title screen")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Run a recorded replay headless and print the outcome")
	assetsFlag := flag.String("assets", "", "Directory holding the img/ sprite tree; empty draws placeholders")
	muteFlag := flag.Bool("mute", false, "Start with sound muted")
	seedFlag := flag.Int64("seed", 0, "Fixed RNG seed (0 = random per session)")
	flag.Parse()

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	loader := config.NewFSLoader(fsys, "configs")
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *replayFlag != "" {
		res, err := RunReplay(loader, cfg, *replayFlag)
		if err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		log.Printf("Replay %s: level=%s seed=%d frames=%d ticks=%d outcome=%s",
			*replayFlag, res.Level, res.Seed, res.Frames, res.Ticks, res.Outcome)
		return
	}

	// Sprites
	var assetFS fs.FS
	if *assetsFlag != "" {
		assetFS = os.DirFS(*assetsFlag)
	}
	images := assets.NewLoader(assetFS, 4)
	if images.Enabled() {
		images.Preload(cfg.Entities.SpritePaths())
	}

	renderer := render.NewRenderer(images, render.Options{
		ScreenWidth:  cfg.Physics.Display.ScreenWidth,
		ScreenHeight: cfg.Physics.Display.ScreenHeight,
		GroundY:      cfg.Physics.Gravity.GroundY + cfg.Entities.Character.Sprite.Height,
		HUDSeconds:   cfg.Physics.HUD.TweenSeconds,
		Placeholders: !images.Enabled(),
	})

	// Sound
	var sink entity.SoundSink = &entity.NopSink{}
	s, err := sound.NewSink(audio.NewContext(sound.SampleRate), 0.5)
	if err != nil {
		log.Printf("Sound disabled: %v", err)
	} else {
		sink = s
	}
	sink.SetMuted(*muteFlag)

	director, err := game.NewDirector(game.DirectorOptions{
		Loader:     loader,
		Config:     cfg,
		Sound:      sink,
		Renderer:   renderer,
		Input:      system.NewInputSystem(),
		Levels:     levels,
		Start:      *levelFlag,
		Seed:       *seedFlag,
		RecordPath: *recordFlag,
	})
	if err != nil {
		log.Fatalf("Failed to create director: %v", err)
	}

	display := cfg.Physics.Display
	g := game.New(director.Title(), display.ScreenWidth, display.ScreenHeight, display.Framerate)

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Pollo Loco")
	ebiten.SetTPS(display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
