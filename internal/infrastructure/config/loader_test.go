package config

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const configDir = "../../../cmd/game/configs"

func TestLoader_LoadPhysics(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadPhysics()
	require.NoError(t, err)

	assert.Equal(t, 720, cfg.Display.ScreenWidth)
	assert.Equal(t, 480, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 6, cfg.Timing.AnimationInterval)
	assert.Equal(t, 2.5, cfg.Gravity.Acceleration)
	assert.Equal(t, 130.0, cfg.Gravity.GroundY)
	assert.Equal(t, 30.0, cfg.Gravity.JumpImpulse)
	assert.Equal(t, 15.0, cfg.Gravity.BounceImpulse)
	assert.Equal(t, 34, cfg.Combat.BottleDamage)
	assert.Equal(t, 500.0, cfg.Boss.ContactRange)
	assert.Equal(t, 20, cfg.Boss.AlertTicks)
}

func TestTimingConfig_Durations(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadPhysics()
	require.NoError(t, err)

	assert.Equal(t, "1s", cfg.Timing.HurtWindow().String())
	assert.Equal(t, "10s", cfg.Timing.LongIdle().String())
	assert.Equal(t, "400ms", cfg.Timing.ExplodeRemoval().String())
}

func TestLoader_LoadEntities(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadEntities()
	require.NoError(t, err)

	assert.Equal(t, 150.0, cfg.Character.Sprite.Width)
	assert.Equal(t, 110.0, cfg.Character.Sprite.Offset.Top)
	assert.Len(t, cfg.Character.Sprite.Animations["idle"], 10)
	assert.Len(t, cfg.Character.Sprite.Animations["jump"], 9)

	chicken, ok := cfg.Enemies["chicken"]
	require.True(t, ok)
	assert.Equal(t, 340.0, chicken.Y)
	assert.Equal(t, 0.15, chicken.Speed.Min)
	assert.Equal(t, 0.8, chicken.Speed.Spread)

	chick, ok := cfg.Enemies["chick"]
	require.True(t, ok)
	assert.Equal(t, 70.0, chick.Sprite.Width)

	assert.Len(t, cfg.Endboss.Sprite.Animations["alert"], 8)
	assert.Len(t, cfg.Throwable.Sprite.Animations["splash"], 6)
	assert.Len(t, cfg.StatusBars.Boss, 6)
	assert.Len(t, cfg.Background.Layers, 3)
}

func TestLoader_LoadLevelJSON(t *testing.T) {
	loader := NewLoader(configDir)

	tests := []struct {
		name      string
		endX      float64
		bossSpeed float64
		next      string
		enemies   int
	}{
		{"level1", 2160, 1, "level2", 4},
		{"level2", 4320, 3, "level3", 10},
		{"level3", 7200, 6, "", 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loader.LoadLevel(tt.name)
			require.NoError(t, err)

			assert.Equal(t, tt.name, cfg.ID)
			assert.Equal(t, tt.endX, cfg.EndX)
			assert.Equal(t, tt.endX, cfg.Endboss.X)
			assert.Equal(t, tt.bossSpeed, cfg.Endboss.Speed)
			assert.Equal(t, tt.next, cfg.Next)

			total := 0
			for _, g := range cfg.Enemies {
				total += g.Count
			}
			assert.Equal(t, tt.enemies, total)
		})
	}
}

func TestLoader_LoadLevelTMX(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadLevel("training")
	require.NoError(t, err)

	assert.Equal(t, "training", cfg.ID)
	assert.Equal(t, "Training Ground", cfg.Name)
	assert.Equal(t, "level1", cfg.Next)
	assert.Equal(t, 2160.0, cfg.EndX)
	assert.Equal(t, -1, cfg.Backgrounds.First)
	assert.Equal(t, 3, cfg.Backgrounds.Last)
	assert.Equal(t, 2160.0, cfg.Endboss.X)
	assert.Equal(t, 1.0, cfg.Endboss.Speed)

	kinds := map[string]int{}
	for _, p := range cfg.Placed {
		kinds[p.Kind]++
	}
	assert.Equal(t, 1, kinds["chicken"])
	assert.Equal(t, 1, kinds["chick"])
	assert.Equal(t, 4, kinds["bottle"])
	assert.Equal(t, 2, kinds["coin"])
	assert.Equal(t, 2, kinds["cloud"])

	for i := 1; i < len(cfg.Placed); i++ {
		assert.LessOrEqual(t, cfg.Placed[i-1].X, cfg.Placed[i].X)
	}

	for _, p := range cfg.Placed {
		if p.Kind == "coin" {
			require.NotNil(t, p.Y)
		}
		if p.Kind == "bottle" {
			assert.Nil(t, p.Y)
		}
	}
}

func TestLoader_LoadLevelUnknown(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{}, "")

	_, err := loader.LoadLevel("nowhere")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownLevel))
}

func TestLoader_LoadLevelBadJSON(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{
		"levels/broken.json": &fstest.MapFile{Data: []byte("{")},
	}, "")

	_, err := loader.LoadLevel("broken")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnknownLevel))
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.NotNil(t, cfg.Physics)
	assert.NotNil(t, cfg.Entities)
}

func TestEntitiesConfig_SpritePaths(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadEntities()
	require.NoError(t, err)

	paths := cfg.SpritePaths()
	require.NotEmpty(t, paths)
	assert.Contains(t, paths, cfg.Character.Sprite.Animations["idle"][0])
	assert.Contains(t, paths, cfg.Background.Air)
	assert.Contains(t, paths, cfg.StatusBars.Boss[0])

	for i := 1; i < len(paths); i++ {
		assert.Less(t, paths[i-1], paths[i], "sorted without duplicates")
	}
}

func TestLoader_LoadPhysicsRejectsBadCadence(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"negative animation interval", `{"display":{"framerate":60},"timing":{"animationInterval":-1}}`},
		{"zero animation interval", `{"display":{"framerate":60},"timing":{"animationInterval":0}}`},
		{"zero framerate", `{"display":{"framerate":0},"timing":{"animationInterval":6}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := NewFSLoader(fstest.MapFS{
				"physics.json": &fstest.MapFile{Data: []byte(tt.json)},
			}, "")

			_, err := loader.LoadPhysics()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}
}
